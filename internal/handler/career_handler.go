package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codeward/backend/internal/model"
	"github.com/codeward/backend/internal/repository"
	"github.com/codeward/backend/internal/service"
	"github.com/codeward/backend/internal/tableview"
)

// CareerHandler handles the public application form and the admin review
// table.
type CareerHandler struct {
	applicationService service.ApplicationService
}

// NewCareerHandler creates a CareerHandler with the given service.
func NewCareerHandler(applicationService service.ApplicationService) *CareerHandler {
	return &CareerHandler{applicationService: applicationService}
}

// Submit handles POST /api/careers/apply (multipart/form-data with an
// optional "resume" file part).
func (h *CareerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(service.MaxResumeSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_multipart")
		return
	}

	in := service.ApplicationInput{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Message:   r.FormValue("message"),
		JobID:     r.FormValue("job_id"),
	}

	file, header, err := r.FormFile("resume")
	switch {
	case err == nil:
		defer file.Close()
		in.Resume = file
		in.ResumeName = header.Filename
		in.ResumeSize = header.Size
		in.ResumeContentType = header.Header.Get("Content-Type")
	case errors.Is(err, http.ErrMissingFile):
		// 添付なし — バリデーション側で必須チェックする
	default:
		writeError(w, http.StatusBadRequest, "invalid_resume_part")
		return
	}

	res := h.applicationService.Submit(r.Context(), in)
	writeJSON(w, statusForResult(res), res)
}

// applicationDescriptor drives the admin applications table. The synthetic
// "name" column searches and sorts on the combined full name.
var applicationDescriptor = tableview.Descriptor[*model.CareerApplication]{
	SearchFields: []func(*model.CareerApplication) string{
		func(a *model.CareerApplication) string { return a.FullName() },
		func(a *model.CareerApplication) string { return a.Email },
		func(a *model.CareerApplication) string { return a.Phone },
	},
	FilterFields: map[string]func(*model.CareerApplication) string{
		"status": func(a *model.CareerApplication) string { return a.Status },
	},
	SortKeys: map[string]func(*model.CareerApplication) any{
		"name":       func(a *model.CareerApplication) any { return a.FullName() },
		"email":      func(a *model.CareerApplication) any { return a.Email },
		"status":     func(a *model.CareerApplication) any { return a.Status },
		"created_at": func(a *model.CareerApplication) any { return a.CreatedAt },
	},
}

// AdminList handles GET /api/admin/applications.
func (h *CareerHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.applicationService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	page := tableview.Apply(apps, applicationDescriptor, parseTableQuery(r, "status"))
	if page.Items == nil {
		page.Items = []*model.CareerApplication{}
	}
	writeJSON(w, http.StatusOK, page)
}

// UpdateStatus handles PATCH /api/admin/applications/{id}/status. The
// reviewing staff member is recorded alongside the status change.
func (h *CareerHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	err := h.applicationService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status, req.Notes, user.ID)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "update_failed")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
	}
}

// Delete handles DELETE /api/admin/applications/{id}.
func (h *CareerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.applicationService.Delete(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "delete_failed")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
