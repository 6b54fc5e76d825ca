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

// JobHandler handles the public careers listing and the admin posting CRUD.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a JobHandler with the given service.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type jobListResponse struct {
	Jobs []*model.JobPosting `json:"jobs"`
}

// PublicList handles GET /api/jobs. Only active postings are returned.
func (h *JobHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListPublic(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if jobs == nil {
		jobs = []*model.JobPosting{}
	}
	writeJSON(w, http.StatusOK, jobListResponse{Jobs: jobs})
}

var jobDescriptor = tableview.Descriptor[*model.JobPosting]{
	SearchFields: []func(*model.JobPosting) string{
		func(j *model.JobPosting) string { return j.Title },
		func(j *model.JobPosting) string { return j.Location },
		func(j *model.JobPosting) string { return j.Department },
	},
	FilterFields: map[string]func(*model.JobPosting) string{
		"status": func(j *model.JobPosting) string { return j.Status },
		"type":   func(j *model.JobPosting) string { return j.Type },
	},
	SortKeys: map[string]func(*model.JobPosting) any{
		"title":      func(j *model.JobPosting) any { return j.Title },
		"location":   func(j *model.JobPosting) any { return j.Location },
		"status":     func(j *model.JobPosting) any { return j.Status },
		"created_at": func(j *model.JobPosting) any { return j.CreatedAt },
		// nil publish dates sort last in either direction
		"publish_date": func(j *model.JobPosting) any {
			if j.PublishDate == nil {
				return nil
			}
			return *j.PublishDate
		},
	},
}

// AdminList handles GET /api/admin/jobs: every posting, table-queried.
func (h *JobHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	page := tableview.Apply(jobs, jobDescriptor, parseTableQuery(r, "status", "type"))
	if page.Items == nil {
		page.Items = []*model.JobPosting{}
	}
	writeJSON(w, http.StatusOK, page)
}

// Get handles GET /api/admin/jobs/{id}.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.Get(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "get_failed")
	default:
		writeJSON(w, http.StatusOK, job)
	}
}

// Create handles POST /api/admin/jobs.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job model.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	err := h.jobService.Create(r.Context(), &job)
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		writeError(w, http.StatusBadRequest, "title_required")
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "create_failed")
	default:
		writeJSON(w, http.StatusCreated, &job)
	}
}

// Update handles PUT /api/admin/jobs/{id}.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var job model.JobPosting
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	job.ID = r.PathValue("id")

	err := h.jobService.Update(r.Context(), &job)
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		writeError(w, http.StatusBadRequest, "title_required")
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "update_failed")
	default:
		writeJSON(w, http.StatusOK, &job)
	}
}

// PatchStatus handles PATCH /api/admin/jobs/{id}/status.
func (h *JobHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	err := h.jobService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
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

// Delete handles DELETE /api/admin/jobs/{id}.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.jobService.Delete(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "delete_failed")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
