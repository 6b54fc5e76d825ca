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

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// statusForResult maps a submission outcome onto an HTTP status. The body is
// always the SubmitResult itself; the UI only reads success/message/errors.
func statusForResult(res service.SubmitResult) int {
	switch res.Kind {
	case service.ResultOK:
		return http.StatusCreated
	case service.ResultSimulated:
		return http.StatusOK
	case service.ResultInvalid:
		return http.StatusBadRequest
	case service.ResultRateLimited:
		return http.StatusTooManyRequests
	case service.ResultStorageUnavailable, service.ResultStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	res := h.contactService.Submit(r.Context(), in)
	writeJSON(w, statusForResult(res), res)
}

// contactDescriptor drives search/filter/sort for the admin inbox table.
var contactDescriptor = tableview.Descriptor[*model.ContactSubmission]{
	SearchFields: []func(*model.ContactSubmission) string{
		func(c *model.ContactSubmission) string { return c.Name },
		func(c *model.ContactSubmission) string { return c.Email },
		func(c *model.ContactSubmission) string { return c.Contact },
		func(c *model.ContactSubmission) string { return c.Message },
	},
	FilterFields: map[string]func(*model.ContactSubmission) string{
		"status": func(c *model.ContactSubmission) string { return c.Status },
	},
	SortKeys: map[string]func(*model.ContactSubmission) any{
		"name":       func(c *model.ContactSubmission) any { return c.Name },
		"email":      func(c *model.ContactSubmission) any { return c.Email },
		"status":     func(c *model.ContactSubmission) any { return c.Status },
		"created_at": func(c *model.ContactSubmission) any { return c.CreatedAt },
	},
}

// AdminList handles GET /api/admin/contacts.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	subs, err := h.contactService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	page := tableview.Apply(subs, contactDescriptor, parseTableQuery(r, "status"))
	if page.Items == nil {
		page.Items = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, page)
}

// UpdateStatus handles PATCH /api/admin/contacts/{id}/status.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	err := h.contactService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
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

// Reply handles POST /api/admin/contacts/{id}/reply. The replying staff
// member is taken from the authenticated request context.
func (h *ContactHandler) Reply(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	err := h.contactService.Reply(r.Context(), r.PathValue("id"), req.Reply, user.ID)
	switch {
	case errors.Is(err, service.ErrEmptyReply):
		writeError(w, http.StatusBadRequest, "reply_required")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "reply_failed")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
	}
}

// Delete handles DELETE /api/admin/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.contactService.Delete(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "delete_failed")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
