package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codeward/backend/internal/model"
	"github.com/codeward/backend/internal/repository"
	"github.com/codeward/backend/internal/service"
)

// AdminUserHandler manages team accounts (admin-only routes).
type AdminUserHandler struct {
	adminUserService service.AdminUserService
	authService      service.AuthService
}

// NewAdminUserHandler creates an AdminUserHandler.
func NewAdminUserHandler(adminUserService service.AdminUserService, authService service.AuthService) *AdminUserHandler {
	return &AdminUserHandler{adminUserService: adminUserService, authService: authService}
}

type userListResponse struct {
	Users []*model.User `json:"users"`
}

// List handles GET /api/admin/users.
func (h *AdminUserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminUserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if users == nil {
		users = []*model.User{}
	}
	writeJSON(w, http.StatusOK, userListResponse{Users: users})
}

// Create handles POST /api/admin/users, registering a new team account.
func (h *AdminUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	user, err := h.authService.SignUp(r.Context(), req.Name, req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email_taken")
	case errors.Is(err, service.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, "weak_password")
	case err != nil:
		writeError(w, http.StatusBadRequest, "signup_failed")
	default:
		writeJSON(w, http.StatusCreated, user)
	}
}

// PatchStatus handles PATCH /api/admin/users/{id}/status to activate or
// deactivate an account.
func (h *AdminUserHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	err := h.adminUserService.SetStatus(r.Context(), r.PathValue("id"), req.Status)
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
