package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/codeward/backend/internal/service"
	"github.com/codeward/backend/pkg/auth"
)

// AuthHandler はチームアカウントのログイン・ログアウトを扱う
type AuthHandler struct {
	authService   service.AuthService
	users         UserLookup
	sessionSecret []byte
}

// NewAuthHandler は AuthHandler を生成する（DI: AuthService を注入）
func NewAuthHandler(authService service.AuthService, users UserLookup, sessionSecret []byte) *AuthHandler {
	return &AuthHandler{authService: authService, users: users, sessionSecret: sessionSecret}
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("ENV") == "production",
	})
}

// Login handles POST /api/auth/login. On success it sets the session cookie
// and returns the signed-in user.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	user, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	case errors.Is(err, service.ErrAccountInactive):
		writeError(w, http.StatusForbidden, "account_inactive")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}

	token := auth.CreateSessionToken(user.ID, h.sessionSecret, auth.DefaultSessionTTL)
	setSessionCookie(w, token, int(auth.DefaultSessionTTL/time.Second))
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	setSessionCookie(w, "", -1)
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Me handles GET /api/me, returning the current session's account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if userID == auth.DevUserID {
		writeJSON(w, http.StatusOK, devUser())
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unknown_user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
