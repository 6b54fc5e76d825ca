package handler

import "net/http"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health reports connectivity. Without a configured database the API still
// serves the public forms in demo mode, so that state is 200/"degraded"
// rather than an error.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:  "degraded",
			Message: "no database configured; submissions are simulated",
		})
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "Codeward API",
	})
}
