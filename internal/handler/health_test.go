package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockDB struct {
	pingErr error
}

func (m *mockDB) Ping(ctx context.Context) error { return m.pingErr }

func healthStatus(t *testing.T, h *Handler) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec.Code, resp.Status
}

func TestHealth_OK(t *testing.T) {
	code, status := healthStatus(t, New(&mockDB{}, "http://localhost:3000"))
	if code != http.StatusOK || status != "ok" {
		t.Errorf("expected 200/ok, got %d/%s", code, status)
	}
}

// Without a database the API still serves the public forms, so health stays
// 200 but reports the degraded state.
func TestHealth_NoDatabase_Degraded(t *testing.T) {
	code, status := healthStatus(t, New(nil, "http://localhost:3000"))
	if code != http.StatusOK || status != "degraded" {
		t.Errorf("expected 200/degraded, got %d/%s", code, status)
	}
}

func TestHealth_PingFails_Unhealthy(t *testing.T) {
	code, status := healthStatus(t, New(&mockDB{pingErr: errors.New("dial tcp: refused")}, "http://localhost:3000"))
	if code != http.StatusServiceUnavailable || status != "unhealthy" {
		t.Errorf("expected 503/unhealthy, got %d/%s", code, status)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	h := New(nil, "http://localhost:3000")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run for OPTIONS")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.CORS(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("expected allow-origin header, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
