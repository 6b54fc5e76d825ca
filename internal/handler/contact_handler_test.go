package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codeward/backend/internal/model"
	"github.com/codeward/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, in service.ContactInput) service.SubmitResult
	listFunc   func(ctx context.Context) ([]*model.ContactSubmission, error)
	statusFunc func(ctx context.Context, id, status string) error
	replyFunc  func(ctx context.Context, id, reply, repliedBy string) error
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockContactService) Submit(ctx context.Context, in service.ContactInput) service.SubmitResult {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return service.SubmitResult{Success: true, Kind: service.ResultOK}
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactService) UpdateStatus(ctx context.Context, id, status string) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockContactService) Reply(ctx context.Context, id, reply, repliedBy string) error {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, id, reply, repliedBy)
	}
	return nil
}

func (m *mockContactService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

var _ service.ContactService = (*mockContactService)(nil)

// staffRequest returns req with a staff user loaded into the context, the way
// the admin middleware does.
func staffRequest(req *http.Request, user *model.User) *http.Request {
	return req.WithContext(withUser(req.Context(), user))
}

// ---------------------------------------------------------------------------
// POST /api/contact
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured service.ContactInput
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) service.SubmitResult {
			captured = in
			return service.SubmitResult{Success: true, Message: "ok", Kind: service.ResultOK}
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","contact":"+49 30 1","message":"Hello!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured.Email != "alice@example.com" || captured.Message != "Hello!" {
		t.Errorf("unexpected captured input: %+v", captured)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// Each result kind maps onto its HTTP status; the body is always the result.
func TestContactHandler_Submit_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		result service.SubmitResult
		want   int
	}{
		{"created", service.SubmitResult{Success: true, Kind: service.ResultOK}, http.StatusCreated},
		{"simulated", service.SubmitResult{Success: true, Kind: service.ResultSimulated}, http.StatusOK},
		{"invalid", service.SubmitResult{Errors: map[string][]string{"email": {"bad"}}, Kind: service.ResultInvalid}, http.StatusBadRequest},
		{"rate_limited", service.SubmitResult{Kind: service.ResultRateLimited}, http.StatusTooManyRequests},
		{"store_down", service.SubmitResult{Kind: service.ResultStoreUnavailable}, http.StatusServiceUnavailable},
		{"storage_down", service.SubmitResult{Kind: service.ResultStorageUnavailable}, http.StatusServiceUnavailable},
		{"internal", service.SubmitResult{Kind: service.ResultInternal}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockContactService{
				submitFunc: func(ctx context.Context, in service.ContactInput) service.SubmitResult {
					return tt.result
				},
			}
			h := NewContactHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

// The ResultKind is an adapter concern and must not leak into the body.
func TestContactHandler_Submit_KindNotSerialized(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, in service.ContactInput) service.SubmitResult {
			return service.SubmitResult{Success: true, Kind: service.ResultSimulated}
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	var body map[string]any
	_ = json.NewDecoder(rec.Body).Decode(&body)
	if _, ok := body["Kind"]; ok {
		t.Error("Kind must not appear in the response body")
	}
}

// ---------------------------------------------------------------------------
// GET /api/admin/contacts
// ---------------------------------------------------------------------------

func contactFixture() []*model.ContactSubmission {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []*model.ContactSubmission{
		{ID: "c1", Name: "Alice Berg", Email: "alice@example.com", Status: "new", CreatedAt: base},
		{ID: "c2", Name: "Bob Stein", Email: "bob@example.com", Status: "read", CreatedAt: base.Add(time.Hour)},
		{ID: "c3", Name: "Carol Alzner", Email: "carol@example.com", Status: "new", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestContactHandler_AdminList_FiltersByStatus(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return contactFixture(), nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts?status=new", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var page struct {
		Items        []*model.ContactSubmission `json:"items"`
		TotalMatched int                        `json:"total_matched"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.TotalMatched != 2 {
		t.Errorf("expected 2 matches, got %d", page.TotalMatched)
	}
	for _, it := range page.Items {
		if it.Status != "new" {
			t.Errorf("expected only new submissions, got %q", it.Status)
		}
	}
}

func TestContactHandler_AdminList_SearchMatchesName(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return contactFixture(), nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts?search=alzner", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	var page struct {
		Items []*model.ContactSubmission `json:"items"`
	}
	_ = json.NewDecoder(rec.Body).Decode(&page)
	if len(page.Items) != 1 || page.Items[0].ID != "c3" {
		t.Errorf("expected only c3, got %+v", page.Items)
	}
}

func TestContactHandler_AdminList_EmptyIsArrayNotNull(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Errorf("expected empty items array, got %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// Admin mutations
// ---------------------------------------------------------------------------

func TestContactHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	mock := &mockContactService{
		statusFunc: func(ctx context.Context, id, status string) error {
			return service.ErrInvalidStatus
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/contacts/c1/status", strings.NewReader(`{"status":"bogus"}`))
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestContactHandler_Reply_UsesContextUser(t *testing.T) {
	var gotRepliedBy string
	mock := &mockContactService{
		replyFunc: func(ctx context.Context, id, reply, repliedBy string) error {
			gotRepliedBy = repliedBy
			return nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/contacts/c1/reply", strings.NewReader(`{"reply":"On it."}`))
	req.SetPathValue("id", "c1")
	req = staffRequest(req, &model.User{ID: "staff-7", Role: model.RoleTeamMember, Status: model.UserStatusActive})
	rec := httptest.NewRecorder()
	h.Reply(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if gotRepliedBy != "staff-7" {
		t.Errorf("expected replied_by=staff-7, got %q", gotRepliedBy)
	}
}

func TestContactHandler_Reply_WithoutUser_Unauthorized(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/contacts/c1/reply", strings.NewReader(`{"reply":"x"}`))
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.Reply(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestContactHandler_Delete_Success(t *testing.T) {
	var deletedID string
	mock := &mockContactService{
		deleteFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/contacts/c2", nil)
	req.SetPathValue("id", "c2")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if deletedID != "c2" {
		t.Errorf("expected c2 deleted, got %q", deletedID)
	}
}
