package orders

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Validation runs before any store access, so a handler with a nil
// repository exercises every 400 path.
func newValidationHandler() *Handler {
	return NewHandler(nil, nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"items":[{"id":"p1","name":"X","price":10,"quantity":2}],"total":20}`},
		{"missing items", `{"email":"a@b.com","total":20}`},
		{"empty items", `{"email":"a@b.com","items":[],"total":20}`},
		{"missing total", `{"email":"a@b.com","items":[{"id":"p1","name":"X","price":10,"quantity":2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newValidationHandler()

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.HandleCreate(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["error"] != "missing required fields" {
				t.Fatalf("expected 'missing required fields', got %q", resp["error"])
			}
		})
	}
}

func TestHandleCreate_InvalidBody(t *testing.T) {
	h := newValidationHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleList_RequiresEmail(t *testing.T) {
	h := newValidationHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	h.HandleList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "email required" {
		t.Fatalf("expected 'email required', got %q", resp["error"])
	}
}
