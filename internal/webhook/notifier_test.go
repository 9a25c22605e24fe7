package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotifier_Notify(t *testing.T) {
	t.Run("posts the payload as JSON", func(t *testing.T) {
		var received map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %s", ct)
			}
			body, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(body, &received); err != nil {
				t.Errorf("body is not JSON: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		n := NewNotifier(server.URL, server.Client())
		err := n.Notify(context.Background(), map[string]any{"orderId": "o-1", "total": 20.0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if received["orderId"] != "o-1" {
			t.Fatalf("unexpected payload: %v", received)
		}
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		n := NewNotifier(server.URL, server.Client())
		if err := n.Notify(context.Background(), map[string]string{}); err == nil {
			t.Fatal("expected an error for a 500 response")
		}
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		n := NewNotifier("http://localhost:1", &http.Client{})
		if err := n.Notify(context.Background(), map[string]string{}); err == nil {
			t.Fatal("expected an error for an unreachable endpoint")
		}
	})
}
