package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joao-fontenele/salmo-storefront/internal/domain"
	"github.com/joao-fontenele/salmo-storefront/internal/webhook"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func eventPayload(t *testing.T) []byte {
	t.Helper()
	event := domain.OrderPlacedEvent{
		OrderID: "order-1",
		Email:   "a@b.com",
		Items: []domain.LineItem{
			{ProductID: "p1", Name: "X", Price: 10, Quantity: 2},
		},
		Subtotal:  20,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}
	return data
}

func TestWebhookHandler_DeliversNotification(t *testing.T) {
	var received notification
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode notification: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h := NewWebhookHandler(webhook.NewNotifier(server.URL, server.Client()), discardLogger())

	if err := h.Handle(context.Background(), eventPayload(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if received.OrderID != "order-1" || received.Email != "a@b.com" {
		t.Fatalf("unexpected notification: %+v", received)
	}
	if received.Total != 20 {
		t.Fatalf("expected total 20, got %v", received.Total)
	}
	if len(received.Items) != 1 || received.Items[0].ProductID != "p1" {
		t.Fatalf("unexpected items: %+v", received.Items)
	}
}

func TestWebhookHandler_DeliveryFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	h := NewWebhookHandler(webhook.NewNotifier(server.URL, server.Client()), discardLogger())

	// Best effort: a failing endpoint must not stop the consumer.
	if err := h.Handle(context.Background(), eventPayload(t)); err != nil {
		t.Fatalf("expected nil error on delivery failure, got %v", err)
	}
}

func TestWebhookHandler_BadPayload(t *testing.T) {
	h := NewWebhookHandler(webhook.NewNotifier("http://unused", http.DefaultClient), discardLogger())

	if err := h.Handle(context.Background(), []byte(`{broken`)); err == nil {
		t.Fatal("expected an error for a malformed event")
	}
}
