package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/joao-fontenele/salmo-storefront/internal/domain"
	"github.com/joao-fontenele/salmo-storefront/internal/webhook"
)

// WebhookHandler turns order.placed events into webhook deliveries.
type WebhookHandler struct {
	notifier *webhook.Notifier
	logger   *slog.Logger
}

func NewWebhookHandler(notifier *webhook.Notifier, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		notifier: notifier,
		logger:   logger,
	}
}

type notification struct {
	OrderID   string            `json:"orderId"`
	Email     string            `json:"email"`
	Items     []domain.LineItem `json:"items"`
	Total     float64           `json:"total"`
	OrderDate time.Time         `json:"orderDate"`
}

// Handle delivers one notification. Delivery is best effort: a failing
// endpoint is logged and the message committed anyway, so a dead webhook
// never wedges the consumer.
func (h *WebhookHandler) Handle(ctx context.Context, payload []byte) error {
	var event domain.OrderPlacedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("unmarshal order placed event: %w", err)
	}

	n := notification{
		OrderID:   event.OrderID,
		Email:     event.Email,
		Items:     event.Items,
		Total:     event.Subtotal,
		OrderDate: event.Timestamp,
	}

	if err := h.notifier.Notify(ctx, n); err != nil {
		h.logger.Error("webhook delivery failed", "error", err, "order_id", event.OrderID)
		return nil
	}

	h.logger.Info("webhook delivered", "order_id", event.OrderID)
	return nil
}
