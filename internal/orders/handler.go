package orders

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/joao-fontenele/salmo-storefront/internal/cart"
	"github.com/joao-fontenele/salmo-storefront/internal/domain"
	"github.com/joao-fontenele/salmo-storefront/internal/messaging"
	"github.com/joao-fontenele/salmo-storefront/internal/session"
)

type Handler struct {
	repo     *OrderRepository
	producer *messaging.Producer
	carts    *cart.Store
	emails   *session.EmailStore
	logger   *slog.Logger
}

// NewHandler wires the order endpoints. producer, carts, and emails are all
// optional; a nil value just disables the corresponding side effect.
func NewHandler(repo *OrderRepository, producer *messaging.Producer, carts *cart.Store, emails *session.EmailStore, logger *slog.Logger) *Handler {
	return &Handler{
		repo:     repo,
		producer: producer,
		carts:    carts,
		emails:   emails,
		logger:   logger,
	}
}

type createOrderRequest struct {
	Email string            `json:"email"`
	Items []domain.LineItem `json:"items"`
	Total float64           `json:"total"`
}

type createOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || len(req.Items) == 0 || req.Total == 0 {
		h.writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	order, err := h.repo.Create(r.Context(), req.Email, req.Items, req.Total)
	if err != nil {
		h.logger.Error("failed to place order", "error", err, "email", req.Email)
		h.writeError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	if h.producer != nil {
		event := domain.OrderPlacedEvent{
			OrderID:   order.ID,
			Email:     req.Email,
			Items:     req.Items,
			Subtotal:  order.Subtotal,
			Timestamp: order.CreatedAt,
		}
		if err := h.producer.Publish(r.Context(), order.ID, event); err != nil {
			h.logger.Error("failed to publish order placed event", "error", err, "order_id", order.ID)
		}
	}

	if sessionID, ok := cart.SessionID(r); ok {
		if h.carts != nil {
			h.carts.Clear(sessionID)
		}
		if h.emails != nil {
			if err := h.emails.Remember(r.Context(), sessionID, req.Email); err != nil {
				h.logger.Error("failed to remember email", "error", err)
			}
		}
	}

	h.logger.Info("order placed", "order_id", order.ID, "email", req.Email, "subtotal", order.Subtotal)
	h.writeJSON(w, http.StatusCreated, createOrderResponse{Success: true, OrderID: order.ID})
}

type listOrdersResponse struct {
	Orders []domain.Order `json:"orders"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		h.writeError(w, http.StatusBadRequest, "email required")
		return
	}

	orders, err := h.repo.ListByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to fetch orders", "error", err, "email", email)
		h.writeError(w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}

	h.logger.Info("orders listed", "email", email, "count", len(orders))
	h.writeJSON(w, http.StatusOK, listOrdersResponse{Orders: orders})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
