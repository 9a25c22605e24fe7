package cart

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/joao-fontenele/salmo-storefront/internal/domain"
	"github.com/joao-fontenele/salmo-storefront/internal/session"
)

type Handler struct {
	store  *Store
	emails *session.EmailStore
	logger *slog.Logger
}

// NewHandler wires the cart endpoints. emails may be nil when no remembered
// email backend is configured.
func NewHandler(store *Store, emails *session.EmailStore, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		emails: emails,
		logger: logger,
	}
}

type cartResponse struct {
	Snapshot
	Email string `json:"email,omitempty"`
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sessionID := EnsureSession(w, r)
	resp := cartResponse{Snapshot: h.store.Get(sessionID)}

	if h.emails != nil {
		email, err := h.emails.Lookup(r.Context(), sessionID)
		if err != nil {
			// A dead email store never fails the cart view.
			h.logger.Error("failed to look up remembered email", "error", err)
		}
		resp.Email = email
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var item domain.LineItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if item.ProductID == "" || item.Name == "" {
		h.writeError(w, http.StatusBadRequest, "missing product id or name")
		return
	}

	sessionID := EnsureSession(w, r)
	snap := h.store.AddItem(sessionID, item)

	h.logger.Info("cart item added", "product_id", item.ProductID, "quantity", item.Quantity)
	h.writeJSON(w, http.StatusOK, snap)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) HandleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		h.writeError(w, http.StatusBadRequest, "missing product id")
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID := EnsureSession(w, r)
	snap := h.store.UpdateQuantity(sessionID, productID, req.Quantity)

	h.logger.Info("cart quantity updated", "product_id", productID, "quantity", req.Quantity)
	h.writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		h.writeError(w, http.StatusBadRequest, "missing product id")
		return
	}

	sessionID := EnsureSession(w, r)
	snap := h.store.RemoveItem(sessionID, productID)

	h.logger.Info("cart item removed", "product_id", productID)
	h.writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	sessionID := EnsureSession(w, r)
	h.store.Clear(sessionID)

	h.logger.Info("cart cleared")
	h.writeJSON(w, http.StatusOK, h.store.Get(sessionID))
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
