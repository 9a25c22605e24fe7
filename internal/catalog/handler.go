package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/joao-fontenele/salmo-storefront/internal/domain"
)

type Handler struct {
	repo   *CatalogRepository
	logger *slog.Logger
}

func NewHandler(repo *CatalogRepository, logger *slog.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

type brandsResponse struct {
	Brands []BrandGroup `json:"brands"`
}

func (h *Handler) HandleListByBrand(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("catalog listed", "count", len(products))
	h.writeJSON(w, http.StatusOK, brandsResponse{Brands: GroupByBrand(products)})
}

type productsResponse struct {
	Products []domain.Product `json:"products"`
}

func (h *Handler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.ListFeatured(r.Context())
	if err != nil {
		h.logger.Error("failed to list featured products", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, productsResponse{Products: products})
}

func (h *Handler) HandleNewArrivals(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.ListNew(r.Context())
	if err != nil {
		h.logger.Error("failed to list new arrivals", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, productsResponse{Products: products})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "missing product id")
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get product", "error", err, "id", id)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if product == nil {
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	h.writeJSON(w, http.StatusOK, product)
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
