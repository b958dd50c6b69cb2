package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Zaclee030314/pawradise-1/internal/cart"
	"github.com/Zaclee030314/pawradise-1/internal/catalog"
)

// CatalogService is the read surface the cart and shop handlers need.
type CatalogService interface {
	ListProducts(ctx context.Context, category string) ([]*catalog.Product, error)
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

type CartHandler struct {
	engine  *cart.Engine
	catalog CatalogService
}

func NewCartHandler(engine *cart.Engine, catalogSvc CatalogService) *CartHandler {
	return &CartHandler{
		engine:  engine,
		catalog: catalogSvc,
	}
}

type AddItemRequestDTO struct {
	ProductID    string `json:"product_id"`
	VariantIndex int    `json:"variant_index"`
}

type UpdateQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

type CartResponseDTO struct {
	Items       []cart.LineItem `json:"items"`
	TotalCount  int             `json:"total_count"`
	TotalAmount float64         `json:"total_amount"`
}

type AddItemResponseDTO struct {
	Cart  CartResponseDTO  `json:"cart"`
	Added cart.AddedNotice `json:"added"`
}

func (h *CartHandler) cartDTO() CartResponseDTO {
	items := h.engine.LineItems()
	if items == nil {
		items = []cart.LineItem{}
	}
	return CartResponseDTO{
		Items:       items,
		TotalCount:  h.engine.TotalCount(),
		TotalAmount: h.engine.TotalAmount(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartDTO())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "unknown product")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to look up product")
		return
	}

	// Out-of-range variant indexes are clamped by the engine, not rejected.
	added := h.engine.AddItem(r.Context(), product, req.VariantIndex)

	respondJSON(w, http.StatusCreated, AddItemResponseDTO{
		Cart:  h.cartDTO(),
		Added: added,
	})
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	lineKey := chi.URLParam(r, "lineKey")
	if lineKey == "" {
		respondError(w, http.StatusBadRequest, "invalid_line_key", "line key is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Delta == 0 {
		respondError(w, http.StatusBadRequest, "invalid_delta", "delta must be a non-zero integer")
		return
	}

	// Unknown keys are a no-op by contract; the response is the cart as-is.
	h.engine.UpdateQuantity(r.Context(), lineKey, req.Delta)
	respondJSON(w, http.StatusOK, h.cartDTO())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	lineKey := chi.URLParam(r, "lineKey")
	if lineKey == "" {
		respondError(w, http.StatusBadRequest, "invalid_line_key", "line key is required")
		return
	}

	h.engine.RemoveItem(r.Context(), lineKey)
	respondJSON(w, http.StatusOK, h.cartDTO())
}
