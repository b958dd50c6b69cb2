package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zaclee030314/pawradise-1/internal/catalog"
)

func catalogRouter() *chi.Mux {
	h := NewCatalogHandler(newFakeCatalog())
	r := chi.NewRouter()
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	return r
}

func TestListProductsEndpoint(t *testing.T) {
	w := doJSON(t, catalogRouter(), http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []*catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "dp-1", products[0].ID)
}

func TestListProductsEmptyCategory(t *testing.T) {
	w := doJSON(t, catalogRouter(), http.MethodGet, "/products?category=Bundle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetProductEndpoint(t *testing.T) {
	w := doJSON(t, catalogRouter(), http.MethodGet, "/products/dp-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Dehydrated Chicken Jerky", p.Name)
	require.Len(t, p.Variants, 2)

	w = doJSON(t, catalogRouter(), http.MethodGet, "/products/dp-404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
