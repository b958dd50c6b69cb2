package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zaclee030314/pawradise-1/internal/cart"
	"github.com/Zaclee030314/pawradise-1/internal/catalog"
	"github.com/Zaclee030314/pawradise-1/internal/checkout"
)

type fakeSignaler struct {
	snapshots []checkout.Snapshot
	err       error
}

func (f *fakeSignaler) CheckoutRequested(_ context.Context, snapshot checkout.Snapshot) error {
	if f.err != nil {
		return f.err
	}
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func checkoutRouter(engine *cart.Engine, signaler checkout.Signaler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/checkout", NewCheckoutHandler(engine, signaler).RequestCheckout)
	return r
}

func TestRequestCheckout(t *testing.T) {
	engine := cart.NewEngine(context.Background(), nil)
	engine.AddItem(context.Background(), &catalog.Product{
		ID:       "dp-1",
		Name:     "Dehydrated Chicken Jerky",
		Variants: []catalog.Variant{{Size: "50g", Price: 15.00}},
	}, 0)
	signaler := &fakeSignaler{}

	w := doJSON(t, checkoutRouter(engine, signaler), http.MethodPost, "/checkout", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp CheckoutResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)

	require.Len(t, signaler.snapshots, 1)
	assert.Equal(t, resp.RequestID, signaler.snapshots[0].RequestID)
	require.Len(t, signaler.snapshots[0].Items, 1)
	assert.Equal(t, "dp-1-50g", signaler.snapshots[0].Items[0].LineKey)

	// The cart stays intact after signaling.
	assert.Equal(t, 1, engine.TotalCount())
}

func TestRequestCheckoutEmptyCart(t *testing.T) {
	signaler := &fakeSignaler{}
	w := doJSON(t, checkoutRouter(cart.NewEngine(context.Background(), nil), signaler), http.MethodPost, "/checkout", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, signaler.snapshots)
}

func TestRequestCheckoutSignalFailure(t *testing.T) {
	engine := cart.NewEngine(context.Background(), nil)
	engine.AddItem(context.Background(), &catalog.Product{
		ID:       "dp-1",
		Name:     "Dehydrated Chicken Jerky",
		Variants: []catalog.Variant{{Size: "50g", Price: 15.00}},
	}, 0)

	w := doJSON(t, checkoutRouter(engine, &fakeSignaler{err: errors.New("broker down")}), http.MethodPost, "/checkout", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
