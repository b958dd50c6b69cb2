package http

import (
	"log"
	"net/http"

	"github.com/Zaclee030314/pawradise-1/internal/cart"
	"github.com/Zaclee030314/pawradise-1/internal/checkout"
)

type CheckoutHandler struct {
	engine   *cart.Engine
	signaler checkout.Signaler
}

func NewCheckoutHandler(engine *cart.Engine, signaler checkout.Signaler) *CheckoutHandler {
	return &CheckoutHandler{engine: engine, signaler: signaler}
}

type CheckoutResponseDTO struct {
	RequestID string `json:"request_id"`
}

// RequestCheckout freezes the cart and emits the checkout-requested signal.
// The cart is intentionally left intact; clearing it is the caller's call
// once the downstream flow confirms.
func (h *CheckoutHandler) RequestCheckout(w http.ResponseWriter, r *http.Request) {
	if h.engine.TotalCount() == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
		return
	}

	snapshot := checkout.NewSnapshot(h.engine)
	if err := h.signaler.CheckoutRequested(r.Context(), snapshot); err != nil {
		log.Printf("failed to signal checkout request %s (http request %s): %v", snapshot.RequestID, getRequestID(r.Context()), err)
		respondError(w, http.StatusServiceUnavailable, "signal_failed", "could not submit checkout request")
		return
	}

	respondJSON(w, http.StatusAccepted, CheckoutResponseDTO{RequestID: snapshot.RequestID})
}
