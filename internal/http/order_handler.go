package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rretrocar/storefront-go/internal/order"
)

// OrderPlacer is the slice of the order service the HTTP layer uses.
type OrderPlacer interface {
	Place(ctx context.Context, sessionKey string) (order.Confirmation, error)
}

type OrderHandler struct {
	orders OrderPlacer
}

func NewOrderHandler(orders OrderPlacer) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.PathValue("sessionKey")
	if sessionKey == "" {
		writeError(w, http.StatusBadRequest, "missing sessionKey")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	conf, err := h.orders.Place(ctx, sessionKey)
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	case errors.Is(err, order.ErrPlacementInFlight):
		writeError(w, http.StatusConflict, "order placement already in progress")
		return
	case err != nil:
		writeError(w, http.StatusBadGateway, "failed to place order")
		return
	}

	writeJSON(w, http.StatusCreated, conf)
}
