package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rretrocar/storefront-go/internal/cart"
	"github.com/rretrocar/storefront-go/internal/catalog"
)

// CartService is the slice of the cart core the HTTP layer uses.
type CartService interface {
	Items(ctx context.Context, key string) []cart.Line
	AddToCart(ctx context.Context, key string, p catalog.Product, chosen []cart.SelectedAttribute) []cart.Line
	RemoveFromCart(ctx context.Context, key string, productID string, attrs []cart.SelectedAttribute) []cart.Line
	UpdateQuantity(ctx context.Context, key string, productID string, attrs []cart.SelectedAttribute, quantity int) []cart.Line
	Clear(ctx context.Context, key string) []cart.Line
}

// ProductFetcher resolves the full product snapshot an add needs.
type ProductFetcher interface {
	Product(ctx context.Context, id string) (*catalog.Product, error)
}

type CartHandler struct {
	carts    CartService
	products ProductFetcher
}

func NewCartHandler(carts CartService, products ProductFetcher) *CartHandler {
	return &CartHandler{carts: carts, products: products}
}

// cartView is the read model every cart endpoint responds with.
type cartView struct {
	Items         []cart.Line `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	TotalQuantity int         `json:"totalQuantity"`
}

func viewOf(lines []cart.Line) cartView {
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartView{
		Items:         lines,
		Subtotal:      cart.Subtotal(lines),
		TotalQuantity: cart.TotalQuantity(lines),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.PathValue("sessionKey")
	if sessionKey == "" {
		writeError(w, http.StatusBadRequest, "missing sessionKey")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	writeJSON(w, http.StatusOK, viewOf(h.carts.Items(ctx, sessionKey)))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.PathValue("sessionKey")
	if sessionKey == "" {
		writeError(w, http.StatusBadRequest, "missing sessionKey")
		return
	}

	var body struct {
		ProductID          string                   `json:"productId"`
		SelectedAttributes []cart.SelectedAttribute `json:"selectedAttributes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, err := h.products.Product(ctx, body.ProductID)
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to load product")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	lines := h.carts.AddToCart(ctx, sessionKey, *p, body.SelectedAttributes)
	writeJSON(w, http.StatusOK, viewOf(lines))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.PathValue("sessionKey")
	if sessionKey == "" {
		writeError(w, http.StatusBadRequest, "missing sessionKey")
		return
	}

	var body struct {
		ProductID          string                   `json:"productId"`
		SelectedAttributes []cart.SelectedAttribute `json:"selectedAttributes"`
		Quantity           int                      `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	lines := h.carts.UpdateQuantity(ctx, sessionKey, body.ProductID, body.SelectedAttributes, body.Quantity)
	writeJSON(w, http.StatusOK, viewOf(lines))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.PathValue("sessionKey")
	if sessionKey == "" {
		writeError(w, http.StatusBadRequest, "missing sessionKey")
		return
	}

	var body struct {
		ProductID          string                   `json:"productId"`
		SelectedAttributes []cart.SelectedAttribute `json:"selectedAttributes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	lines := h.carts.RemoveFromCart(ctx, sessionKey, body.ProductID, body.SelectedAttributes)
	writeJSON(w, http.StatusOK, viewOf(lines))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.PathValue("sessionKey")
	if sessionKey == "" {
		writeError(w, http.StatusBadRequest, "missing sessionKey")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	writeJSON(w, http.StatusOK, viewOf(h.carts.Clear(ctx, sessionKey)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}
