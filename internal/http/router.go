package http

import (
	"encoding/json"
	"log"
	"net/http"
)

func NewRouter(carts CartService, products Catalog, orders OrderPlacer, corsAllowOrigins []string, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", healthHandler)

	catalogHandler := NewCatalogHandler(products)
	mux.HandleFunc("GET /api/categories", catalogHandler.ListCategories)
	mux.HandleFunc("GET /api/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/products/{productId}", catalogHandler.GetProduct)

	cartHandler := NewCartHandler(carts, products)
	mux.HandleFunc("GET /api/cart/{sessionKey}", cartHandler.GetCart)
	mux.HandleFunc("POST /api/cart/{sessionKey}/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/cart/{sessionKey}/items", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/{sessionKey}/items", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/cart/{sessionKey}", cartHandler.ClearCart)

	orderHandler := NewOrderHandler(orders)
	mux.HandleFunc("POST /api/cart/{sessionKey}/orders", orderHandler.PlaceOrder)

	var handler http.Handler = mux
	handler = CORS(corsAllowOrigins)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "service": "storefront"}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
