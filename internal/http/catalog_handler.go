package http

import (
	"context"
	"net/http"
	"time"

	"github.com/rretrocar/storefront-go/internal/catalog"
)

// Catalog is the slice of the catalog client the HTTP layer uses.
type Catalog interface {
	Products(ctx context.Context, category string) ([]catalog.Product, error)
	Product(ctx context.Context, id string) (*catalog.Product, error)
	Categories(ctx context.Context) ([]catalog.Category, error)
}

type CatalogHandler struct {
	catalog Catalog
}

func NewCatalogHandler(c Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, err := h.catalog.Products(ctx, category)
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to load products")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	p, err := h.catalog.Product(ctx, productID)
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to load product")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to load categories")
		return
	}
	if categories == nil {
		categories = []catalog.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}
