package http_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cartpkg "github.com/rretrocar/storefront-go/internal/cart"
	"github.com/rretrocar/storefront-go/internal/catalog"
	httphandler "github.com/rretrocar/storefront-go/internal/http"
)

type CatalogMock struct {
	ProductFetcherMock
	ProductsFunc   func(ctx context.Context, category string) ([]catalog.Product, error)
	CategoriesFunc func(ctx context.Context) ([]catalog.Category, error)
}

func (m *CatalogMock) Products(ctx context.Context, category string) ([]catalog.Product, error) {
	if m.ProductsFunc != nil {
		return m.ProductsFunc(ctx, category)
	}
	return nil, nil
}

func (m *CatalogMock) Categories(ctx context.Context) ([]catalog.Category, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	return nil, nil
}

func newTestRouter() http.Handler {
	return httphandler.NewRouter(
		&CartServiceMock{},
		&CatalogMock{},
		&OrderPlacerMock{},
		[]string{"*"},
		log.New(io.Discard, "", 0),
	)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/categories", "", http.StatusOK},
		{http.MethodGet, "/api/products", "", http.StatusOK},
		{http.MethodGet, "/api/products?category=tech", "", http.StatusOK},
		{http.MethodGet, "/api/cart/s1", "", http.StatusOK},
		{http.MethodDelete, "/api/cart/s1", "", http.StatusOK},
		{http.MethodPost, "/api/cart/s1/orders", "", http.StatusCreated},
		{http.MethodPatch, "/api/cart/s1", "", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		var body io.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		}
		r := httptest.NewRequest(tc.method, tc.path, body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != tc.want {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, w.Code)
		}
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter()

	r := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestRouterRecoversFromPanic(t *testing.T) {
	router := httphandler.NewRouter(
		&CartServiceMock{ItemsFunc: func(ctx context.Context, key string) []cartpkg.Line {
			panic("boom")
		}},
		&CatalogMock{},
		&OrderPlacerMock{},
		[]string{"*"},
		log.New(io.Discard, "", 0),
	)

	r := httptest.NewRequest(http.MethodGet, "/api/cart/s1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
