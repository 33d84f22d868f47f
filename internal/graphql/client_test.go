package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoDecodesData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "categories")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"categories":[{"name":"all"},{"name":"clothes"}]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())

	var data struct {
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	}
	err := client.Do(context.Background(), `query { categories { name } }`, nil, &data)

	require.NoError(t, err)
	require.Len(t, data.Categories, 2)
	assert.Equal(t, "all", data.Categories[0].Name)
}

func TestDoSendsVariables(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tech", req.Variables["category"])

		_, _ = w.Write([]byte(`{"data":{"products":[]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	err := client.Do(context.Background(), `query ($category: String!) { products(category: $category) { id } }`,
		map[string]any{"category": "tech"}, nil)

	require.NoError(t, err)
}

func TestDoSurfacesGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"unknown category"},{"message":"try again"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	err := client.Do(context.Background(), `query { products { id } }`, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
	assert.Contains(t, err.Error(), "try again")
}

func TestDoRejectsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	err := client.Do(context.Background(), `query { products { id } }`, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestDoRequiresDataWhenOutGiven(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())

	var out map[string]any
	err := client.Do(context.Background(), `query { x }`, nil, &out)

	require.Error(t, err)
}
