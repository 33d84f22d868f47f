package catalog

import (
	"context"
	"fmt"

	"github.com/rretrocar/storefront-go/internal/graphql"
)

const productsQuery = `query ($category: String!) {
  products(category: $category) {
    id
    gallery
    name
    inStock
    description
    category
    brand
    prices {
      amount
      currency {
        label
        symbol
      }
    }
    attributes {
      id
      name
      type
      items {
        id
        value
        displayValue
      }
    }
  }
}`

const productQuery = `query ($id: String!) {
  product(id: $id) {
    id
    gallery
    name
    inStock
    description
    category
    brand
    prices {
      amount
      currency {
        label
        symbol
      }
    }
    attributes {
      id
      name
      type
      items {
        id
        value
        displayValue
      }
    }
  }
}`

const categoriesQuery = `query GetCats {
  categories {
    name
  }
}`

// Client reads products and categories from the remote catalog backend.
// Failures are wrapped and surfaced; callers decide how to degrade.
type Client struct {
	gql *graphql.Client
}

func NewClient(gql *graphql.Client) *Client {
	return &Client{gql: gql}
}

// Products lists products in a category; empty category means all.
func (c *Client) Products(ctx context.Context, category string) ([]Product, error) {
	var data struct {
		Products []Product `json:"products"`
	}
	if err := c.gql.Do(ctx, productsQuery, map[string]any{"category": category}, &data); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return data.Products, nil
}

// Product fetches a single product by id. Returns nil when the backend
// reports no such product.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var data struct {
		Product *Product `json:"product"`
	}
	if err := c.gql.Do(ctx, productQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, fmt.Errorf("fetch product %q: %w", id, err)
	}
	return data.Product, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var data struct {
		Categories []Category `json:"categories"`
	}
	if err := c.gql.Do(ctx, categoriesQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return data.Categories, nil
}
