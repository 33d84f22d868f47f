package order

import (
	"context"
	"fmt"

	"github.com/rretrocar/storefront-go/internal/graphql"
)

const placeOrderMutation = `mutation CreateNewOrder($orderInput: OrderInput!) {
  placeOrder(input: $orderInput)
}`

// Client submits assembled orders to the remote order backend. The
// confirmation string is passed through opaquely; only pass/fail matters.
type Client struct {
	gql *graphql.Client
}

func NewClient(gql *graphql.Client) *Client {
	return &Client{gql: gql}
}

func (c *Client) PlaceOrder(ctx context.Context, in Input) (string, error) {
	var data struct {
		PlaceOrder string `json:"placeOrder"`
	}
	if err := c.gql.Do(ctx, placeOrderMutation, map[string]any{"orderInput": in}, &data); err != nil {
		return "", fmt.Errorf("place order: %w", err)
	}
	return data.PlaceOrder, nil
}
