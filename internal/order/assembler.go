package order

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/rretrocar/storefront-go/internal/cart"
)

// Assemble transforms cart lines into the order submission payload.
// The order currency is the first line's first price currency; lines
// without prices fall back to DefaultCurrency and a zero amount.
func Assemble(lines []cart.Line) (Input, error) {
	if len(lines) == 0 {
		return Input{}, ErrEmptyCart
	}

	items := make([]ItemInput, 0, len(lines))
	for _, l := range lines {
		attrs, err := json.Marshal(cart.OrderAttributes(l.SelectedAttributes))
		if err != nil {
			return Input{}, fmt.Errorf("encode attributes for %q: %w", l.ID, err)
		}

		amount := 0.0
		currency := DefaultCurrency
		if len(l.Prices) > 0 {
			amount = l.Prices[0].Amount
			if l.Prices[0].Currency.Label != "" {
				currency = l.Prices[0].Currency.Label
			}
		}

		items = append(items, ItemInput{
			ProductID:        l.ID,
			ProductName:      l.Name,
			Attributes:       string(attrs),
			Quantity:         l.Quantity,
			Amount:           amount,
			SelectedCurrency: currency,
		})
	}

	currency := DefaultCurrency
	if len(lines[0].Prices) > 0 && lines[0].Prices[0].Currency.Label != "" {
		currency = lines[0].Prices[0].Currency.Label
	}

	return Input{
		Currency:    currency,
		Status:      StatusPending,
		TotalAmount: round2(cart.Subtotal(lines)),
		Items:       items,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
