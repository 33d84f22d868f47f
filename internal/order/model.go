package order

import "errors"

const (
	// StatusPending is the status every order carries at submission time.
	StatusPending = "pending"

	// DefaultCurrency is used when a cart line carries no price entry.
	DefaultCurrency = "USD"
)

// ErrEmptyCart rejects a submission before any remote call is made.
var ErrEmptyCart = errors.New("cart is empty")

// ErrPlacementInFlight collapses a repeated submission for a session
// whose previous one has not finished yet.
var ErrPlacementInFlight = errors.New("order placement already in flight")

// ItemInput is one order line in the wire shape the order backend expects.
// Attributes is a JSON-encoded map of lowercased attribute id to the
// selected item's display value.
type ItemInput struct {
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	Attributes       string  `json:"attributes"`
	Quantity         int     `json:"quantity"`
	Amount           float64 `json:"amount"`
	SelectedCurrency string  `json:"selected_currency"`
}

type Input struct {
	Currency    string      `json:"currency"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"total_amount"`
	Items       []ItemInput `json:"items"`
}

// Confirmation is what a successful placement returns to the caller.
type Confirmation struct {
	OrderID      string  `json:"orderId"`
	Confirmation string  `json:"confirmation"`
	TotalAmount  float64 `json:"totalAmount"`
}
