package events

import "time"

type OrderPlaced struct {
	EventType   string            `json:"eventType"`
	OrderID     string            `json:"orderId"`
	SessionKey  string            `json:"sessionKey"`
	Currency    string            `json:"currency"`
	TotalAmount float64           `json:"totalAmount"`
	Items       []OrderPlacedItem `json:"items"`
	Timestamp   time.Time         `json:"timestamp"`
}

type OrderPlacedItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
}
