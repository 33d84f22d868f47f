package catalog

type Currency struct {
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
}

type Price struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

type AttributeItem struct {
	ID           string `json:"id"`
	Value        string `json:"value"`
	DisplayValue string `json:"displayValue"`
}

// Attribute is one variant dimension of a product (size, color, ...).
// Type is a free-form tag from the backend; "swatch" marks attributes
// rendered as color swatches, which is a client concern only.
type Attribute struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Items []AttributeItem `json:"items"`
}

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	InStock     bool        `json:"inStock"`
	Gallery     []string    `json:"gallery"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Brand       string      `json:"brand"`
	Prices      []Price     `json:"prices"`
	Attributes  []Attribute `json:"attributes"`
}

type Category struct {
	Name string `json:"name"`
}
