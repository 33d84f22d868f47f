package cart

import "github.com/rretrocar/storefront-go/internal/catalog"

// SelectedAttribute is the shopper's choice along one variant dimension.
// ItemValue and ItemDisplayValue are copied from the catalog at selection
// time; they are point-in-time snapshots and never re-validated. Only
// AttributeID and ItemID carry identity.
type SelectedAttribute struct {
	AttributeID      string `json:"attributeId"`
	ItemID           string `json:"itemId"`
	ItemValue        string `json:"itemValue"`
	ItemDisplayValue string `json:"itemDisplayValue"`
}

// Line is one cart entry: a full product snapshot plus quantity and the
// variant selection. Two lines for the same product with different
// selections stay distinct; identical selections merge.
type Line struct {
	catalog.Product
	Quantity           int                 `json:"quantity"`
	SelectedAttributes []SelectedAttribute `json:"selectedAttributes"`
}
