package cart

import (
	"sort"
	"strings"

	"github.com/rretrocar/storefront-go/internal/catalog"
)

// SelectedAttributesEqual reports whether two selections denote the same
// variant. Comparison is order-independent and looks only at
// (AttributeID, ItemID); the denormalized display fields are not
// identity-bearing. A nil slice is the same as an empty one.
func SelectedAttributesEqual(a, b []SelectedAttribute) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	as := sortedByAttributeID(a)
	bs := sortedByAttributeID(b)
	for i := range as {
		if as[i].AttributeID != bs[i].AttributeID || as[i].ItemID != bs[i].ItemID {
			return false
		}
	}
	return true
}

func sortedByAttributeID(attrs []SelectedAttribute) []SelectedAttribute {
	out := make([]SelectedAttribute, len(attrs))
	copy(out, attrs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].AttributeID < out[j].AttributeID
	})
	return out
}

// DefaultAttributes derives the default variant selection for a product:
// the first item of every attribute dimension, in declaration order.
// Attributes with no items are skipped.
func DefaultAttributes(p catalog.Product) []SelectedAttribute {
	if len(p.Attributes) == 0 {
		return nil
	}

	out := make([]SelectedAttribute, 0, len(p.Attributes))
	for _, attr := range p.Attributes {
		if len(attr.Items) == 0 {
			continue
		}
		first := attr.Items[0]
		out = append(out, SelectedAttribute{
			AttributeID:      attr.ID,
			ItemID:           first.ID,
			ItemValue:        first.Value,
			ItemDisplayValue: first.DisplayValue,
		})
	}
	return out
}

// OrderAttributes flattens a selection into the map shape the order
// backend expects: lowercased attribute id to display value.
func OrderAttributes(attrs []SelectedAttribute) map[string]string {
	out := make(map[string]string, len(attrs))
	for _, sa := range attrs {
		out[strings.ToLower(sa.AttributeID)] = sa.ItemDisplayValue
	}
	return out
}
