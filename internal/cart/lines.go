package cart

import "github.com/rretrocar/storefront-go/internal/catalog"

// The functions below are pure: they never mutate their input slice and
// return a fresh slice for every change. The cart invariants they uphold:
// no two lines share (product id, attribute-equal selection), and every
// line present has quantity >= 1.

// FindLine returns the line matching product id and an attribute-equal
// selection, or nil. At most one line can match.
func FindLine(lines []Line, productID string, attrs []SelectedAttribute) *Line {
	for i := range lines {
		if lines[i].ID == productID && SelectedAttributesEqual(lines[i].SelectedAttributes, attrs) {
			return &lines[i]
		}
	}
	return nil
}

// Add merges one unit of the product into the cart. An explicit non-empty
// selection wins; otherwise the product's default selection applies.
// When a matching line exists its quantity is incremented and the rest of
// the line, including its stored selection snapshot, is kept as-is (the
// incoming selection already compared equal on identity fields).
func Add(lines []Line, p catalog.Product, chosen []SelectedAttribute) []Line {
	attrs := chosen
	if len(attrs) == 0 {
		attrs = DefaultAttributes(p)
	}

	if FindLine(lines, p.ID, attrs) == nil {
		out := make([]Line, len(lines), len(lines)+1)
		copy(out, lines)
		return append(out, Line{
			Product:            p,
			Quantity:           1,
			SelectedAttributes: attrs,
		})
	}

	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ID == p.ID && SelectedAttributesEqual(out[i].SelectedAttributes, attrs) {
			out[i].Quantity++
		}
	}
	return out
}

// Remove drops the line matching (productID, attrs). Removing a line that
// is not present is a silent no-op.
func Remove(lines []Line, productID string, attrs []SelectedAttribute) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.ID == productID && SelectedAttributesEqual(l.SelectedAttributes, attrs) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// SetQuantity replaces the matching line's quantity. A quantity of zero or
// below removes the line; no match is a silent no-op.
func SetQuantity(lines []Line, productID string, attrs []SelectedAttribute, quantity int) []Line {
	if quantity <= 0 {
		return Remove(lines, productID, attrs)
	}

	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ID == productID && SelectedAttributesEqual(out[i].SelectedAttributes, attrs) {
			out[i].Quantity = quantity
		}
	}
	return out
}

// Subtotal sums first-listed price times quantity across the cart. Lines
// without a price contribute zero.
func Subtotal(lines []Line) float64 {
	total := 0.0
	for _, l := range lines {
		price := 0.0
		if len(l.Prices) > 0 {
			price = l.Prices[0].Amount
		}
		total += price * float64(l.Quantity)
	}
	return total
}

// TotalQuantity sums line quantities.
func TotalQuantity(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}
