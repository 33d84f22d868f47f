package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rretrocar/storefront-go/internal/catalog"
)

func sel(attributeID, itemID string) SelectedAttribute {
	return SelectedAttribute{
		AttributeID:      attributeID,
		ItemID:           itemID,
		ItemValue:        itemID,
		ItemDisplayValue: itemID,
	}
}

func TestSelectedAttributesEqual(t *testing.T) {
	colorRed := sel("Color", "red")
	colorBlue := sel("Color", "blue")
	sizeM := sel("Size", "m")

	t.Run("both empty", func(t *testing.T) {
		assert.True(t, SelectedAttributesEqual(nil, nil))
		assert.True(t, SelectedAttributesEqual([]SelectedAttribute{}, nil))
		assert.True(t, SelectedAttributesEqual([]SelectedAttribute{}, []SelectedAttribute{}))
	})

	t.Run("length mismatch", func(t *testing.T) {
		assert.False(t, SelectedAttributesEqual([]SelectedAttribute{colorRed}, nil))
		assert.False(t, SelectedAttributesEqual([]SelectedAttribute{colorRed}, []SelectedAttribute{colorRed, sizeM}))
	})

	t.Run("reflexive", func(t *testing.T) {
		attrs := []SelectedAttribute{colorRed, sizeM}
		assert.True(t, SelectedAttributesEqual(attrs, attrs))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := []SelectedAttribute{colorRed, sizeM}
		b := []SelectedAttribute{sizeM, colorRed}
		assert.Equal(t, SelectedAttributesEqual(a, b), SelectedAttributesEqual(b, a))
	})

	t.Run("order independent", func(t *testing.T) {
		a := []SelectedAttribute{colorRed, sizeM}
		b := []SelectedAttribute{sizeM, colorRed}
		assert.True(t, SelectedAttributesEqual(a, b))
	})

	t.Run("different item", func(t *testing.T) {
		assert.False(t, SelectedAttributesEqual(
			[]SelectedAttribute{colorRed},
			[]SelectedAttribute{colorBlue},
		))
	})

	t.Run("display fields ignored", func(t *testing.T) {
		a := []SelectedAttribute{{AttributeID: "Color", ItemID: "red", ItemValue: "#FF0000", ItemDisplayValue: "Red"}}
		b := []SelectedAttribute{{AttributeID: "Color", ItemID: "red", ItemValue: "#EE0000", ItemDisplayValue: "Crimson"}}
		assert.True(t, SelectedAttributesEqual(a, b))
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		a := []SelectedAttribute{sizeM, colorRed}
		b := []SelectedAttribute{colorRed, sizeM}
		SelectedAttributesEqual(a, b)
		assert.Equal(t, "Size", a[0].AttributeID)
		assert.Equal(t, "Color", b[0].AttributeID)
	})
}

func TestDefaultAttributes(t *testing.T) {
	t.Run("no attributes", func(t *testing.T) {
		assert.Empty(t, DefaultAttributes(catalog.Product{ID: "p1"}))
	})

	t.Run("first item of each attribute", func(t *testing.T) {
		p := catalog.Product{
			ID: "p1",
			Attributes: []catalog.Attribute{
				{ID: "Size", Name: "Size", Items: []catalog.AttributeItem{
					{ID: "40", Value: "40", DisplayValue: "40"},
					{ID: "41", Value: "41", DisplayValue: "41"},
				}},
				{ID: "Color", Name: "Color", Type: "swatch", Items: []catalog.AttributeItem{
					{ID: "Green", Value: "#44FF03", DisplayValue: "Green"},
				}},
			},
		}

		defaults := DefaultAttributes(p)
		require.Len(t, defaults, 2)
		assert.Equal(t, SelectedAttribute{AttributeID: "Size", ItemID: "40", ItemValue: "40", ItemDisplayValue: "40"}, defaults[0])
		assert.Equal(t, SelectedAttribute{AttributeID: "Color", ItemID: "Green", ItemValue: "#44FF03", ItemDisplayValue: "Green"}, defaults[1])
	})

	t.Run("skips attributes without items", func(t *testing.T) {
		p := catalog.Product{
			ID: "p1",
			Attributes: []catalog.Attribute{
				{ID: "Capacity"},
				{ID: "Color", Items: []catalog.AttributeItem{{ID: "Blue", Value: "#0000FF", DisplayValue: "Blue"}}},
			},
		}

		defaults := DefaultAttributes(p)
		require.Len(t, defaults, 1)
		assert.Equal(t, "Color", defaults[0].AttributeID)
	})
}

func TestOrderAttributes(t *testing.T) {
	attrs := []SelectedAttribute{
		{AttributeID: "Color", ItemID: "Green", ItemValue: "#44FF03", ItemDisplayValue: "Green"},
		{AttributeID: "Size", ItemID: "41", ItemValue: "41", ItemDisplayValue: "41"},
	}

	assert.Equal(t, map[string]string{"color": "Green", "size": "41"}, OrderAttributes(attrs))
	assert.Empty(t, OrderAttributes(nil))
}
