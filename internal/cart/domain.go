package cart

import "github.com/Zaclee030314/pawradise-1/internal/catalog"

// LineItem is a single (product, variant) pairing with a quantity.
// Name, VariantLabel, UnitPrice and ImageRef are captured at add-time;
// later catalog changes do not retroactively alter lines already in the cart.
type LineItem struct {
	LineKey      string  `json:"lineKey"`
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	VariantLabel string  `json:"variantLabel"`
	UnitPrice    float64 `json:"unitPrice"`
	ImageRef     string  `json:"imageRef"`
	Quantity     int     `json:"quantity"`
}

// LineKey derives the composite key that identifies a line item. The same
// product in two different variants yields two distinct keys.
func LineKey(productID string, variant catalog.Variant) string {
	return productID + "-" + variant.Size
}

// AddedNotice is the transient "just added" payload surfaced to the UI after
// AddItem. How long it stays visible is the caller's concern.
type AddedNotice struct {
	Name         string `json:"name"`
	VariantLabel string `json:"variantLabel"`
}
