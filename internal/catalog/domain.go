package catalog

// Variant is a purchasable size/unit option of a product. Variants have no
// identity outside their parent product; their order is the display order.
type Variant struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Benefits    []string  `json:"benefits"`
	Image       string    `json:"image"`
	Variants    []Variant `json:"variants"`
	Tags        []string  `json:"tags"`
}

// Product categories are a fixed set.
const (
	CategoryTreats      = "Treats"
	CategoryChews       = "Chews"
	CategorySupplements = "Supplements"
	CategoryBundle      = "Bundle"
)
