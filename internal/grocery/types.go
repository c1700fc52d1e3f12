package grocery

// Availability states a normalized product can carry. Unrecognized upstream
// inventory states collapse into AvailabilityOutOfStock.
const (
	AvailabilityInStock    = "IN_STOCK"
	AvailabilityLowStock   = "LOW_STOCK"
	AvailabilityOutOfStock = "OUT_OF_STOCK"
)

type Product struct {
	ProductID    string   `json:"productId"`
	Name         string   `json:"name"`
	Price        *float64 `json:"price,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	Size         string   `json:"size,omitempty"`
	Availability string   `json:"availability"`
}

type ShoppingList struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ShoppingListItem identifiers are distinct from the product they refer to.
type ShoppingListItem struct {
	ID        string   `json:"id"`
	ProductID string   `json:"productId"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Checked   bool     `json:"checked"`
	Price     *float64 `json:"price,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
}

type ShoppingListDetail struct {
	ShoppingList
	Items []ShoppingListItem `json:"items"`
}
