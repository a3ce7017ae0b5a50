package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The catalog file stores prices as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultProductImage is used when a product is created without an image.
const DefaultProductImage = "https://via.placeholder.com/400x300?text=CAD%2FCAM+Software"

type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product is the single persisted catalog record. Field names match the
// on-disk JSON layout.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Status      ProductStatus   `json:"status,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
