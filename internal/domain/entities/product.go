package entities

import (
	"strings"
	"time"
)

// Product is a GPS tracker listed in the store catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Specifications is a free-form label -> value table rendered on the product
// detail page (battery life, positioning accuracy, network bands, ...).
type Product struct {
	ID               string            `json:"id"`
	ProductName      string            `json:"productName"`
	Category         string            `json:"category"`
	Subcategory      string            `json:"subcategory"`
	ShortDescription string            `json:"shortDescription"`
	Description      string            `json:"description"`
	Price            float64           `json:"price"`
	OriginalPrice    float64           `json:"originalPrice"`
	StockQuantity    int               `json:"stockQuantity"`
	Brand            string            `json:"brand"`
	Features         []string          `json:"features"`
	Specifications   map[string]string `json:"specifications"`
	Image            string            `json:"image"`
	ImagePublicID    string            `json:"imagePublicId,omitempty"`
	InStock          bool              `json:"inStock"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func (p Product) ResourceID() string { return p.ID }

func (p Product) AssetID() string { return p.ImagePublicID }

// Validate checks required fields in a fixed order and returns the first
// violation. The order is part of the contract: productName is always
// reported before category, and so on.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ProductName) == "" {
		return missingField("productName")
	}
	if strings.TrimSpace(p.Category) == "" {
		return missingField("category")
	}
	if strings.TrimSpace(p.Subcategory) == "" {
		return missingField("subcategory")
	}
	if strings.TrimSpace(p.ShortDescription) == "" {
		return missingField("shortDescription")
	}
	if strings.TrimSpace(p.Description) == "" {
		return missingField("description")
	}
	if p.Price <= 0 {
		return invalidField("price", "must be greater than zero")
	}
	if p.OriginalPrice <= 0 {
		return invalidField("originalPrice", "must be greater than zero")
	}
	if p.StockQuantity < 0 {
		return invalidField("stockQuantity", "must not be negative")
	}
	if strings.TrimSpace(p.Brand) == "" {
		return missingField("brand")
	}
	if len(p.Features) == 0 {
		return invalidField("features", "at least one feature is required")
	}
	if len(p.Specifications) == 0 {
		return invalidField("specifications", "at least one specification is required")
	}
	if strings.TrimSpace(p.Image) == "" {
		return missingField("image")
	}
	return nil
}
