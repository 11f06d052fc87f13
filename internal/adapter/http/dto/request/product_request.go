package request

import "locotraq/internal/domain/entities"

// ProductRequest is the admin payload for creating or updating a catalog
// product.
type ProductRequest struct {
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
	ImagePublicID    string            `json:"imagePublicId"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		ProductName:      r.ProductName,
		Category:         r.Category,
		Subcategory:      r.Subcategory,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Price:            r.Price,
		OriginalPrice:    r.OriginalPrice,
		StockQuantity:    r.StockQuantity,
		Brand:            r.Brand,
		Features:         r.Features,
		Specifications:   r.Specifications,
		Image:            r.Image,
		ImagePublicID:    r.ImagePublicID,
	}
}
