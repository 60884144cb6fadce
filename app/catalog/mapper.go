package catalog

import (
	"github.com/mytheresa/go-inventory/models"
)

// Category is the minimal category shape nested in a Product.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Product is the client-facing shape of a persisted product.
type Product struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Status      string   `json:"status"`
	Category    Category `json:"category"`
}

// ToProduct maps a persisted product and its loaded category. A product
// whose category was not loaded is rejected with models.ErrMissingCategory.
func ToProduct(p models.Product) (Product, error) {
	if p.Category.ID == 0 {
		return Product{}, models.ErrMissingCategory
	}

	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Quantity:    p.Quantity,
		Status:      p.Status,
		Category: Category{
			ID:   p.Category.ID,
			Name: p.Category.Name,
		},
	}, nil
}
