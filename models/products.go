package models

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	// DescriptionMaxLength bounds Product.Description.
	DescriptionMaxLength = 1000

	// PricePlaces is the number of decimal places the price column keeps.
	PricePlaces = 2
)

// MaxPrice is the exclusive bound of decimal(10,2).
var MaxPrice = decimal.New(1, 8)

// Product represents an item held in inventory.
// Every product belongs to exactly one category.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"size:1000"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null"`
	Status      string          `gorm:"not null"`
	CategoryID  uint            `gorm:"not null;index"`
	Category    Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (p *Product) TableName() string {
	return "product"
}

// ProductPatch holds a fully specified set of replacement values.
// Callers that accept partial input fill the gaps from the current
// product before building the patch.
type ProductPatch struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Status      string
	CategoryID  uint
}

// Validate checks the field rules shared by every way of writing a product.
// The category reference is resolved by the caller.
func (p ProductPatch) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return NewValidationError("name", "is required")
	case utf8.RuneCountInString(p.Description) > DescriptionMaxLength:
		return NewValidationError("description", "must be at most 1000 characters")
	case !p.Price.Equal(p.Price.Round(PricePlaces)):
		return NewValidationError("price", "must have at most 2 decimal places")
	case p.Price.Abs().GreaterThanOrEqual(MaxPrice):
		return NewValidationError("price", "must be less than 100000000")
	case strings.TrimSpace(p.Status) == "":
		return NewValidationError("status", "is required")
	}
	return nil
}

// PatchFrom builds a patch that reproduces p unchanged.
func PatchFrom(p Product) ProductPatch {
	return ProductPatch{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Status:      p.Status,
		CategoryID:  p.CategoryID,
	}
}

// Apply returns a copy of p with every patch field applied.
// When the category changes the loaded Category is cleared so the caller
// has to resolve the new one.
func (p Product) Apply(patch ProductPatch) Product {
	if patch.CategoryID != p.CategoryID {
		p.Category = Category{}
	}
	p.Name = patch.Name
	p.Description = patch.Description
	p.Price = patch.Price
	p.Quantity = patch.Quantity
	p.Status = patch.Status
	p.CategoryID = patch.CategoryID
	return p
}
