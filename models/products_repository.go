package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

type ProductFilters struct {
	CategoryID    *uint
	PriceLessThan *float64
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// productColumns are overwritten on every update.
var productColumns = []string{"name", "description", "price", "quantity", "status", "category_id"}

func (r *ProductsRepository) GetFilteredProducts(ctx context.Context, offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.WithContext(ctx).
		Model(&Product{}).
		Joins("LEFT JOIN categories ON categories.id = product.category_id")

	// Filter
	if filters.CategoryID != nil {
		query = query.Where("categories.id = ?", *filters.CategoryID)
	}
	if filters.PriceLessThan != nil {
		query = query.Where("product.price < ?", *filters.PriceLessThan)
	}

	// Count total after filtering
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	// Apply pagination
	if err := query.Session(&gorm.Session{}).
		Preload("Category").
		Order("product.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, id).Error; err != nil {
		return nil, translateError(err, ErrProductNotFound)
	}
	return &product, nil
}

// CreateProduct inserts the product row only; the referenced category is
// never written through this path.
func (r *ProductsRepository) CreateProduct(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(product).Error; err != nil {
		return translateError(err, nil)
	}
	return nil
}

// UpdateProduct overwrites every scalar column and the category reference.
func (r *ProductsRepository) UpdateProduct(ctx context.Context, product *Product) error {
	res := r.db.WithContext(ctx).
		Model(&Product{ID: product.ID}).
		Select(productColumns).
		Updates(Product{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Quantity:    product.Quantity,
			Status:      product.Status,
			CategoryID:  product.CategoryID,
		})
	if res.Error != nil {
		return translateError(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DeleteProduct reports whether a row was removed.
func (r *ProductsRepository) DeleteProduct(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Product{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete product %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
