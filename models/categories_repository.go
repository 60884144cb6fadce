package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// GetCategories returns one page of categories ordered by id, plus the
// total number of categories.
func (r *CategoriesRepository) GetCategories(ctx context.Context, offset, limit int) ([]Category, int64, error) {
	var categories []Category
	var total int64

	query := r.db.WithContext(ctx).Model(&Category{})

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	if err := query.Session(&gorm.Session{}).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}

	return categories, total, nil
}

func (r *CategoriesRepository) GetByID(ctx context.Context, id uint) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translateError(err, ErrCategoryNotFound)
	}
	return &category, nil
}

func (r *CategoriesRepository) CreateCategory(ctx context.Context, category *Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return translateError(err, nil)
	}
	return nil
}

// UpdateCategory overwrites the name of an existing category.
func (r *CategoriesRepository) UpdateCategory(ctx context.Context, category *Category) error {
	res := r.db.WithContext(ctx).
		Model(&Category{ID: category.ID}).
		Select("name").
		Updates(Category{Name: category.Name})
	if res.Error != nil {
		return translateError(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes the category and every product that references it
// in a single transaction. Deleting a missing id is a no-op; the returned
// count is the number of categories actually removed.
func (r *CategoriesRepository) DeleteCategory(ctx context.Context, id uint) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&Product{}).Error; err != nil {
			return fmt.Errorf("delete products of category %d: %w", id, err)
		}
		res := tx.Delete(&Category{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete category %d: %w", id, res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
