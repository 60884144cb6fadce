package catalog

import (
	"context"
	"fmt"

	"github.com/mytheresa/go-inventory/models"
	"github.com/mytheresa/go-inventory/pagination"
	"github.com/sirupsen/logrus"
)

type ProductStore interface {
	GetFilteredProducts(ctx context.Context, offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) (bool, error)
}

type CategoryLookup interface {
	GetByID(ctx context.Context, id uint) (*models.Category, error)
}

// Service holds the product business rules. Every product it returns is
// already mapped to its transfer shape.
type Service struct {
	products   ProductStore
	categories CategoryLookup
	log        logrus.FieldLogger
}

func NewService(products ProductStore, categories CategoryLookup, log logrus.FieldLogger) *Service {
	return &Service{
		products:   products,
		categories: categories,
		log:        log,
	}
}

func (s *Service) List(ctx context.Context, req pagination.Request, filters models.ProductFilters) (pagination.Page[Product], error) {
	res, total, err := s.products.GetFilteredProducts(ctx, req.Offset(), req.Size, filters)
	if err != nil {
		s.log.WithError(err).Error("Failed to list products")
		return pagination.Page[Product]{}, err
	}

	page, err := pagination.Map(pagination.New(res, req, total), ToProduct)
	if err != nil {
		return pagination.Page[Product]{}, fmt.Errorf("map products: %w", err)
	}

	s.log.Debugf("Listed %d of %d products (page %d, size %d)", len(page.Content), total, req.Page, req.Size)
	return page, nil
}

// ListByCategory pages through the products owned by one category.
func (s *Service) ListByCategory(ctx context.Context, categoryID uint, req pagination.Request) (pagination.Page[Product], error) {
	if _, err := s.resolveCategory(ctx, categoryID); err != nil {
		return pagination.Page[Product]{}, err
	}
	return s.List(ctx, req, models.ProductFilters{CategoryID: &categoryID})
}

// Create stores a new product under an existing category. Nothing is
// written when a field is invalid or the category does not exist.
func (s *Service) Create(ctx context.Context, product models.Product) (Product, error) {
	if err := models.PatchFrom(product).Validate(); err != nil {
		return Product{}, err
	}

	category, err := s.resolveCategory(ctx, product.CategoryID)
	if err != nil {
		return Product{}, err
	}

	product.ID = 0
	product.Category = *category

	if err := s.products.CreateProduct(ctx, &product); err != nil {
		s.log.WithError(err).Errorf("Failed to create product '%s'", product.Name)
		return Product{}, err
	}

	s.log.Infof("Product '%s' created with ID %d in category %d", product.Name, product.ID, category.ID)
	return ToProduct(product)
}

func (s *Service) GetByID(ctx context.Context, id uint) (Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		s.log.WithError(err).Warnf("Failed to get product ID %d", id)
		return Product{}, err
	}
	return ToProduct(*product)
}

// Update replaces every field of an existing product. The product is left
// unmodified when either it or the referenced category is missing.
func (s *Service) Update(ctx context.Context, id uint, patch models.ProductPatch) (Product, error) {
	if err := patch.Validate(); err != nil {
		return Product{}, err
	}

	current, err := s.products.GetByID(ctx, id)
	if err != nil {
		s.log.WithError(err).Warnf("Product ID %d not available for update", id)
		return Product{}, err
	}

	category, err := s.resolveCategory(ctx, patch.CategoryID)
	if err != nil {
		return Product{}, err
	}

	updated := current.Apply(patch)
	updated.Category = *category

	if err := s.products.UpdateProduct(ctx, &updated); err != nil {
		s.log.WithError(err).Errorf("Failed to update product ID %d", id)
		return Product{}, err
	}

	s.log.Infof("Product ID %d updated", id)
	return ToProduct(updated)
}

// Delete reports false when there was no product with that id.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.products.DeleteProduct(ctx, id)
	if err != nil {
		s.log.WithError(err).Errorf("Failed to delete product ID %d", id)
		return false, err
	}

	if !deleted {
		s.log.Warnf("Product ID %d not found for deletion", id)
		return false, nil
	}
	s.log.Infof("Product ID %d deleted", id)
	return true, nil
}

func (s *Service) resolveCategory(ctx context.Context, id uint) (*models.Category, error) {
	if id == 0 {
		s.log.Warn("Product references no category")
		return nil, models.ErrCategoryNotFound
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		s.log.WithError(err).Warnf("Category ID %d could not be resolved", id)
		return nil, err
	}
	return category, nil
}
