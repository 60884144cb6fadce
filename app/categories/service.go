package categories

import (
	"context"
	"strings"

	"github.com/mytheresa/go-inventory/models"
	"github.com/mytheresa/go-inventory/pagination"
	"github.com/sirupsen/logrus"
)

// CategoryStore is the persistence the service relies on.
type CategoryStore interface {
	GetCategories(ctx context.Context, offset, limit int) ([]models.Category, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) (int64, error)
}

// Service holds the category business rules.
type Service struct {
	store CategoryStore
	log   logrus.FieldLogger
}

func NewService(store CategoryStore, log logrus.FieldLogger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// ValidateName rejects blank category names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return models.NewValidationError("name", "is required")
	}
	return nil
}

func (s *Service) List(ctx context.Context, req pagination.Request) (pagination.Page[models.Category], error) {
	categories, total, err := s.store.GetCategories(ctx, req.Offset(), req.Size)
	if err != nil {
		s.log.WithError(err).Error("Failed to list categories")
		return pagination.Page[models.Category]{}, err
	}

	s.log.Debugf("Listed %d of %d categories (page %d, size %d)", len(categories), total, req.Page, req.Size)
	return pagination.New(categories, req, total), nil
}

// Create persists the category as given. Name uniqueness is left to the store.
func (s *Service) Create(ctx context.Context, category models.Category) (models.Category, error) {
	category.ID = 0
	if err := s.store.CreateCategory(ctx, &category); err != nil {
		s.log.WithError(err).Warnf("Failed to create category '%s'", category.Name)
		return models.Category{}, err
	}

	s.log.Infof("Category '%s' created with ID %d", category.Name, category.ID)
	return category, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (models.Category, error) {
	category, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.log.WithError(err).Warnf("Failed to get category ID %d", id)
		return models.Category{}, err
	}
	return *category, nil
}

// Update loads the category, applies patch and stores the result.
func (s *Service) Update(ctx context.Context, id uint, patch models.CategoryPatch) (models.Category, error) {
	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.log.WithError(err).Warnf("Category ID %d not available for update", id)
		return models.Category{}, err
	}

	updated := current.Apply(patch)
	if err := s.store.UpdateCategory(ctx, &updated); err != nil {
		s.log.WithError(err).Warnf("Failed to update category ID %d", id)
		return models.Category{}, err
	}

	s.log.Infof("Category ID %d renamed from '%s' to '%s'", id, current.Name, updated.Name)
	return updated, nil
}

// Delete removes the category and, with it, every product it owns.
// Deleting an unknown id succeeds without effect.
func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		s.log.WithError(err).Errorf("Failed to delete category ID %d", id)
		return err
	}

	if deleted == 0 {
		s.log.Infof("Delete of unknown category ID %d ignored", id)
		return nil
	}
	s.log.Infof("Category ID %d deleted", id)
	return nil
}
