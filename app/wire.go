// Package app wires the stores, services and HTTP handlers together.
package app

import (
	"net/http"

	"github.com/mytheresa/go-inventory/app/catalog"
	"github.com/mytheresa/go-inventory/app/categories"
	"github.com/mytheresa/go-inventory/models"
	"github.com/mytheresa/go-inventory/pagination"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Services struct {
	Categories *categories.Service
	Products   *catalog.Service
}

// NewServices builds both services on top of db.
func NewServices(db *gorm.DB, log logrus.FieldLogger) Services {
	categoriesRepo := models.NewCategoriesRepository(db)
	productsRepo := models.NewProductsRepository(db)

	return Services{
		Categories: categories.NewService(categoriesRepo, log.WithField("component", "categories")),
		Products:   catalog.NewService(productsRepo, categoriesRepo, log.WithField("component", "catalog")),
	}
}

// NewHTTPHandler exposes the services over the REST API.
func NewHTTPHandler(svc Services, limits pagination.Limits, health Pinger, log logrus.FieldLogger) http.Handler {
	return NewRouter(Handlers{
		Categories: categories.NewCategoryHandler(svc.Categories, limits, log),
		Catalog:    catalog.NewCatalogHandler(svc.Products, limits, log),
		Health:     health,
	}, log)
}
