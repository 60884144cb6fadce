package catalog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mytheresa/go-inventory/app/api"
	"github.com/mytheresa/go-inventory/models"
	"github.com/mytheresa/go-inventory/pagination"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CategoryRef struct {
	ID uint `json:"id"`
}

// ProductRequest is the body accepted by create and update.
type ProductRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       *float64     `json:"price"`
	Quantity    *int         `json:"quantity"`
	Status      string       `json:"status"`
	Category    *CategoryRef `json:"category"`
}

// Validate checks that every required field is present and that the
// resulting patch satisfies the product field rules.
func (in ProductRequest) Validate() error {
	switch {
	case in.Price == nil:
		return models.NewValidationError("price", "is required")
	case in.Quantity == nil:
		return models.NewValidationError("quantity", "is required")
	case in.Category == nil || in.Category.ID == 0:
		return models.NewValidationError("category.id", "is required")
	}
	return in.Patch().Validate()
}

// Patch converts a validated request.
func (in ProductRequest) Patch() models.ProductPatch {
	return models.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		Price:       decimal.NewFromFloat(*in.Price),
		Quantity:    *in.Quantity,
		Status:      in.Status,
		CategoryID:  in.Category.ID,
	}
}

type ProductProvider interface {
	List(ctx context.Context, req pagination.Request, filters models.ProductFilters) (pagination.Page[Product], error)
	ListByCategory(ctx context.Context, categoryID uint, req pagination.Request) (pagination.Page[Product], error)
	Create(ctx context.Context, product models.Product) (Product, error)
	GetByID(ctx context.Context, id uint) (Product, error)
	Update(ctx context.Context, id uint, patch models.ProductPatch) (Product, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type CatalogHandler struct {
	service ProductProvider
	limits  pagination.Limits
	log     logrus.FieldLogger
}

func NewCatalogHandler(s ProductProvider, limits pagination.Limits, log logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{
		service: s,
		limits:  limits,
		log:     log,
	}
}

func (h *CatalogHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	req := h.limits.FromQuery(r)

	// Parse filters
	var filters models.ProductFilters
	if cStr := r.URL.Query().Get("category"); cStr != "" {
		if c, err := strconv.ParseUint(cStr, 10, 0); err == nil && c > 0 {
			id := uint(c)
			filters.CategoryID = &id
		}
	}
	if priceStr := r.URL.Query().Get("price_lt"); priceStr != "" {
		if val, err := strconv.ParseFloat(priceStr, 64); err == nil {
			filters.PriceLessThan = &val
		}
	}

	page, err := h.service.List(r.Context(), req, filters)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	writePage(w, page)
}

func (h *CatalogHandler) HandleGetByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	page, err := h.service.ListByCategory(r.Context(), categoryID, h.limits.FromQuery(r))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	writePage(w, page)
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input ProductRequest
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}
	if err := input.Validate(); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	product := models.Product{}.Apply(input.Patch())
	created, err := h.service.Create(r.Context(), product)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.OKResponse(w, http.StatusCreated, created)
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.OKResponse(w, http.StatusOK, product)
}

func (h *CatalogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	var input ProductRequest
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}
	if err := input.Validate(); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, input.Patch())
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.OKResponse(w, http.StatusOK, updated)
}

func (h *CatalogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}
	if !deleted {
		api.WriteError(w, h.log, models.ErrProductNotFound)
		return
	}

	api.NoContent(w)
}

func writePage(w http.ResponseWriter, page pagination.Page[Product]) {
	if page.Empty() {
		api.NoContent(w)
		return
	}
	api.OKResponse(w, http.StatusOK, page)
}
