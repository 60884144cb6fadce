package categories

import (
	"context"
	"net/http"

	"github.com/mytheresa/go-inventory/app/api"
	"github.com/mytheresa/go-inventory/models"
	"github.com/mytheresa/go-inventory/pagination"
	"github.com/sirupsen/logrus"
)

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryProvider interface {
	List(ctx context.Context, req pagination.Request) (pagination.Page[models.Category], error)
	Create(ctx context.Context, category models.Category) (models.Category, error)
	GetByID(ctx context.Context, id uint) (models.Category, error)
	Update(ctx context.Context, id uint, patch models.CategoryPatch) (models.Category, error)
	Delete(ctx context.Context, id uint) error
}

type CategoryHandler struct {
	service CategoryProvider
	limits  pagination.Limits
	log     logrus.FieldLogger
}

func NewCategoryHandler(s CategoryProvider, limits pagination.Limits, log logrus.FieldLogger) *CategoryHandler {
	return &CategoryHandler{
		service: s,
		limits:  limits,
		log:     log,
	}
}

func toResponse(c models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), h.limits.FromQuery(r))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	if page.Empty() {
		api.NoContent(w)
		return
	}

	api.OKResponse(w, http.StatusOK, pagination.Convert(page, toResponse))
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input CategoryRequest
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	if err := ValidateName(input.Name); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	created, err := h.service.Create(r.Context(), models.Category{Name: input.Name})
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.OKResponse(w, http.StatusOK, toResponse(created))
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	category, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.OKResponse(w, http.StatusOK, toResponse(category))
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	var input CategoryRequest
	if err := api.DecodeJSON(r, &input); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	if err := ValidateName(input.Name); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, models.CategoryPatch{Name: input.Name})
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.OKResponse(w, http.StatusOK, toResponse(updated))
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	api.NoContent(w)
}
