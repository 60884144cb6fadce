package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mytheresa/go-inventory/app/api"
	"github.com/mytheresa/go-inventory/models"
	"github.com/mytheresa/go-inventory/pagination"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Service ---

type MockProductService struct {
	SourceProducts []Product
	Err            error
	Deleted        bool

	// Fields to capture call arguments
	lastPageRequest pagination.Request
	lastFilters     models.ProductFilters
	lastCategoryID  uint
	lastCreated     *models.Product
	lastID          uint
	lastPatch       *models.ProductPatch
}

func (m *MockProductService) List(ctx context.Context, req pagination.Request, filters models.ProductFilters) (pagination.Page[Product], error) {
	m.lastPageRequest = req
	m.lastFilters = filters
	if m.Err != nil {
		return pagination.Page[Product]{}, m.Err
	}
	return pagination.New(m.SourceProducts, req, int64(len(m.SourceProducts))), nil
}

func (m *MockProductService) ListByCategory(ctx context.Context, categoryID uint, req pagination.Request) (pagination.Page[Product], error) {
	m.lastCategoryID = categoryID
	m.lastPageRequest = req
	if m.Err != nil {
		return pagination.Page[Product]{}, m.Err
	}
	var out []Product
	for _, p := range m.SourceProducts {
		if p.Category.ID == categoryID {
			out = append(out, p)
		}
	}
	return pagination.New(out, req, int64(len(out))), nil
}

func (m *MockProductService) Create(ctx context.Context, product models.Product) (Product, error) {
	m.lastCreated = &product
	if m.Err != nil {
		return Product{}, m.Err
	}
	return Product{
		ID:       10,
		Name:     product.Name,
		Price:    product.Price.InexactFloat64(),
		Quantity: product.Quantity,
		Status:   product.Status,
		Category: Category{ID: product.CategoryID, Name: "Electronics"},
	}, nil
}

func (m *MockProductService) GetByID(ctx context.Context, id uint) (Product, error) {
	m.lastID = id
	if m.Err != nil {
		return Product{}, m.Err
	}
	for _, p := range m.SourceProducts {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, models.ErrProductNotFound
}

func (m *MockProductService) Update(ctx context.Context, id uint, patch models.ProductPatch) (Product, error) {
	m.lastID = id
	m.lastPatch = &patch
	if m.Err != nil {
		return Product{}, m.Err
	}
	return Product{
		ID:       id,
		Name:     patch.Name,
		Price:    patch.Price.InexactFloat64(),
		Quantity: patch.Quantity,
		Status:   patch.Status,
		Category: Category{ID: patch.CategoryID},
	}, nil
}

func (m *MockProductService) Delete(ctx context.Context, id uint) (bool, error) {
	m.lastID = id
	if m.Err != nil {
		return false, m.Err
	}
	return m.Deleted, nil
}

// --- Helpers ---

func newTestProduct(id uint, name string, categoryID uint, categoryName string, price float64) Product {
	return Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: 1,
		Status:   "Available",
		Category: Category{ID: categoryID, Name: categoryName},
	}
}

func newTestHandler(svc *MockProductService) *CatalogHandler {
	log, _ := test.NewNullLogger()
	return NewCatalogHandler(svc, pagination.Limits{DefaultSize: 3, MaxSize: 100}, log)
}

const validBody = `{"name":"Phone","description":"Smartphone","price":599.0,"quantity":10,"status":"Available","category":{"id":1}}`

// --- Tests ---

func TestHandleGetAll(t *testing.T) {
	allMockProducts := []Product{
		newTestProduct(1, "Sneaker", 1, "Shoes", 19.99),
		newTestProduct(2, "Shirt", 2, "Clothing", 24.99),
	}

	testCases := []struct {
		name               string
		url                string
		mockSetup          func() *MockProductService
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkCalls         func(t *testing.T, svc *MockProductService)
	}{
		{
			name: "Success with default pagination",
			url:  "/api/products",
			mockSetup: func() *MockProductService {
				return &MockProductService{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp pagination.Page[Product]
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, int64(2), resp.TotalElements)
				assert.Len(t, resp.Content, 2)
				assert.Equal(t, "Sneaker", resp.Content[0].Name)
				assert.Equal(t, "Shoes", resp.Content[0].Category.Name)
			},
			checkCalls: func(t *testing.T, svc *MockProductService) {
				assert.Equal(t, pagination.Request{Page: 0, Size: 3}, svc.lastPageRequest)
				assert.Nil(t, svc.lastFilters.CategoryID)
				assert.Nil(t, svc.lastFilters.PriceLessThan)
			},
		},
		{
			name: "Pagination with out-of-bounds values",
			url:  "/api/products?page=-10&size=200",
			mockSetup: func() *MockProductService {
				return &MockProductService{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkCalls: func(t *testing.T, svc *MockProductService) {
				assert.Equal(t, 0, svc.lastPageRequest.Page, "Page should be clamped to 0")
				assert.Equal(t, 100, svc.lastPageRequest.Size, "Size should be clamped to 100")
			},
		},
		{
			name: "Filters are parsed",
			url:  "/api/products?category=2&price_lt=50.5",
			mockSetup: func() *MockProductService {
				return &MockProductService{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkCalls: func(t *testing.T, svc *MockProductService) {
				require.NotNil(t, svc.lastFilters.CategoryID)
				assert.Equal(t, uint(2), *svc.lastFilters.CategoryID)
				require.NotNil(t, svc.lastFilters.PriceLessThan)
				assert.Equal(t, 50.5, *svc.lastFilters.PriceLessThan)
			},
		},
		{
			name: "Invalid filters are ignored",
			url:  "/api/products?category=abc&price_lt=cheap",
			mockSetup: func() *MockProductService {
				return &MockProductService{SourceProducts: allMockProducts}
			},
			expectedStatusCode: http.StatusOK,
			checkCalls: func(t *testing.T, svc *MockProductService) {
				assert.Nil(t, svc.lastFilters.CategoryID)
				assert.Nil(t, svc.lastFilters.PriceLessThan)
			},
		},
		{
			name: "Empty page is no content",
			url:  "/api/products",
			mockSetup: func() *MockProductService {
				return &MockProductService{}
			},
			expectedStatusCode: http.StatusNoContent,
		},
		{
			name: "Service error is sanitized",
			url:  "/api/products",
			mockSetup: func() *MockProductService {
				return &MockProductService{Err: errors.New("pq: relation \"product\" does not exist")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp api.ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, api.InternalErrorMessage, errResp.Error)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			svc := tc.mockSetup()
			handler := newTestHandler(svc)
			req := httptest.NewRequest("GET", tc.url, nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetAll(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkCalls != nil {
				tc.checkCalls(t, svc)
			}
		})
	}
}

func TestHandleGetByCategory(t *testing.T) {
	products := []Product{
		newTestProduct(1, "Sneaker", 1, "Shoes", 19.99),
		newTestProduct(2, "Shirt", 2, "Clothing", 24.99),
	}

	testCases := []struct {
		name               string
		categoryID         string
		mockErr            error
		expectedStatusCode int
	}{
		{name: "Has products", categoryID: "1", expectedStatusCode: http.StatusOK},
		{name: "No products", categoryID: "3", expectedStatusCode: http.StatusNoContent},
		{name: "Unknown category", categoryID: "4", mockErr: models.ErrCategoryNotFound, expectedStatusCode: http.StatusNotFound},
		{name: "Invalid id", categoryID: "x", expectedStatusCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockProductService{SourceProducts: products, Err: tc.mockErr}
			handler := newTestHandler(svc)
			req := httptest.NewRequest("GET", "/api/categories/"+tc.categoryID+"/products", nil)
			req.SetPathValue("id", tc.categoryID)
			rec := httptest.NewRecorder()

			handler.HandleGetByCategory(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		mockErr            error
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkCall          func(t *testing.T, svc *MockProductService)
	}{
		{
			name:               "Success",
			requestBody:        validBody,
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Product
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "Phone", resp.Name)
				assert.Equal(t, 599.0, resp.Price)
				assert.Equal(t, Category{ID: 1, Name: "Electronics"}, resp.Category)
			},
			checkCall: func(t *testing.T, svc *MockProductService) {
				require.NotNil(t, svc.lastCreated)
				assert.Equal(t, "Smartphone", svc.lastCreated.Description)
				assert.Equal(t, 10, svc.lastCreated.Quantity)
				assert.Equal(t, uint(1), svc.lastCreated.CategoryID)
			},
		},
		{
			name:               "Unknown category",
			requestBody:        validBody,
			mockErr:            models.ErrCategoryNotFound,
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "Missing category",
			requestBody:        `{"name":"Phone","price":1,"quantity":1,"status":"Available"}`,
			expectedStatusCode: http.StatusBadRequest,
			checkCall: func(t *testing.T, svc *MockProductService) {
				assert.Nil(t, svc.lastCreated)
			},
		},
		{
			name:               "Missing price",
			requestBody:        `{"name":"Phone","quantity":1,"status":"Available","category":{"id":1}}`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp api.ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "price is required", errResp.Error)
			},
		},
		{
			name:               "Description too long",
			requestBody:        `{"name":"Phone","description":"` + strings.Repeat("x", 1001) + `","price":1,"quantity":1,"status":"Available","category":{"id":1}}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Blank name",
			requestBody:        `{"name":" ","price":1,"quantity":1,"status":"Available","category":{"id":1}}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Price with three decimals",
			requestBody:        `{"name":"Phone","price":1.005,"quantity":1,"status":"Available","category":{"id":1}}`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp api.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, "price must have at most 2 decimal places", errResp.Error)
			},
			checkCall: func(t *testing.T, svc *MockProductService) {
				assert.Nil(t, svc.lastCreated)
			},
		},
		{
			name:               "Price out of range",
			requestBody:        `{"name":"Phone","price":100000000,"quantity":1,"status":"Available","category":{"id":1}}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Invalid JSON",
			requestBody:        `{"name":`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockProductService{Err: tc.mockErr}
			handler := newTestHandler(svc)
			req := httptest.NewRequest("POST", "/api/products", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.HandleCreate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
			if tc.checkCall != nil {
				tc.checkCall(t, svc)
			}
		})
	}
}

func TestHandleGetProduct(t *testing.T) {
	svc := &MockProductService{SourceProducts: []Product{newTestProduct(3, "Boot", 1, "Shoes", 95.5)}}
	handler := newTestHandler(svc)

	testCases := []struct {
		name               string
		id                 string
		expectedStatusCode int
	}{
		{name: "Found", id: "3", expectedStatusCode: http.StatusOK},
		{name: "Not found", id: "4", expectedStatusCode: http.StatusNotFound},
		{name: "Invalid id", id: "-1", expectedStatusCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/products/"+tc.id, nil)
			req.SetPathValue("id", tc.id)
			rec := httptest.NewRecorder()

			handler.HandleGetProduct(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedStatusCode == http.StatusOK {
				var resp Product
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "Boot", resp.Name)
				assert.Equal(t, 95.5, resp.Price)
			}
		})
	}
}

func TestHandleUpdate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		mockErr            error
		expectedStatusCode int
		expectCall         bool
	}{
		{name: "Success", requestBody: validBody, expectedStatusCode: http.StatusOK, expectCall: true},
		{name: "Product not found", requestBody: validBody, mockErr: models.ErrProductNotFound, expectedStatusCode: http.StatusNotFound, expectCall: true},
		{name: "Category not found", requestBody: validBody, mockErr: models.ErrCategoryNotFound, expectedStatusCode: http.StatusNotFound, expectCall: true},
		{name: "Missing status", requestBody: `{"name":"Phone","price":1,"quantity":1,"category":{"id":1}}`, expectedStatusCode: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockProductService{Err: tc.mockErr}
			handler := newTestHandler(svc)
			req := httptest.NewRequest("PUT", "/api/products/5", strings.NewReader(tc.requestBody))
			req.SetPathValue("id", "5")
			rec := httptest.NewRecorder()

			handler.HandleUpdate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if !tc.expectCall {
				assert.Nil(t, svc.lastPatch)
				return
			}
			require.NotNil(t, svc.lastPatch)
			assert.Equal(t, uint(5), svc.lastID)
			assert.Equal(t, "Available", svc.lastPatch.Status, "status is part of the update")
			assert.Equal(t, uint(1), svc.lastPatch.CategoryID)
		})
	}
}

func TestHandleDelete(t *testing.T) {
	testCases := []struct {
		name               string
		deleted            bool
		mockErr            error
		expectedStatusCode int
	}{
		{name: "Deleted", deleted: true, expectedStatusCode: http.StatusNoContent},
		{name: "Absent", deleted: false, expectedStatusCode: http.StatusNotFound},
		{name: "Store failure", mockErr: errors.New("db down"), expectedStatusCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &MockProductService{Deleted: tc.deleted, Err: tc.mockErr}
			handler := newTestHandler(svc)
			req := httptest.NewRequest("DELETE", "/api/products/8", nil)
			req.SetPathValue("id", "8")
			rec := httptest.NewRecorder()

			handler.HandleDelete(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, uint(8), svc.lastID)
		})
	}
}
