package stock_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"goinventory/internal/api/stock"
	"goinventory/internal/domain"
	apperror "goinventory/internal/errors"
	"goinventory/internal/pkg/logger"
)

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) SetStock(ctx context.Context, productID string, req domain.StockUpdateRequest) (domain.StockMovement, error) {
	args := m.Called(ctx, productID, req)
	return args.Get(0).(domain.StockMovement), args.Error(1)
}

func (m *MockStockService) RecordMovement(ctx context.Context, input domain.MovementInput) (domain.StockMovement, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.StockMovement), args.Error(1)
}

func (m *MockStockService) ListMovements(productID string) []domain.StockMovement {
	return m.Called(productID).Get(0).([]domain.StockMovement)
}

func newRouter(svc *MockStockService) http.Handler {
	h := stock.NewHandler(svc, logger.NewNop())
	r := chi.NewRouter()
	r.Put("/v1/products/{id}/stock", h.SetStockHandler)
	r.Get("/v1/movements", h.ListMovementsHandler)
	r.Post("/v1/movements", h.RecordMovementHandler)
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSetStockHandler(t *testing.T) {
	svc := new(MockStockService)
	svc.On("SetStock", mock.Anything, "1", mock.MatchedBy(func(req domain.StockUpdateRequest) bool {
		return req.Quantity != nil && *req.Quantity == 20 && req.Reason == "Reposição"
	})).Return(domain.StockMovement{ID: "m1", ProductID: "1", Type: domain.MovementIn, Quantity: 5}, nil)

	rec := serve(newRouter(svc), http.MethodPut, "/v1/products/1/stock", `{"quantity":20,"reason":"Reposição"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"in"`)
	svc.AssertExpectations(t)
}

func TestSetStockHandler_Rejected(t *testing.T) {
	svc := new(MockStockService)
	svc.On("SetStock", mock.Anything, "1", mock.Anything).
		Return(domain.StockMovement{}, apperror.NewValidationError("A quantidade não pode ser negativa."))

	rec := serve(newRouter(svc), http.MethodPut, "/v1/products/1/stock", `{"quantity":-1,"reason":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMovementsHandler_FiltersByQuery(t *testing.T) {
	svc := new(MockStockService)
	svc.On("ListMovements", "3").Return([]domain.StockMovement{{ID: "m1", ProductID: "3"}})

	rec := serve(newRouter(svc), http.MethodGet, "/v1/movements?productId=3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"productId":"3"`)
	svc.AssertExpectations(t)
}

func TestRecordMovementHandler(t *testing.T) {
	svc := new(MockStockService)
	svc.On("RecordMovement", mock.Anything, mock.MatchedBy(func(in domain.MovementInput) bool {
		return in.Type == domain.MovementAdjustment && in.Quantity == 2
	})).Return(domain.StockMovement{ID: "m2", Type: domain.MovementAdjustment, Quantity: 2}, nil)

	rec := serve(newRouter(svc), http.MethodPost, "/v1/movements",
		`{"productId":"1","type":"adjustment","quantity":2,"reason":"Inventario"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
