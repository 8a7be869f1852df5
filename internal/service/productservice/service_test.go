package productservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"goinventory/internal/domain"
	apperror "goinventory/internal/errors"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/service/productservice"
)

// MockProductStore simula o Store para testar apenas a lógica do Serviço.
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) Categories() []domain.Category {
	args := m.Called()
	return args.Get(0).([]domain.Category)
}

func (m *MockProductStore) Product(id string) (domain.Product, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductStore) GetFilteredProducts() []domain.Product {
	args := m.Called()
	return args.Get(0).([]domain.Product)
}

func (m *MockProductStore) AddProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductStore) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductStore) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var categories = []domain.Category{{ID: "1", Name: "Electrónicos"}, {ID: "2", Name: "Accesorios"}}

func validInput() domain.ProductInput {
	return domain.ProductInput{
		Name:        "Disco SSD 1TB",
		Description: "Unidad de estado sólido NVMe",
		CategoryID:  "1",
		Price:       320000,
		Stock:       10,
		MinStock:    3,
	}
}

// --- Testes para CreateProduct ---

func TestCreateProduct_Success_DefaultsStatus(t *testing.T) {
	store := new(MockProductStore)
	svc := productservice.NewService(store, logger.NewNop())

	expectedInput := validInput()
	expectedInput.Status = domain.StatusActive
	created := domain.Product{ID: "p-1", Name: expectedInput.Name, CategoryID: "1", Status: domain.StatusActive}

	store.On("Categories").Return(categories)
	store.On("AddProduct", mock.Anything, expectedInput).Return(created, nil)

	result, err := svc.CreateProduct(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, created, result)
	store.AssertExpectations(t)
}

func TestCreateProduct_Fail_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ProductInput)
		field  string
	}{
		{"nome vazio", func(in *domain.ProductInput) { in.Name = "" }, "name"},
		{"descrição vazia", func(in *domain.ProductInput) { in.Description = "" }, "description"},
		{"preço negativo", func(in *domain.ProductInput) { in.Price = -1 }, "price"},
		{"estoque negativo", func(in *domain.ProductInput) { in.Stock = -5 }, "stock"},
		{"estoque mínimo negativo", func(in *domain.ProductInput) { in.MinStock = -1 }, "minStock"},
		{"status desconhecido", func(in *domain.ProductInput) { in.Status = "archived" }, "status"},
		{"sku longo", func(in *domain.ProductInput) { in.SKU = string(make([]byte, 51)) }, "sku"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockProductStore)
			svc := productservice.NewService(store, logger.NewNop())
			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateProduct(context.Background(), input)

			assert.IsType(t, &apperror.ValidationError{}, err)
			assert.Contains(t, err.Error(), tt.field)
			store.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateProduct_Fail_UnknownCategory(t *testing.T) {
	store := new(MockProductStore)
	svc := productservice.NewService(store, logger.NewNop())
	input := validInput()
	input.CategoryID = "99"

	store.On("Categories").Return(categories)

	_, err := svc.CreateProduct(context.Background(), input)

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "99")
	store.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
}

func TestCreateProduct_Fail_StoreError(t *testing.T) {
	store := new(MockProductStore)
	svc := productservice.NewService(store, logger.NewNop())
	storeErr := apperror.NewStorageUnavailableError("falha ao gravar inventory_products", nil)

	store.On("Categories").Return(categories)
	store.On("AddProduct", mock.Anything, mock.Anything).Return(domain.Product{}, storeErr)

	_, err := svc.CreateProduct(context.Background(), validInput())

	assert.Equal(t, storeErr, err)
}

// --- Testes para UpdateProduct ---

func TestUpdateProduct_Success(t *testing.T) {
	store := new(MockProductStore)
	svc := productservice.NewService(store, logger.NewNop())
	category := "2"
	patch := domain.ProductPatch{CategoryID: &category}

	store.On("Categories").Return(categories)
	store.On("UpdateProduct", mock.Anything, "p-1", patch).Return(domain.Product{ID: "p-1", CategoryID: "2"}, nil)

	result, err := svc.UpdateProduct(context.Background(), "p-1", patch)

	assert.NoError(t, err)
	assert.Equal(t, "2", result.CategoryID)
	store.AssertExpectations(t)
}

func TestUpdateProduct_Fail_EmptyName(t *testing.T) {
	store := new(MockProductStore)
	svc := productservice.NewService(store, logger.NewNop())
	empty := ""

	_, err := svc.UpdateProduct(context.Background(), "p-1", domain.ProductPatch{Name: &empty})

	assert.IsType(t, &apperror.ValidationError{}, err)
	store.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

// --- Testes para GetProductByID ---

func TestGetProductByID_NotFound(t *testing.T) {
	store := new(MockProductStore)
	svc := productservice.NewService(store, logger.NewNop())

	store.On("Product", "x").Return(domain.Product{}, apperror.NewNotFoundError("Produto com ID x não foi encontrado."))

	_, err := svc.GetProductByID("x")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}
