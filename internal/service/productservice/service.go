package productservice

import (
	"context"
	"fmt"

	"goinventory/internal/domain"
	apperror "goinventory/internal/errors"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/pkg/validation"
)

// ProductStore define o contrato (interface) que este Serviço espera do Store.
type ProductStore interface {
	Categories() []domain.Category
	Product(id string) (domain.Product, error)
	GetFilteredProducts() []domain.Product
	AddProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Service aplica as regras do formulário de produto antes de chegar ao Store.
type Service struct {
	store  ProductStore
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(store ProductStore, logger logger.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// --- Implementação: CreateProduct ---
func (s *Service) CreateProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	if input.Status == "" {
		input.Status = domain.StatusActive
	}

	// 1. Validação estrutural (tamanhos, faixas, enums)
	if err := validation.Struct(input); err != nil {
		s.logger.Warn("Falha na validação do produto.", map[string]interface{}{"name": input.Name, "error": err.Error()})
		return domain.Product{}, err
	}

	// 2. A categoria precisa existir
	if err := s.ensureCategory(input.CategoryID); err != nil {
		return domain.Product{}, err
	}

	// 3. Delegação para o Store (ID, timestamps e SKU gerado)
	return s.store.AddProduct(ctx, input)
}

// --- Implementação: UpdateProduct ---
func (s *Service) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	if err := validation.Struct(patch); err != nil {
		s.logger.Warn("Falha na validação da atualização de produto.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Product{}, err
	}
	if patch.CategoryID != nil {
		if err := s.ensureCategory(*patch.CategoryID); err != nil {
			return domain.Product{}, err
		}
	}
	return s.store.UpdateProduct(ctx, id, patch)
}

// DeleteProduct remove o produto. As movimentações permanecem no log.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.store.DeleteProduct(ctx, id)
}

// GetProductByID busca um produto pelo ID.
func (s *Service) GetProductByID(id string) (domain.Product, error) {
	return s.store.Product(id)
}

// ListProducts devolve os produtos com os filtros atuais do Store aplicados.
func (s *Service) ListProducts() []domain.Product {
	return s.store.GetFilteredProducts()
}

func (s *Service) ensureCategory(id string) error {
	for _, c := range s.store.Categories() {
		if c.ID == id {
			return nil
		}
	}
	s.logger.Warn("Categoria inexistente informada para o produto.", map[string]interface{}{"category_id": id})
	return apperror.NewValidationError(fmt.Sprintf("A categoria %s não existe.", id))
}
