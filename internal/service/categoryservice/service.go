package categoryservice

import (
	"context"
	"fmt"

	"goinventory/internal/domain"
	apperror "goinventory/internal/errors"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/pkg/validation"
)

// CategoryStore define o contrato que o Serviço de Categorias espera do Store.
type CategoryStore interface {
	Categories() []domain.Category
	State() domain.InventoryState
	AddCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// Service valida os payloads de categoria e aplica a regra de exclusão:
// uma categoria referenciada por algum produto não pode ser removida.
type Service struct {
	store  CategoryStore
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Categorias.
func NewService(store CategoryStore, logger logger.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ListCategories devolve as categorias na ordem de criação.
func (s *Service) ListCategories() []domain.Category {
	return s.store.Categories()
}

// CreateCategory valida o payload e delega ao Store.
func (s *Service) CreateCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	s.logger.Debug("Iniciando criação de categoria no serviço.", map[string]interface{}{"name": input.Name})

	if err := validation.Struct(input); err != nil {
		s.logger.Warn("Falha na validação da categoria.", map[string]interface{}{"name": input.Name, "error": err.Error()})
		return domain.Category{}, err
	}
	return s.store.AddCategory(ctx, input)
}

// UpdateCategory valida o patch e delega ao Store.
func (s *Service) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error) {
	if err := validation.Struct(patch); err != nil {
		s.logger.Warn("Falha na validação da atualização de categoria.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Category{}, err
	}
	return s.store.UpdateCategory(ctx, id, patch)
}

// DeleteCategory remove a categoria somente se nenhum produto a referencia.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	inUse := 0
	for _, p := range s.store.State().Products {
		if p.CategoryID == id {
			inUse++
		}
	}
	if inUse > 0 {
		s.logger.Warn("Exclusão de categoria em uso bloqueada.", map[string]interface{}{"id": id, "products": inUse})
		return apperror.NewConflictError(fmt.Sprintf("A categoria %s possui %d produto(s) associado(s).", id, inUse))
	}

	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Categoria excluída com sucesso.", map[string]interface{}{"id": id})
	return nil
}
