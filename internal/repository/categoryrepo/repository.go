package categoryrepo

import (
	"context"
	"time"

	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/repository/kvstore"
)

// CategoryRepository persiste a coleção de categorias sob kvstore.KeyCategories.
type CategoryRepository struct {
	Backend kvstore.Backend
	logger  logger.Logger
}

// NewCategoryRepository cria e retorna uma nova instância do Repositório de Categorias.
func NewCategoryRepository(backend kvstore.Backend, log logger.Logger) *CategoryRepository {
	return &CategoryRepository{
		Backend: backend,
		logger:  log,
	}
}

// Load retorna as categorias persistidas, gravando o conjunto padrão
// quando a chave ainda não existe.
func (r *CategoryRepository) Load(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	found, err := kvstore.LoadJSON(ctx, r.Backend, kvstore.KeyCategories, &categories)
	if err != nil {
		r.logger.Error("Falha ao carregar categorias.", err)
		return nil, err
	}

	if !found {
		categories = DefaultCategories()
		if err := r.Save(ctx, categories); err != nil {
			return nil, err
		}
		r.logger.Info("Categorias padrão gravadas (primeira execução).", map[string]interface{}{"count": len(categories)})
		return categories, nil
	}

	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// Save substitui a coleção inteira.
func (r *CategoryRepository) Save(ctx context.Context, categories []domain.Category) error {
	if categories == nil {
		categories = []domain.Category{}
	}
	if err := kvstore.SaveJSON(ctx, r.Backend, kvstore.KeyCategories, categories); err != nil {
		r.logger.Error("Falha ao gravar categorias.", err)
		return err
	}
	return nil
}

// DefaultCategories é o conjunto inicial de categorias.
func DefaultCategories() []domain.Category {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Category{
		{ID: "1", Name: "Electrónicos", Description: "Dispositivos electrónicos y tecnología", Color: "#3B82F6", CreatedAt: created},
		{ID: "2", Name: "Accesorios", Description: "Accesorios para computadoras y dispositivos", Color: "#10B981", CreatedAt: created},
		{ID: "3", Name: "Oficina", Description: "Equipos y suministros de oficina", Color: "#F59E0B", CreatedAt: created},
		{ID: "4", Name: "Software", Description: "Licencias de software y aplicaciones", Color: "#8B5CF6", CreatedAt: created},
	}
}
