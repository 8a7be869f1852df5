package productrepo

import (
	"context"

	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/repository/kvstore"
)

// ProductRepository persiste a coleção de produtos como um documento JSON
// sob a chave kvstore.KeyProducts.
type ProductRepository struct {
	Backend kvstore.Backend
	logger  logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(backend kvstore.Backend, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		Backend: backend,
		logger:  log,
	}
}

// Load retorna a coleção persistida. Na primeira execução (chave ausente)
// o conjunto padrão é gerado e gravado imediatamente.
func (r *ProductRepository) Load(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	found, err := kvstore.LoadJSON(ctx, r.Backend, kvstore.KeyProducts, &products)
	if err != nil {
		r.logger.Error("Falha ao carregar produtos.", err)
		return nil, err
	}

	if !found {
		products = DefaultProducts()
		if err := r.Save(ctx, products); err != nil {
			return nil, err
		}
		r.logger.Info("Produtos padrão gravados (primeira execução).", map[string]interface{}{"count": len(products)})
		return products, nil
	}

	if products == nil {
		products = []domain.Product{}
	}
	r.logger.Debug("Produtos carregados.", map[string]interface{}{"count": len(products)})
	return products, nil
}

// Save substitui a coleção inteira.
func (r *ProductRepository) Save(ctx context.Context, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	if err := kvstore.SaveJSON(ctx, r.Backend, kvstore.KeyProducts, products); err != nil {
		r.logger.Error("Falha ao gravar produtos.", err)
		return err
	}
	return nil
}
