// Package snapshotrepo grava várias coleções numa única operação
// do backend (tudo ou nada).
package snapshotrepo

import (
	"context"

	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/repository/kvstore"
)

// SnapshotRepository usa Backend.SetMany para escritas multi-chave.
type SnapshotRepository struct {
	Backend kvstore.Backend
	logger  logger.Logger
}

// NewSnapshotRepository cria e retorna uma nova instância do repositório.
func NewSnapshotRepository(backend kvstore.Backend, log logger.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		Backend: backend,
		logger:  log,
	}
}

// ReplaceAll substitui as três coleções de uma vez. Usado pelo import.
func (r *SnapshotRepository) ReplaceAll(ctx context.Context, products []domain.Product, categories []domain.Category, movements []domain.StockMovement) error {
	values := make(map[string]string, 3)
	if err := encodeInto(values, kvstore.KeyProducts, nonNilProducts(products)); err != nil {
		return err
	}
	if err := encodeInto(values, kvstore.KeyCategories, nonNilCategories(categories)); err != nil {
		return err
	}
	if err := encodeInto(values, kvstore.KeyMovements, nonNilMovements(movements)); err != nil {
		return err
	}
	if err := r.Backend.SetMany(ctx, values); err != nil {
		r.logger.Error("Falha ao substituir o inventário.", err)
		return kvstore.Translate("falha ao substituir o inventário", err)
	}
	r.logger.Info("Inventário substituído.", map[string]interface{}{
		"products":   len(products),
		"categories": len(categories),
		"movements":  len(movements),
	})
	return nil
}

// SaveProductsAndMovements grava produtos e movimentações juntos, para que
// uma alteração de estoque nunca fique sem a movimentação correspondente.
func (r *SnapshotRepository) SaveProductsAndMovements(ctx context.Context, products []domain.Product, movements []domain.StockMovement) error {
	values := make(map[string]string, 2)
	if err := encodeInto(values, kvstore.KeyProducts, nonNilProducts(products)); err != nil {
		return err
	}
	if err := encodeInto(values, kvstore.KeyMovements, nonNilMovements(movements)); err != nil {
		return err
	}
	if err := r.Backend.SetMany(ctx, values); err != nil {
		r.logger.Error("Falha ao gravar produtos e movimentações.", err)
		return kvstore.Translate("falha ao gravar produtos e movimentações", err)
	}
	return nil
}

func encodeInto(values map[string]string, key string, v interface{}) error {
	raw, err := kvstore.Encode(v)
	if err != nil {
		return err
	}
	values[key] = raw
	return nil
}

func nonNilProducts(p []domain.Product) []domain.Product {
	if p == nil {
		return []domain.Product{}
	}
	return p
}

func nonNilCategories(c []domain.Category) []domain.Category {
	if c == nil {
		return []domain.Category{}
	}
	return c
}

func nonNilMovements(m []domain.StockMovement) []domain.StockMovement {
	if m == nil {
		return []domain.StockMovement{}
	}
	return m
}
