package movementrepo

import (
	"context"

	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/repository/kvstore"
)

// MovementRepository persiste o log de movimentações sob kvstore.KeyMovements.
// Não há seed: a ausência da chave significa log vazio.
type MovementRepository struct {
	Backend kvstore.Backend
	logger  logger.Logger
}

// NewMovementRepository cria e retorna uma nova instância do Repositório de Movimentações.
func NewMovementRepository(backend kvstore.Backend, log logger.Logger) *MovementRepository {
	return &MovementRepository{
		Backend: backend,
		logger:  log,
	}
}

// Load retorna o log completo, na ordem de inserção.
func (r *MovementRepository) Load(ctx context.Context) ([]domain.StockMovement, error) {
	var movements []domain.StockMovement
	if _, err := kvstore.LoadJSON(ctx, r.Backend, kvstore.KeyMovements, &movements); err != nil {
		r.logger.Error("Falha ao carregar movimentações.", err)
		return nil, err
	}
	if movements == nil {
		movements = []domain.StockMovement{}
	}
	return movements, nil
}

// Save substitui o log inteiro.
func (r *MovementRepository) Save(ctx context.Context, movements []domain.StockMovement) error {
	if movements == nil {
		movements = []domain.StockMovement{}
	}
	if err := kvstore.SaveJSON(ctx, r.Backend, kvstore.KeyMovements, movements); err != nil {
		r.logger.Error("Falha ao gravar movimentações.", err)
		return err
	}
	return nil
}

// ByProduct filtra o log por produto, preservando a ordem.
func ByProduct(movements []domain.StockMovement, productID string) []domain.StockMovement {
	out := make([]domain.StockMovement, 0)
	for _, m := range movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}
