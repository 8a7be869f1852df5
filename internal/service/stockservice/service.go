package stockservice

import (
	"context"

	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/pkg/validation"
)

// StockStore define o contrato que o Serviço de Estoque espera do Store.
type StockStore interface {
	Movements(productID string) []domain.StockMovement
	AddStockMovement(ctx context.Context, input domain.MovementInput) (domain.StockMovement, error)
	UpdateStock(ctx context.Context, productID string, newQty int, reason string) (domain.StockMovement, error)
}

// Service valida as requisições de estoque e delega ao Store.
type Service struct {
	store  StockStore
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Estoque.
func NewService(store StockStore, logger logger.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// SetStock define o estoque absoluto de um produto. O Store registra a
// movimentação correspondente.
func (s *Service) SetStock(ctx context.Context, productID string, req domain.StockUpdateRequest) (domain.StockMovement, error) {
	s.logger.Debug("Iniciando atualização de estoque no serviço.", map[string]interface{}{
		"product_id": productID,
		"reason":     req.Reason,
	})

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Falha na validação da atualização de estoque.", map[string]interface{}{"product_id": productID, "error": err.Error()})
		return domain.StockMovement{}, err
	}

	movement, err := s.store.UpdateStock(ctx, productID, *req.Quantity, req.Reason)
	if err != nil {
		return domain.StockMovement{}, err
	}

	s.logger.Info("Estoque atualizado com sucesso.", map[string]interface{}{
		"product_id": productID,
		"type":       string(movement.Type),
		"quantity":   movement.Quantity,
	})
	return movement, nil
}

// RecordMovement registra uma movimentação manual sem alterar o estoque.
func (s *Service) RecordMovement(ctx context.Context, input domain.MovementInput) (domain.StockMovement, error) {
	if err := validation.Struct(input); err != nil {
		s.logger.Warn("Falha na validação da movimentação.", map[string]interface{}{"product_id": input.ProductID, "error": err.Error()})
		return domain.StockMovement{}, err
	}
	return s.store.AddStockMovement(ctx, input)
}

// ListMovements devolve o log, opcionalmente filtrado por produto.
func (s *Service) ListMovements(productID string) []domain.StockMovement {
	return s.store.Movements(productID)
}
