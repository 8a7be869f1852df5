package stock

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goinventory/internal/api/response"
	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
)

// StockService define o contrato que o Handler espera da camada de Serviço.
type StockService interface {
	SetStock(ctx context.Context, productID string, req domain.StockUpdateRequest) (domain.StockMovement, error)
	RecordMovement(ctx context.Context, input domain.MovementInput) (domain.StockMovement, error)
	ListMovements(productID string) []domain.StockMovement
}

// Handler agrupa todos os métodos de Handler de estoque.
type Handler struct {
	Service StockService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc StockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Write(w, r, h.Logger, data, err, successStatus)
}

// SetStockHandler lida com a requisição PUT /v1/products/{id}/stock.
// @Summary Define o estoque absoluto de um produto
// @Description Registra uma movimentação "in" ou "out" com a diferença.
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "ID do Produto"
// @Param request body domain.StockUpdateRequest true "Nova quantidade e motivo"
// @Success 200 {object} domain.StockMovement "Movimentação registrada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id}/stock [put]
func (h *Handler) SetStockHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.StockUpdateRequest
	if err := response.Decode(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	movement, err := h.Service.SetStock(r.Context(), chi.URLParam(r, "id"), req)
	h.handleServiceResponse(w, r, movement, err, http.StatusOK)
}

// ListMovementsHandler lida com a requisição GET /v1/movements.
// @Summary Lista as movimentações de estoque
// @Tags stock
// @Produce json
// @Param productId query string false "Filtra por produto"
// @Success 200 {array} domain.StockMovement "Movimentações"
// @Router /movements [get]
func (h *Handler) ListMovementsHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Service.ListMovements(r.URL.Query().Get("productId")), nil, http.StatusOK)
}

// RecordMovementHandler lida com a requisição POST /v1/movements.
// @Summary Registra uma movimentação manual
// @Description Não altera o estoque do produto.
// @Tags stock
// @Accept json
// @Produce json
// @Param movement body domain.MovementInput true "Dados da movimentação"
// @Success 201 {object} domain.StockMovement "Movimentação registrada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /movements [post]
func (h *Handler) RecordMovementHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.MovementInput
	if err := response.Decode(r, &input); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	movement, err := h.Service.RecordMovement(r.Context(), input)
	h.handleServiceResponse(w, r, movement, err, http.StatusCreated)
}
