package product

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goinventory/internal/api/response"
	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	CreateProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProductByID(id string) (domain.Product, error)
	ListProducts() []domain.Product
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Write(w, r, h.Logger, data, err, successStatus)
}

// ListProductsHandler lida com a requisição GET /v1/products.
// @Summary Lista os produtos filtrados
// @Description Aplica busca, filtros e ordenação atuais (ver /v1/filters).
// @Tags products
// @Produce json
// @Success 200 {array} domain.Product "Produtos filtrados"
// @Router /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Service.ListProducts(), nil, http.StatusOK)
}

// CreateProductHandler lida com a requisição POST /v1/products.
// @Summary Cria um novo produto
// @Description SKU em branco é gerado a partir da categoria.
// @Tags products
// @Accept json
// @Produce json
// @Param product body domain.ProductInput true "Dados do produto"
// @Success 201 {object} domain.Product "Produto criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 503 {object} domain.ErrorResponse "Armazenamento indisponível"
// @Router /products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.ProductInput
	if err := response.Decode(r, &input); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateProduct(r.Context(), input)
	h.handleServiceResponse(w, r, created, err, http.StatusCreated)
}

// GetProductByIDHandler lida com a requisição GET /v1/products/{id}.
// @Summary Obtém um produto por ID
// @Tags products
// @Produce json
// @Param id path string true "ID do Produto"
// @Success 200 {object} domain.Product "Produto encontrado"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := h.Service.GetProductByID(chi.URLParam(r, "id"))
	h.handleServiceResponse(w, r, product, err, http.StatusOK)
}

// UpdateProductHandler lida com a requisição PATCH /v1/products/{id}.
// @Summary Atualiza parcialmente um produto
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "ID do Produto"
// @Param patch body domain.ProductPatch true "Campos a alterar"
// @Success 200 {object} domain.Product "Produto atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [patch]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProductPatch
	if err := response.Decode(r, &patch); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// DeleteProductHandler lida com a requisição DELETE /v1/products/{id}.
// @Summary Remove um produto
// @Tags products
// @Param id path string true "ID do Produto"
// @Success 204 "Produto removido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Router /products/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
