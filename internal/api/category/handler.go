package category

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goinventory/internal/api/response"
	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
)

// CategoryService define o contrato que o Handler espera da camada de Serviço.
type CategoryService interface {
	ListCategories() []domain.Category
	CreateCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// Handler agrupa todos os métodos de Handler de categorias.
type Handler struct {
	Service CategoryService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CategoryService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Write(w, r, h.Logger, data, err, successStatus)
}

// ListCategoriesHandler lida com a requisição GET /v1/categories.
// @Summary Lista as categorias
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category "Lista de categorias"
// @Router /categories [get]
func (h *Handler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Service.ListCategories(), nil, http.StatusOK)
}

// CreateCategoryHandler lida com a requisição POST /v1/categories.
// @Summary Cria uma nova categoria
// @Tags categories
// @Accept json
// @Produce json
// @Param category body domain.CategoryInput true "Dados da categoria"
// @Success 201 {object} domain.Category "Categoria criada com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /categories [post]
func (h *Handler) CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.CategoryInput
	if err := response.Decode(r, &input); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateCategory(r.Context(), input)
	h.handleServiceResponse(w, r, created, err, http.StatusCreated)
}

// UpdateCategoryHandler lida com a requisição PATCH /v1/categories/{id}.
// @Summary Renomeia ou recolore uma categoria
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "ID da Categoria"
// @Param patch body domain.CategoryPatch true "Campos a alterar"
// @Success 200 {object} domain.Category "Categoria atualizada"
// @Failure 404 {object} domain.ErrorResponse "Categoria não encontrada"
// @Router /categories/{id} [patch]
func (h *Handler) UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.CategoryPatch
	if err := response.Decode(r, &patch); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateCategory(r.Context(), chi.URLParam(r, "id"), patch)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// DeleteCategoryHandler lida com a requisição DELETE /v1/categories/{id}.
// @Summary Remove uma categoria sem produtos
// @Tags categories
// @Param id path string true "ID da Categoria"
// @Success 204 "Categoria removida"
// @Failure 404 {object} domain.ErrorResponse "Categoria não encontrada"
// @Failure 409 {object} domain.ErrorResponse "Categoria em uso"
// @Router /categories/{id} [delete]
func (h *Handler) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteCategory(r.Context(), chi.URLParam(r, "id"))
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
