package inventory

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"goinventory/internal/api/response"
	"goinventory/internal/domain"
	apperror "goinventory/internal/errors"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/query"
	"goinventory/internal/service/inventoryservice"
)

// maxImportSize limita o corpo aceito pelo import (10 MiB).
const maxImportSize = 10 << 20

// InventoryStore define o contrato que o Handler espera do Store.
type InventoryStore interface {
	LoadData(ctx context.Context) error
	State() domain.InventoryState
	Stats(now time.Time) domain.InventoryStats
	Now() time.Time
	ExportData(now time.Time) (domain.ExportDocument, error)
	ImportData(ctx context.Context, r io.Reader) error
	Filters() domain.SearchFilters
	SetFilters(patch domain.FiltersPatch) (domain.SearchFilters, error)
	ResetFilters() domain.SearchFilters
	SelectProduct(id string)
	Selected() (domain.Product, bool)
}

// ImportResult é a resposta do import.
type ImportResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Selection descreve o produto selecionado.
type Selection struct {
	ProductID string          `json:"productId"`
	Product   *domain.Product `json:"product"`
}

// SelectionRequest é o corpo de PUT /v1/selection. ID vazio limpa a seleção.
type SelectionRequest struct {
	ProductID string `json:"productId"`
}

// Charts reúne as séries do dashboard.
type Charts struct {
	Categories   []query.CategorySummary `json:"categories"`
	Distribution query.Distribution      `json:"distribution"`
	TopByValue   []query.ProductValue    `json:"topByValue"`
	Activity     []query.DayActivity     `json:"activity"`
}

// Handler agrupa os endpoints de estado, dashboard e transferência.
type Handler struct {
	Store  InventoryStore
	Logger logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Store e o Logger.
func NewHandler(store InventoryStore, log logger.Logger) *Handler {
	return &Handler{
		Store:  store,
		Logger: log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Write(w, r, h.Logger, data, err, successStatus)
}

// ReloadHandler lida com a requisição POST /v1/inventory/reload.
// @Summary Recarrega o inventário do armazenamento
// @Tags inventory
// @Produce json
// @Success 200 {object} domain.InventoryState "Estado recarregado"
// @Failure 503 {object} domain.ErrorResponse "Armazenamento indisponível"
// @Router /inventory/reload [post]
func (h *Handler) ReloadHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.LoadData(r.Context()); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	h.handleServiceResponse(w, r, h.Store.State(), nil, http.StatusOK)
}

// StateHandler lida com a requisição GET /v1/inventory/state.
// @Summary Retorna o estado completo do inventário
// @Tags inventory
// @Produce json
// @Success 200 {object} domain.InventoryState "Estado atual"
// @Router /inventory/state [get]
func (h *Handler) StateHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Store.State(), nil, http.StatusOK)
}

// StatsHandler lida com a requisição GET /v1/inventory/stats.
// @Summary Agregados do dashboard
// @Tags inventory
// @Produce json
// @Success 200 {object} domain.InventoryStats "Estatísticas"
// @Router /inventory/stats [get]
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Store.Stats(h.Store.Now()), nil, http.StatusOK)
}

// AlertsHandler lida com a requisição GET /v1/inventory/alerts.
// @Summary Produtos com estoque baixo ou zerado
// @Tags inventory
// @Produce json
// @Success 200 {object} query.StockAlerts "Alertas"
// @Router /inventory/alerts [get]
func (h *Handler) AlertsHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, query.Alerts(h.Store.State().Products), nil, http.StatusOK)
}

// ChartsHandler lida com a requisição GET /v1/inventory/charts.
// @Summary Séries para os gráficos do dashboard
// @Tags inventory
// @Produce json
// @Param top query int false "Quantidade de produtos no ranking de valor" default(8)
// @Param days query int false "Dias de atividade" default(7)
// @Success 200 {object} Charts "Séries"
// @Failure 400 {object} domain.ErrorResponse "Parâmetro inválido"
// @Router /inventory/charts [get]
func (h *Handler) ChartsHandler(w http.ResponseWriter, r *http.Request) {
	top, err := positiveParam(r, "top", query.DefaultTopN)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	days, err := positiveParam(r, "days", query.DefaultActivityDays)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	state := h.Store.State()
	charts := Charts{
		Categories:   query.CategoryBreakdown(state.Products, state.Categories),
		Distribution: query.StockDistribution(state.Products),
		TopByValue:   query.TopByValue(state.Products, top),
		Activity:     query.DailyActivity(state.Movements, h.Store.Now(), days),
	}
	h.handleServiceResponse(w, r, charts, nil, http.StatusOK)
}

func positiveParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, apperror.NewValidationError(fmt.Sprintf("O parâmetro %s deve ser um inteiro positivo.", name))
	}
	return n, nil
}

// ExportHandler lida com a requisição GET /v1/inventory/export.
// @Summary Baixa o inventário como JSON
// @Tags inventory
// @Produce json
// @Success 200 {object} domain.ExportDocument "Documento de exportação"
// @Router /inventory/export [get]
func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	now := h.Store.Now()
	doc, err := h.Store.ExportData(now)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, inventoryservice.ExportFileName(now)))
	w.WriteHeader(http.StatusOK)
	if err := inventoryservice.WriteExport(w, doc); err != nil {
		h.Logger.Error("Falha ao escrever exportação", err)
	}
}

// ImportHandler lida com a requisição POST /v1/inventory/import.
// @Summary Substitui o inventário por um documento exportado
// @Description Aceita JSON no corpo ou multipart com o campo "file".
// @Tags inventory
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 200 {object} ImportResult "Importação concluída"
// @Failure 422 {object} ImportResult "Documento rejeitado"
// @Failure 503 {object} ImportResult "Armazenamento indisponível"
// @Router /inventory/import [post]
func (h *Handler) ImportHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	body, closeBody, err := importBody(r)
	if err != nil {
		h.writeImportResult(w, err)
		return
	}
	defer closeBody()

	h.writeImportResult(w, h.Store.ImportData(r.Context(), body))
}

func importBody(r *http.Request) (io.Reader, func(), error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, func() {}, nil
	}

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		return nil, nil, apperror.NewImportError("Formulário multipart inválido.", err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, nil, apperror.NewImportError(`Campo "file" ausente.`, err)
	}
	return file, func() { file.Close() }, nil
}

func (h *Handler) writeImportResult(w http.ResponseWriter, err error) {
	if err == nil {
		response.JSON(w, h.Logger, http.StatusOK, ImportResult{Success: true})
		return
	}
	status, category, message := apperror.MapToHTTPStatus(err)
	h.Logger.Warn("Importação rejeitada.", map[string]interface{}{"category": category, "error": err.Error()})
	response.JSON(w, h.Logger, status, ImportResult{Success: false, Error: message})
}

// GetFiltersHandler lida com a requisição GET /v1/filters.
// @Summary Filtros atuais
// @Tags filters
// @Produce json
// @Success 200 {object} domain.SearchFilters "Filtros"
// @Router /filters [get]
func (h *Handler) GetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Store.Filters(), nil, http.StatusOK)
}

// SetFiltersHandler lida com a requisição PUT /v1/filters.
// @Summary Mescla campos nos filtros atuais
// @Tags filters
// @Accept json
// @Produce json
// @Param patch body domain.FiltersPatch true "Campos a alterar"
// @Success 200 {object} domain.SearchFilters "Filtros resultantes"
// @Failure 400 {object} domain.ErrorResponse "Valor inválido"
// @Router /filters [put]
func (h *Handler) SetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.FiltersPatch
	if err := response.Decode(r, &patch); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	filters, err := h.Store.SetFilters(patch)
	h.handleServiceResponse(w, r, filters, err, http.StatusOK)
}

// ResetFiltersHandler lida com a requisição DELETE /v1/filters.
// @Summary Restaura os filtros padrão
// @Tags filters
// @Produce json
// @Success 200 {object} domain.SearchFilters "Filtros padrão"
// @Router /filters [delete]
func (h *Handler) ResetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Store.ResetFilters(), nil, http.StatusOK)
}

// GetSelectionHandler lida com a requisição GET /v1/selection.
// @Summary Produto selecionado
// @Tags selection
// @Produce json
// @Success 200 {object} Selection "Seleção atual"
// @Router /selection [get]
func (h *Handler) GetSelectionHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.selection(), nil, http.StatusOK)
}

// SetSelectionHandler lida com a requisição PUT /v1/selection.
// @Summary Seleciona um produto
// @Description productId vazio limpa a seleção. IDs inexistentes são aceitos.
// @Tags selection
// @Accept json
// @Produce json
// @Param request body SelectionRequest true "Produto a selecionar"
// @Success 200 {object} Selection "Seleção resultante"
// @Router /selection [put]
func (h *Handler) SetSelectionHandler(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := response.Decode(r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.Store.SelectProduct(req.ProductID)
	h.handleServiceResponse(w, r, h.selection(), nil, http.StatusOK)
}

func (h *Handler) selection() Selection {
	sel := Selection{ProductID: h.Store.State().SelectedProduct}
	if product, ok := h.Store.Selected(); ok {
		sel.Product = &product
	}
	return sel
}
