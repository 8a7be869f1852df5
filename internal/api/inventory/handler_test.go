package inventory_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goinventory/internal/api/inventory"
	"goinventory/internal/domain"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/query"
	"goinventory/internal/repository/categoryrepo"
	"goinventory/internal/repository/kvstore"
	"goinventory/internal/repository/movementrepo"
	"goinventory/internal/repository/productrepo"
	"goinventory/internal/repository/snapshotrepo"
	"goinventory/internal/service/inventoryservice"
)

var fixedNow = time.Date(2025, 4, 10, 12, 30, 0, 0, time.UTC)

type fixture struct {
	store   *inventoryservice.Store
	backend *kvstore.MemoryBackend
	router  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	backend := kvstore.NewMemoryBackend()
	log := logger.NewNop()
	seq := 0
	store := inventoryservice.NewStore(inventoryservice.Repositories{
		Products:   productrepo.NewProductRepository(backend, log),
		Categories: categoryrepo.NewCategoryRepository(backend, log),
		Movements:  movementrepo.NewMovementRepository(backend, log),
		Snapshot:   snapshotrepo.NewSnapshotRepository(backend, log),
	}, log, inventoryservice.Options{
		Clock: func() time.Time { return fixedNow },
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	})
	require.NoError(t, store.LoadData(context.Background()))

	h := inventory.NewHandler(store, log)
	r := chi.NewRouter()
	r.Get("/v1/inventory/state", h.StateHandler)
	r.Post("/v1/inventory/reload", h.ReloadHandler)
	r.Get("/v1/inventory/stats", h.StatsHandler)
	r.Get("/v1/inventory/alerts", h.AlertsHandler)
	r.Get("/v1/inventory/charts", h.ChartsHandler)
	r.Get("/v1/inventory/export", h.ExportHandler)
	r.Post("/v1/inventory/import", h.ImportHandler)
	r.Get("/v1/filters", h.GetFiltersHandler)
	r.Put("/v1/filters", h.SetFiltersHandler)
	r.Delete("/v1/filters", h.ResetFiltersHandler)
	r.Get("/v1/selection", h.GetSelectionHandler)
	r.Put("/v1/selection", h.SetSelectionHandler)

	return &fixture{store: store, backend: backend, router: r}
}

func (f *fixture) do(method, target, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestStatsHandler_Seed(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/inventory/stats", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats domain.InventoryStats
	decode(t, rec, &stats)
	assert.Equal(t, 5, stats.TotalProducts)
	assert.Equal(t, 4, stats.TotalCategories)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 1, stats.OutOfStockCount)
}

func TestAlertsHandler_Seed(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/inventory/alerts", "", nil)

	var alerts query.StockAlerts
	decode(t, rec, &alerts)
	require.Len(t, alerts.LowStock, 1)
	require.Len(t, alerts.OutOfStock, 1)
	assert.Equal(t, "2", alerts.LowStock[0].ID)
	assert.Equal(t, "4", alerts.OutOfStock[0].ID)
}

func TestChartsHandler(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/inventory/charts?top=3&days=5", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var charts inventory.Charts
	decode(t, rec, &charts)
	assert.Len(t, charts.Categories, 4)
	assert.Len(t, charts.TopByValue, 3)
	assert.Len(t, charts.Activity, 5)
	assert.Equal(t, "2025-04-10", charts.Activity[4].Date)
	assert.Equal(t, 3, charts.Distribution.InStock)
}

func TestChartsHandler_InvalidParam(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/inventory/charts?top=abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHandler_Attachment(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/inventory/export", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="inventory_export_2025-04-10.json"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "\n  \"products\"")
	var doc domain.ExportDocument
	decode(t, rec, &doc)
	assert.Len(t, doc.Products, 5)
	assert.NotEmpty(t, doc.Checksum)
}

func TestImportHandler_JSONBodyRoundTrip(t *testing.T) {
	f := newFixture(t)
	exported := f.do(http.MethodGet, "/v1/inventory/export", "", nil).Body.Bytes()
	_, err := f.store.AddProduct(context.Background(), domain.ProductInput{
		Name: "Extra", Description: "d", CategoryID: "1", Status: domain.StatusActive,
	})
	require.NoError(t, err)

	rec := f.do(http.MethodPost, "/v1/inventory/import", "application/json", exported)

	require.Equal(t, http.StatusOK, rec.Code)
	var result inventory.ImportResult
	decode(t, rec, &result)
	assert.True(t, result.Success)
	assert.Len(t, f.store.State().Products, 5)
}

func TestImportHandler_Multipart(t *testing.T) {
	f := newFixture(t)
	exported := f.do(http.MethodGet, "/v1/inventory/export", "", nil).Body.Bytes()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "inventory_export_2025-04-10.json")
	require.NoError(t, err)
	_, err = part.Write(exported)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rec := f.do(http.MethodPost, "/v1/inventory/import", mw.FormDataContentType(), body.Bytes())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestImportHandler_RejectsInvalidDocument(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/v1/inventory/import", "application/json", []byte(`{"products": 1}`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var result inventory.ImportResult
	decode(t, rec, &result)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Len(t, f.store.State().Products, 5)
}

func TestReloadHandler_StorageUnavailable(t *testing.T) {
	f := newFixture(t)
	f.backend.SetUnavailable(true)

	rec := f.do(http.MethodPost, "/v1/inventory/reload", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotEmpty(t, f.store.State().Error)
}

func TestFiltersHandlers(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/v1/filters", "application/json", []byte(`{"query":"mouse","sortOrder":"desc"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	var filters domain.SearchFilters
	decode(t, rec, &filters)
	assert.Equal(t, "mouse", filters.Query)
	assert.Equal(t, domain.SortDesc, filters.SortOrder)
	assert.Equal(t, domain.SortByName, filters.SortBy)

	rec = f.do(http.MethodPut, "/v1/filters", "application/json", []byte(`{"sortBy":"color"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodDelete, "/v1/filters", "", nil)
	decode(t, rec, &filters)
	assert.Equal(t, domain.DefaultFilters(), filters)
}

func TestSelectionHandlers(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/v1/selection", "application/json", []byte(`{"productId":"3"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	var sel inventory.Selection
	decode(t, rec, &sel)
	assert.Equal(t, "3", sel.ProductID)
	require.NotNil(t, sel.Product)
	assert.Equal(t, `Monitor Samsung 24"`, sel.Product.Name)

	rec = f.do(http.MethodPut, "/v1/selection", "application/json", []byte(`{"productId":"ghost"}`))
	decode(t, rec, &sel)
	assert.Equal(t, "ghost", sel.ProductID)
	assert.Nil(t, sel.Product)

	rec = f.do(http.MethodGet, "/v1/selection", "", nil)
	assert.True(t, strings.Contains(rec.Body.String(), `"product":null`))
}
