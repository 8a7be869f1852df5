package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/unrolled/secure"

	_ "goinventory/docs" // registra a especificação OpenAPI
	"goinventory/internal/api/category"
	"goinventory/internal/api/inventory"
	"goinventory/internal/api/product"
	"goinventory/internal/api/stock"
	"goinventory/internal/pkg/cache"
	appmiddleware "goinventory/internal/pkg/middleware"
	"goinventory/internal/pkg/logger"
	"goinventory/internal/pkg/metrics"
)

const requestTimeout = 30 * time.Second

// Deps reúne os Handlers e a infraestrutura injetados pelo main.
type Deps struct {
	Products   *product.Handler
	Categories *category.Handler
	Stock      *stock.Handler
	Inventory  *inventory.Handler

	Metrics *metrics.Metrics
	Logger  logger.Logger

	// Cache nil desliga o rate limiter.
	Cache           cache.Client
	RateLimit       int
	RateLimitPeriod time.Duration

	Production bool
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        deps.Production,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      !deps.Production,
	})

	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		secureMiddleware.Handler,
		middleware.Timeout(requestTimeout),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	// --- Rotas de infraestrutura ---
	r.Get("/ping", PingHandler)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		if deps.Cache != nil {
			r.Use(appmiddleware.RateLimiter(deps.Cache, deps.RateLimit, deps.RateLimitPeriod, deps.Logger))
		}

		r.Route("/products", func(r chi.Router) {
			r.Get("/", deps.Products.ListProductsHandler)
			r.Post("/", deps.Products.CreateProductHandler)
			r.Get("/{id}", deps.Products.GetProductByIDHandler)
			r.Patch("/{id}", deps.Products.UpdateProductHandler)
			r.Delete("/{id}", deps.Products.DeleteProductHandler)
			r.Put("/{id}/stock", deps.Stock.SetStockHandler)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", deps.Categories.ListCategoriesHandler)
			r.Post("/", deps.Categories.CreateCategoryHandler)
			r.Patch("/{id}", deps.Categories.UpdateCategoryHandler)
			r.Delete("/{id}", deps.Categories.DeleteCategoryHandler)
		})

		r.Get("/movements", deps.Stock.ListMovementsHandler)
		r.Post("/movements", deps.Stock.RecordMovementHandler)

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/state", deps.Inventory.StateHandler)
			r.Post("/reload", deps.Inventory.ReloadHandler)
			r.Get("/stats", deps.Inventory.StatsHandler)
			r.Get("/alerts", deps.Inventory.AlertsHandler)
			r.Get("/charts", deps.Inventory.ChartsHandler)
			r.Get("/export", deps.Inventory.ExportHandler)
			r.Post("/import", deps.Inventory.ImportHandler)
		})

		r.Get("/filters", deps.Inventory.GetFiltersHandler)
		r.Put("/filters", deps.Inventory.SetFiltersHandler)
		r.Delete("/filters", deps.Inventory.ResetFiltersHandler)

		r.Get("/selection", deps.Inventory.GetSelectionHandler)
		r.Put("/selection", deps.Inventory.SetSelectionHandler)
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
