// Package metrics expõe as métricas Prometheus do serviço: tráfego HTTP e
// indicadores do inventário atualizados a cada mudança de estado.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"goinventory/internal/domain"
	"goinventory/internal/query"
)

// Metrics mantém um registry próprio (não o global) para facilitar testes.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	products   prometheus.Gauge
	categories prometheus.Gauge
	movements  prometheus.Gauge
	stockValue prometheus.Gauge
	stockLevel *prometheus.GaugeVec
	stateError prometheus.Gauge
}

// New inicializa o registry e registra todas as métricas.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "goinventory_http_requests_total",
			Help: "Requisições HTTP por rota, método e status.",
		}, []string{"route", "method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "goinventory_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP por rota.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		products: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "goinventory_products",
			Help: "Quantidade de produtos cadastrados.",
		}),
		categories: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "goinventory_categories",
			Help: "Quantidade de categorias cadastradas.",
		}),
		movements: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "goinventory_stock_movements",
			Help: "Tamanho do log de movimentações.",
		}),
		stockValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "goinventory_stock_value",
			Help: "Valor total em estoque (preço x quantidade).",
		}),
		stockLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "goinventory_products_by_stock_level",
			Help: "Produtos por nível de estoque.",
		}, []string{"level"}),
		stateError: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "goinventory_state_error",
			Help: "1 quando o estado do inventário carrega um erro.",
		}),
	}
	registry.MustRegister(
		m.requestsTotal, m.requestDuration,
		m.products, m.categories, m.movements, m.stockValue, m.stockLevel, m.stateError,
		collectors.NewGoCollector(),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Handler devolve o http.Handler do endpoint /metrics.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// Registry expõe o registry para testes e métricas adicionais.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware registra contagem e duração de cada requisição.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveState atualiza os indicadores do inventário. Pensado para ser
// registrado com Store.Subscribe.
func (m *Metrics) ObserveState(state domain.InventoryState) {
	m.products.Set(float64(len(state.Products)))
	m.categories.Set(float64(len(state.Categories)))
	m.movements.Set(float64(len(state.Movements)))

	var value float64
	for _, p := range state.Products {
		value += p.Value()
	}
	m.stockValue.Set(value)

	d := query.StockDistribution(state.Products)
	m.stockLevel.WithLabelValues(string(domain.StockLevelInStock)).Set(float64(d.InStock))
	m.stockLevel.WithLabelValues(string(domain.StockLevelLowStock)).Set(float64(d.LowStock))
	m.stockLevel.WithLabelValues(string(domain.StockLevelOutOfStock)).Set(float64(d.OutOfStock))

	if state.Error != "" {
		m.stateError.Set(1)
	} else {
		m.stateError.Set(0)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
