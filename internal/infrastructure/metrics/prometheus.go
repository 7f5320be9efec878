// Package metrics expone las métricas operativas de cada servicio en formato Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jhoicas/inventory-services/internal/application/inventory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Nombres de las métricas.
const (
	MetricRequestDurationSeconds = "http_request_duration_seconds"
	MetricRequestsTotal          = "http_requests_total"
	MetricStockLevel             = "stock_level"
	MetricStockMovementsTotal    = "stock_movements_total"
)

var (
	_ inventory.MovementRecorder   = (*Metrics)(nil)
	_ inventory.StockLevelObserver = (*Metrics)(nil)
)

// Metrics agrupa el registro propio del servicio y sus colectores.
// Seguro para uso concurrente.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	stockLevel      *prometheus.GaugeVec
	movementsTotal  *prometheus.CounterVec
}

// New crea un registro nuevo (no el global) con los colectores de Go y de proceso.
// Todas las métricas de aplicación llevan la etiqueta service.
func New(service string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricRequestDurationSeconds,
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: []float64{0.1, 0.3, 0.5, 0.7, 1, 3, 5, 7, 10},
			},
			[]string{"method", "route", "status_code"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRequestsTotal,
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status_code"},
		),
		stockLevel: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MetricStockLevel,
				Help: "Current stock level per product.",
			},
			[]string{"product_id", "product_name"},
		),
		movementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricStockMovementsTotal,
				Help: "Stock movements by type and outcome.",
			},
			[]string{"type", "outcome"},
		),
	}

	wrapped := prometheus.WrapRegistererWith(prometheus.Labels{"service": service}, registry)
	wrapped.MustRegister(m.requestDuration, m.requestsTotal, m.stockLevel, m.movementsTotal)
	return m
}

// Registry devuelve el registro del servicio.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler sirve el registro en el formato de texto de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest registra duración y conteo de una petición HTTP.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
	m.requestsTotal.WithLabelValues(method, route, code).Inc()
}

// RecordMovement cuenta un intento de movimiento de stock.
func (m *Metrics) RecordMovement(movementType, outcome string) {
	m.movementsTotal.WithLabelValues(movementType, outcome).Inc()
}

// SetStockLevel fija el gauge de stock de un producto.
func (m *Metrics) SetStockLevel(productID, productName string, quantity int) {
	m.stockLevel.WithLabelValues(productID, productName).Set(float64(quantity))
}
