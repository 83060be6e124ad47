// Package metrics expone contadores Prometheus de HTTP, ventas del PDV y cambios de preferencias.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/chipaflow-api/internal/application/pos"
	"github.com/jhoicas/chipaflow-api/internal/application/settings"
)

const namespace = "chipaflow"

var _ pos.SaleRecorder = (*Metrics)(nil)

// Metrics colectores registrados en un registry propio (no el global).
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	sales        *prometheus.CounterVec
	salesAmount  *prometheus.CounterVec
	settings     *prometheus.CounterVec
}

// New crea y registra los colectores, más los de proceso y runtime de Go.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		sales: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pdv_sales_total",
			Help:      "Vendas registradas no PDV por forma de pagamento.",
		}, []string{"method"}),
		salesAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pdv_sales_amount_total",
			Help:      "Valor vendido no PDV (R$) por forma de pagamento.",
		}, []string{"method"}),
		settings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_changes_total",
			Help:      "Escrituras de preferências por chave.",
		}, []string{"key"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration, m.sales, m.salesAmount, m.settings,
	)
	return m
}

// Registry para tests y para colectores adicionales.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler endpoint de scrape en formato de exposición de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest registra una petición terminada. route es el patrón, no la URL, para acotar cardinalidad.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SaleRegistered implementa pos.SaleRecorder.
func (m *Metrics) SaleRegistered(method string, total decimal.Decimal) {
	m.sales.WithLabelValues(method).Inc()
	m.salesAmount.WithLabelValues(method).Add(total.InexactFloat64())
}

// WatchSettings cuenta cada cambio publicado por el servicio de preferencias.
func (m *Metrics) WatchSettings(svc *settings.Service) (unsubscribe func()) {
	return svc.Subscribe(func(c settings.Change) {
		m.settings.WithLabelValues(c.Key).Inc()
	})
}
