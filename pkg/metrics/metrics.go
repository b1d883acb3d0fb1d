package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	UpstreamRequests    *prometheus.CounterVec
	UpstreamDuration    *prometheus.HistogramVec
	CacheEvents         *prometheus.CounterVec
}

// New регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled by the gateway",
			ConstLabels: constLabels,
		}, []string{"route", "method", "code"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by route",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),

		UpstreamRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Requests to the unisport platform API",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		UpstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Upstream request latency by operation",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		CacheEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_events_total",
			Help:        "Availability cache hits, misses, stale entries and discarded responses",
			ConstLabels: constLabels,
		}, []string{"kind", "event"}),
	}
}

// ObserveHTTP фиксирует обработанный HTTP-запрос
func (m *Metrics) ObserveHTTP(route, method string, code int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveUpstream фиксирует запрос к платформе
func (m *Metrics) ObserveUpstream(operation, outcome string, elapsed time.Duration) {
	m.UpstreamRequests.WithLabelValues(operation, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveCache фиксирует событие кеша доступности
func (m *Metrics) ObserveCache(kind, event string) {
	m.CacheEvents.WithLabelValues(kind, event).Inc()
}
