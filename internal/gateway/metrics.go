package gateway

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the gateway's Prometheus collectors: inbound page traffic
// and outbound backend calls.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	backendTotal    *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	sessionsActive  prometheus.Gauge
}

// NewMetrics registers the gateway collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_http_requests_total",
		Help: "Total number of HTTP requests served by the gateway",
	}, []string{"method", "path", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gateway_http_request_duration_seconds",
		Help:    "Duration of HTTP requests served by the gateway",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	backendTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_requests_total",
		Help: "Total number of requests issued to the notes backend",
	}, []string{"method", "endpoint", "status"})

	backendDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_request_duration_seconds",
		Help:    "Duration of requests issued to the notes backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	sessionsActive := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gateway_sessions_active",
		Help: "Number of live browser sessions",
	})

	registry.MustRegister(requestTotal, requestDuration, backendTotal, backendDuration, sessionsActive)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		backendTotal:    backendTotal,
		backendDuration: backendDuration,
		sessionsActive:  sessionsActive,
	}
}

// Handler exposes the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// ObserveBackendRequest implements api.Observer. A status of zero marks a
// transport failure.
func (m *Metrics) ObserveBackendRequest(method, endpoint string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.backendTotal.WithLabelValues(method, endpoint, label).Inc()
	m.backendDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// SetActiveSessions records the registry size.
func (m *Metrics) SetActiveSessions(n int) {
	m.sessionsActive.Set(float64(n))
}

// Middleware captures per-request metrics for the gateway itself.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())

		m.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration.Seconds())
	}
}
