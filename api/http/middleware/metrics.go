package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records basic HTTP metrics for Fiber.
//
//   - http_request_duration_seconds{method,path,status} histogram
//   - http_requests_inflight gauge
//   - http_request_errors_total{method,path,status} counter (4xx/5xx)
type Metrics struct {
	registry    *prometheus.Registry
	reqDuration *prometheus.HistogramVec
	reqInflight prometheus.Gauge
	reqErrors   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them in a dedicated registry.
func NewMetrics(service string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: service,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "path", "status"}),
		reqInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: service,
			Name:      "http_requests_inflight",
			Help:      "HTTP requests currently being served.",
		}),
		reqErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: service,
			Name:      "http_request_errors_total",
			Help:      "HTTP requests that ended with a 4xx/5xx status.",
		}, []string{"method", "path", "status"}),
	}
	m.registry.MustRegister(m.reqDuration, m.reqInflight, m.reqErrors)
	return m
}

// Handler is added with app.Use().
func (m *Metrics) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.reqInflight.Inc()
		err := c.Next()
		m.reqInflight.Dec()

		code := c.Response().StatusCode()
		if err != nil {
			code = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
		}
		status := strconv.Itoa(code)
		// route template, not the raw path, to keep label cardinality bounded
		path := c.Route().Path
		method := c.Method()

		m.reqDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		if code >= 400 {
			m.reqErrors.WithLabelValues(method, path, status).Inc()
		}
		return err
	}
}

// Expose serves the registry in Prometheus text format.
func (m *Metrics) Expose() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
