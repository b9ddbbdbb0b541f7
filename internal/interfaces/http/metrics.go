package http

import (
	"strconv"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

// RegisterMetrics registra los colectores en el registry por defecto.
// Llamar una sola vez en el arranque.
func RegisterMetrics() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestLatency)
}

// MetricsMiddleware observa cada request con la ruta registrada (no el
// path crudo, para no explotar la cardinalidad con ids).
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		requestsTotal.WithLabelValues(route, c.Method(), status).Inc()
		requestLatency.WithLabelValues(route, c.Method(), status).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler expone /metrics (promhttp detrás del adaptor de Fiber).
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
