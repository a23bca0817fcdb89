// Package metrics instrumentación Prometheus de la API.
//
// Métricas HTTP por ruta más contadores de dominio (pedidos, cambios de estado, logins).
// Se exponen en GET /metrics:
//
//	app.Use(metrics.Middleware())
//	app.Get("/metrics", metrics.Handler())
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "food_order"

// ── HTTP ──────────────────────────────────────────────────────────────────────

var (
	// RequestDuration duración de cada petición por método, ruta y status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal peticiones atendidas.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
)

// ── Dominio ───────────────────────────────────────────────────────────────────

var (
	// OrdersPlaced pedidos creados.
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total orders placed.",
	})

	// OrderRevenue suma de totales de pedidos creados.
	OrderRevenue = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "revenue_total",
		Help:      "Sum of order totals at placement time.",
	})

	// OrderStatusChanges cambios de estado por estado destino y actor (user | admin).
	OrderStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Order status changes by target status and actor role.",
		},
		[]string{"status", "actor"},
	)

	// Logins intentos de login por resultado (ok o código de error).
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		},
		[]string{"result"},
	)
)

// DefaultRegistry registro Prometheus de la aplicación.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		OrdersPlaced,
		OrderRevenue,
		OrderStatusChanges,
		Logins,
	)
}

// Middleware registra duración y conteo de cada petición. Usa el patrón de la ruta
// (ej. /api/orders/:id) para no disparar la cardinalidad con IDs.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Response().StatusCode())
		RequestDuration.WithLabelValues(c.Method(), path, status).Observe(time.Since(start).Seconds())
		RequestTotal.WithLabelValues(c.Method(), path, status).Inc()
		return err
	}
}

// Handler expone el registro en formato de texto Prometheus.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{}))
}
