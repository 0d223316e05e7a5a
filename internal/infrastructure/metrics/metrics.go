// Package metrics instrumenta la aplicación con Prometheus.
//
// Uso:
//
//	m := metrics.New(productRepo)
//	app.Use(m.Middleware())
//	app.Get("/metrics", m.Handler())
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catalogo"

// ProductCounter fuente del gauge de productos (lo satisface ProductRepository).
type ProductCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Metrics agrupa el registry y los colectores HTTP.
// Cada instancia tiene su propio registry para poder construir varias apps en tests.
type Metrics struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

// New registra los colectores de runtime, los HTTP y el gauge de productos.
// counter puede ser nil (sin gauge de catálogo).
func New(counter ProductCounter) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Peticiones HTTP en curso.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestTotal,
		m.requestDuration,
		m.inFlight,
	)

	if counter != nil {
		m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "products",
			Help:      "Productos en el catálogo.",
		}, func() float64 {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			n, err := counter.Count(ctx)
			if err != nil {
				return -1
			}
			return float64(n)
		}))
	}
	return m
}

// Registry expone el registry (tests y colectores propios).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware cuenta y mide cada petición. Usa el patrón de ruta, no la URL,
// para no disparar la cardinalidad con ids.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = "unmatched"
		}
		m.requestTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler sirve el formato de exposición de Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
