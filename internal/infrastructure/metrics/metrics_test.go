package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-web/internal/infrastructure/metrics"
)

type fixedCounter struct {
	n   int64
	err error
}

func (f fixedCounter) Count(context.Context) (int64, error) { return f.n, f.err }

func newApp(m *metrics.Metrics) *fiber.App {
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())
	app.Get("/products/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func scrape(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMiddleware_EtiquetaPorPatronDeRuta(t *testing.T) {
	m := metrics.New(nil)
	app := newApp(m)

	for _, id := range []string{"1", "2", "3"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/products/"+id, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	body := scrape(t, app)
	assert.Contains(t, body, `catalogo_http_requests_total{method="GET",route="/products/:id",status="200"} 3`)
	assert.NotContains(t, body, `route="/products/1"`)
}

func TestNew_GaugeDeProductos(t *testing.T) {
	m := metrics.New(fixedCounter{n: 3})

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	found := false
	for _, f := range families {
		if f.GetName() == "catalogo_products" {
			found = true
		}
	}
	assert.True(t, found, "el gauge de productos debe estar registrado")

	body := scrape(t, newApp(m))
	assert.True(t, strings.Contains(body, "catalogo_products 3"))
}

func TestNew_GaugeConErrorDevuelveMenosUno(t *testing.T) {
	m := metrics.New(fixedCounter{err: errors.New("db caída")})

	body := scrape(t, newApp(m))
	assert.Contains(t, body, "catalogo_products -1")
}
