package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-web/pkg/logger"
)

// RequestLogger registra método, ruta, status, latencia y request id de cada petición.
// Debe ir después de requestid.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		rid, _ := c.Locals("requestid").(string)
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", rid).
			Msg("petición HTTP")
		return err
	}
}
