package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/pkg/logger"
)

// isAPIPath rutas que responden JSON en lugar de HTML.
func isAPIPath(path string) bool {
	return path == "/products" || strings.HasPrefix(path, "/products/") || strings.HasPrefix(path, "/auth/")
}

// errorHandler traduce errores no manejados: JSON para la API, página de error para el flujo web.
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "error interno"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}

		if isAPIPath(c.Path()) {
			return c.Status(code).JSON(dto.ErrorResponse{Code: errorCode(code), Message: msg})
		}
		if code == fiber.StatusNotFound {
			return renderNotFound(c, "")
		}
		if rerr := render(c, code, "error", "Error", fiber.Map{"Status": code, "Message": msg}); rerr != nil {
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "INTERNAL"
	}
}
