package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/pkg/jwt"
)

// Locals keys para el usuario y los roles del token en Fiber.
const (
	LocalUsername = "username"
	LocalRoles    = "roles"
)

// AuthMiddleware valida el Bearer Token JWT y carga usuario y roles en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRoles, claims.Roles)
		return c.Next()
	}
}

// RequireRole exige que el token tenga al menos uno de los roles. Debe ir después de AuthMiddleware.
//   - 401 MISSING_ROLE → token sin roles.
//   - 403 FORBIDDEN    → ningún rol coincide.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles := GetRoles(c)
		if len(roles) == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye roles"})
		}
		for _, r := range roles {
			for _, a := range allowed {
				if r == a {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente para esta operación"})
	}
}

// GetUsername devuelve el usuario del token (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRoles devuelve los roles del token (después del middleware de auth).
func GetRoles(c *fiber.Ctx) []string {
	r, _ := c.Locals(LocalRoles).([]string)
	return r
}
