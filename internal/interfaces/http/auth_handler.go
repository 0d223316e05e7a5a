package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-web/internal/application/auth"
	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/internal/domain"
)

// AuthHandler emite tokens para la API REST.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	enabled bool
}

// NewAuthHandler construye el handler de auth. enabled=false cuando no hay secret para firmar.
func NewAuthHandler(uc *auth.AuthUseCase, enabled bool) *AuthHandler {
	return &AuthHandler{uc: uc, enabled: enabled}
}

// Token godoc
// @Summary      Obtener token de la API
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	if !h.enabled {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "TOKENS_DISABLED", Message: "JWT_SECRET no configurado"})
	}
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.IssueToken(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
