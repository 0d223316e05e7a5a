package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/internal/domain"
	"github.com/jhoicas/Catalogo-web/pkg/logger"
)

// Claves guardadas en la sesión web.
const (
	sessionUserKey   = "username"
	sessionTargetKey = "target"
)

// LocalPrincipal key de c.Locals con el *dto.PrincipalResponse de la sesión.
const LocalPrincipal = "principal"

// SessionConfig parámetros de la cookie y del almacenamiento de sesiones.
type SessionConfig struct {
	CookieName string
	Expiration time.Duration
	Secure     bool
	Storage    fiber.Storage // nil = memoria del proceso
}

// newSessionStore construye el store de sesiones con ids uuid.
func newSessionStore(cfg SessionConfig) *session.Store {
	return session.New(session.Config{
		Expiration:     cfg.Expiration,
		Storage:        cfg.Storage,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieSecure:   cfg.Secure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		KeyGenerator:   uuid.NewString,
	})
}

// authorizer lo que el gate necesita del caso de uso de auth.
type authorizer interface {
	Principal(ctx context.Context, username string) (*dto.PrincipalResponse, error)
	Authorize(username, path, routeRole string) error
}

// SessionGate protege las rutas web: sin sesión redirige a /login, sin rol a /notAuthorized.
type SessionGate struct {
	store *session.Store
	auth  authorizer
	log   *logger.Logger
}

// NewSessionGate construye el gate.
func NewSessionGate(store *session.Store, auth authorizer, log *logger.Logger) *SessionGate {
	return &SessionGate{store: store, auth: auth, log: log}
}

// Require devuelve el middleware para una ruta que exige role (además de la tabla de políticas).
func (g *SessionGate) Require(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := g.store.Get(c)
		if err != nil {
			return err
		}
		username, _ := sess.Get(sessionUserKey).(string)
		if username == "" {
			if c.Method() == fiber.MethodGet {
				sess.Set(sessionTargetKey, c.OriginalURL())
				if err := sess.Save(); err != nil {
					return err
				}
			}
			return c.Redirect("/login", fiber.StatusFound)
		}

		principal, err := g.auth.Principal(c.UserContext(), username)
		if errors.Is(err, domain.ErrUnauthorized) {
			// El usuario ya no existe: la sesión no sirve.
			if err := sess.Destroy(); err != nil {
				return err
			}
			return c.Redirect("/login", fiber.StatusFound)
		}
		if err != nil {
			return err
		}

		if err := g.auth.Authorize(username, c.Path(), role); err != nil {
			if errors.Is(err, domain.ErrForbidden) {
				g.log.Warn().
					Str("user", username).
					Str("path", c.Path()).
					Str("role", role).
					Msg("acceso denegado")
				return c.Redirect("/notAuthorized", fiber.StatusFound)
			}
			return err
		}

		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// GetPrincipal devuelve el principal cargado por el gate (nil en rutas públicas).
func GetPrincipal(c *fiber.Ctx) *dto.PrincipalResponse {
	p, _ := c.Locals(LocalPrincipal).(*dto.PrincipalResponse)
	return p
}
