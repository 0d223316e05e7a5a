package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-web/internal/application/auth"
	"github.com/jhoicas/Catalogo-web/internal/application/usecase"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/metrics"
	"github.com/jhoicas/Catalogo-web/pkg/config"
	"github.com/jhoicas/Catalogo-web/pkg/logger"
	"github.com/jhoicas/Catalogo-web/pkg/money"
)

// RouterDeps dependencias para construir la aplicación HTTP.
type RouterDeps struct {
	Config     *config.Config
	Log        *logger.Logger
	ProductUC  *usecase.ProductUseCase
	CatalogPDF *usecase.CatalogPDFUseCase
	AuthUC     *auth.AuthUseCase
	Money      *money.Formatter
	Sessions   fiber.Storage    // nil = sesiones en memoria
	Metrics    *metrics.Metrics // nil = sin /metrics
}

// NewApp construye la app Fiber completa: middlewares, flujo web, API REST, métricas y docs.
func NewApp(deps RouterDeps) (*fiber.App, error) {
	cfg := deps.Config
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	engine, err := newViewEngine(deps.Money)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ErrorHandler: errorHandler(log.Named("http")),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log.Named("http")))
	if deps.Metrics != nil && cfg.Metrics.Enabled {
		app.Use(deps.Metrics.Middleware())
		app.Get(cfg.Metrics.Path, deps.Metrics.Handler())
	}

	// Swagger UI: http://localhost:<port>/docs (solo si el documento existe)
	if _, err := os.Stat(cfg.Docs.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     cfg.Docs.Path,
			Title:    "Catálogo API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	Router(app, deps)
	return app, nil
}

// Router registra la API REST y la tabla de rutas web.
func Router(app *fiber.App, deps RouterDeps) {
	cfg := deps.Config
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	// API REST: CORS abierto; credencial solo si API_REQUIRE_AUTH
	apiCORS := cors.New(cors.Config{
		AllowOrigins: cfg.API.CORSOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})

	authHandler := NewAuthHandler(deps.AuthUC, cfg.JWT.Secret != "")
	app.Post("/auth/token", apiCORS, authHandler.Token)

	productHandler := NewProductHandler(deps.ProductUC)
	products := app.Group("/products", apiCORS)
	adminOnly := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.API.RequireAuth {
		products.Use(AuthMiddleware(cfg.JWT.Secret))
		adminOnly = RequireRole(entity.RoleAdmin)
	}
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Flujo web con sesión
	store := newSessionStore(SessionConfig{
		CookieName: cfg.Session.CookieName,
		Expiration: cfg.Session.Expiration,
		Secure:     cfg.Session.Secure,
		Storage:    deps.Sessions,
	})
	gate := NewSessionGate(store, deps.AuthUC, log.Named("access"))
	web := NewWebHandler(deps.ProductUC, deps.CatalogPDF, deps.AuthUC, store, log.Named("web"))
	registerWebRoutes(app, WebRoutes(web), gate)
}
