package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"

	"github.com/jhoicas/Catalogo-web/internal/application/auth"
	"github.com/jhoicas/Catalogo-web/internal/application/bootstrap"
	"github.com/jhoicas/Catalogo-web/internal/application/usecase"
	"github.com/jhoicas/Catalogo-web/internal/domain/access"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Catalogo-web/internal/infrastructure/pdf"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/rbac"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/session"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Catalogo-web/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-web/pkg/config"
	"github.com/jhoicas/Catalogo-web/pkg/logger"
	"github.com/jhoicas/Catalogo-web/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Bool("api_require_auth", cfg.API.RequireAuth).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, true)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de productos")
	}
	defer store.Close()

	if cfg.App.SeedOnStart {
		if err := bootstrap.SeedProducts(ctx, store.Tx, store.Products, log.Named("bootstrap")); err != nil {
			log.Fatal().Err(err).Msg("cargar catálogo inicial")
		}
	}

	// Principales fijos: el password solo existe como hash bcrypt en memoria.
	users, err := auth.ProvisionUsers(auth.DefaultUsers(), cfg.Auth.DefaultPassword, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("aprovisionar usuarios")
	}
	enforcer, err := rbac.NewEnforcer(access.DefaultPolicy(), users)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar política de acceso")
	}
	authUC := auth.NewAuthUseCase(memory.NewUserRepository(users...), enforcer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	formatter := money.NewFormatter(language.Spanish)
	productUC := usecase.NewProductUseCase(store.Products, store.Tx)
	catalogPDFUC := usecase.NewCatalogPDFUseCase(productUC, infrapdf.NewMarotoCatalogGenerator("Catálogo de productos", formatter))

	var sessions fiber.Storage
	if cfg.Redis.URL != "" {
		redisStore, err := session.NewRedisStorage(ctx, cfg.Redis.URL, cfg.Redis.Prefix)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisStore.Close()
		sessions = redisStore
		log.Info().Msg("sesiones en Redis")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(store.Products)
	}

	app, err := httpRouter.NewApp(httpRouter.RouterDeps{
		Config:     cfg,
		Log:        log,
		ProductUC:  productUC,
		CatalogPDF: catalogPDFUC,
		AuthUC:     authUC,
		Money:      formatter,
		Sessions:   sessions,
		Metrics:    m,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construir aplicación HTTP")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
