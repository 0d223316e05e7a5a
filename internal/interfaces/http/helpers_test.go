package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"

	"github.com/jhoicas/Catalogo-web/internal/application/auth"
	"github.com/jhoicas/Catalogo-web/internal/application/bootstrap"
	"github.com/jhoicas/Catalogo-web/internal/application/usecase"
	"github.com/jhoicas/Catalogo-web/internal/domain/access"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Catalogo-web/internal/infrastructure/pdf"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/rbac"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/Catalogo-web/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-web/pkg/config"
	"github.com/jhoicas/Catalogo-web/pkg/logger"
	"github.com/jhoicas/Catalogo-web/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "1234"
)

type testServer struct {
	app  *fiber.App
	repo repository.ProductRepository
	cfg  *config.Config
}

// newTestServer arma la app completa sobre SQLite en memoria con el catálogo inicial (PC1, PC2, PC3).
func newTestServer(t *testing.T, mutate func(*config.Config)) *testServer {
	t.Helper()
	ctx := context.Background()

	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)
	cfg.Docs.FilePath = ""
	cfg.JWT.Secret = testJWTSecret
	if mutate != nil {
		mutate(cfg)
	}

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	repo := sqlite.NewProductRepository(db)
	tx := sqlite.NewTxRunner(db)
	require.NoError(t, bootstrap.SeedProducts(ctx, tx, repo, logger.Nop()))

	users, err := auth.ProvisionUsers(auth.DefaultUsers(), testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	enforcer, err := rbac.NewEnforcer(access.DefaultPolicy(), users)
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase(memory.NewUserRepository(users...), enforcer, auth.JWTConfig{
		Secret: cfg.JWT.Secret, ExpMinutes: 15, Issuer: "catalogo-web-test",
	})

	formatter := money.NewFormatter(language.Spanish)
	productUC := usecase.NewProductUseCase(repo, tx)
	pdfUC := usecase.NewCatalogPDFUseCase(productUC, infrapdf.NewMarotoCatalogGenerator("Catálogo", formatter))

	app, err := apphttp.NewApp(apphttp.RouterDeps{
		Config:     cfg,
		Log:        logger.Nop(),
		ProductUC:  productUC,
		CatalogPDF: pdfUC,
		AuthUC:     authUC,
		Money:      formatter,
	})
	require.NoError(t, err)
	return &testServer{app: app, repo: repo, cfg: cfg}
}

// do lanza la petición con las cookies indicadas y devuelve la respuesta.
func (s *testServer) do(t *testing.T, req *http.Request, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *testServer) get(t *testing.T, target string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	return s.do(t, httptest.NewRequest(http.MethodGet, target, nil), cookies...)
}

func (s *testServer) postForm(t *testing.T, target string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return s.do(t, req, cookies...)
}

// login inicia sesión y devuelve la cookie de sesión.
func (s *testServer) login(t *testing.T, username string, cookies ...*http.Cookie) *http.Cookie {
	t.Helper()
	resp := s.postForm(t, "/login", url.Values{"username": {username}, "password": {testPassword}}, cookies...)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.NotContains(t, resp.Header.Get(fiber.HeaderLocation), "error")
	c := sessionCookie(resp, s.cfg.Session.CookieName)
	require.NotNil(t, c, "el login debe fijar la cookie de sesión")
	return c
}

func sessionCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
