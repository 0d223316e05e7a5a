package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/pkg/config"
)

type apiProduct struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

func decodeProducts(t *testing.T, resp *http.Response) []apiProduct {
	t.Helper()
	var out []apiProduct
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func findByName(list []apiProduct, name string) (apiProduct, bool) {
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return apiProduct{}, false
}

// ──────────────────────────────────────────────────────────────────────────────
// API abierta (API_REQUIRE_AUTH=false)
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_EscenarioCatalogoInicial(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.get(t, "/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeProducts(t, resp)
	require.Len(t, list, 3)

	pc1, ok := findByName(list, "PC1")
	require.True(t, ok)
	assert.Equal(t, "2300", pc1.Price)
	assert.Equal(t, 7, pc1.Quantity)
	pc2, ok := findByName(list, "PC2")
	require.True(t, ok)
	_, ok = findByName(list, "PC3")
	require.True(t, ok)

	del := s.do(t, httptest.NewRequest(http.MethodDelete, "/products/"+itoa(pc2.ID), nil))
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	after := decodeProducts(t, s.get(t, "/products"))
	require.Len(t, after, 2)
	_, ok = findByName(after, "PC2")
	assert.False(t, ok)

	gone := s.get(t, "/products/"+itoa(pc2.ID))
	assert.Equal(t, http.StatusNotFound, gone.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(gone.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestAPI_GetByID(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.get(t, "/products/3")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p apiProduct
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "PC3", p.Name)
	assert.Equal(t, "11250", p.Price)

	bad := s.get(t, "/products/abc")
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestAPI_DeleteInexistenteEsNoOp(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.do(t, httptest.NewRequest(http.MethodDelete, "/products/999", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Len(t, decodeProducts(t, s.get(t, "/products")), 3)
}

func TestAPI_CORSPermiteCualquierOrigen(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://otro-sitio.example")
	resp := s.do(t, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	pre := httptest.NewRequest(http.MethodOptions, "/products/1", nil)
	pre.Header.Set(fiber.HeaderOrigin, "http://otro-sitio.example")
	pre.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodDelete)
	preResp := s.do(t, pre)
	assert.Equal(t, http.StatusNoContent, preResp.StatusCode)
	assert.Contains(t, preResp.Header.Get(fiber.HeaderAccessControlAllowMethods), "DELETE")
}

func TestAPI_RutaDesconocidaDevuelveJSON(t *testing.T) {
	s := newTestServer(t, nil)

	resp := s.do(t, httptest.NewRequest(http.MethodPut, "/products/1", nil))
	assert.Contains(t, []int{http.StatusMethodNotAllowed, http.StatusNotFound}, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

func TestAuthToken_DeshabilitadoSinSecret(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.JWT.Secret = "" })

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":"admin","password":"1234"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp := s.do(t, req)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// API protegida (API_REQUIRE_AUTH=true)
// ──────────────────────────────────────────────────────────────────────────────

func requireAuth(c *config.Config) { c.API.RequireAuth = true }

func issueToken(t *testing.T, s *testServer, username, password string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/token",
		strings.NewReader(`{"username":"`+username+`","password":"`+password+`"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return s.do(t, req)
}

func bearer(t *testing.T, s *testServer, username string) string {
	t.Helper()
	resp := issueToken(t, s, username, testPassword)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tok dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tok))
	assert.Equal(t, "Bearer", tok.TokenType)
	return "Bearer " + tok.Token
}

func TestAPIProtegida_SinTokenDevuelve401(t *testing.T) {
	s := newTestServer(t, requireAuth)

	resp := s.get(t, "/products")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPIProtegida_CredencialesInvalidas(t *testing.T) {
	s := newTestServer(t, requireAuth)

	resp := issueToken(t, s, "admin", "mala")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPIProtegida_UserLeePeroNoBorra(t *testing.T) {
	s := newTestServer(t, requireAuth)
	auth := bearer(t, s, "user1")

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(fiber.HeaderAuthorization, auth)
	resp := s.do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeProducts(t, resp), 3)

	del := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	del.Header.Set(fiber.HeaderAuthorization, auth)
	assert.Equal(t, http.StatusForbidden, s.do(t, del).StatusCode)
}

func TestAPIProtegida_AdminBorra(t *testing.T) {
	s := newTestServer(t, requireAuth)
	auth := bearer(t, s, "admin")

	del := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	del.Header.Set(fiber.HeaderAuthorization, auth)
	assert.Equal(t, http.StatusNoContent, s.do(t, del).StatusCode)

	get := httptest.NewRequest(http.MethodGet, "/products/1", nil)
	get.Header.Set(fiber.HeaderAuthorization, auth)
	assert.Equal(t, http.StatusNotFound, s.do(t, get).StatusCode)
}
