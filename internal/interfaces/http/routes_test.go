package http_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-web/internal/domain/access"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/rbac"
	apphttp "github.com/jhoicas/Catalogo-web/internal/interfaces/http"
)

// Rutas fuera de la tabla de políticas (punto de entrada y salida de la sesión).
var publicPaths = map[string]bool{
	"/login":         true,
	"/logout":        true,
	"/notAuthorized": true,
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de rutas contra la tabla de políticas
// ──────────────────────────────────────────────────────────────────────────────

func TestWebRoutes_CoherentesConLaPolitica(t *testing.T) {
	en, err := rbac.NewEnforcer(access.DefaultPolicy(), nil)
	require.NoError(t, err)

	for _, r := range apphttp.WebRoutes(&apphttp.WebHandler{}) {
		r := r
		t.Run(r.Method+" "+r.Path, func(t *testing.T) {
			require.NotNil(t, r.Handler, "toda ruta debe tener handler")
			require.NotEmpty(t, r.Name)

			if publicPaths[r.Path] {
				assert.True(t, r.Public(), "%s debe ser pública", r.Path)
				return
			}
			require.False(t, r.Public(), "%s no está en la lista pública y debe exigir sesión", r.Path)

			// El rol de la ruta es el de la regla más específica que la cubre.
			required := en.RequiredRoles(r.Path)
			require.NotEmpty(t, required, "%s no está cubierta por la política", r.Path)
			assert.Equal(t, required[0], r.Role, "rol de %s", r.Path)
		})
	}
}

func TestWebRoutes_PrefijosDeterminanRol(t *testing.T) {
	for _, r := range apphttp.WebRoutes(&apphttp.WebHandler{}) {
		switch {
		case strings.HasPrefix(r.Path, "/admin/"):
			assert.Equal(t, entity.RoleAdmin, r.Role, r.Path)
		case strings.HasPrefix(r.Path, "/user/"):
			assert.Equal(t, entity.RoleUser, r.Role, r.Path)
		}
	}
}

func TestWebRoutes_SinDuplicados(t *testing.T) {
	seen := map[string]bool{}
	names := map[string]bool{}
	for _, r := range apphttp.WebRoutes(&apphttp.WebHandler{}) {
		key := r.Method + " " + r.Path
		assert.False(t, seen[key], "ruta duplicada %s", key)
		assert.False(t, names[r.Name], "nombre duplicado %s", r.Name)
		seen[key] = true
		names[r.Name] = true
	}
}

func TestWebRoutes_NewProductExigeAdmin(t *testing.T) {
	for _, r := range apphttp.WebRoutes(&apphttp.WebHandler{}) {
		if r.Path == "/admin/newProduct" {
			assert.Equal(t, entity.RoleAdmin, r.Role)
			return
		}
	}
	t.Fatal("/admin/newProduct no está en la tabla")
}

func TestPolicy_RequiredRolesEnOrden(t *testing.T) {
	en, err := rbac.NewEnforcer(access.DefaultPolicy(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{entity.RoleUser, access.RoleAuthenticated}, en.RequiredRoles("/user/index"))
	assert.Equal(t, []string{entity.RoleAdmin, access.RoleAuthenticated}, en.RequiredRoles("/admin/saveProduct"))
	assert.Equal(t, []string{access.RoleAuthenticated}, en.RequiredRoles("/"))
}
