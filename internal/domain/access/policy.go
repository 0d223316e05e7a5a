// Package access contiene la tabla de políticas ruta → rol del flujo web.
package access

import "github.com/jhoicas/Catalogo-web/internal/domain/entity"

// RoleAuthenticated lo cumple cualquier principal autenticado.
const RoleAuthenticated = "AUTHENTICATED"

// Rule asocia un patrón de ruta (comodín "*" al final) con el rol exigido.
type Rule struct {
	Pattern string
	Role    string
}

// DefaultPolicy se evalúa de arriba hacia abajo; toda regla cuyo patrón coincida debe cumplirse.
func DefaultPolicy() []Rule {
	return []Rule{
		{Pattern: "/user/*", Role: entity.RoleUser},
		{Pattern: "/admin/*", Role: entity.RoleAdmin},
		{Pattern: "/*", Role: RoleAuthenticated},
	}
}
