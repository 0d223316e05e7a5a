// Package rbac implementa el control de acceso por rol sobre casbin.
package rbac

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/util"

	"github.com/jhoicas/Catalogo-web/internal/domain"
	"github.com/jhoicas/Catalogo-web/internal/domain/access"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
)

// Modelo RBAC sin dominios: p = rol, patrón; g = usuario, rol.
const modelText = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj)
`

// Enforcer evalúa la tabla de políticas contra los roles de cada usuario.
type Enforcer struct {
	e *casbin.SyncedEnforcer
}

// NewEnforcer carga las reglas en orden y las membresías de rol de los usuarios aprovisionados.
// Todo usuario recibe además el rol implícito access.RoleAuthenticated.
func NewEnforcer(rules []access.Rule, users []*entity.User) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac: modelo: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac: enforcer: %w", err)
	}
	for _, r := range rules {
		if _, err := e.AddPolicy(r.Role, r.Pattern); err != nil {
			return nil, fmt.Errorf("rbac: política %s: %w", r.Pattern, err)
		}
	}
	for _, u := range users {
		roles := append([]string{access.RoleAuthenticated}, u.Roles...)
		for _, role := range roles {
			if _, err := e.AddRoleForUser(u.Username, role); err != nil {
				return nil, fmt.Errorf("rbac: rol %s para %s: %w", role, u.Username, err)
			}
		}
	}
	return &Enforcer{e: e}, nil
}

// RequiredRoles devuelve, en orden de carga, los roles de todas las políticas que coinciden con path.
func (en *Enforcer) RequiredRoles(path string) []string {
	roles, _ := en.requiredRoles(path)
	return roles
}

func (en *Enforcer) requiredRoles(path string) ([]string, error) {
	policies, err := en.e.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("rbac: leer políticas: %w", err)
	}
	var roles []string
	for _, p := range policies {
		// p = rol, patrón
		if len(p) == 2 && util.KeyMatch(path, p[1]) {
			roles = append(roles, p[0])
		}
	}
	return roles, nil
}

// HasRole indica si el usuario tiene el rol (access.RoleAuthenticated incluido).
func (en *Enforcer) HasRole(username, role string) (bool, error) {
	return en.e.HasRoleForUser(username, role)
}

// Authorize exige que el usuario cumpla todas las reglas que coinciden con path.
// Devuelve domain.ErrForbidden en caso contrario.
func (en *Enforcer) Authorize(username, path string) error {
	required, err := en.requiredRoles(path)
	if err != nil {
		return err
	}
	if len(required) == 0 {
		return nil
	}
	for _, role := range required {
		ok, err := en.e.HasRoleForUser(username, role)
		if err != nil {
			return fmt.Errorf("rbac: consultar rol: %w", err)
		}
		if !ok {
			return domain.ErrForbidden
		}
	}
	return nil
}
