package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-web/internal/domain/access"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
)

// Route una entrada de la tabla de rutas web.
// Role vacío = ruta pública (fuera de la política); cualquier otro valor pasa por la sesión
// y por la tabla de políticas antes del handler.
type Route struct {
	Method  string
	Path    string
	Name    string
	Role    string
	Handler fiber.Handler
}

// Public indica si la ruta no exige sesión.
func (r Route) Public() bool {
	return r.Role == ""
}

// WebRoutes tabla única de rutas del flujo web. Se construye una vez al arrancar.
// /admin/newProduct queda cubierta por /admin/* (ADMIN) aunque solo muestre un formulario vacío.
func WebRoutes(h *WebHandler) []Route {
	return []Route{
		{fiber.MethodGet, "/", "home", access.RoleAuthenticated, h.Home},
		{fiber.MethodGet, "/user/index", "index", entity.RoleUser, h.Index},
		{fiber.MethodGet, "/user/findProduct", "findProduct", entity.RoleUser, h.FindProduct},
		{fiber.MethodGet, "/user/exportPdf", "exportPdf", entity.RoleUser, h.ExportPDF},
		{fiber.MethodGet, "/admin/newProduct", "newProduct", entity.RoleAdmin, h.NewProduct},
		{fiber.MethodPost, "/admin/saveProduct", "saveProduct", entity.RoleAdmin, h.SaveProduct},
		{fiber.MethodGet, "/admin/viewEditProduct", "viewEditProduct", entity.RoleAdmin, h.ViewEditProduct},
		{fiber.MethodPost, "/admin/editProduct", "editProduct", entity.RoleAdmin, h.EditProduct},
		{fiber.MethodPost, "/admin/delete", "delete", entity.RoleAdmin, h.Delete},
		{fiber.MethodGet, "/login", "loginForm", "", h.LoginForm},
		{fiber.MethodPost, "/login", "login", "", h.Login},
		{fiber.MethodGet, "/logout", "logout", "", h.Logout},
		{fiber.MethodGet, "/notAuthorized", "notAuthorized", "", h.NotAuthorized},
	}
}

// registerWebRoutes monta la tabla sobre la app; las rutas con rol llevan antes el gate de sesión.
func registerWebRoutes(app fiber.Router, routes []Route, gate *SessionGate) {
	for _, r := range routes {
		if r.Public() {
			app.Add(r.Method, r.Path, r.Handler).Name(r.Name)
			continue
		}
		app.Add(r.Method, r.Path, gate.Require(r.Role), r.Handler).Name(r.Name)
	}
}
