package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/Catalogo-web/internal/application/auth"
	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/internal/application/usecase"
	"github.com/jhoicas/Catalogo-web/internal/domain"
	"github.com/jhoicas/Catalogo-web/pkg/logger"
)

const homePath = "/user/index"

// WebHandler maneja el flujo web con sesión (vistas HTML).
type WebHandler struct {
	products *usecase.ProductUseCase
	pdf      *usecase.CatalogPDFUseCase
	auth     *auth.AuthUseCase
	sessions *session.Store
	log      *logger.Logger
}

// NewWebHandler construye el handler web.
func NewWebHandler(products *usecase.ProductUseCase, pdf *usecase.CatalogPDFUseCase, authUC *auth.AuthUseCase, sessions *session.Store, log *logger.Logger) *WebHandler {
	return &WebHandler{products: products, pdf: pdf, auth: authUC, sessions: sessions, log: log}
}

// render añade el principal y el título a los datos de la vista.
func render(c *fiber.Ctx, status int, view, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["Principal"] = GetPrincipal(c)
	return c.Status(status).Render(view, data, layoutMain)
}

func renderNotFound(c *fiber.Ctx, msg string) error {
	return render(c, fiber.StatusNotFound, "not-found", "No encontrado", fiber.Map{"Message": msg})
}

// parseID convierte el id de query o formulario; false si no es un entero positivo.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Home redirige al listado.
func (h *WebHandler) Home(c *fiber.Ctx) error {
	return c.Redirect(homePath, fiber.StatusFound)
}

// Index lista todos los productos.
func (h *WebHandler) Index(c *fiber.Ctx) error {
	items, err := h.products.List(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "product", "Productos", fiber.Map{"Products": items})
}

// NewProduct formulario vacío de alta.
func (h *WebHandler) NewProduct(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "new-product", "Nuevo producto", fiber.Map{
		"Form":   dto.ProductForm{},
		"Errors": map[string]string{},
	})
}

// SaveProduct valida y guarda un producto nuevo. Con errores re-renderiza el formulario (400)
// conservando lo que escribió el usuario.
func (h *WebHandler) SaveProduct(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	out, err := h.products.Create(c.UserContext(), form)
	if ve, ok := domain.AsValidationError(err); ok {
		return render(c, fiber.StatusBadRequest, "new-product", "Nuevo producto", fiber.Map{
			"Form":   form,
			"Errors": ve.Fields,
		})
	}
	if err != nil {
		return err
	}
	h.log.Info().Int64("id", out.ID).Str("name", out.Name).Msg("producto creado")
	return c.Redirect(homePath, fiber.StatusFound)
}

// ViewEditProduct carga el producto por id en el formulario de edición; 404 si no existe.
func (h *WebHandler) ViewEditProduct(c *fiber.Ctx) error {
	id, ok := parseID(c.Query("id"))
	if !ok {
		return renderNotFound(c, "Identificador de producto inválido.")
	}
	p, err := h.products.GetByID(c.UserContext(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return renderNotFound(c, "El producto "+strconv.FormatInt(id, 10)+" no existe.")
	}
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "view-product", "Editar producto", fiber.Map{
		"Form": dto.ProductForm{
			ID:       strconv.FormatInt(p.ID, 10),
			Name:     p.Name,
			Price:    p.Price.String(),
			Quantity: strconv.Itoa(p.Quantity),
		},
		"Errors": map[string]string{},
	})
}

// EditProduct reescribe el producto identificado por el id del formulario; 404 si no existe.
func (h *WebHandler) EditProduct(c *fiber.Ctx) error {
	var form dto.ProductForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	id, ok := parseID(form.ID)
	if !ok {
		return renderNotFound(c, "Identificador de producto inválido.")
	}
	out, err := h.products.Update(c.UserContext(), id, form)
	if ve, ok := domain.AsValidationError(err); ok {
		return render(c, fiber.StatusBadRequest, "view-product", "Editar producto", fiber.Map{
			"Form":   form,
			"Errors": ve.Fields,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return renderNotFound(c, "El producto "+strconv.FormatInt(id, 10)+" no existe.")
	}
	if err != nil {
		return err
	}
	h.log.Info().Int64("id", out.ID).Str("name", out.Name).Msg("producto actualizado")
	return c.Redirect(homePath, fiber.StatusFound)
}

// Delete borra por id (sin error si no existe) y vuelve al listado.
func (h *WebHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c.Query("id"))
	if !ok {
		return renderNotFound(c, "Identificador de producto inválido.")
	}
	if err := h.products.Delete(c.UserContext(), id); err != nil {
		return err
	}
	h.log.Info().Int64("id", id).Msg("producto eliminado")
	return c.Redirect(homePath, fiber.StatusFound)
}

// FindProduct busca por nombre exacto.
func (h *WebHandler) FindProduct(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	data := fiber.Map{"Search": search, "Searched": search != ""}
	if search == "" {
		return render(c, fiber.StatusOK, "find-product", "Buscar", data)
	}
	p, err := h.products.FindByName(c.UserContext(), search)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	data["Product"] = p
	return render(c, fiber.StatusOK, "find-product", "Buscar", data)
}

// ExportPDF descarga el catálogo en PDF.
func (h *WebHandler) ExportPDF(c *fiber.Ctx) error {
	doc, err := h.pdf.Export(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo.pdf"`)
	return c.Send(doc)
}

// LoginForm formulario de login; ?error y ?logout muestran avisos.
func (h *WebHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "login", "Entrar", fiber.Map{
		"Error":     c.Query("error") != "",
		"LoggedOut": c.Query("logout") != "",
	})
}

// Login autentica y abre la sesión con un id nuevo. Vuelve a la ruta pedida antes del login.
func (h *WebHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Redirect("/login?error=1", fiber.StatusFound)
	}
	user, err := h.auth.Authenticate(c.UserContext(), strings.TrimSpace(in.Username), in.Password)
	if errors.Is(err, domain.ErrUnauthorized) {
		h.log.Warn().Str("user", in.Username).Msg("login fallido")
		return c.Redirect("/login?error=1", fiber.StatusFound)
	}
	if err != nil {
		return err
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	target, _ := sess.Get(sessionTargetKey).(string)
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Delete(sessionTargetKey)
	sess.Set(sessionUserKey, user.Username)
	if err := sess.Save(); err != nil {
		return err
	}
	h.log.Info().Str("user", user.Username).Msg("sesión iniciada")
	return c.Redirect(safeTarget(target), fiber.StatusFound)
}

// safeTarget solo acepta rutas locales para no redirigir fuera del sitio.
func safeTarget(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return homePath
	}
	return target
}

// Logout destruye la sesión y muestra el login con aviso.
func (h *WebHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	if username, _ := sess.Get(sessionUserKey).(string); username != "" {
		h.log.Info().Str("user", username).Msg("sesión cerrada")
	}
	if err := sess.Destroy(); err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "login", "Entrar", fiber.Map{"LoggedOut": true})
}

// NotAuthorized página de acceso denegado.
func (h *WebHandler) NotAuthorized(c *fiber.Ctx) error {
	return render(c, fiber.StatusForbidden, "notAuthorized", "Acceso denegado", nil)
}
