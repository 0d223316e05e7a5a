package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/Catalogo-web/pkg/money"
)

//go:embed views
var viewsFS embed.FS

// layoutMain layout común de todas las vistas HTML.
const layoutMain = "layouts/main"

// newViewEngine carga las plantillas embebidas y registra las funciones de formato.
func newViewEngine(formatter *money.Formatter) (*html.Engine, error) {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("money", formatter.Format)
	return engine, nil
}
