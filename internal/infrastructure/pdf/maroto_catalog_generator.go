// Package pdf genera el listado del catálogo en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación        │
//	│  ─────────────────────────────────────────   │
//	│  TABLA: ID | Nombre | Precio | Cantidad      │
//	│  ─────────────────────────────────────────   │
//	│  TOTALES: productos / unidades / valor stock │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/internal/application/ports"
	"github.com/jhoicas/Catalogo-web/internal/domain/inventory"
	"github.com/jhoicas/Catalogo-web/pkg/money"
)

var _ ports.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoCatalogGenerator implementa ports.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct {
	title string
	money *money.Formatter
}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator(title string, formatter *money.Formatter) *MarotoCatalogGenerator {
	return &MarotoCatalogGenerator{title: title, money: formatter}
}

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(_ context.Context, products []dto.ProductResponse, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(products)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoCatalogGenerator) headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Nombre", 6, align.Left),
		h("Precio", 3, align.Right),
		h("Cantidad", 2, align.Right),
	)
}

func (g *MarotoCatalogGenerator) tableRows(products []dto.ProductResponse) []core.Row {
	if len(products) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("El catálogo está vacío.", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(p.ID, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(3).Add(text.New("$"+g.money.Format(p.Price), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(g.money.Int(p.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func (g *MarotoCatalogGenerator) totalsRow(products []dto.ProductResponse) core.Row {
	var tot inventory.Totals
	for _, p := range products {
		tot.Add(p.Price, p.Quantity)
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	val := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Productos:"),
			label("Unidades:"),
			label("Valor del stock:"),
		),
		col.New(3).Add(
			val(strconv.Itoa(tot.Products)),
			val(g.money.Int(tot.Units)),
			val("$"+g.money.Format(tot.Value)),
		),
	)
}
