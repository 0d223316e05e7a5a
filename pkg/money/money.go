// Package money formatea importes para vistas y documentos según el idioma.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter imprime importes con separadores de miles y dos decimales.
type Formatter struct {
	p      *message.Printer
	decSep string
}

// Fuera de este rango IntPart ya no cabe en int64.
var maxGrouped = decimal.New(1, 18)

// NewFormatter construye un formatter para el idioma indicado (ej. language.Spanish).
func NewFormatter(tag language.Tag) *Formatter {
	p := message.NewPrinter(tag)
	return &Formatter{p: p, decSep: strings.Trim(p.Sprintf("%.1f", 0.5), "05")}
}

// Format devuelve el importe con agrupación propia del idioma, sin símbolo de moneda.
func (f *Formatter) Format(d decimal.Decimal) string {
	abs := d.Round(2).Abs()
	if abs.GreaterThanOrEqual(maxGrouped) {
		return d.StringFixed(2)
	}
	fixed := abs.StringFixed(2)
	out := f.p.Sprintf("%d", abs.IntPart()) + f.decSep + fixed[len(fixed)-2:]
	if d.Round(2).IsNegative() {
		return "-" + out
	}
	return out
}

// Int formatea cantidades enteras (stock).
func (f *Formatter) Int(n int) string {
	return f.p.Sprintf("%d", n)
}
