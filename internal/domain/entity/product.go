package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// ID lo asigna el almacén al primer guardado y no cambia después.
type Product struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// IsNew indica si el producto aún no fue persistido.
func (p *Product) IsNew() bool {
	return p.ID == 0
}

// String se usa en los logs del arranque.
func (p *Product) String() string {
	return fmt.Sprintf("Product(id=%d, name=%s, price=%s, quantity=%d)", p.ID, p.Name, p.Price.String(), p.Quantity)
}
