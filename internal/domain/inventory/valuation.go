// Package inventory contiene la valoración del stock del catálogo (servicio de dominio).
package inventory

import "github.com/shopspring/decimal"

// LineValue valor de una línea: Precio * Cantidad. Cantidades negativas valen cero.
func LineValue(price decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Totals acumula unidades y valor de un listado.
type Totals struct {
	Products int
	Units    int
	Value    decimal.Decimal
}

// Add suma una línea al total.
func (t *Totals) Add(price decimal.Decimal, quantity int) {
	t.Products++
	if quantity > 0 {
		t.Units += quantity
	}
	t.Value = t.Value.Add(LineValue(price, quantity))
}
