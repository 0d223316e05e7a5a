package dto

import "github.com/shopspring/decimal"

// ProductForm entrada del formulario web (alta y edición). Los numéricos llegan como texto
// para poder re-renderizar exactamente lo que el usuario escribió.
type ProductForm struct {
	ID       string `form:"id"`
	Name     string `form:"name" validate:"notblank,max=255"`
	Price    string `form:"price" validate:"required,numeric"`
	Quantity string `form:"quantity" validate:"required,number"`
}

// ProductResponse salida de un producto (vistas y API REST).
type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}
