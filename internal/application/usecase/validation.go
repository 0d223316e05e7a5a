package usecase

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/internal/domain"
)

// Límites de las columnas price NUMERIC(14,2) y quantity INTEGER.
const (
	maxPriceIntegerDigits = 12
	maxPriceDecimals      = 2
)

// productInput valores ya convertidos de un ProductForm válido.
type productInput struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// Los errores se indexan por el nombre del campo del formulario.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateProductForm valida y convierte el formulario. Devuelve *domain.ValidationError con un mensaje por campo.
func validateProductForm(v *validator.Validate, in dto.ProductForm) (*productInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Price = strings.TrimSpace(in.Price)
	in.Quantity = strings.TrimSpace(in.Quantity)

	verr := domain.NewValidationError()
	if err := v.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), messageFor(fe))
		}
	}

	out := &productInput{Name: in.Name}
	if _, bad := verr.Fields["price"]; !bad {
		price, err := decimal.NewFromString(in.Price)
		switch {
		case err != nil:
			verr.Add("price", "debe ser un número")
		case !price.Equal(price.Truncate(maxPriceDecimals)):
			verr.Add("price", "máximo 2 decimales")
		case len(price.Truncate(0).Abs().String()) > maxPriceIntegerDigits:
			verr.Add("price", "máximo 12 dígitos enteros")
		default:
			out.Price = price
		}
	}
	if _, bad := verr.Fields["quantity"]; !bad {
		qty, err := strconv.ParseInt(in.Quantity, 10, 32)
		if err != nil {
			verr.Add("quantity", "fuera de rango")
		} else {
			out.Quantity = int(qty)
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return out, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "no debe estar vacío"
	case "required":
		return "es obligatorio"
	case "numeric":
		return "debe ser un número"
	case "number":
		return "debe ser un entero no negativo"
	case "max":
		return "máximo " + fe.Param() + " caracteres"
	default:
		return "valor inválido"
	}
}
