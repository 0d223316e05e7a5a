package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrForbidden    = errors.New("acceso denegado")
)

// ValidationError agrupa los errores por campo de un formulario o payload.
// Fields usa como clave el nombre del campo en el formulario (name, price, quantity).
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye un ValidationError vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add registra un mensaje para el campo; conserva el primero.
func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// HasErrors indica si hay al menos un campo inválido.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// AsValidationError extrae el ValidationError de una cadena de errores.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
