package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un repositorio atado a ella.
// Si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository) error) error
}
