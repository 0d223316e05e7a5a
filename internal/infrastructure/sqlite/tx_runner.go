package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/Catalogo-web/internal/application/usecase"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción gorm.
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run abre la transacción, ejecuta fn y hace Commit (nil) o Rollback (error o panic).
func (r *TxRunner) Run(ctx context.Context, fn func(products repository.ProductRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewProductRepository(tx))
	})
}
