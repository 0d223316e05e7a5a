package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay resultado.
type ProductRepository interface {
	// Save inserta si el ID es 0 (y escribe el ID asignado en product) o actualiza el registro con ese ID.
	Save(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	// DeleteByID no falla si el ID no existe.
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
