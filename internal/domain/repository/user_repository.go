package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
)

// UserRepository define el puerto de lectura de principales aprovisionados.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
