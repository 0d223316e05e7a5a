// Package memory contiene adaptadores en memoria con vida igual a la del proceso.
package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo registro de principales aprovisionados al arrancar. Solo lectura después de construido.
type UserRepo struct {
	users map[string]*entity.User
}

// NewUserRepository construye el registro; un username repetido reemplaza al anterior.
func NewUserRepository(users ...*entity.User) *UserRepo {
	m := make(map[string]*entity.User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &UserRepo{users: m}
}

// FindByUsername devuelve una copia del usuario o (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

// List devuelve los usuarios ordenados por username.
func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	list := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		list = append(list, cloneUser(u))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
	return list, nil
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.Roles = append([]string(nil), u.Roles...)
	return &c
}
