package auth

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
)

var (
	dummyOnce sync.Once
	dummy     []byte
)

// dummyHash hash bcrypt de referencia para igualar el tiempo de respuesta con usuarios inexistentes.
func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("catalogo-dummy"), bcrypt.DefaultCost)
	})
	return dummy
}

// UserSeed define un principal a aprovisionar.
type UserSeed struct {
	Username string
	Roles    []string
}

// DefaultUsers los tres principales del catálogo.
func DefaultUsers() []UserSeed {
	return []UserSeed{
		{Username: "user1", Roles: []string{entity.RoleUser}},
		{Username: "user2", Roles: []string{entity.RoleUser}},
		{Username: "admin", Roles: []string{entity.RoleUser, entity.RoleAdmin}},
	}
}

// ProvisionUsers hashea password con bcrypt (cost) para cada usuario. El texto plano no se conserva.
func ProvisionUsers(seeds []UserSeed, password string, cost int) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash de %s: %w", s.Username, err)
		}
		users = append(users, &entity.User{
			Username:     s.Username,
			PasswordHash: string(hash),
			Roles:        append([]string(nil), s.Roles...),
		})
	}
	return users, nil
}
