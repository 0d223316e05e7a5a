package entity

// Roles válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User representa un principal aprovisionado al arrancar (no hay alta ni baja en runtime).
type User struct {
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de aprovisionar
	Roles        []string
}

// HasRole indica si el usuario tiene el rol.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
