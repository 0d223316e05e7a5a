package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-web/internal/application/dto"
	"github.com/jhoicas/Catalogo-web/internal/domain"
	"github.com/jhoicas/Catalogo-web/internal/domain/entity"
	"github.com/jhoicas/Catalogo-web/internal/domain/repository"
	"github.com/jhoicas/Catalogo-web/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de la API.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AccessPolicy evalúa roles y la tabla de políticas ruta → rol (implementado por rbac.Enforcer).
type AccessPolicy interface {
	HasRole(username, role string) (bool, error)
	Authorize(username, path string) error
	RequiredRoles(path string) []string
}

// AuthUseCase casos de uso de autenticación y autorización.
type AuthUseCase struct {
	userRepo repository.UserRepository
	policy   AccessPolicy
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, policy AccessPolicy, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, policy: policy, jwtCfg: jwtCfg}
}

// Authenticate verifica usuario/password con bcrypt. Usuario inexistente y password incorrecto
// devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Mismo costo bcrypt que con un usuario existente.
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// Principal devuelve el usuario de la sesión; domain.ErrUnauthorized si ya no existe.
func (uc *AuthUseCase) Principal(ctx context.Context, username string) (*dto.PrincipalResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return toPrincipalResponse(user), nil
}

// Authorize aplica la tabla de políticas a la ruta y además exige el rol declarado por la ruta
// (vacío = solo autenticación). domain.ErrForbidden si algo falla.
func (uc *AuthUseCase) Authorize(username, path, routeRole string) error {
	if err := uc.policy.Authorize(username, path); err != nil {
		return err
	}
	if routeRole == "" {
		return nil
	}
	ok, err := uc.policy.HasRole(username, routeRole)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// RequiredRoles expone los roles que la política exige para path (listado de rutas y tests).
func (uc *AuthUseCase) RequiredRoles(path string) []string {
	return uc.policy.RequiredRoles(path)
}

// IssueToken autentica y genera un JWT para la API REST.
func (uc *AuthUseCase) IssueToken(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		Username:  user.Username,
		Roles:     user.Roles,
	}, nil
}

func toPrincipalResponse(u *entity.User) *dto.PrincipalResponse {
	return &dto.PrincipalResponse{
		Username: u.Username,
		Roles:    u.Roles,
		IsAdmin:  u.HasRole(entity.RoleAdmin),
	}
}
