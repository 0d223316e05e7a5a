package dto

// LoginRequest credenciales del formulario de login o de POST /auth/token.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse salida de POST /auth/token.
type TokenResponse struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"` // segundos
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
}

// PrincipalResponse usuario autenticado visible en las vistas (sin hash).
type PrincipalResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	IsAdmin  bool     `json:"is_admin"`
}
