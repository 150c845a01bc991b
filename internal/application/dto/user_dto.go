package dto

import "time"

// CreateUserRequest payload de registro de usuário.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Cpf      string `json:"cpf"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest payload de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse resposta do login: token bearer stateless.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest campos mutáveis do perfil. Ponteiro nil = não alterar.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UpdateRoleRequest payload de alteração de papel (rota de admin).
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UserResponse representação pública do usuário (nunca expõe o hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Cpf       string    `json:"cpf"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse página de usuários (rotas de admin).
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
