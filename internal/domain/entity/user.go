package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole papel do usuário. Os papéis são ordenados por privilégio crescente
// e as autoridades são aditivas: ADMIN ⊇ PRODUCTOR ⊇ USER.
type UserRole string

const (
	RoleUser      UserRole = "USER"
	RoleProductor UserRole = "PRODUCTOR"
	RoleAdmin     UserRole = "ADMIN"
)

// Autoridades concedidas por papel, em ordem de privilégio.
const (
	AuthorityUser      = "ROLE_USER"
	AuthorityProductor = "ROLE_PRODUCTOR"
	AuthorityAdmin     = "ROLE_ADMIN"
)

var roleLadder = []struct {
	role      UserRole
	authority string
}{
	{RoleUser, AuthorityUser},
	{RoleProductor, AuthorityProductor},
	{RoleAdmin, AuthorityAdmin},
}

func (r UserRole) level() int {
	for i, step := range roleLadder {
		if step.role == r {
			return i
		}
	}
	return -1
}

// IsValid informa se o papel é um dos valores conhecidos.
func (r UserRole) IsValid() bool {
	return r.level() >= 0
}

// Authorities devolve a lista aditiva de autoridades do papel: cada papel
// herda as autoridades de todos os papéis abaixo dele.
func (r UserRole) Authorities() []string {
	lvl := r.level()
	if lvl < 0 {
		return nil
	}
	out := make([]string, 0, lvl+1)
	for i := 0; i <= lvl; i++ {
		out = append(out, roleLadder[i].authority)
	}
	return out
}

// HasAuthority é o predicado do gate de papel.
func (r UserRole) HasAuthority(authority string) bool {
	for _, a := range r.Authorities() {
		if a == authority {
			return true
		}
	}
	return false
}

// ParseUserRole converte uma string (case-insensitive) em UserRole.
func ParseUserRole(s string) (UserRole, bool) {
	r := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// User representa um usuário do sistema.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string // único, inclusive entre inativos
	Cpf          string // único, inclusive entre inativos
	Phone        string
	PasswordHash string // hash bcrypt, nunca a senha em claro
	Role         UserRole
	Active       bool // soft delete: desativa em vez de remover
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
