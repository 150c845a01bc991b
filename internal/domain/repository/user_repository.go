package repository

import (
	"github.com/google/uuid"
	"github.com/oktech/boasaude-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
// Buscas por id/email retornam (nil, nil) quando o usuário não existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uuid.UUID) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	ExistsByCpf(cpf string) (bool, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListByRole(role entity.UserRole, limit, offset int) ([]*entity.User, error)
}
