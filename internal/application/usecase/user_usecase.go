package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/oktech/boasaude-api/internal/application/dto"
	"github.com/oktech/boasaude-api/internal/domain"
	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
)

// UserUseCase casos de uso de usuário: perfil, listagem e exclusão lógica.
// O registro fica no caso de uso de auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtém um usuário por ID.
func (uc *UserUseCase) GetByID(id uuid.UUID) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Update sobrescreve os campos mutáveis do perfil do próprio usuário.
func (uc *UserUseCase) Update(id uuid.UUID, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		if !domain.IsValidEmail(*in.Email) {
			return nil, domain.ErrInvalidInput
		}
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete desativa o usuário (soft delete); o registro nunca é removido e o
// email/CPF continuam reservados.
func (uc *UserUseCase) Delete(id uuid.UUID) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Active = false
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// UpdateRole atualiza o papel de um usuário.
func (uc *UserUseCase) UpdateRole(id uuid.UUID, role entity.UserRole) error {
	if !role.IsValid() {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// List lista usuários com paginação; role opcional filtra por papel.
func (uc *UserUseCase) List(role string, limit, offset int) (*dto.UserListResponse, error) {
	var (
		users []*entity.User
		err   error
	)
	if role != "" {
		parsed, ok := entity.ParseUserRole(role)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		users, err = uc.repo.ListByRole(parsed, limit, offset)
	} else {
		users, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Cpf:       u.Cpf,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
