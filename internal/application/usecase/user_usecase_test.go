package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oktech/boasaude-api/internal/application/dto"
	"github.com/oktech/boasaude-api/internal/application/usecase"
	"github.com/oktech/boasaude-api/internal/domain"
	"github.com/oktech/boasaude-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

// Update sobrescreve só os campos presentes; ponteiro nil preserva o valor.
func TestUserUpdate_CamposParciais(t *testing.T) {
	users := newFakeUserRepo()
	uc := usecase.NewUserUseCase(users)
	u := seedUser(t, users, entity.RoleUser)

	out, err := uc.Update(u.ID, dto.UpdateUserRequest{Phone: strPtr("+55 11 91234-5678")})
	require.NoError(t, err)
	assert.Equal(t, u.Name, out.Name, "nome não informado deve ser preservado")
	assert.Equal(t, "+55 11 91234-5678", out.Phone)
}

func TestUserUpdate_EmailInvalido(t *testing.T) {
	users := newFakeUserRepo()
	uc := usecase.NewUserUseCase(users)
	u := seedUser(t, users, entity.RoleUser)

	_, err := uc.Update(u.ID, dto.UpdateUserRequest{Email: strPtr("sem-arroba")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Delete é lógico: o registro permanece, marcado como inativo.
func TestUserDelete_SoftDelete(t *testing.T) {
	users := newFakeUserRepo()
	uc := usecase.NewUserUseCase(users)
	u := seedUser(t, users, entity.RoleUser)

	require.NoError(t, uc.Delete(u.ID))

	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "o registro não deve ser removido")
	assert.False(t, stored.Active)
}

func TestUserUpdateRole(t *testing.T) {
	users := newFakeUserRepo()
	uc := usecase.NewUserUseCase(users)
	u := seedUser(t, users, entity.RoleUser)

	require.NoError(t, uc.UpdateRole(u.ID, entity.RoleAdmin))
	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, stored.Role)

	assert.ErrorIs(t, uc.UpdateRole(u.ID, entity.UserRole("GERENTE")), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.UpdateRole(uuid.New(), entity.RoleAdmin), domain.ErrUserNotFound)
}

func TestUserList_FiltroPorPapel(t *testing.T) {
	users := newFakeUserRepo()
	uc := usecase.NewUserUseCase(users)
	seedUser(t, users, entity.RoleUser)
	seedUser(t, users, entity.RoleProductor)

	out, err := uc.List("productor", 10, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "PRODUCTOR", out.Items[0].Role)

	_, err = uc.List("gerente", 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
