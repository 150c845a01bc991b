package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oktech/boasaude-api/internal/domain"
)

func pgUnique(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(pgUnique("users_email_key")))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", pgUnique("users_email_key"))))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

// A constraint violada decide o sentinela: colisão de CPF não pode virar
// "email já cadastrado", nem corrida no owner_id virar "CNPJ já cadastrado".
func TestUniqueUserError_PorConstraint(t *testing.T) {
	assert.ErrorIs(t, uniqueUserError(pgUnique("users_email_key")), domain.ErrEmailAlreadyExists)
	assert.ErrorIs(t, uniqueUserError(pgUnique("users_cpf_key")), domain.ErrCpfAlreadyExists)
	assert.ErrorIs(t, uniqueUserError(fmt.Errorf("update user: %w", pgUnique("users_cpf_key"))), domain.ErrCpfAlreadyExists)
}

func TestUniqueShopError_PorConstraint(t *testing.T) {
	assert.ErrorIs(t, uniqueShopError(pgUnique("shops_cnpj_key")), domain.ErrCnpjAlreadyExists)
	assert.ErrorIs(t, uniqueShopError(pgUnique("shops_owner_id_key")), domain.ErrShopAlreadyExists)
}
