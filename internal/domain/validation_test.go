package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/oktech/boasaude-api/internal/domain"
)

func TestIsValidCnpj(t *testing.T) {
	cases := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"com máscara", "12.345.678/0001-95", true},
		{"sem máscara", "12345678000195", true},
		{"vazio", "", false},
		{"só espaços", "   ", false},
		{"letra no dígito verificador", "12.345.678/0001-9A", false},
		{"máscara incompleta", "12.345.678/0001", false},
		{"13 dígitos", "1234567800019", false},
		{"15 dígitos", "123456780001955", false},
		{"máscara fora de posição", "12.34.5678/0001-95", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, domain.IsValidCnpj(tc.cnpj))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, domain.IsValidEmail("maria@example.com"))
	assert.True(t, domain.IsValidEmail("joao.silva+tag@sub.example.com.br"))
	assert.False(t, domain.IsValidEmail(""))
	assert.False(t, domain.IsValidEmail("sem-arroba.com"))
	assert.False(t, domain.IsValidEmail("maria@semdominio"))
}

// O gate de propriedade devolve ErrForbidden para qualquer chamador que não
// seja o dono, inclusive admin (não há bypass por papel).
func TestRequireOwner(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.NoError(t, domain.RequireOwner(owner, owner))
	assert.ErrorIs(t, domain.RequireOwner(other, owner), domain.ErrForbidden)
}
