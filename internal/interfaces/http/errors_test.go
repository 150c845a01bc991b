package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oktech/boasaude-api/internal/domain"
)

// Tabela de tradução erro de domínio → status HTTP. Em particular, os
// duplicados (email, CPF, CNPJ, loja) são erros de validação da entrada e
// respondem 400, não 409.
func TestRespondError_MapeamentoDeStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrShopNotFound, http.StatusNotFound},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrOrderNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrInvalidCnpj, http.StatusBadRequest},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{domain.ErrInvalidQuantity, http.StatusBadRequest},
		{domain.ErrInvalidPrice, http.StatusBadRequest},
		{domain.ErrInvalidStock, http.StatusBadRequest},
		{domain.ErrEmailAlreadyExists, http.StatusBadRequest},
		{domain.ErrCpfAlreadyExists, http.StatusBadRequest},
		{domain.ErrCnpjAlreadyExists, http.StatusBadRequest},
		{domain.ErrShopAlreadyExists, http.StatusBadRequest},
		{errors.New("falha inesperada"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode, "erro %v", tc.err)
		})
	}
}
