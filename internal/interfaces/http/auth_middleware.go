package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/oktech/boasaude-api/internal/application/dto"
	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
	"github.com/oktech/boasaude-api/pkg/jwt"
)

// Locals key do usuário resolvido em Fiber.
const LocalUser = "current_user"

// AuthMiddleware resolve a identidade do chamador a partir do Bearer Token.
// Sem header Authorization a requisição segue anônima; token inválido ou
// usuário inexistente/inativo encerra com 401. Com sucesso o *entity.User
// fica em c.Locals para os gates seguintes.
func AuthMiddleware(jwtSecret, issuer string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		userID, ok := jwt.ResolveUserID(jwtSecret, issuer, tokenString)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		user, err := users.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if user == nil || !user.Active {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "usuário inexistente ou inativo"})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser devolve o usuário do contexto, ou nil para requisição anônima.
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// RequireAuth exige identidade resolvida (401 para anônimos).
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticação requerida"})
		}
		return c.Next()
	}
}

// RequireAuthority exige uma authority do papel do usuário (403 quando falta).
func RequireAuthority(authority string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticação requerida"})
		}
		if !user.Role.HasAuthority(authority) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permissão insuficiente"})
		}
		return c.Next()
	}
}
