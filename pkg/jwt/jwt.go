package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// UserID e Role permitem que o middleware decida sem consultar o banco.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Role   string `json:"role"` // "USER" | "PRODUCTOR" | "ADMIN"
}

// Generate gera um token JWT assinado (HS256) com subject, userId e role.
// A expiração absoluta é now + expMinutes.
func Generate(secret, subject, userID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida assinatura, emissor e expiração e devolve os claims.
// Retorna erro se o token for inválido, expirado ou de outro emissor.
func Parse(secret, issuer, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ResolveUserID compõe verificação + extração do claim userId como UUID.
// Qualquer falha (token forjado, expirado, vazio, claim ausente ou malformado)
// resulta em (uuid.Nil, false), nunca uma identidade parcial.
func ResolveUserID(secret, issuer, tokenString string) (uuid.UUID, bool) {
	claims, err := Parse(secret, issuer, tokenString)
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
