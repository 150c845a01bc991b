package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// CNPJ no formato XX.XXX.XXX/XXXX-XX ou 14 dígitos sem máscara.
var cnpjPattern = regexp.MustCompile(`^(\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}|\d{14})$`)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidCnpj valida o formato do CNPJ. Vazio ou só espaços é inválido.
func IsValidCnpj(cnpj string) bool {
	if strings.TrimSpace(cnpj) == "" {
		return false
	}
	return cnpjPattern.MatchString(cnpj)
}

// IsValidEmail valida o formato do email.
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailPattern.MatchString(email)
}

// RequireOwner é o gate de propriedade: o chamador precisa ser o dono do
// recurso. Deve ser avaliado DEPOIS da verificação de existência, para não
// confundir "não encontrado" com "acesso negado".
func RequireOwner(callerID, ownerID uuid.UUID) error {
	if callerID != ownerID {
		return ErrForbidden
	}
	return nil
}
