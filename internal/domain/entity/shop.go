package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop representa uma loja. Cada usuário possui no máximo uma loja e o
// proprietário é imutável depois da criação.
type Shop struct {
	ID          uuid.UUID
	Name        string
	Description string
	Cnpj        string // único entre todas as lojas, formato validado
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
