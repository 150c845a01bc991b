package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product representa um produto de uma loja. Preço e estoque são inteiros
// estritamente positivos na criação e após qualquer atualização.
type Product struct {
	ID          uuid.UUID
	ShopID      uuid.UUID
	Name        string
	Description string
	Category    string
	Price       int
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
