package repository

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oktech/boasaude-api/internal/domain/entity"
)

// OrderRepository define o porto de persistência para Order e seus itens.
// GetByID e ListByUser devolvem pedidos com os itens (e produtos) carregados.
// SumTotalByUser agrega preço × quantidade de todos os pedidos do usuário
// pelos preços vigentes dos produtos.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id uuid.UUID) (*entity.Order, error)
	ListByUser(userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	SumTotalByUser(userID uuid.UUID) (decimal.Decimal, error)
	Update(order *entity.Order) error
}
