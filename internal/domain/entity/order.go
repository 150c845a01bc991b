package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus status do pedido. PENDING é o inicial; COMPLETED e CANCELLED
// são terminais. Nenhuma restrição de transição é imposta além da pertinência
// ao conjunto.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusCompleted OrderStatus = "COMPLETED"
)

// ParseOrderStatus converte uma string (case-insensitive) em OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusCancelled:
		return StatusCancelled, true
	case StatusCompleted:
		return StatusCompleted, true
	}
	return "", false
}

// Order representa um pedido de um usuário.
type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Status    OrderStatus
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalPrice soma os totais dos itens. Derivado, nunca persistido.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].TotalPrice())
	}
	return total
}

// OrderItem item de um pedido: referencia (sem possuir) um produto.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Product   *Product // carregado junto com o pedido; não persistido no item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalPrice preço do produto × quantidade, com o preço vigente do produto
// (não há snapshot de preço no item).
func (i *OrderItem) TotalPrice() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(i.Product.Price)).Mul(decimal.NewFromInt(int64(i.Quantity)))
}
