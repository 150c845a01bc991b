package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest um par (produto, quantidade) do pedido.
type CreateOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderItemResponse item do pedido com total derivado do preço vigente.
type OrderItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderResponse pedido com itens e total derivado (nunca armazenado).
type OrderResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"user_id"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderListResponse página de pedidos. TotalPrice é o agregado de todos os
// pedidos do usuário, não só da página corrente.
type OrderListResponse struct {
	Items      []OrderResponse `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Page       PageResponse    `json:"page"`
}
