package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação do porto OrderRepository sobre PostgreSQL (usável
// com pool ou tx; a criação de pedido roda sempre dentro do TxRunner).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador de persistência para pedidos.
// Passar pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste o cabeçalho do pedido. Os itens vão por CreateItem, na
// mesma transação.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.UserID, string(order.Status), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste um item do pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtém um pedido com itens e produtos carregados.
func (r *OrderRepo) GetByID(id uuid.UUID) (*entity.Order, error) {
	query := `SELECT id, user_id, status, created_at, updated_at FROM orders WHERE id = $1`
	var o entity.Order
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Status = entity.OrderStatus(status)
	if o.Items, err = r.loadItems(o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByUser lista pedidos de um usuário com paginação, itens carregados.
func (r *OrderRepo) ListByUser(userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, status, created_at, updated_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var status string
		if err := rows.Scan(&o.ID, &o.UserID, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		if o.Items, err = r.loadItems(o.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// SumTotalByUser agrega no banco o total de todos os pedidos do usuário,
// pelos preços vigentes. O aggregate sai como NUMERIC e entra direto em
// decimal.Decimal via codec registrado no pool.
func (r *OrderRepo) SumTotalByUser(userID uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.price * i.quantity), 0)::numeric
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		JOIN products p ON p.id = i.product_id
		WHERE o.user_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum orders total: %w", err)
	}
	return total, nil
}

// Update atualiza o status do pedido (os itens são imutáveis após a criação).
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, string(order.Status), order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// loadItems carrega os itens com o produto corrente junto, para que os totais
// derivados reflitam o preço vigente.
func (r *OrderRepo) loadItems(orderID uuid.UUID) ([]entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.created_at, i.updated_at,
		       p.id, p.shop_id, p.name, p.description, p.category, p.price, p.stock, p.created_at, p.updated_at
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		var p entity.Product
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
			&p.ID, &p.ShopID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		it.Product = &p
		items = append(items, it)
	}
	return items, rows.Err()
}
