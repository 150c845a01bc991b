package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oktech/boasaude-api/internal/application/dto"
	"github.com/oktech/boasaude-api/internal/domain"
	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedido. Todas as operações são do ponto de
// vista do comprador: um usuário só enxerga e altera os próprios pedidos.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	txRunner  OrderTxRunner
	// emptyAsError trata listagem vazia como pedido não encontrado, para
	// compatibilidade com clientes que dependem do 404.
	emptyAsError bool
}

// NewOrderUseCase constrói o caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, txRunner OrderTxRunner, emptyAsError bool) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, txRunner: txRunner, emptyAsError: emptyAsError}
}

// Create cria um pedido PENDING com os itens informados, dentro de uma única
// transação. Quantidade não positiva é erro de validação; produto inexistente
// é not-found; qualquer falha desfaz o pedido inteiro.
func (uc *OrderUseCase) Create(ctx context.Context, user *entity.User, items []dto.CreateOrderItemRequest) (*dto.OrderResponse, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		Status:    entity.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(orders repository.OrderRepository, products repository.ProductRepository) error {
		if err := orders.Create(order); err != nil {
			return err
		}
		for _, in := range items {
			if in.Quantity <= 0 {
				return domain.ErrInvalidQuantity
			}
			productID, err := uuid.Parse(in.ProductID)
			if err != nil {
				return domain.ErrInvalidInput
			}
			product, err := products.GetByID(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			item := entity.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  in.Quantity,
				Product:   product,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := orders.CreateItem(&item); err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus transita o status do pedido. Existência, depois propriedade,
// depois validação do status (case-insensitive). Qualquer status alcança
// qualquer status; não há grafo de transições.
func (uc *OrderUseCase) UpdateStatus(orderID uuid.UUID, status string, user *entity.User) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if err := domain.RequireOwner(user.ID, order.UserID); err != nil {
		return nil, err
	}
	parsed, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}
	order.Status = parsed
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtém um pedido do próprio usuário.
func (uc *OrderUseCase) GetByID(orderID uuid.UUID, user *entity.User) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if err := domain.RequireOwner(user.ID, order.UserID); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListByUser lista os pedidos do próprio usuário com paginação.
func (uc *OrderUseCase) ListByUser(user *entity.User, limit, offset int) (*dto.OrderListResponse, error) {
	orders, err := uc.orderRepo.ListByUser(user.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	if uc.emptyAsError && len(orders) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	total, err := uc.orderRepo.SumTotalByUser(user.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items:      items,
		TotalPrice: total,
		Page:       dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, dto.OrderItemResponse{
			ID:         item.ID.String(),
			ProductID:  item.ProductID.String(),
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice(),
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID.String(),
		UserID:     o.UserID.String(),
		Status:     string(o.Status),
		Items:      items,
		TotalPrice: o.TotalPrice(),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
