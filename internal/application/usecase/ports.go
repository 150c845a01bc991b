package usecase

import (
	"context"

	"github.com/oktech/boasaude-api/internal/domain/repository"
)

// OrderTxRunner executa fn dentro de uma transação, com repositórios atados a
// ela. Criação de pedido é tudo-ou-nada: ou o pedido com todos os itens é
// persistido, ou nada fica visível.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository, products repository.ProductRepository) error) error
}
