package repository

import (
	"github.com/google/uuid"
	"github.com/oktech/boasaude-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id uuid.UUID) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListByShop(shopID uuid.UUID, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id uuid.UUID) error
}
