package repository

import (
	"github.com/google/uuid"
	"github.com/oktech/boasaude-api/internal/domain/entity"
)

// ShopRepository define o porto de persistência para Shop.
// Buscas unitárias retornam (nil, nil) quando a loja não existe.
type ShopRepository interface {
	Create(shop *entity.Shop) error
	GetByID(id uuid.UUID) (*entity.Shop, error)
	GetByOwnerID(ownerID uuid.UUID) (*entity.Shop, error)
	GetByCnpj(cnpj string) (*entity.Shop, error)
	ExistsByCnpj(cnpj string) (bool, error)
	SearchByName(name string, limit, offset int) ([]*entity.Shop, error)
	List(limit, offset int) ([]*entity.Shop, error)
	Update(shop *entity.Shop) error
	Delete(id uuid.UUID) error
}
