package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/oktech/boasaude-api/internal/application/dto"
	"github.com/oktech/boasaude-api/internal/domain"
	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
)

// ProductUseCase casos de uso de produto. Leituras são públicas; mutações
// exigem que o chamador seja o dono da loja do produto.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, shopRepo repository.ShopRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, shopRepo: shopRepo}
}

// Create cria um produto em uma loja. Validação de campos antes de existência
// da loja; propriedade por último.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest, shopID uuid.UUID, user *entity.User) (*dto.ProductResponse, error) {
	if in.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if in.Stock <= 0 {
		return nil, domain.ErrInvalidStock
	}
	shop, err := uc.shopRepo.GetByID(shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrShopNotFound
	}
	if err := domain.RequireOwner(user.ID, shop.OwnerID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New(),
		ShopID:      shop.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update sobrescreve um produto. Existência, depois propriedade (via loja),
// depois validação dos novos campos; nada é persistido em caso de falha.
func (uc *ProductUseCase) Update(id uuid.UUID, in dto.CreateProductRequest, user *entity.User) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	shop, err := uc.shopRepo.GetByID(product.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrShopNotFound
	}
	if err := domain.RequireOwner(user.ID, shop.OwnerID); err != nil {
		return nil, err
	}
	if in.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if in.Stock <= 0 {
		return nil, domain.ErrInvalidStock
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Category = in.Category
	product.Price = in.Price
	product.Stock = in.Stock
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete remove um produto (hard delete). Mesmo gating do Update.
func (uc *ProductUseCase) Delete(id uuid.UUID, user *entity.User) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	shop, err := uc.shopRepo.GetByID(product.ShopID)
	if err != nil {
		return err
	}
	if shop == nil {
		return domain.ErrShopNotFound
	}
	if err := domain.RequireOwner(user.ID, shop.OwnerID); err != nil {
		return err
	}
	return uc.productRepo.Delete(product.ID)
}

// GetByID obtém um produto por ID (leitura pública).
func (uc *ProductUseCase) GetByID(id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List lista produtos com paginação (leitura pública).
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(products, limit, offset), nil
}

// ListByShop lista produtos de uma loja com paginação (leitura pública).
func (uc *ProductUseCase) ListByShop(shopID uuid.UUID, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListByShop(shopID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(products, limit, offset), nil
}

func toProductListResponse(products []*entity.Product, limit, offset int) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		ShopID:      p.ShopID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
