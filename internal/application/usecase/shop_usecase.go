package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/oktech/boasaude-api/internal/application/dto"
	"github.com/oktech/boasaude-api/internal/domain"
	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
)

// ShopUseCase casos de uso de loja. A criação promove o dono a PRODUCTOR e as
// mutações passam pelo gate de propriedade.
type ShopUseCase struct {
	shopRepo repository.ShopRepository
	userRepo repository.UserRepository
}

// NewShopUseCase constrói o caso de uso.
func NewShopUseCase(shopRepo repository.ShopRepository, userRepo repository.UserRepository) *ShopUseCase {
	return &ShopUseCase{shopRepo: shopRepo, userRepo: userRepo}
}

// Create cria uma loja para o usuário autenticado. Falha se o usuário já
// possui loja, se o CNPJ é inválido ou se o CNPJ já está cadastrado. Como
// efeito colateral, promove o dono de USER para PRODUCTOR (ADMIN permanece).
func (uc *ShopUseCase) Create(user *entity.User, in dto.ShopCreateRequest) (*dto.ShopResponse, error) {
	existing, err := uc.shopRepo.GetByOwnerID(user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrShopAlreadyExists
	}
	if !domain.IsValidCnpj(in.Cnpj) {
		return nil, domain.ErrInvalidCnpj
	}
	taken, err := uc.shopRepo.ExistsByCnpj(in.Cnpj)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrCnpjAlreadyExists
	}

	if user.Role != entity.RoleAdmin {
		owner, err := uc.userRepo.GetByID(user.ID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, domain.ErrUserNotFound
		}
		owner.Role = entity.RoleProductor
		owner.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(owner); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	shop := &entity.Shop{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Cnpj:        in.Cnpj,
		OwnerID:     user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.shopRepo.Create(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// Update sobrescreve os campos mutáveis da loja. Existência antes de
// propriedade; o CNPJ não pode colidir com OUTRA loja (auto-colisão não é
// conflito).
func (uc *ShopUseCase) Update(id uuid.UUID, in dto.ShopCreateRequest, user *entity.User) (*dto.ShopResponse, error) {
	shop, err := uc.shopRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrShopNotFound
	}
	if err := domain.RequireOwner(user.ID, shop.OwnerID); err != nil {
		return nil, err
	}
	if !domain.IsValidCnpj(in.Cnpj) {
		return nil, domain.ErrInvalidCnpj
	}
	other, err := uc.shopRepo.GetByCnpj(in.Cnpj)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != shop.ID {
		return nil, domain.ErrCnpjAlreadyExists
	}

	shop.Name = in.Name
	shop.Description = in.Description
	shop.Cnpj = in.Cnpj
	shop.UpdatedAt = time.Now()
	if err := uc.shopRepo.Update(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// Delete remove a loja (hard delete). Mesmo gating do Update.
func (uc *ShopUseCase) Delete(id uuid.UUID, user *entity.User) error {
	shop, err := uc.shopRepo.GetByID(id)
	if err != nil {
		return err
	}
	if shop == nil {
		return domain.ErrShopNotFound
	}
	if err := domain.RequireOwner(user.ID, shop.OwnerID); err != nil {
		return err
	}
	return uc.shopRepo.Delete(shop.ID)
}

// GetByUser obtém a loja do usuário autenticado.
func (uc *ShopUseCase) GetByUser(user *entity.User) (*dto.ShopResponse, error) {
	shop, err := uc.shopRepo.GetByOwnerID(user.ID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrShopNotFound
	}
	return toShopResponse(shop), nil
}

// GetByID obtém uma loja por ID (leitura pública).
func (uc *ShopUseCase) GetByID(id uuid.UUID) (*dto.ShopResponse, error) {
	shop, err := uc.shopRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, domain.ErrShopNotFound
	}
	return toShopResponse(shop), nil
}

// List lista lojas com paginação; name opcional filtra por substring
// case-insensitive.
func (uc *ShopUseCase) List(name string, limit, offset int) (*dto.ShopListResponse, error) {
	var (
		shops []*entity.Shop
		err   error
	)
	if name != "" {
		shops, err = uc.shopRepo.SearchByName(name, limit, offset)
	} else {
		shops, err = uc.shopRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShopResponse, 0, len(shops))
	for _, s := range shops {
		items = append(items, *toShopResponse(s))
	}
	return &dto.ShopListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	if s == nil {
		return nil
	}
	return &dto.ShopResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		Cnpj:        s.Cnpj,
		OwnerID:     s.OwnerID.String(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
