package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oktech/boasaude-api/internal/application/dto"
	"github.com/oktech/boasaude-api/internal/application/usecase"
	"github.com/oktech/boasaude-api/internal/domain"
	"github.com/oktech/boasaude-api/internal/domain/entity"
)

func seedShop(t *testing.T, shops *fakeShopRepo, ownerID uuid.UUID) *entity.Shop {
	t.Helper()
	s := &entity.Shop{
		ID:      uuid.New(),
		Name:    "Farmácia Boa Saúde",
		Cnpj:    "12345678000195",
		OwnerID: ownerID,
	}
	require.NoError(t, shops.Create(s))
	return s
}

func TestProductCreate_Valido(t *testing.T) {
	shops := newFakeShopRepo()
	products := newFakeProductRepo()
	uc := usecase.NewProductUseCase(products, shops)
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}
	shop := seedShop(t, shops, owner.ID)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:     "Dipirona 500mg",
		Category: "medicamentos",
		Price:    100,
		Stock:    30,
	}, shop.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, shop.ID.String(), out.ShopID)
	assert.Equal(t, 100, out.Price)
}

// Preço e estoque não positivos são rejeitados antes de qualquer persistência.
func TestProductCreate_CamposInvalidos(t *testing.T) {
	shops := newFakeShopRepo()
	products := newFakeProductRepo()
	uc := usecase.NewProductUseCase(products, shops)
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}
	shop := seedShop(t, shops, owner.ID)

	_, err := uc.Create(dto.CreateProductRequest{Name: "X", Price: -1, Stock: 5}, shop.ID, owner)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", Price: 10, Stock: 0}, shop.ID, owner)
	assert.ErrorIs(t, err, domain.ErrInvalidStock)

	assert.Empty(t, products.products)
}

func TestProductCreate_LojaInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeShopRepo())
	caller := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}

	_, err := uc.Create(dto.CreateProductRequest{Name: "X", Price: 10, Stock: 1}, uuid.New(), caller)
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}

func TestProductCreate_LojaDeOutroDono(t *testing.T) {
	shops := newFakeShopRepo()
	uc := usecase.NewProductUseCase(newFakeProductRepo(), shops)
	shop := seedShop(t, shops, uuid.New())
	intruder := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}

	_, err := uc.Create(dto.CreateProductRequest{Name: "X", Price: 10, Stock: 1}, shop.ID, intruder)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Update com preço inválido falha depois do gate de propriedade e não altera
// o produto persistido.
func TestProductUpdate_PrecoInvalidoNaoAltera(t *testing.T) {
	shops := newFakeShopRepo()
	products := newFakeProductRepo()
	uc := usecase.NewProductUseCase(products, shops)
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}
	shop := seedShop(t, shops, owner.ID)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Original", Price: 100, Stock: 5}, shop.ID, owner)
	require.NoError(t, err)
	productID := uuid.MustParse(created.ID)

	_, err = uc.Update(productID, dto.CreateProductRequest{Name: "Alterado", Price: -1, Stock: 5}, owner)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	stored, err := products.GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Name)
	assert.Equal(t, 100, stored.Price)
}

func TestProductUpdate_NaoDonoRecebeForbidden(t *testing.T) {
	shops := newFakeShopRepo()
	products := newFakeProductRepo()
	uc := usecase.NewProductUseCase(products, shops)
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}
	intruder := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}
	shop := seedShop(t, shops, owner.ID)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Produto", Price: 10, Stock: 1}, shop.ID, owner)
	require.NoError(t, err)

	_, err = uc.Update(uuid.MustParse(created.ID), dto.CreateProductRequest{Name: "Y", Price: 20, Stock: 2}, intruder)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductDelete_SomenteDono(t *testing.T) {
	shops := newFakeShopRepo()
	products := newFakeProductRepo()
	uc := usecase.NewProductUseCase(products, shops)
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}
	intruder := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}
	shop := seedShop(t, shops, owner.ID)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Produto", Price: 10, Stock: 1}, shop.ID, owner)
	require.NoError(t, err)
	productID := uuid.MustParse(created.ID)

	assert.ErrorIs(t, uc.Delete(productID, intruder), domain.ErrForbidden)
	require.NoError(t, uc.Delete(productID, owner))

	_, err = uc.GetByID(productID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductListByShop(t *testing.T) {
	shops := newFakeShopRepo()
	products := newFakeProductRepo()
	uc := usecase.NewProductUseCase(products, shops)
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleProductor, Active: true}
	shop := seedShop(t, shops, owner.ID)
	other := seedShop(t, shops, uuid.New())

	_, err := uc.Create(dto.CreateProductRequest{Name: "A", Price: 10, Stock: 1}, shop.ID, owner)
	require.NoError(t, err)
	require.NoError(t, products.Create(&entity.Product{ID: uuid.New(), ShopID: other.ID, Name: "B", Price: 5, Stock: 1}))

	out, err := uc.ListByShop(shop.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "A", out.Items[0].Name)
}
