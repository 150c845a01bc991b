package usecase_test

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oktech/boasaude-api/internal/application/usecase"
	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos de persistência. Seguem a convenção dos
// adaptadores reais: buscas unitárias devolvem (nil, nil) quando não há
// registro.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	u, _ := f.GetByEmail(email)
	return u != nil, nil
}

func (f *fakeUserRepo) ExistsByCpf(cpf string) (bool, error) {
	for _, u := range f.users {
		if u.Cpf == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) ListByRole(role entity.UserRole, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeShopRepo struct {
	shops map[uuid.UUID]*entity.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: make(map[uuid.UUID]*entity.Shop)}
}

func (f *fakeShopRepo) Create(s *entity.Shop) error {
	cp := *s
	f.shops[s.ID] = &cp
	return nil
}

func (f *fakeShopRepo) GetByID(id uuid.UUID) (*entity.Shop, error) {
	s, ok := f.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShopRepo) GetByOwnerID(ownerID uuid.UUID) (*entity.Shop, error) {
	for _, s := range f.shops {
		if s.OwnerID == ownerID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeShopRepo) GetByCnpj(cnpj string) (*entity.Shop, error) {
	for _, s := range f.shops {
		if s.Cnpj == cnpj {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeShopRepo) ExistsByCnpj(cnpj string) (bool, error) {
	s, _ := f.GetByCnpj(cnpj)
	return s != nil, nil
}

func (f *fakeShopRepo) SearchByName(name string, limit, offset int) ([]*entity.Shop, error) {
	var out []*entity.Shop
	for _, s := range f.shops {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(name)) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeShopRepo) List(limit, offset int) ([]*entity.Shop, error) {
	var out []*entity.Shop
	for _, s := range f.shops {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeShopRepo) Update(s *entity.Shop) error {
	cp := *s
	f.shops[s.ID] = &cp
	return nil
}

func (f *fakeShopRepo) Delete(id uuid.UUID) error {
	delete(f.shops, id)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id uuid.UUID) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) ListByShop(shopID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.ShopID == shopID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	items  map[uuid.UUID][]entity.OrderItem
	// products resolve o produto dos itens na leitura, como o JOIN do
	// adaptador real.
	products *fakeProductRepo
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[uuid.UUID]*entity.Order),
		items:    make(map[uuid.UUID][]entity.OrderItem),
		products: products,
	}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	cp.Items = nil
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) CreateItem(item *entity.OrderItem) error {
	cp := *item
	cp.Product = nil
	f.items[item.OrderID] = append(f.items[item.OrderID], cp)
	return nil
}

func (f *fakeOrderRepo) GetByID(id uuid.UUID) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Items = f.loadItems(id)
	return &cp, nil
}

func (f *fakeOrderRepo) ListByUser(userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for id, o := range f.orders {
		if o.UserID == userID {
			cp := *o
			cp.Items = f.loadItems(id)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) SumTotalByUser(userID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for id, o := range f.orders {
		if o.UserID != userID {
			continue
		}
		for _, item := range f.loadItems(id) {
			total = total.Add(item.TotalPrice())
		}
	}
	return total, nil
}

func (f *fakeOrderRepo) Update(o *entity.Order) error {
	stored, ok := f.orders[o.ID]
	if !ok {
		return nil
	}
	stored.Status = o.Status
	stored.UpdatedAt = o.UpdatedAt
	return nil
}

func (f *fakeOrderRepo) loadItems(orderID uuid.UUID) []entity.OrderItem {
	stored := f.items[orderID]
	out := make([]entity.OrderItem, len(stored))
	for i, item := range stored {
		out[i] = item
		out[i].Product, _ = f.products.GetByID(item.ProductID)
	}
	return out
}

// snapshot/restore dão semântica de rollback ao fake: o runner captura o
// estado antes do callback e o restaura se o callback falhar.
func (f *fakeOrderRepo) snapshot() (map[uuid.UUID]*entity.Order, map[uuid.UUID][]entity.OrderItem) {
	orders := make(map[uuid.UUID]*entity.Order, len(f.orders))
	for id, o := range f.orders {
		cp := *o
		orders[id] = &cp
	}
	items := make(map[uuid.UUID][]entity.OrderItem, len(f.items))
	for id, list := range f.items {
		items[id] = append([]entity.OrderItem(nil), list...)
	}
	return orders, items
}

func (f *fakeOrderRepo) restore(orders map[uuid.UUID]*entity.Order, items map[uuid.UUID][]entity.OrderItem) {
	f.orders = orders
	f.items = items
}

// fakeTxRunner executa o callback sobre os fakes com commit/rollback: escrita
// parcial de um callback que falha nunca fica visível.
type fakeTxRunner struct {
	orders   *fakeOrderRepo
	products *fakeProductRepo
}

var _ usecase.OrderTxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	orders, items := f.orders.snapshot()
	if err := fn(f.orders, f.products); err != nil {
		f.orders.restore(orders, items)
		return err
	}
	return nil
}
