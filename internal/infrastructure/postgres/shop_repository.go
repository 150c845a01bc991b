package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/oktech/boasaude-api/internal/domain"
	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

const shopColumns = `id, name, description, cnpj, owner_id, created_at, updated_at`

// ShopRepo implementação do porto ShopRepository sobre PostgreSQL.
type ShopRepo struct {
	q Querier
}

// NewShopRepository constrói o adaptador de persistência para lojas.
func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

// uniqueShopError traduz uma violação 23505 para o sentinela da constraint
// atingida: shops_owner_id_key (dono já tem loja) vira ErrShopAlreadyExists,
// o restante (cnpj) vira ErrCnpjAlreadyExists.
func uniqueShopError(err error) error {
	if strings.Contains(constraintName(err), "owner") {
		return domain.ErrShopAlreadyExists
	}
	return domain.ErrCnpjAlreadyExists
}

// Create persiste uma nova loja. CNPJ e owner_id têm constraints únicas.
func (r *ShopRepo) Create(shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, description, cnpj, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.Name, shop.Description, shop.Cnpj, shop.OwnerID,
		shop.CreatedAt, shop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueShopError(err)
		}
		return fmt.Errorf("insert shop: %w", err)
	}
	return nil
}

// GetByID obtém uma loja por ID.
func (r *ShopRepo) GetByID(id uuid.UUID) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get shop by id")
}

// GetByOwnerID obtém a loja de um dono (no máximo uma por usuário).
func (r *ShopRepo) GetByOwnerID(ownerID uuid.UUID) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE owner_id = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ownerID), "get shop by owner")
}

// GetByCnpj obtém uma loja pelo CNPJ.
func (r *ShopRepo) GetByCnpj(cnpj string) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE cnpj = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, cnpj), "get shop by cnpj")
}

// ExistsByCnpj informa se já existe loja com o CNPJ.
func (r *ShopRepo) ExistsByCnpj(cnpj string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM shops WHERE cnpj = $1)`, cnpj).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists shop by cnpj: %w", err)
	}
	return exists, nil
}

// SearchByName busca lojas por substring do nome, case-insensitive.
func (r *ShopRepo) SearchByName(name string, limit, offset int) ([]*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search shops by name: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// List lista lojas com paginação.
func (r *ShopRepo) List(limit, offset int) ([]*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Update atualiza os campos mutáveis da loja (o dono é imutável).
func (r *ShopRepo) Update(shop *entity.Shop) error {
	query := `
		UPDATE shops SET name = $2, description = $3, cnpj = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shop.ID, shop.Name, shop.Description, shop.Cnpj, shop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueShopError(err)
		}
		return fmt.Errorf("update shop: %w", err)
	}
	return nil
}

// Delete remove uma loja por ID (hard delete).
func (r *ShopRepo) Delete(id uuid.UUID) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}
	return nil
}

func (r *ShopRepo) scanOne(row pgx.Row, op string) (*entity.Shop, error) {
	var s entity.Shop
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Cnpj, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *ShopRepo) scanMany(rows pgx.Rows) ([]*entity.Shop, error) {
	var list []*entity.Shop
	for rows.Next() {
		var s entity.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Cnpj, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
