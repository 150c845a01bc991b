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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, cpf, phone, password_hash, role, active, created_at, updated_at`

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de persistência para usuários.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// uniqueUserError traduz uma violação 23505 para o sentinela da coluna
// atingida: users_cpf_key vira ErrCpfAlreadyExists, o restante (email) vira
// ErrEmailAlreadyExists.
func uniqueUserError(err error) error {
	if strings.Contains(constraintName(err), "cpf") {
		return domain.ErrCpfAlreadyExists
	}
	return domain.ErrEmailAlreadyExists
}

// Create persiste um novo usuário. Email e CPF têm constraints únicas no
// banco; a violação vira o erro de domínio correspondente.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, cpf, phone, password_hash, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Cpf, user.Phone, user.PasswordHash,
		string(user.Role), user.Active, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueUserError(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UserRepo) GetByID(id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByEmail obtém um usuário por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

// ExistsByEmail informa se há usuário (ativo ou inativo) com o email.
func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by email: %w", err)
	}
	return exists, nil
}

// ExistsByCpf informa se há usuário (ativo ou inativo) com o CPF.
func (r *UserRepo) ExistsByCpf(cpf string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE cpf = $1)`, cpf).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by cpf: %w", err)
	}
	return exists, nil
}

// Update atualiza um usuário.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, cpf = $4, phone = $5,
			password_hash = $6, role = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Cpf, user.Phone, user.PasswordHash,
		string(user.Role), user.Active, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueUserError(err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuários com paginação.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListByRole lista usuários de um papel com paginação.
func (r *UserRepo) ListByRole(role entity.UserRole, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, string(role), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Cpf, &u.Phone, &u.PasswordHash,
		&role, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Role = entity.UserRole(role)
	return &u, nil
}

func (r *UserRepo) scanMany(rows pgx.Rows) ([]*entity.User, error) {
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Cpf, &u.Phone, &u.PasswordHash,
			&role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entity.UserRole(role)
		list = append(list, &u)
	}
	return list, rows.Err()
}
