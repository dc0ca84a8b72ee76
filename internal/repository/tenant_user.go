// internal/repository/tenant_user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/tenant"
)

// TenantUserRepositoryIface reads and writes the users table of whichever
// schema the supplied session is pinned to. Table names are deliberately
// unqualified; the session's search path provides the isolation.
type TenantUserRepositoryIface interface {
	FindAll(ctx context.Context, s tenant.Session) ([]*model.TenantUser, error)
	FindByID(ctx context.Context, s tenant.Session, id uuid.UUID) (*model.TenantUser, error)
	FindByEmail(ctx context.Context, s tenant.Session, email string) (*model.TenantUser, error)
	Create(ctx context.Context, s tenant.Session, email string) (*model.TenantUser, error)
	UpdateEmail(ctx context.Context, s tenant.Session, id uuid.UUID, email string) (*model.TenantUser, error)
	SoftDelete(ctx context.Context, s tenant.Session, id uuid.UUID) error
}

type TenantUserRepository struct{}

func NewTenantUserRepository() *TenantUserRepository {
	return &TenantUserRepository{}
}

const tenantUserColumns = "id, email, created_at, updated_at, deleted_at"

func (r *TenantUserRepository) FindAll(ctx context.Context, s tenant.Session) ([]*model.TenantUser, error) {
	rows, err := s.Query(ctx, "SELECT "+tenantUserColumns+" FROM users WHERE deleted_at IS NULL ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []*model.TenantUser
	for rows.Next() {
		u, err := scanTenantUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *TenantUserRepository) FindByID(ctx context.Context, s tenant.Session, id uuid.UUID) (*model.TenantUser, error) {
	row := s.QueryRow(ctx, "SELECT "+tenantUserColumns+" FROM users WHERE id = $1 AND deleted_at IS NULL", id)
	u, err := scanTenantUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *TenantUserRepository) FindByEmail(ctx context.Context, s tenant.Session, email string) (*model.TenantUser, error) {
	row := s.QueryRow(ctx, "SELECT "+tenantUserColumns+" FROM users WHERE email = $1 AND deleted_at IS NULL", email)
	u, err := scanTenantUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *TenantUserRepository) Create(ctx context.Context, s tenant.Session, email string) (*model.TenantUser, error) {
	row := s.QueryRow(ctx,
		"INSERT INTO users (email) VALUES ($1) RETURNING "+tenantUserColumns, email)
	u, err := scanTenantUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

func (r *TenantUserRepository) UpdateEmail(ctx context.Context, s tenant.Session, id uuid.UUID, email string) (*model.TenantUser, error) {
	row := s.QueryRow(ctx,
		"UPDATE users SET email = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL RETURNING "+tenantUserColumns,
		id, email)
	u, err := scanTenantUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return u, nil
}

func (r *TenantUserRepository) SoftDelete(ctx context.Context, s tenant.Session, id uuid.UUID) error {
	tag, err := s.Exec(ctx,
		"UPDATE users SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL", id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanTenantUser(row pgx.Row) (*model.TenantUser, error) {
	var u model.TenantUser
	if err := row.Scan(&u.ID, &u.Email, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
