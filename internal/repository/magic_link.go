// internal/repository/magic_link.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/tenant"
)

type MagicLinkRepositoryIface interface {
	Create(ctx context.Context, s tenant.Session, link *model.MagicLink) error
	Consume(ctx context.Context, s tenant.Session, token string) (*model.MagicLink, error)
}

type MagicLinkRepository struct{}

func NewMagicLinkRepository() *MagicLinkRepository {
	return &MagicLinkRepository{}
}

func (r *MagicLinkRepository) Create(ctx context.Context, s tenant.Session, link *model.MagicLink) error {
	row := s.QueryRow(ctx, `
		INSERT INTO magic_links (email, token, purpose, expires_at, used)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, created_at`,
		link.Email, link.Token, link.Purpose, link.ExpiresAt)
	if err := row.Scan(&link.ID, &link.CreatedAt); err != nil {
		return fmt.Errorf("creating magic link: %w", err)
	}
	return nil
}

// Consume atomically marks the token used. Single-use is enforced in the
// UPDATE predicate, so two concurrent verifications of the same token cannot
// both succeed.
func (r *MagicLinkRepository) Consume(ctx context.Context, s tenant.Session, token string) (*model.MagicLink, error) {
	row := s.QueryRow(ctx, `
		UPDATE magic_links
		SET used = TRUE
		WHERE token = $1 AND used IS NOT TRUE
		RETURNING id, email, token, purpose, expires_at, used, created_at`,
		token)

	var link model.MagicLink
	if err := row.Scan(&link.ID, &link.Email, &link.Token, &link.Purpose,
		&link.ExpiresAt, &link.Used, &link.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMagicLinkInvalid
		}
		return nil, fmt.Errorf("consuming magic link: %w", err)
	}

	if time.Now().After(link.ExpiresAt) {
		return nil, domain.ErrMagicLinkExpired
	}
	return &link, nil
}
