// internal/repository/invitation.go
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

type InvitationRepositoryIface interface {
	Create(ctx context.Context, s tenant.Session, inv *model.UserInvitation) error
	FindByToken(ctx context.Context, s tenant.Session, token string) (*model.UserInvitation, error)
	MarkAccepted(ctx context.Context, s tenant.Session, id uuid.UUID, acceptedBy uuid.UUID) error
	AppendAudit(ctx context.Context, s tenant.Session, invitationID uuid.UUID, action string, performedBy *uuid.UUID) error
}

type InvitationRepository struct{}

func NewInvitationRepository() *InvitationRepository {
	return &InvitationRepository{}
}

const invitationColumns = `id, email, invited_by_user_id, global_role_id, invitation_token,
	expires_at, status, first_name, last_name, message, accepted_at, accepted_by_user_id,
	created_at, updated_at`

func (r *InvitationRepository) Create(ctx context.Context, s tenant.Session, inv *model.UserInvitation) error {
	row := s.QueryRow(ctx, `
		INSERT INTO user_invitations
			(email, invited_by_user_id, global_role_id, invitation_token, expires_at,
			 status, first_name, last_name, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		inv.Email, inv.InvitedByUserID, inv.GlobalRoleID, inv.InvitationToken,
		inv.ExpiresAt, inv.Status, inv.FirstName, inv.LastName, inv.Message)
	if err := row.Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return fmt.Errorf("creating invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) FindByToken(ctx context.Context, s tenant.Session, token string) (*model.UserInvitation, error) {
	row := s.QueryRow(ctx,
		"SELECT "+invitationColumns+" FROM user_invitations WHERE invitation_token = $1", token)

	var inv model.UserInvitation
	if err := row.Scan(&inv.ID, &inv.Email, &inv.InvitedByUserID, &inv.GlobalRoleID,
		&inv.InvitationToken, &inv.ExpiresAt, &inv.Status, &inv.FirstName, &inv.LastName,
		&inv.Message, &inv.AcceptedAt, &inv.AcceptedByUserID,
		&inv.CreatedAt, &inv.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding invitation: %w", err)
	}
	return &inv, nil
}

func (r *InvitationRepository) MarkAccepted(ctx context.Context, s tenant.Session, id uuid.UUID, acceptedBy uuid.UUID) error {
	tag, err := s.Exec(ctx, `
		UPDATE user_invitations
		SET status = $2, accepted_at = now(), accepted_by_user_id = $3, updated_at = now()
		WHERE id = $1 AND status = $4`,
		id, model.InvitationAccepted, acceptedBy, model.InvitationPending)
	if err != nil {
		return fmt.Errorf("accepting invitation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvitationAccepted
	}
	return nil
}

func (r *InvitationRepository) AppendAudit(ctx context.Context, s tenant.Session, invitationID uuid.UUID, action string, performedBy *uuid.UUID) error {
	_, err := s.Exec(ctx, `
		INSERT INTO invitation_audit_log (invitation_id, action, performed_by_user_id)
		VALUES ($1, $2, $3)`,
		invitationID, action, performedBy)
	if err != nil {
		return fmt.Errorf("appending invitation audit log: %w", err)
	}
	return nil
}
