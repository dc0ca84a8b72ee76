// internal/service/invitation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nebulahq/tessera/internal/config"
	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/email"
	"github.com/nebulahq/tessera/internal/email/mailer"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/repository"
	"github.com/nebulahq/tessera/internal/tenant"
)

// InvitationService manages invitations inside one tenant schema. Every
// action lands in the tenant's invitation_audit_log.
type InvitationService struct {
	invitations  repository.InvitationRepositoryIface
	users        repository.TenantUserRepositoryIface
	emailService email.Sender
	cfg          *config.Config
	validate     *validator.Validate
	log          *slog.Logger
}

func NewInvitationService(
	invitations repository.InvitationRepositoryIface,
	users repository.TenantUserRepositoryIface,
	emailService email.Sender,
	cfg *config.Config,
	log *slog.Logger,
) *InvitationService {
	if log == nil {
		log = slog.Default()
	}
	return &InvitationService{
		invitations:  invitations,
		users:        users,
		emailService: emailService,
		cfg:          cfg,
		validate:     validator.New(),
		log:          log,
	}
}

type InviteUserInput struct {
	Email           string     `json:"email" validate:"required,email"`
	InvitedByUserID uuid.UUID  `json:"invited_by_user_id" validate:"required"`
	GlobalRoleID    *uuid.UUID `json:"global_role_id"`
	FirstName       *string    `json:"first_name"`
	LastName        *string    `json:"last_name"`
	Message         *string    `json:"message"`
}

func (s *InvitationService) Invite(ctx context.Context, sess tenant.Session, org *model.Organisation, input InviteUserInput) (*model.UserInvitation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generating invitation token: %w", err)
	}

	inv := &model.UserInvitation{
		Email:           input.Email,
		InvitedByUserID: input.InvitedByUserID,
		GlobalRoleID:    input.GlobalRoleID,
		InvitationToken: token,
		ExpiresAt:       time.Now().Add(s.cfg.InvitationTTL),
		Status:          model.InvitationPending,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Message:         input.Message,
	}
	if err := s.invitations.Create(ctx, sess, inv); err != nil {
		return nil, err
	}

	if err := s.invitations.AppendAudit(ctx, sess, inv.ID, "invited", &input.InvitedByUserID); err != nil {
		s.log.Warn("failed to audit invitation", "invitation_id", inv.ID, "error", err)
	}

	acceptURL := fmt.Sprintf("%s/invitations/accept?token=%s&domain=%s",
		s.cfg.BaseURL, url.QueryEscape(token), url.QueryEscape(org.Domain))

	message := ""
	if input.Message != nil {
		message = *input.Message
	}
	if err := mailer.SendInvitationEmail(s.emailService, input.Email, org.Name, acceptURL,
		inv.ExpiresAt.Format(time.RFC1123), message); err != nil {
		return nil, fmt.Errorf("sending invitation email: %w", err)
	}

	return inv, nil
}

type AcceptInvitationInput struct {
	Token string `json:"token" validate:"required"`
}

// Accept consumes a pending invitation and creates the invited user in the
// tenant schema.
func (s *InvitationService) Accept(ctx context.Context, sess tenant.Session, input AcceptInvitationInput) (*model.TenantUser, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	inv, err := s.invitations.FindByToken(ctx, sess, input.Token)
	if err != nil {
		return nil, err
	}
	if inv.Status != model.InvitationPending {
		return nil, domain.ErrInvitationAccepted
	}
	if time.Now().After(inv.ExpiresAt) {
		return nil, domain.ErrInvitationExpired
	}

	user, err := s.users.Create(ctx, sess, inv.Email)
	if err != nil {
		return nil, err
	}

	if err := s.invitations.MarkAccepted(ctx, sess, inv.ID, user.ID); err != nil {
		return nil, err
	}
	if err := s.invitations.AppendAudit(ctx, sess, inv.ID, "accepted", &user.ID); err != nil {
		s.log.Warn("failed to audit invitation", "invitation_id", inv.ID, "error", err)
	}

	return user, nil
}
