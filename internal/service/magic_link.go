// internal/service/magic_link.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nebulahq/tessera/internal/auth"
	"github.com/nebulahq/tessera/internal/config"
	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/email"
	"github.com/nebulahq/tessera/internal/email/mailer"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/repository"
	"github.com/nebulahq/tessera/internal/tenant"
)

// MagicLinkService issues and verifies single-use sign-in links. Tokens live
// in the tenant's own magic_links table, so a link issued under one
// organisation can never authenticate against another.
type MagicLinkService struct {
	links        repository.MagicLinkRepositoryIface
	users        repository.TenantUserRepositoryIface
	tokenManager *auth.TokenManager
	emailService email.Sender
	cfg          *config.Config
	validate     *validator.Validate
	log          *slog.Logger
}

func NewMagicLinkService(
	links repository.MagicLinkRepositoryIface,
	users repository.TenantUserRepositoryIface,
	tokenManager *auth.TokenManager,
	emailService email.Sender,
	cfg *config.Config,
	log *slog.Logger,
) *MagicLinkService {
	if log == nil {
		log = slog.Default()
	}
	return &MagicLinkService{
		links:        links,
		users:        users,
		tokenManager: tokenManager,
		emailService: emailService,
		cfg:          cfg,
		validate:     validator.New(),
		log:          log,
	}
}

type RequestMagicLinkInput struct {
	Email string `json:"email" validate:"required,email"`
}

// Request stores a fresh token in the tenant schema and emails the link.
// Whether the address belongs to a known user is not revealed to the caller;
// unknown addresses simply get a signup-purpose link.
func (s *MagicLinkService) Request(ctx context.Context, sess tenant.Session, org *model.Organisation, input RequestMagicLinkInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	purpose := model.MagicLinkSignup
	if _, err := s.users.FindByEmail(ctx, sess, input.Email); err == nil {
		purpose = model.MagicLinkLogin
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	token, err := generateToken()
	if err != nil {
		return fmt.Errorf("generating magic link token: %w", err)
	}

	link := &model.MagicLink{
		Email:     input.Email,
		Token:     token,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(s.cfg.MagicLinkTTL),
	}
	if err := s.links.Create(ctx, sess, link); err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/auth/magic-link/verify?token=%s&domain=%s",
		s.cfg.BaseURL, url.QueryEscape(token), url.QueryEscape(org.Domain))

	if err := mailer.SendMagicLinkEmail(s.emailService, input.Email, org.Name, verifyURL,
		s.cfg.MagicLinkTTL.String()); err != nil {
		// The token row exists but the mail did not go out; surface the
		// failure so the client can retry the request.
		return fmt.Errorf("sending magic link email: %w", err)
	}

	s.log.Info("magic link issued", "org_id", org.ID, "purpose", purpose)
	return nil
}

type VerifyMagicLinkOutput struct {
	User  *model.TenantUser `json:"user"`
	Token string            `json:"token"`
}

// Verify consumes the token and signs the caller in, creating the user row on
// first sign-in for signup-purpose links.
func (s *MagicLinkService) Verify(ctx context.Context, sess tenant.Session, org *model.Organisation, token string) (*VerifyMagicLinkOutput, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", domain.ErrInvalidInput)
	}

	link, err := s.links.Consume(ctx, sess, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, sess, link.Email)
	if errors.Is(err, domain.ErrUserNotFound) && link.Purpose == model.MagicLinkSignup {
		user, err = s.users.Create(ctx, sess, link.Email)
	}
	if err != nil {
		return nil, err
	}

	jwtToken, err := s.tokenManager.Generate(user.ID.String(), user.Email, org.Domain)
	if err != nil {
		return nil, fmt.Errorf("issuing session token: %w", err)
	}

	return &VerifyMagicLinkOutput{User: user, Token: jwtToken}, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
