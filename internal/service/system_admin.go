// internal/service/system_admin.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nebulahq/tessera/internal/auth"
	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/repository"
)

type SystemAdminService struct {
	repo           repository.SystemAdminRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewSystemAdminService(
	repo repository.SystemAdminRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *SystemAdminService {
	return &SystemAdminService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       validator.New(),
	}
}

type AdminLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginOutput struct {
	Admin *model.SystemAdmin `json:"admin"`
	Token string             `json:"token"`
}

func (s *SystemAdminService) Login(ctx context.Context, input AdminLoginInput) (*AdminLoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	admin, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, admin.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(admin.ID.String(), admin.Email, "")
	if err != nil {
		return nil, fmt.Errorf("issuing admin token: %w", err)
	}

	return &AdminLoginOutput{Admin: admin, Token: token}, nil
}

type CreateAdminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=12"`
}

// CreateAdmin provisions an operator account; used by the CLI, not the API.
func (s *SystemAdminService) CreateAdmin(ctx context.Context, input CreateAdminInput) (*model.SystemAdmin, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	admin := &model.SystemAdmin{
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
