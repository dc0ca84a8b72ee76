// internal/service/tenant_user.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/repository"
	"github.com/nebulahq/tessera/internal/tenant"
)

// TenantUserService operates on the users table of the schema its callers'
// session is pinned to. It never touches the shared pool; every method takes
// the request's session.
type TenantUserService struct {
	repo     repository.TenantUserRepositoryIface
	validate *validator.Validate
}

func NewTenantUserService(repo repository.TenantUserRepositoryIface) *TenantUserService {
	return &TenantUserService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateTenantUserInput struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateTenantUserInput struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *TenantUserService) List(ctx context.Context, sess tenant.Session) ([]*model.TenantUser, error) {
	return s.repo.FindAll(ctx, sess)
}

func (s *TenantUserService) GetByID(ctx context.Context, sess tenant.Session, id uuid.UUID) (*model.TenantUser, error) {
	return s.repo.FindByID(ctx, sess, id)
}

func (s *TenantUserService) Create(ctx context.Context, sess tenant.Session, input CreateTenantUserInput) (*model.TenantUser, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return s.repo.Create(ctx, sess, input.Email)
}

func (s *TenantUserService) Update(ctx context.Context, sess tenant.Session, id uuid.UUID, input UpdateTenantUserInput) (*model.TenantUser, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return s.repo.UpdateEmail(ctx, sess, id, input.Email)
}

func (s *TenantUserService) Delete(ctx context.Context, sess tenant.Session, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, sess, id)
}
