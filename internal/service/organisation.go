// internal/service/organisation.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/repository"
)

//go:generate mockgen -source=./organisation.go -destination=../mocks/mock_provisioner.go -package=mocks TenantProvisioner

// TenantProvisioner creates a tenant's schema and table set.
type TenantProvisioner interface {
	Provision(ctx context.Context, orgID string) error
}

type OrganisationService struct {
	repo        repository.OrganisationRepositoryIface
	provisioner TenantProvisioner
	validate    *validator.Validate
	log         *slog.Logger
}

func NewOrganisationService(repo repository.OrganisationRepositoryIface, provisioner TenantProvisioner, log *slog.Logger) *OrganisationService {
	if log == nil {
		log = slog.Default()
	}
	return &OrganisationService{
		repo:        repo,
		provisioner: provisioner,
		validate:    validator.New(),
		log:         log,
	}
}

type CreateOrganisationInput struct {
	Name   string  `json:"name" validate:"required,min=2"`
	Domain string  `json:"domain" validate:"required,fqdn"`
	Sector *string `json:"sector"`
}

type UpdateOrganisationInput struct {
	Name   *string `json:"name" validate:"omitempty,min=2"`
	Sector *string `json:"sector"`
}

// Create onboards an organisation in two phases: the row is inserted as
// pending, then the tenant schema is provisioned, and only a confirmed schema
// flips the row to active. A provisioning failure leaves the row at
// provisioning_failed so the caller can tell "created but not provisioned"
// from "creation failed", and retry via Provision.
func (s *OrganisationService) Create(ctx context.Context, input CreateOrganisationInput) (*model.Organisation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	org := &model.Organisation{
		Name:   input.Name,
		Domain: input.Domain,
		Sector: input.Sector,
		Status: model.OrgStatusPending,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}

	if err := s.provisioner.Provision(ctx, org.ID.String()); err != nil {
		s.log.Error("tenant provisioning failed",
			"org_id", org.ID, "domain", org.Domain, "error", err)
		if uerr := s.repo.UpdateStatus(ctx, org.ID, model.OrgStatusProvisioningFailed); uerr != nil {
			s.log.Error("failed to record provisioning failure", "org_id", org.ID, "error", uerr)
		}
		org.Status = model.OrgStatusProvisioningFailed
		return org, fmt.Errorf("provisioning organisation %s: %w", org.ID, err)
	}

	if err := s.repo.UpdateStatus(ctx, org.ID, model.OrgStatusActive); err != nil {
		return org, fmt.Errorf("activating organisation %s: %w", org.ID, err)
	}
	org.Status = model.OrgStatusActive

	s.log.Info("organisation onboarded", "org_id", org.ID, "domain", org.Domain)
	return org, nil
}

// Provision re-runs schema provisioning for an organisation whose earlier
// attempt failed. Safe against partial prior failure: every DDL statement is
// guarded, so the retry completes the remainder.
func (s *OrganisationService) Provision(ctx context.Context, id uuid.UUID) (*model.Organisation, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.provisioner.Provision(ctx, org.ID.String()); err != nil {
		if uerr := s.repo.UpdateStatus(ctx, org.ID, model.OrgStatusProvisioningFailed); uerr != nil {
			s.log.Error("failed to record provisioning failure", "org_id", org.ID, "error", uerr)
		}
		org.Status = model.OrgStatusProvisioningFailed
		return org, fmt.Errorf("provisioning organisation %s: %w", org.ID, err)
	}

	if err := s.repo.UpdateStatus(ctx, org.ID, model.OrgStatusActive); err != nil {
		return org, fmt.Errorf("activating organisation %s: %w", org.ID, err)
	}
	org.Status = model.OrgStatusActive
	return org, nil
}

func (s *OrganisationService) GetByID(ctx context.Context, id uuid.UUID) (*model.Organisation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrganisationService) List(ctx context.Context, offset, limit int) ([]*model.Organisation, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.FindAllPaginated(ctx, offset, limit)
}

// Update changes mutable attributes. Domain is deliberately immutable: it is
// the resolver's routing key and there is no rename protocol for a live
// tenant.
func (s *OrganisationService) Update(ctx context.Context, id uuid.UUID, input UpdateOrganisationInput) (*model.Organisation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.Sector != nil {
		org.Sector = input.Sector
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *OrganisationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *OrganisationService) Restore(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Restore(ctx, id); err != nil {
		return err
	}
	// A restored organisation keeps its schema; nothing to re-provision.
	org, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrOrganisationNotFound) {
		return err
	}
	if org != nil && org.Status != model.OrgStatusActive {
		s.log.Warn("restored organisation is not active", "org_id", id, "status", org.Status)
	}
	return nil
}
