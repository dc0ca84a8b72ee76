// internal/repository/organisation.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/model"
)

type OrganisationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organisation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organisation, error)
	FindByDomain(ctx context.Context, domain string) (*model.Organisation, error)
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Organisation, int64, error)
	Update(ctx context.Context, org *model.Organisation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrganisationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type OrganisationRepository struct {
	db *gorm.DB
}

func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

func (r *OrganisationRepository) Create(ctx context.Context, org *model.Organisation) error {
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDomain
		}
		return fmt.Errorf("creating organisation: %w", err)
	}
	return nil
}

func (r *OrganisationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organisation, error) {
	var org model.Organisation
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("finding organisation: %w", err)
	}
	return &org, nil
}

// FindByDomain is the resolver's lookup. Soft-deleted organisations are
// excluded by gorm's deleted_at handling, so a deleted tenant stops resolving
// immediately.
func (r *OrganisationRepository) FindByDomain(ctx context.Context, domainName string) (*model.Organisation, error) {
	var org model.Organisation
	if err := r.db.WithContext(ctx).First(&org, "domain = ?", domainName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("finding organisation by domain: %w", err)
	}
	return &org, nil
}

// FindAllPaginated returns a page of organisations and the total count.
func (r *OrganisationRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Organisation, int64, error) {
	var orgs []*model.Organisation
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Organisation{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting organisations: %w", err)
	}

	result := r.db.WithContext(ctx).Order("created_at").Offset(offset).Limit(limit).Find(&orgs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("finding paginated organisations: %w", result.Error)
	}

	return orgs, count, nil
}

func (r *OrganisationRepository) Update(ctx context.Context, org *model.Organisation) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDomain
		}
		return fmt.Errorf("updating organisation: %w", err)
	}
	return nil
}

func (r *OrganisationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrganisationStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Organisation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating organisation status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrganisationNotFound
	}
	return nil
}

func (r *OrganisationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Organisation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting organisation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrganisationNotFound
	}
	return nil
}

// Restore clears the soft-delete marker.
func (r *OrganisationRepository) Restore(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Unscoped().Model(&model.Organisation{}).
		Where("id = ?", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return fmt.Errorf("restoring organisation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrganisationNotFound
	}
	return nil
}
