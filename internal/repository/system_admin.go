// internal/repository/system_admin.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/model"
)

type SystemAdminRepositoryIface interface {
	Create(ctx context.Context, admin *model.SystemAdmin) error
	FindByEmail(ctx context.Context, email string) (*model.SystemAdmin, error)
}

type SystemAdminRepository struct {
	db *gorm.DB
}

func NewSystemAdminRepository(db *gorm.DB) *SystemAdminRepository {
	return &SystemAdminRepository{db: db}
}

func (r *SystemAdminRepository) Create(ctx context.Context, admin *model.SystemAdmin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("creating system admin: %w", err)
	}
	return nil
}

func (r *SystemAdminRepository) FindByEmail(ctx context.Context, email string) (*model.SystemAdmin, error) {
	var admin model.SystemAdmin
	if err := r.db.WithContext(ctx).First(&admin, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding system admin: %w", err)
	}
	return &admin, nil
}
