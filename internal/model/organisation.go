// internal/model/organisation.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganisationStatus tracks the two-phase onboarding of a tenant. A row is
// inserted as pending, flipped to active only after its schema exists, and
// parked at provisioning_failed when schema creation did not complete.
type OrganisationStatus string

const (
	OrgStatusPending            OrganisationStatus = "pending"
	OrgStatusActive             OrganisationStatus = "active"
	OrgStatusProvisioningFailed OrganisationStatus = "provisioning_failed"
)

// Organisation lives in the public schema and is the routing key for tenant
// resolution. Domain is unique and is the sole lookup key on the request path.
type Organisation struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string             `gorm:"type:string;uniqueIndex;not null"`
	Domain    string             `gorm:"type:string;uniqueIndex;not null"`
	Sector    *string            `gorm:"type:string"`
	Status    OrganisationStatus `gorm:"type:string;not null;default:pending"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Organisation) TableName() string {
	return "organisations"
}
