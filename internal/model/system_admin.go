// internal/model/system_admin.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SystemAdmin is an operator account for the administrative API. Admins live
// in the public schema and are never tenant-scoped.
type SystemAdmin struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:string;uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:string;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (SystemAdmin) TableName() string {
	return "system_admins"
}
