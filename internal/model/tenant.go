// internal/model/tenant.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Tenant-side rows are read and written through a schema-pinned session, so
// none of these carry a schema qualifier; the session's search path decides
// which physical table they resolve to.

type TenantUser struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type Profile struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	FirstName *string    `json:"first_name,omitempty"`
	LastName  *string    `json:"last_name,omitempty"`
	Gender    *string    `json:"gender,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRevoked  InvitationStatus = "revoked"
)

type UserInvitation struct {
	ID               uuid.UUID        `json:"id"`
	Email            string           `json:"email"`
	InvitedByUserID  uuid.UUID        `json:"invited_by_user_id"`
	GlobalRoleID     *uuid.UUID       `json:"global_role_id,omitempty"`
	InvitationToken  string           `json:"-"`
	ExpiresAt        time.Time        `json:"expires_at"`
	Status           InvitationStatus `json:"status"`
	FirstName        *string          `json:"first_name,omitempty"`
	LastName         *string          `json:"last_name,omitempty"`
	Message          *string          `json:"message,omitempty"`
	AcceptedAt       *time.Time       `json:"accepted_at,omitempty"`
	AcceptedByUserID *uuid.UUID       `json:"accepted_by_user_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type MagicLinkPurpose string

const (
	MagicLinkLogin  MagicLinkPurpose = "login"
	MagicLinkSignup MagicLinkPurpose = "signup"
)

type MagicLink struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	Token     string           `json:"-"`
	Purpose   MagicLinkPurpose `json:"purpose"`
	ExpiresAt time.Time        `json:"expires_at"`
	Used      *bool            `json:"used,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
