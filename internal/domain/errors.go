// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Tenant-resolution errors
	ErrMissingTenant     = errors.New("no tenant domain on request")
	ErrTenantNotFound    = errors.New("no organisation matches this domain")
	ErrTenantNotReady    = errors.New("organisation is not provisioned")
	ErrSchemaPin         = errors.New("failed to pin session search path")
	ErrResolutionTimeout = errors.New("tenant resolution timed out")
	ErrInvalidTenantID   = errors.New("organisation id yields an empty schema name")

	// Organisation errors
	ErrOrganisationNotFound = errors.New("organisation not found")
	ErrDuplicateDomain      = errors.New("an organisation with this domain already exists")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Magic-link errors
	ErrMagicLinkInvalid = errors.New("magic link is invalid or already used")
	ErrMagicLinkExpired = errors.New("magic link expired")

	// Invitation errors
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation expired")
	ErrInvitationAccepted = errors.New("invitation already accepted")
)
