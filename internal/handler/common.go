// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/tenant"
)

type ErrorResponse struct {
	BaseResponse
	Error   string  `json:"error"`
	Code    *string `json:"error_code,omitempty"`
	Details *string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithErrorCode(w http.ResponseWriter, status int, errorCode, message string) {
	respondWithJSON(w, status, ErrorResponse{Error: message, Code: &errorCode})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondServiceError maps domain errors onto stable HTTP codes. Provisioning
// failures are reported distinctly so an administrative caller can tell
// "organisation created but not provisioned" from "creation failed".
func respondServiceError(w http.ResponseWriter, err error) {
	var provErr *tenant.ProvisioningError
	switch {
	case errors.As(err, &provErr):
		respondWithErrorCode(w, http.StatusInternalServerError, "provisioning_failed",
			"organisation created but not provisioned")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithErrorCode(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, domain.ErrDuplicateDomain):
		respondWithErrorCode(w, http.StatusConflict, "duplicate_domain", err.Error())
	case errors.Is(err, domain.ErrOrganisationNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrNotFound):
		respondWithErrorCode(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInvitationAccepted):
		respondWithErrorCode(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		respondWithErrorCode(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, domain.ErrMagicLinkInvalid),
		errors.Is(err, domain.ErrMagicLinkExpired),
		errors.Is(err, domain.ErrInvitationExpired):
		respondWithErrorCode(w, http.StatusUnauthorized, "link_invalid", err.Error())
	default:
		respondWithErrorCode(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
