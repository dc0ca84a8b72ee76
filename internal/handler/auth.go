// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nebulahq/tessera/internal/middleware"
	"github.com/nebulahq/tessera/internal/service"
)

// AuthHandler serves magic-link authentication for tenant users and password
// login for system admins. The magic-link routes are mounted under the tenant
// resolver, which honors the X-Tenant-Domain header these endpoints are
// called with.
type AuthHandler struct {
	magicLinks   *service.MagicLinkService
	adminService *service.SystemAdminService
}

func NewAuthHandler(magicLinks *service.MagicLinkService, adminService *service.SystemAdminService) *AuthHandler {
	return &AuthHandler{magicLinks: magicLinks, adminService: adminService}
}

func (h *AuthHandler) RequestMagicLink(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	org := middleware.OrgFromContext(r.Context())
	if sess == nil || org == nil {
		respondWithError(w, http.StatusInternalServerError, "tenant context missing")
		return
	}

	var input service.RequestMagicLinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.magicLinks.Request(r.Context(), sess, org, input); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusAccepted, BaseResponse{Ok: true})
}

func (h *AuthHandler) VerifyMagicLink(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	org := middleware.OrgFromContext(r.Context())
	if sess == nil || org == nil {
		respondWithError(w, http.StatusInternalServerError, "tenant context missing")
		return
	}

	out, err := h.magicLinks.Verify(r.Context(), sess, org, r.URL.Query().Get("token"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		*service.VerifyMagicLinkOutput
	}{BaseResponse{Ok: true}, out})
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var input service.AdminLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	out, err := h.adminService.Login(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		*service.AdminLoginOutput
	}{BaseResponse{Ok: true}, out})
}
