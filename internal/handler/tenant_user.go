// internal/handler/tenant_user.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nebulahq/tessera/internal/middleware"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/service"
	"github.com/nebulahq/tessera/internal/tenant"
)

// TenantUserHandler serves the tenant-scoped user and invitation API. Every
// route sits behind the tenant resolver; the handler only ever touches the
// pinned session attached to the request.
type TenantUserHandler struct {
	userService       *service.TenantUserService
	invitationService *service.InvitationService
}

func NewTenantUserHandler(userService *service.TenantUserService, invitationService *service.InvitationService) *TenantUserHandler {
	return &TenantUserHandler{
		userService:       userService,
		invitationService: invitationService,
	}
}

func (h *TenantUserHandler) tenantContext(w http.ResponseWriter, r *http.Request) (tenant.Session, *model.Organisation, bool) {
	sess := middleware.SessionFromContext(r.Context())
	org := middleware.OrgFromContext(r.Context())
	if sess == nil || org == nil {
		respondWithError(w, http.StatusInternalServerError, "tenant context missing")
		return nil, nil, false
	}
	return sess, org, true
}

type userResponse struct {
	BaseResponse
	User *model.TenantUser `json:"user"`
}

type userListResponse struct {
	BaseResponse
	Users []*model.TenantUser `json:"users"`
}

func (h *TenantUserHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.tenantContext(w, r)
	if !ok {
		return
	}

	users, err := h.userService.List(r.Context(), sess)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, userListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Users:        users,
	})
}

func (h *TenantUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.tenantContext(w, r)
	if !ok {
		return
	}

	var input service.CreateTenantUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.userService.Create(r.Context(), sess, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, userResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}

func (h *TenantUserHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.tenantContext(w, r)
	if !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(r.Context(), sess, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, userResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}

func (h *TenantUserHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.tenantContext(w, r)
	if !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input service.UpdateTenantUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.userService.Update(r.Context(), sess, id, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, userResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}

func (h *TenantUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.tenantContext(w, r)
	if !ok {
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), sess, id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *TenantUserHandler) Invite(w http.ResponseWriter, r *http.Request) {
	sess, org, ok := h.tenantContext(w, r)
	if !ok {
		return
	}

	var input service.InviteUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	inv, err := h.invitationService.Invite(r.Context(), sess, org, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, struct {
		BaseResponse
		Invitation *model.UserInvitation `json:"invitation"`
	}{BaseResponse{Ok: true}, inv})
}

func (h *TenantUserHandler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.tenantContext(w, r)
	if !ok {
		return
	}

	var input service.AcceptInvitationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.invitationService.Accept(r.Context(), sess, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, userResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}
