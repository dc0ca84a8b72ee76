// internal/handler/organisation.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/service"
)

// OrganisationHandler serves the administrative organisation API. These
// routes run against the public schema only and sit behind admin auth, not
// behind the tenant resolver.
type OrganisationHandler struct {
	orgService *service.OrganisationService
}

func NewOrganisationHandler(orgService *service.OrganisationService) *OrganisationHandler {
	return &OrganisationHandler{orgService: orgService}
}

type organisationResponse struct {
	BaseResponse
	Organisation *model.Organisation `json:"organisation"`
}

type organisationListResponse struct {
	BaseResponse
	Organisations []*model.Organisation `json:"organisations"`
	Total         int64                 `json:"total"`
}

func (h *OrganisationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrganisationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := h.orgService.Create(r.Context(), input)
	if err != nil {
		// The row may exist with status provisioning_failed; the error
		// mapping tells the caller which of the two cases happened.
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, organisationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organisation: org,
	})
}

func (h *OrganisationHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orgs, total, err := h.orgService.List(r.Context(), offset, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, organisationListResponse{
		BaseResponse:  BaseResponse{Ok: true},
		Organisations: orgs,
		Total:         total,
	})
}

func (h *OrganisationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	org, err := h.orgService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, organisationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organisation: org,
	})
}

func (h *OrganisationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input service.UpdateOrganisationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	org, err := h.orgService.Update(r.Context(), id, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, organisationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organisation: org,
	})
}

func (h *OrganisationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.orgService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *OrganisationHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.orgService.Restore(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Provision retries schema creation for an organisation stuck at
// provisioning_failed.
func (h *OrganisationHandler) Provision(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	org, err := h.orgService.Provision(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, organisationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organisation: org,
	})
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
