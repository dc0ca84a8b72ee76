package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/handler"
	"github.com/nebulahq/tessera/internal/mocks"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/service"
)

func organisationRouter(repo *mocks.MockOrganisationRepositoryIface, provisioner *mocks.MockTenantProvisioner) chi.Router {
	h := handler.NewOrganisationHandler(service.NewOrganisationService(repo, provisioner, nil))

	r := chi.NewRouter()
	r.Route("/organisations", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Post("/{id}/provision", h.Provision)
	})
	return r
}

func TestOrganisationHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := `{"name":"Acme","domain":"acme.example.com"}`

	t.Run("successful onboarding returns 201 with an active organisation", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		orgID := uuid.New()
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organisation) error {
				org.ID = orgID
				return nil
			})
		provisioner.EXPECT().Provision(gomock.Any(), orgID.String()).Return(nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), orgID, model.OrgStatusActive).Return(nil)

		rec := httptest.NewRecorder()
		organisationRouter(repo, provisioner).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/organisations", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Ok           bool                `json:"ok"`
			Organisation *model.Organisation `json:"organisation"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.Equal(t, model.OrgStatusActive, resp.Organisation.Status)
	})

	t.Run("provisioning failure returns 500 with provisioning_failed", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		orgID := uuid.New()
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organisation) error {
				org.ID = orgID
				return nil
			})
		provisioner.EXPECT().Provision(gomock.Any(), orgID.String()).
			Return(errors.New("connection refused"))
		repo.EXPECT().UpdateStatus(gomock.Any(), orgID, model.OrgStatusProvisioningFailed).Return(nil)

		rec := httptest.NewRecorder()
		organisationRouter(repo, provisioner).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/organisations", strings.NewReader(body)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("duplicate domain returns 409", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateDomain)

		rec := httptest.NewRecorder()
		organisationRouter(repo, provisioner).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/organisations", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed payload returns 400", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		rec := httptest.NewRecorder()
		organisationRouter(repo, provisioner).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/organisations", strings.NewReader("{nope")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrganisationHandlerGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unknown organisation returns 404", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrOrganisationNotFound)

		rec := httptest.NewRecorder()
		organisationRouter(repo, provisioner).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/organisations/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
		provisioner := mocks.NewMockTenantProvisioner(ctrl)

		rec := httptest.NewRecorder()
		organisationRouter(repo, provisioner).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/organisations/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrganisationHandlerProvisionRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockOrganisationRepositoryIface(ctrl)
	provisioner := mocks.NewMockTenantProvisioner(ctrl)

	id := uuid.New()
	failed := &model.Organisation{
		ID:     id,
		Name:   "Acme",
		Domain: "acme.example.com",
		Status: model.OrgStatusProvisioningFailed,
	}
	gomock.InOrder(
		repo.EXPECT().FindByID(gomock.Any(), id).Return(failed, nil),
		provisioner.EXPECT().Provision(gomock.Any(), id.String()).Return(nil),
		repo.EXPECT().UpdateStatus(gomock.Any(), id, model.OrgStatusActive).Return(nil),
	)

	rec := httptest.NewRecorder()
	organisationRouter(repo, provisioner).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/organisations/"+id.String()+"/provision", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Organisation *model.Organisation `json:"organisation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.OrgStatusActive, resp.Organisation.Status)
}
