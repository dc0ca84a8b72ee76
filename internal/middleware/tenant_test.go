package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/middleware"
	"github.com/nebulahq/tessera/internal/mocks"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/tenant"
)

func activeOrg() *model.Organisation {
	return &model.Organisation{
		ID:     uuid.New(),
		Name:   "Acme",
		Domain: "acme.example.com",
		Status: model.OrgStatusActive,
	}
}

func resolverRequest(domainName string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if domainName != "" {
		req.Host = domainName
	} else {
		req.Host = ""
	}
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTenantResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("resolves and attaches the tenant scope", func(t *testing.T) {
		orgs := mocks.NewMockOrganisationFinder(ctrl)
		sessions := mocks.NewMockSessionSource(ctrl)
		sess := mocks.NewMockSession(ctrl)

		org := activeOrg()
		schema, err := tenant.SchemaName(org.ID.String())
		require.NoError(t, err)

		orgs.EXPECT().FindByDomain(gomock.Any(), org.Domain).Return(org, nil)
		sessions.EXPECT().Acquire(gomock.Any(), schema).Return(sess, nil)
		sess.EXPECT().Release(gomock.Any())

		var seenOrg *model.Organisation
		var seenSess tenant.Session
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenOrg = middleware.OrgFromContext(r.Context())
			seenSess = middleware.SessionFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		middleware.TenantResolver(orgs, sessions, time.Second)(next).
			ServeHTTP(rec, resolverRequest(org.Domain))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, seenOrg)
		assert.Equal(t, org.ID, seenOrg.ID)
		assert.Same(t, sess, seenSess)
	})

	t.Run("host header port and case are normalized", func(t *testing.T) {
		orgs := mocks.NewMockOrganisationFinder(ctrl)
		sessions := mocks.NewMockSessionSource(ctrl)
		sess := mocks.NewMockSession(ctrl)

		org := activeOrg()
		orgs.EXPECT().FindByDomain(gomock.Any(), org.Domain).Return(org, nil)
		sessions.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(sess, nil)
		sess.EXPECT().Release(gomock.Any())

		req := resolverRequest("ACME.example.com:8443")
		rec := httptest.NewRecorder()
		middleware.TenantResolver(orgs, sessions, time.Second)(passthrough()).
			ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("explicit tenant header wins over host", func(t *testing.T) {
		orgs := mocks.NewMockOrganisationFinder(ctrl)
		sessions := mocks.NewMockSessionSource(ctrl)
		sess := mocks.NewMockSession(ctrl)

		org := activeOrg()
		orgs.EXPECT().FindByDomain(gomock.Any(), org.Domain).Return(org, nil)
		sessions.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(sess, nil)
		sess.EXPECT().Release(gomock.Any())

		req := resolverRequest("other.example.com")
		req.Header.Set(middleware.TenantDomainHeader, org.Domain)
		rec := httptest.NewRecorder()
		middleware.TenantResolver(orgs, sessions, time.Second)(passthrough()).
			ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing domain fails closed", func(t *testing.T) {
		orgs := mocks.NewMockOrganisationFinder(ctrl)
		sessions := mocks.NewMockSessionSource(ctrl)

		rec := httptest.NewRecorder()
		middleware.TenantResolver(orgs, sessions, time.Second)(panicOnCall(t)).
			ServeHTTP(rec, resolverRequest(""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "missing_tenant", decodeError(t, rec)["error_code"])
	})

	t.Run("unknown domain fails closed", func(t *testing.T) {
		orgs := mocks.NewMockOrganisationFinder(ctrl)
		sessions := mocks.NewMockSessionSource(ctrl)

		orgs.EXPECT().FindByDomain(gomock.Any(), "ghost.example.com").
			Return(nil, domain.ErrTenantNotFound)

		rec := httptest.NewRecorder()
		middleware.TenantResolver(orgs, sessions, time.Second)(panicOnCall(t)).
			ServeHTTP(rec, resolverRequest("ghost.example.com"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "tenant_not_found", decodeError(t, rec)["error_code"])
	})

	t.Run("lookup timeout maps to gateway timeout", func(t *testing.T) {
		orgs := mocks.NewMockOrganisationFinder(ctrl)
		sessions := mocks.NewMockSessionSource(ctrl)

		orgs.EXPECT().FindByDomain(gomock.Any(), gomock.Any()).
			Return(nil, context.DeadlineExceeded)

		rec := httptest.NewRecorder()
		middleware.TenantResolver(orgs, sessions, time.Second)(panicOnCall(t)).
			ServeHTTP(rec, resolverRequest("acme.example.com"))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		assert.Equal(t, "tenant_resolution_timeout", decodeError(t, rec)["error_code"])
	})

	t.Run("unprovisioned organisation is rejected", func(t *testing.T) {
		for _, status := range []model.OrganisationStatus{
			model.OrgStatusPending,
			model.OrgStatusProvisioningFailed,
		} {
			orgs := mocks.NewMockOrganisationFinder(ctrl)
			sessions := mocks.NewMockSessionSource(ctrl)

			org := activeOrg()
			org.Status = status
			orgs.EXPECT().FindByDomain(gomock.Any(), org.Domain).Return(org, nil)

			rec := httptest.NewRecorder()
			middleware.TenantResolver(orgs, sessions, time.Second)(panicOnCall(t)).
				ServeHTTP(rec, resolverRequest(org.Domain))

			assert.Equal(t, http.StatusConflict, rec.Code)
			assert.Equal(t, "tenant_not_provisioned", decodeError(t, rec)["error_code"])
		}
	})

	t.Run("pin failure maps to service unavailable", func(t *testing.T) {
		orgs := mocks.NewMockOrganisationFinder(ctrl)
		sessions := mocks.NewMockSessionSource(ctrl)

		org := activeOrg()
		orgs.EXPECT().FindByDomain(gomock.Any(), org.Domain).Return(org, nil)
		sessions.EXPECT().Acquire(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrSchemaPin)

		rec := httptest.NewRecorder()
		middleware.TenantResolver(orgs, sessions, time.Second)(panicOnCall(t)).
			ServeHTTP(rec, resolverRequest(org.Domain))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "schema_pin_failed", decodeError(t, rec)["error_code"])
	})

	t.Run("acquire timeout maps to gateway timeout", func(t *testing.T) {
		orgs := mocks.NewMockOrganisationFinder(ctrl)
		sessions := mocks.NewMockSessionSource(ctrl)

		org := activeOrg()
		orgs.EXPECT().FindByDomain(gomock.Any(), org.Domain).Return(org, nil)
		sessions.EXPECT().Acquire(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrResolutionTimeout)

		rec := httptest.NewRecorder()
		middleware.TenantResolver(orgs, sessions, time.Second)(panicOnCall(t)).
			ServeHTTP(rec, resolverRequest(org.Domain))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		assert.Equal(t, "tenant_resolution_timeout", decodeError(t, rec)["error_code"])
	})

	t.Run("resolution runs once per request", func(t *testing.T) {
		orgs := mocks.NewMockOrganisationFinder(ctrl)
		sessions := mocks.NewMockSessionSource(ctrl)
		sess := mocks.NewMockSession(ctrl)

		org := activeOrg()
		req := resolverRequest(org.Domain)
		req = req.WithContext(middleware.WithTenant(req.Context(), org, sess))

		// No FindByDomain, no Acquire: the attached scope is reused as is.
		rec := httptest.NewRecorder()
		middleware.TenantResolver(orgs, sessions, time.Second)(passthrough()).
			ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestSessionFromContextOutsideResolver(t *testing.T) {
	assert.Nil(t, middleware.SessionFromContext(context.Background()))
	assert.Nil(t, middleware.OrgFromContext(context.Background()))
}

func passthrough() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func panicOnCall(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when tenant resolution fails")
	})
}
