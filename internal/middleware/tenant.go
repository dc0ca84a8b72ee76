// internal/middleware/tenant.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/tenant"
)

type tenantContextKey string

const (
	orgKey     tenantContextKey = "tessera_org"
	sessionKey tenantContextKey = "tessera_session"
)

// TenantDomainHeader carries an explicit tenant domain on call sites that run
// before host-based routing applies (the magic-link flow). When present it
// wins over the Host header.
const TenantDomainHeader = "X-Tenant-Domain"

//go:generate mockgen -source=./tenant.go -destination=../mocks/mock_tenant_resolver.go -package=mocks OrganisationFinder,SessionSource

// OrganisationFinder is the resolver's view of the public organisation store.
type OrganisationFinder interface {
	FindByDomain(ctx context.Context, domain string) (*model.Organisation, error)
}

// SessionSource hands out schema-pinned sessions.
type SessionSource interface {
	Acquire(ctx context.Context, schema string) (tenant.Session, error)
}

// TenantResolver resolves the owning organisation of every inbound request
// from its domain and attaches a session pinned to that organisation's schema.
// Policy is fail closed: a request with no domain or an unknown domain never
// reaches a handler. Resolution runs under the supplied timeout.
func TenantResolver(orgs OrganisationFinder, sessions SessionSource, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Resolution happens exactly once per request; nested mounts
			// reuse the attached context.
			if SessionFromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}

			domainName := requestDomain(r)
			if domainName == "" {
				respondResolverError(w, http.StatusBadRequest, "missing_tenant", domain.ErrMissingTenant)
				return
			}

			rctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			org, err := orgs.FindByDomain(rctx, domainName)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTenantNotFound):
					respondResolverError(w, http.StatusNotFound, "tenant_not_found", err)
				case errors.Is(err, context.DeadlineExceeded):
					respondResolverError(w, http.StatusGatewayTimeout, "tenant_resolution_timeout", domain.ErrResolutionTimeout)
				default:
					respondResolverError(w, http.StatusInternalServerError, "tenant_lookup_failed", err)
				}
				return
			}

			if org.Status != model.OrgStatusActive {
				respondResolverError(w, http.StatusConflict, "tenant_not_provisioned", domain.ErrTenantNotReady)
				return
			}

			schema, err := tenant.SchemaName(org.ID.String())
			if err != nil {
				respondResolverError(w, http.StatusInternalServerError, "tenant_schema_invalid", err)
				return
			}

			sess, err := sessions.Acquire(rctx, schema)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrResolutionTimeout), errors.Is(err, context.DeadlineExceeded):
					respondResolverError(w, http.StatusGatewayTimeout, "tenant_resolution_timeout", domain.ErrResolutionTimeout)
				case errors.Is(err, domain.ErrSchemaPin):
					respondResolverError(w, http.StatusServiceUnavailable, "schema_pin_failed", err)
				default:
					respondResolverError(w, http.StatusInternalServerError, "tenant_session_failed", err)
				}
				return
			}
			// The session survives past rctx's deadline; teardown uses a
			// fresh context so the reset still runs on cancelled requests.
			defer sess.Release(context.Background())

			ctx := context.WithValue(r.Context(), orgKey, org)
			ctx = context.WithValue(ctx, sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OrgFromContext returns the organisation the request resolved to, or nil
// outside the resolver's scope.
func OrgFromContext(ctx context.Context) *model.Organisation {
	org, _ := ctx.Value(orgKey).(*model.Organisation)
	return org
}

// SessionFromContext returns the schema-pinned session for this request, or
// nil outside the resolver's scope. Handlers under the resolver must use this
// session exclusively; a raw pool handle would bypass tenant isolation.
func SessionFromContext(ctx context.Context) tenant.Session {
	sess, _ := ctx.Value(sessionKey).(tenant.Session)
	return sess
}

// WithTenant attaches an already-resolved organisation and session; used by
// tests and by internal callers that resolved out-of-band.
func WithTenant(ctx context.Context, org *model.Organisation, sess tenant.Session) context.Context {
	ctx = context.WithValue(ctx, orgKey, org)
	return context.WithValue(ctx, sessionKey, sess)
}

func requestDomain(r *http.Request) string {
	if d := r.Header.Get(TenantDomainHeader); d != "" {
		return strings.ToLower(strings.TrimSpace(d))
	}
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.TrimSpace(host))
}

func respondResolverError(w http.ResponseWriter, status int, code string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":      err.Error(),
		"error_code": code,
	})
}
