package tenant_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nebulahq/tessera/internal/domain"
	"github.com/nebulahq/tessera/internal/tenant"
)

func TestSchemaName(t *testing.T) {
	tests := []struct {
		name    string
		orgID   string
		want    string
		wantErr error
	}{
		{
			name:  "uuid organisation id",
			orgID: "3f2c1b7a-9d4e-4a1b-8c5d-0e6f7a8b9c0d",
			want:  "tenant_3f2c1b7a9d4e4a1b8c5d0e6f7a8b9c0d",
		},
		{
			name:  "plain alphanumeric id",
			orgID: "acme42",
			want:  "tenant_acme42",
		},
		{
			name:  "underscores survive",
			orgID: "acme_corp",
			want:  "tenant_acme_corp",
		},
		{
			name:  "sql metacharacters are stripped",
			orgID: `acme"; DROP TABLE organisations;--`,
			want:  "tenant_acmeDROPTABLEorganisations",
		},
		{
			name:  "dots and dashes are stripped",
			orgID: "acme.co-uk",
			want:  "tenant_acmecouk",
		},
		{
			name:    "empty id is rejected",
			orgID:   "",
			wantErr: domain.ErrInvalidTenantID,
		},
		{
			name:    "id with no safe characters is rejected",
			orgID:   `"';--`,
			wantErr: domain.ErrInvalidTenantID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tenant.SchemaName(tt.orgID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemaNameIsDeterministic(t *testing.T) {
	id := uuid.New().String()
	first, err := tenant.SchemaName(id)
	assert.NoError(t, err)
	second, err := tenant.SchemaName(id)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSchemaNameDistinctOrganisations(t *testing.T) {
	a, err := tenant.SchemaName(uuid.New().String())
	assert.NoError(t, err)
	b, err := tenant.SchemaName(uuid.New().String())
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSchemaNamePrefix(t *testing.T) {
	got, err := tenant.SchemaName(uuid.New().String())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, tenant.SchemaPrefix))
}
