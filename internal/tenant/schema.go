// internal/tenant/schema.go
package tenant

import (
	"strings"

	"github.com/nebulahq/tessera/internal/domain"
)

// SchemaPrefix is prepended to every tenant schema name.
const SchemaPrefix = "tenant_"

// SchemaName derives the database schema for an organisation id. The id is
// reduced to [A-Za-z0-9_] before it is embedded in any identifier, so a
// hostile id can never smuggle SQL metacharacters into DDL or SET statements.
// Both the provisioner and the resolver must go through this function; two
// call sites deriving names independently is how isolation breaks.
func SchemaName(orgID string) (string, error) {
	var b strings.Builder
	for _, r := range orgID {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", domain.ErrInvalidTenantID
	}
	return SchemaPrefix + b.String(), nil
}
