// internal/tenant/provisioner.go
package tenant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// ProvisioningError is the single error kind surfaced to the
// organisation-creation flow. The underlying cause stays attached for logs.
type ProvisioningError struct {
	Schema string
	Err    error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning schema %q: %v", e.Schema, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// Provisioner creates tenant schemas and their table set. It connects on its
// own per call rather than borrowing from the request-handling pool, since
// provisioning runs out-of-band from request traffic.
type Provisioner struct {
	connString string
	log        *slog.Logger
}

func NewProvisioner(connString string, log *slog.Logger) *Provisioner {
	if log == nil {
		log = slog.Default()
	}
	return &Provisioner{connString: connString, log: log}
}

// Provision creates the schema derived from orgID and materializes every
// tenant table inside it. Every statement is guarded by IF NOT EXISTS, so a
// retry after a partial earlier failure completes the remainder, and running
// it against a fully provisioned schema is a no-op.
func (p *Provisioner) Provision(ctx context.Context, orgID string) error {
	schema, err := SchemaName(orgID)
	if err != nil {
		return &ProvisioningError{Schema: schema, Err: err}
	}

	pool, err := pgxpool.New(ctx, p.connString)
	if err != nil {
		return &ProvisioningError{Schema: schema, Err: fmt.Errorf("connecting: %w", err)}
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+pq.QuoteIdentifier(schema)); err != nil {
		return &ProvisioningError{Schema: schema, Err: fmt.Errorf("creating schema: %w", err)}
	}

	for i, stmt := range TableStatements(schema) {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return &ProvisioningError{
				Schema: schema,
				Err:    fmt.Errorf("creating table %s: %w", TableNames()[i], err),
			}
		}
	}

	for i, stmt := range IndexStatements(schema) {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return &ProvisioningError{
				Schema: schema,
				Err:    fmt.Errorf("creating index %s: %w", IndexNames()[i], err),
			}
		}
	}

	p.log.Info("tenant schema provisioned", "schema", schema, "org_id", orgID)
	return nil
}
