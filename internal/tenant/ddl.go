// internal/tenant/ddl.go
package tenant

import (
	"fmt"

	"github.com/lib/pq"
)

// tenantTables is the full table set materialized inside every tenant schema,
// in dependency order. Each definition is a format string taking the quoted
// schema identifier; unqualified references inside a definition resolve to the
// same schema through the provisioning session's search path.
var tenantTables = []struct {
	name string
	ddl  string
}{
	{"users", `CREATE TABLE IF NOT EXISTS %[1]s.users (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		email text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		deleted_at timestamptz
	)`},
	{"profiles", `CREATE TABLE IF NOT EXISTS %[1]s.profiles (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id uuid NOT NULL REFERENCES %[1]s.users (id),
		first_name text,
		last_name text,
		gender text,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		deleted_at timestamptz
	)`},
	{"roles", `CREATE TABLE IF NOT EXISTS %[1]s.roles (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		description text,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		deleted_at timestamptz
	)`},
	{"role_permissions", `CREATE TABLE IF NOT EXISTS %[1]s.role_permissions (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		role_id uuid NOT NULL REFERENCES %[1]s.roles (id),
		permission_id uuid NOT NULL,
		is_allowed boolean NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`},
	{"user_roles", `CREATE TABLE IF NOT EXISTS %[1]s.user_roles (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id uuid NOT NULL REFERENCES %[1]s.users (id),
		role_id uuid NOT NULL REFERENCES %[1]s.roles (id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		deleted_at timestamptz
	)`},
	{"workspaces", `CREATE TABLE IF NOT EXISTS %[1]s.workspaces (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		deleted_at timestamptz
	)`},
	{"workspace_users", `CREATE TABLE IF NOT EXISTS %[1]s.workspace_users (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		workspace_id uuid NOT NULL REFERENCES %[1]s.workspaces (id),
		user_id uuid NOT NULL REFERENCES %[1]s.users (id),
		created_at timestamptz NOT NULL DEFAULT now(),
		deleted_at timestamptz
	)`},
	{"workspace_roles", `CREATE TABLE IF NOT EXISTS %[1]s.workspace_roles (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		workspace_id uuid NOT NULL REFERENCES %[1]s.workspaces (id),
		name text NOT NULL,
		description text,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		deleted_at timestamptz
	)`},
	{"workspace_role_permissions", `CREATE TABLE IF NOT EXISTS %[1]s.workspace_role_permissions (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		workspace_role_id uuid NOT NULL REFERENCES %[1]s.workspace_roles (id),
		workspace_permission_id uuid NOT NULL,
		is_allowed boolean NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`},
	{"workspace_user_roles", `CREATE TABLE IF NOT EXISTS %[1]s.workspace_user_roles (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		workspace_id uuid NOT NULL REFERENCES %[1]s.workspaces (id),
		user_id uuid NOT NULL REFERENCES %[1]s.users (id),
		workspace_role_id uuid NOT NULL REFERENCES %[1]s.workspace_roles (id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		deleted_at timestamptz
	)`},
	{"user_invitations", `CREATE TABLE IF NOT EXISTS %[1]s.user_invitations (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		email text NOT NULL,
		invited_by_user_id uuid NOT NULL REFERENCES %[1]s.users (id),
		global_role_id uuid REFERENCES %[1]s.roles (id),
		invitation_token text NOT NULL,
		expires_at timestamptz NOT NULL,
		status text NOT NULL,
		first_name text,
		last_name text,
		message text,
		accepted_at timestamptz,
		accepted_by_user_id uuid REFERENCES %[1]s.users (id),
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`},
	{"invitation_workspace_assignments", `CREATE TABLE IF NOT EXISTS %[1]s.invitation_workspace_assignments (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		invitation_id uuid NOT NULL REFERENCES %[1]s.user_invitations (id),
		workspace_id uuid NOT NULL REFERENCES %[1]s.workspaces (id),
		workspace_role_ids uuid[] NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		deleted_at timestamptz
	)`},
	{"invitation_audit_log", `CREATE TABLE IF NOT EXISTS %[1]s.invitation_audit_log (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		invitation_id uuid NOT NULL REFERENCES %[1]s.user_invitations (id),
		action text NOT NULL,
		performed_by_user_id uuid REFERENCES %[1]s.users (id),
		created_at timestamptz NOT NULL DEFAULT now()
	)`},
	{"magic_links", `CREATE TABLE IF NOT EXISTS %[1]s.magic_links (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		email text NOT NULL,
		token text NOT NULL UNIQUE,
		purpose text NOT NULL CHECK (purpose IN ('login', 'signup')),
		expires_at timestamptz NOT NULL,
		used boolean,
		created_at timestamptz NOT NULL DEFAULT now()
	)`},
}

// tenantIndexes runs after the table set. The email index is partial so a
// soft-deleted user frees the address; live rows stay unique per tenant,
// which FindByEmail and the signup flows depend on.
var tenantIndexes = []struct {
	name string
	ddl  string
}{
	{"users_email_live_key", `CREATE UNIQUE INDEX IF NOT EXISTS users_email_live_key
		ON %[1]s.users (email) WHERE deleted_at IS NULL`},
	{"user_invitations_token_key", `CREATE UNIQUE INDEX IF NOT EXISTS user_invitations_token_key
		ON %[1]s.user_invitations (invitation_token)`},
}

// TableStatements returns the schema-qualified DDL for the tenant table set.
// The schema name is quoted into each statement; no shared metadata is
// touched, so concurrent provisioning of different organisations is safe.
func TableStatements(schema string) []string {
	quoted := pq.QuoteIdentifier(schema)
	stmts := make([]string, 0, len(tenantTables))
	for _, t := range tenantTables {
		stmts = append(stmts, fmt.Sprintf(t.ddl, quoted))
	}
	return stmts
}

// TableNames lists the tables every provisioned schema must contain.
func TableNames() []string {
	names := make([]string, 0, len(tenantTables))
	for _, t := range tenantTables {
		names = append(names, t.name)
	}
	return names
}

// IndexStatements returns the schema-qualified index DDL, to run after the
// tables exist. Guarded like the tables, so re-provisioning stays a no-op.
func IndexStatements(schema string) []string {
	quoted := pq.QuoteIdentifier(schema)
	stmts := make([]string, 0, len(tenantIndexes))
	for _, ix := range tenantIndexes {
		stmts = append(stmts, fmt.Sprintf(ix.ddl, quoted))
	}
	return stmts
}

// IndexNames lists the indexes every provisioned schema must contain.
func IndexNames() []string {
	names := make([]string, 0, len(tenantIndexes))
	for _, ix := range tenantIndexes {
		names = append(names, ix.name)
	}
	return names
}
