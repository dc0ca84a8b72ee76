//go:build integration

package tenant_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/nebulahq/tessera/internal/tenant"
)

func setupPostgresContainer(t *testing.T, ctx context.Context) (string, func()) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return connString, cleanup
}

func TestIntegration_ProvisionAndIsolation(t *testing.T) {
	ctx := context.Background()
	connString, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	provisioner := tenant.NewProvisioner(connString, nil)

	orgA := uuid.New().String()
	orgB := uuid.New().String()

	require.NoError(t, provisioner.Provision(ctx, orgA))
	require.NoError(t, provisioner.Provision(ctx, orgB))

	schemaA, err := tenant.SchemaName(orgA)
	require.NoError(t, err)
	schemaB, err := tenant.SchemaName(orgB)
	require.NoError(t, err)

	poolCfg, err := pgxpool.ParseConfig(connString)
	require.NoError(t, err)
	poolCfg.MaxConns = 4
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	require.NoError(t, err)
	defer pool.Close()

	sessions := tenant.NewSessionPool(pool, 30*time.Second, nil)

	t.Run("each schema has the full table set", func(t *testing.T) {
		for _, schema := range []string{schemaA, schemaB} {
			var count int
			err := pool.QueryRow(ctx,
				`SELECT count(*) FROM information_schema.tables WHERE table_schema = $1`,
				schema).Scan(&count)
			require.NoError(t, err)
			require.Equal(t, len(tenant.TableNames()), count)
		}
	})

	t.Run("re-provisioning an existing schema is a no-op", func(t *testing.T) {
		require.NoError(t, provisioner.Provision(ctx, orgA))

		var count int
		err := pool.QueryRow(ctx,
			`SELECT count(*) FROM information_schema.tables WHERE table_schema = $1`,
			schemaA).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, len(tenant.TableNames()), count)
	})

	t.Run("pinned sessions write to disjoint tables", func(t *testing.T) {
		sessA, err := sessions.Acquire(ctx, schemaA)
		require.NoError(t, err)
		_, err = sessA.Exec(ctx, `INSERT INTO users (email) VALUES ($1)`, "a@tenant-a.example.com")
		require.NoError(t, err)
		sessA.Release(ctx)

		sessB, err := sessions.Acquire(ctx, schemaB)
		require.NoError(t, err)
		var count int
		err = sessB.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 0, count, "tenant B must not see tenant A's rows")
		sessB.Release(ctx)
	})

	t.Run("pinned sessions run under the statement timeout", func(t *testing.T) {
		sess, err := sessions.Acquire(ctx, schemaA)
		require.NoError(t, err)
		defer sess.Release(ctx)

		var timeout string
		require.NoError(t, sess.QueryRow(ctx, `SHOW statement_timeout`).Scan(&timeout))
		require.Equal(t, "30s", timeout)
	})

	t.Run("email is unique per tenant while the user is live", func(t *testing.T) {
		sessA, err := sessions.Acquire(ctx, schemaA)
		require.NoError(t, err)
		defer sessA.Release(ctx)

		_, err = sessA.Exec(ctx, `INSERT INTO users (email) VALUES ($1)`, "dup@example.com")
		require.NoError(t, err)

		_, err = sessA.Exec(ctx, `INSERT INTO users (email) VALUES ($1)`, "dup@example.com")
		require.Error(t, err, "second live row for the same address must violate the partial index")

		// Uniqueness is per schema: the same address is free in tenant B.
		sessB, err := sessions.Acquire(ctx, schemaB)
		require.NoError(t, err)
		defer sessB.Release(ctx)
		_, err = sessB.Exec(ctx, `INSERT INTO users (email) VALUES ($1)`, "dup@example.com")
		require.NoError(t, err)

		// Soft deletion frees the address for re-registration.
		_, err = sessA.Exec(ctx, `UPDATE users SET deleted_at = now() WHERE email = $1`, "dup@example.com")
		require.NoError(t, err)
		_, err = sessA.Exec(ctx, `INSERT INTO users (email) VALUES ($1)`, "dup@example.com")
		require.NoError(t, err)
	})

	t.Run("released connections carry no stale scope", func(t *testing.T) {
		sess, err := sessions.Acquire(ctx, schemaA)
		require.NoError(t, err)
		sess.Release(ctx)

		// Any connection handed back by the pool must resolve unqualified
		// names against public, where no users table exists.
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		defer conn.Release()

		var searchPath string
		require.NoError(t, conn.QueryRow(ctx, `SHOW search_path`).Scan(&searchPath))
		require.NotContains(t, searchPath, schemaA)
	})

	t.Run("concurrent requests across tenants stay isolated", func(t *testing.T) {
		const perTenant = 20

		var wg sync.WaitGroup
		errs := make(chan error, perTenant*2)
		for i := 0; i < perTenant; i++ {
			for _, tc := range []struct {
				schema string
				email  string
			}{
				{schemaA, fmt.Sprintf("u%d@tenant-a.example.com", i)},
				{schemaB, fmt.Sprintf("u%d@tenant-b.example.com", i)},
			} {
				wg.Add(1)
				go func(schema, email string) {
					defer wg.Done()
					ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
					defer cancel()

					sess, err := sessions.Acquire(ctx, schema)
					if err != nil {
						errs <- err
						return
					}
					defer sess.Release(ctx)

					if _, err := sess.Exec(ctx, `INSERT INTO users (email) VALUES ($1)`, email); err != nil {
						errs <- err
						return
					}
					var got string
					if err := sess.QueryRow(ctx,
						`SELECT email FROM users WHERE email = $1`, email).Scan(&got); err != nil {
						errs <- err
					}
				}(tc.schema, tc.email)
			}
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		// Every row landed in its own schema; emails are disjoint by
		// construction, so a crossed search path would show up here.
		var crossed int
		err := pool.QueryRow(ctx, fmt.Sprintf(
			`SELECT count(*) FROM %q.users WHERE email LIKE '%%tenant-b%%'`, schemaA)).Scan(&crossed)
		require.NoError(t, err)
		require.Equal(t, 0, crossed)
	})
}
