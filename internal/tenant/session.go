// internal/tenant/session.go
package tenant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/nebulahq/tessera/internal/domain"
)

//go:generate mockgen -source=./session.go -destination=../mocks/mock_tenant_session.go -package=mocks Session

// Session is a request-scoped database handle pinned to one tenant schema.
// It is owned by exactly one request and must be released at request end;
// handlers never see the underlying pool.
type Session interface {
	Schema() string
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	// Release resets the connection's search path and returns it to the pool.
	Release(ctx context.Context)
}

// SessionPool hands out pinned sessions over a shared bounded pgx pool.
// Acquiring does not open a new physical connection per request; it borrows
// one, sets its search path, and the Session gives it back on Release.
// Every session runs under statementTimeout so a runaway tenant query cannot
// hold a pooled connection indefinitely; zero disables the bound.
type SessionPool struct {
	pool             *pgxpool.Pool
	statementTimeout time.Duration
	log              *slog.Logger
}

func NewSessionPool(pool *pgxpool.Pool, statementTimeout time.Duration, log *slog.Logger) *SessionPool {
	if log == nil {
		log = slog.Default()
	}
	return &SessionPool{pool: pool, statementTimeout: statementTimeout, log: log}
}

// Acquire borrows a connection and pins its search path to
// [schema, public]. The SET must be acknowledged before the session is handed
// out, so every later query on the connection sees tenant tables first. A pin
// failure is retried once on a fresh connection; a second failure surfaces as
// ErrSchemaPin.
func (p *SessionPool) Acquire(ctx context.Context, schema string) (Session, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		conn, err := p.pool.Acquire(ctx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, domain.ErrResolutionTimeout
			}
			return nil, fmt.Errorf("acquiring connection: %w", err)
		}

		err = p.pin(ctx, conn, schema)
		if err == nil {
			return &pinnedSession{conn: conn, schema: schema}, nil
		}

		// The connection is in an unknown state; make sure the pool
		// discards it instead of recycling a half-configured session.
		conn.Conn().Close(context.Background())
		conn.Release()

		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrResolutionTimeout
		}
		lastErr = err
		p.log.Warn("search_path pin failed", "schema", schema, "attempt", attempt+1, "error", err)
	}
	return nil, fmt.Errorf("%w: %v", domain.ErrSchemaPin, lastErr)
}

// pin configures the borrowed connection for one tenant request: search path
// first, then the statement timeout. Both must be acknowledged before the
// session is handed out.
func (p *SessionPool) pin(ctx context.Context, conn *pgxpool.Conn, schema string) error {
	if _, err := conn.Exec(ctx, "SET search_path TO "+pq.QuoteIdentifier(schema)+", public"); err != nil {
		return err
	}
	if p.statementTimeout > 0 {
		if _, err := conn.Exec(ctx,
			fmt.Sprintf("SET statement_timeout = %d", p.statementTimeout.Milliseconds())); err != nil {
			return err
		}
	}
	return nil
}

// Close shuts the underlying pool down.
func (p *SessionPool) Close() {
	p.pool.Close()
}

type pinnedSession struct {
	conn   *pgxpool.Conn
	schema string
}

func (s *pinnedSession) Schema() string { return s.schema }

func (s *pinnedSession) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return s.conn.Exec(ctx, sql, args...)
}

func (s *pinnedSession) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return s.conn.Query(ctx, sql, args...)
}

func (s *pinnedSession) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.conn.QueryRow(ctx, sql, args...)
}

// Release resets the search path before the connection goes back to the pool,
// so an unrelated request can never inherit a stale tenant scope. If the
// reset fails the connection is closed and the pool discards it.
func (s *pinnedSession) Release(ctx context.Context) {
	if s.conn == nil {
		return
	}
	if ctx == nil || ctx.Err() != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
	}
	if _, err := s.conn.Exec(ctx, "SET search_path TO public"); err != nil {
		s.conn.Conn().Close(context.Background())
	}
	s.conn.Release()
	s.conn = nil
}
