// Package repo contains all database access logic for the Siva Cabs backend.
// Each entity has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/sivacabs/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the per-entity
// scan helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// sqlstateUndefinedTable is the Postgres error code raised when a query
// names a table that does not exist (42P01). The application tables are
// created out of band by the setup tool, so this condition is reachable
// on a freshly provisioned database.
const sqlstateUndefinedTable = "42P01"

// mapError converts driver-level failures into domain sentinels.
// pgx.ErrNoRows becomes ErrNotFound; an undefined-table error becomes
// ErrSchemaMissing so callers can show a persistent setup prompt instead
// of a transient failure.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlstateUndefinedTable {
		return domain.ErrSchemaMissing
	}
	return err
}

// scanAmount parses the textual numeric produced by an "amount::text"
// projection. Amounts are selected as text because decimal.Decimal keeps
// exact rupee-and-paise values where float64 would not. NULL or garbage
// coerces to zero rather than failing the whole result set.
func scanAmount(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// day truncates a timestamp read from a DATE column to midnight UTC.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
