package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sivacabs/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the services to be unit-tested with mocks.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by date descending (most recent first).
	List(ctx context.Context) ([]domain.Trip, error)

	// ListByDateRange returns the trips whose date falls inside the inclusive
	// [start, end] interval, ordered by date ascending.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByDateRange returns the number of trips inside the inclusive
	// interval without materializing any rows.
	CountByDateRange(ctx context.Context, start, end time.Time) (int64, error)

	// DeleteByDateRange removes every trip inside the inclusive interval and
	// returns the number of rows removed. Zero matches is not an error.
	DeleteByDateRange(ctx context.Context, start, end time.Time) (int64, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, date, customer_name, place, amount::text, status, created_at, updated_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (date, customer_name, place, amount, status)
		VALUES (@date, @customer_name, @place, @amount, @status)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"date":          trip.Date,
		"customer_name": trip.CustomerName,
		"place":         trip.Place,
		"amount":        trip.Amount.String(),
		"status":        string(trip.Status),
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY date DESC, created_at DESC`

	trips, err := r.queryTrips(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

func (r *pgTripRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE date >= @start AND date <= @end
		ORDER BY date ASC`

	trips, err := r.queryTrips(ctx, q, pgx.NamedArgs{"start": start, "end": end})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByDateRange: %w", err)
	}
	return trips, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET date          = @date,
		    customer_name = @customer_name,
		    place         = @place,
		    amount        = @amount,
		    status        = @status,
		    updated_at    = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":            trip.ID,
		"date":          trip.Date,
		"customer_name": trip.CustomerName,
		"place":         trip.Place,
		"amount":        trip.Amount.String(),
		"status":        string(trip.Status),
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTripRepo) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	const q = `SELECT count(*) FROM trips WHERE date >= @start AND date <= @end`

	var n int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"start": start, "end": end}).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.CountByDateRange: %w", mapError(err))
	}
	return n, nil
}

func (r *pgTripRepo) DeleteByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	const q = `DELETE FROM trips WHERE date >= @start AND date <= @end`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"start": start, "end": end})
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.DeleteByDateRange: %w", mapError(err))
	}
	return tag.RowsAffected(), nil
}

// queryTrips runs a multi-row trip query and maps every row.
func (r *pgTripRepo) queryTrips(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Trip, error) {
	var rows pgx.Rows
	var err error
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", mapError(err))
	}

	return trips, nil
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t      domain.Trip
		id     pgtype.UUID
		date   pgtype.Date
		amount *string
		status string
	)

	err := s.Scan(&id, &date, &t.CustomerName, &t.Place, &amount, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Trip{}, mapError(err)
	}

	t.ID = uuid.UUID(id.Bytes)
	t.Date = day(date.Time)
	t.Amount = scanAmount(amount)
	t.Status = domain.TripStatus(status)

	return t, nil
}
