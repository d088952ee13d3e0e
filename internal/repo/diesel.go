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

// DieselRepo defines the persistence operations for diesel expenses.
type DieselRepo interface {
	// Create inserts a new expense and returns the persisted record.
	Create(ctx context.Context, exp domain.DieselExpense) (domain.DieselExpense, error)

	// GetByID retrieves a single expense by its UUID primary key.
	// Returns domain.ErrNotFound if no expense with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.DieselExpense, error)

	// List returns all expenses ordered by date descending.
	List(ctx context.Context) ([]domain.DieselExpense, error)

	// ListByDateRange returns the expenses whose date falls inside the
	// inclusive [start, end] interval, ordered by date ascending.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.DieselExpense, error)

	// Update overwrites the mutable fields of an existing expense and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, exp domain.DieselExpense) (domain.DieselExpense, error)

	// Delete removes an expense by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByDateRange returns the number of expenses inside the inclusive
	// interval without materializing any rows.
	CountByDateRange(ctx context.Context, start, end time.Time) (int64, error)

	// DeleteByDateRange removes every expense inside the inclusive interval
	// and returns the number of rows removed. Zero matches is not an error.
	DeleteByDateRange(ctx context.Context, start, end time.Time) (int64, error)
}

// pgDieselRepo is the Postgres implementation of DieselRepo.
type pgDieselRepo struct {
	db db
}

// NewDieselRepo constructs a DieselRepo backed by the provided db connection.
func NewDieselRepo(db db) DieselRepo {
	return &pgDieselRepo{db: db}
}

const dieselColumns = `id, date, amount::text, created_at, updated_at`

func (r *pgDieselRepo) Create(ctx context.Context, exp domain.DieselExpense) (domain.DieselExpense, error) {
	const q = `
		INSERT INTO diesel_expenses (date, amount)
		VALUES (@date, @amount)
		RETURNING ` + dieselColumns

	args := pgx.NamedArgs{
		"date":   exp.Date,
		"amount": exp.Amount.String(),
	}

	result, err := scanDiesel(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.DieselExpense{}, fmt.Errorf("repo.DieselRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDieselRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.DieselExpense, error) {
	const q = `SELECT ` + dieselColumns + ` FROM diesel_expenses WHERE id = @id`

	result, err := scanDiesel(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.DieselExpense{}, fmt.Errorf("repo.DieselRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgDieselRepo) List(ctx context.Context) ([]domain.DieselExpense, error) {
	const q = `SELECT ` + dieselColumns + ` FROM diesel_expenses ORDER BY date DESC, created_at DESC`

	exps, err := r.queryExpenses(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.DieselRepo.List: %w", err)
	}
	return exps, nil
}

func (r *pgDieselRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.DieselExpense, error) {
	const q = `
		SELECT ` + dieselColumns + `
		FROM diesel_expenses
		WHERE date >= @start AND date <= @end
		ORDER BY date ASC`

	exps, err := r.queryExpenses(ctx, q, pgx.NamedArgs{"start": start, "end": end})
	if err != nil {
		return nil, fmt.Errorf("repo.DieselRepo.ListByDateRange: %w", err)
	}
	return exps, nil
}

func (r *pgDieselRepo) Update(ctx context.Context, exp domain.DieselExpense) (domain.DieselExpense, error) {
	const q = `
		UPDATE diesel_expenses
		SET date       = @date,
		    amount     = @amount,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + dieselColumns

	args := pgx.NamedArgs{
		"id":     exp.ID,
		"date":   exp.Date,
		"amount": exp.Amount.String(),
	}

	result, err := scanDiesel(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.DieselExpense{}, fmt.Errorf("repo.DieselRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgDieselRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM diesel_expenses WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DieselRepo.Delete: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DieselRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgDieselRepo) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	const q = `SELECT count(*) FROM diesel_expenses WHERE date >= @start AND date <= @end`

	var n int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"start": start, "end": end}).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("repo.DieselRepo.CountByDateRange: %w", mapError(err))
	}
	return n, nil
}

func (r *pgDieselRepo) DeleteByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	const q = `DELETE FROM diesel_expenses WHERE date >= @start AND date <= @end`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"start": start, "end": end})
	if err != nil {
		return 0, fmt.Errorf("repo.DieselRepo.DeleteByDateRange: %w", mapError(err))
	}
	return tag.RowsAffected(), nil
}

// queryExpenses runs a multi-row expense query and maps every row.
func (r *pgDieselRepo) queryExpenses(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.DieselExpense, error) {
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

	var exps []domain.DieselExpense
	for rows.Next() {
		e, err := scanDiesel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		exps = append(exps, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", mapError(err))
	}

	return exps, nil
}

// scanDiesel maps a single database row into a domain.DieselExpense.
func scanDiesel(s scanner) (domain.DieselExpense, error) {
	var (
		e      domain.DieselExpense
		id     pgtype.UUID
		date   pgtype.Date
		amount *string
	)

	err := s.Scan(&id, &date, &amount, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.DieselExpense{}, mapError(err)
	}

	e.ID = uuid.UUID(id.Bytes)
	e.Date = day(date.Time)
	e.Amount = scanAmount(amount)

	return e, nil
}
