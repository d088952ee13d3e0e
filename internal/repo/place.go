package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sivacabs/backend/internal/domain"
)

// PlaceRepo defines the persistence operations for Places.
type PlaceRepo interface {
	// Create inserts a new place and returns the persisted record.
	Create(ctx context.Context, place domain.Place) (domain.Place, error)

	// GetByID retrieves a single place by its UUID primary key.
	// Returns domain.ErrNotFound if no place with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Place, error)

	// List returns all places ordered by name ascending.
	List(ctx context.Context) ([]domain.Place, error)

	// Update overwrites the mutable fields of an existing place and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, place domain.Place) (domain.Place, error)

	// Delete removes a place by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgPlaceRepo is the Postgres implementation of PlaceRepo.
type pgPlaceRepo struct {
	db db
}

// NewPlaceRepo constructs a PlaceRepo backed by the provided db connection.
func NewPlaceRepo(db db) PlaceRepo {
	return &pgPlaceRepo{db: db}
}

const placeColumns = `id, place_name, default_amount::text, created_at, updated_at`

func (r *pgPlaceRepo) Create(ctx context.Context, place domain.Place) (domain.Place, error) {
	const q = `
		INSERT INTO places (place_name, default_amount)
		VALUES (@place_name, @default_amount)
		RETURNING ` + placeColumns

	args := pgx.NamedArgs{
		"place_name":     place.PlaceName,
		"default_amount": place.DefaultAmount.String(),
	}

	result, err := scanPlace(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Place{}, fmt.Errorf("repo.PlaceRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPlaceRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Place, error) {
	const q = `SELECT ` + placeColumns + ` FROM places WHERE id = @id`

	result, err := scanPlace(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Place{}, fmt.Errorf("repo.PlaceRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPlaceRepo) List(ctx context.Context) ([]domain.Place, error) {
	const q = `SELECT ` + placeColumns + ` FROM places ORDER BY place_name ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.List: %w", mapError(err))
	}
	defer rows.Close()

	var places []domain.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PlaceRepo.List: scan: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.List: rows: %w", mapError(err))
	}

	return places, nil
}

func (r *pgPlaceRepo) Update(ctx context.Context, place domain.Place) (domain.Place, error) {
	const q = `
		UPDATE places
		SET place_name     = @place_name,
		    default_amount = @default_amount,
		    updated_at     = now()
		WHERE id = @id
		RETURNING ` + placeColumns

	args := pgx.NamedArgs{
		"id":             place.ID,
		"place_name":     place.PlaceName,
		"default_amount": place.DefaultAmount.String(),
	}

	result, err := scanPlace(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Place{}, fmt.Errorf("repo.PlaceRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgPlaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM places WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PlaceRepo.Delete: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PlaceRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanPlace maps a single database row into a domain.Place.
func scanPlace(s scanner) (domain.Place, error) {
	var (
		p      domain.Place
		id     pgtype.UUID
		amount *string
	)

	err := s.Scan(&id, &p.PlaceName, &amount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Place{}, mapError(err)
	}

	p.ID = uuid.UUID(id.Bytes)
	p.DefaultAmount = scanAmount(amount)

	return p, nil
}
