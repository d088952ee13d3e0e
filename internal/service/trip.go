// Package service contains the business logic for the Siva Cabs backend.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sivacabs/backend/internal/domain"
	"github.com/sivacabs/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(&trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return s.repo.Create(ctx, trip)
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all trips, most recent first.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	return s.repo.List(ctx)
}

// Update validates and updates an existing trip.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.ID == uuid.Nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w: id is required", domain.ErrValidation)
	}
	if err := validateTrip(&trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return s.repo.Update(ctx, trip)
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// validateTrip checks the business rules shared by Create and Update.
// It trims the free-text fields in place so callers persist clean values.
func validateTrip(trip *domain.Trip) error {
	trip.CustomerName = strings.TrimSpace(trip.CustomerName)
	trip.Place = strings.TrimSpace(trip.Place)

	switch {
	case trip.Date.IsZero():
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	case trip.CustomerName == "":
		return fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	case trip.Place == "":
		return fmt.Errorf("%w: place is required", domain.ErrValidation)
	case trip.Amount.IsNegative():
		return fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	case !trip.Status.Valid():
		return fmt.Errorf("%w: status must be paid or unpaid", domain.ErrValidation)
	}
	return nil
}
