package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sivacabs/backend/internal/domain"
	"github.com/sivacabs/backend/internal/repo"
)

// PurgeService implements the two-phase period deletion: a count-only
// preview, then a confirmed bulk delete over the same inclusive interval.
//
// The two tables are deleted sequentially without a wrapping transaction;
// when the second delete fails the first one is not rolled back. The result
// reports per-table counts so callers can reconcile a partial deletion
// against the preview.
type PurgeService struct {
	trips  repo.TripRepo
	diesel repo.DieselRepo
}

// NewPurgeService constructs a PurgeService backed by the provided repos.
func NewPurgeService(trips repo.TripRepo, diesel repo.DieselRepo) *PurgeService {
	return &PurgeService{trips: trips, diesel: diesel}
}

// Preview returns how many rows a confirmed deletion over [start, end]
// would remove from each selected table, without fetching any rows.
func (s *PurgeService) Preview(ctx context.Context, start, end time.Time, target domain.PurgeTarget) (domain.PurgePreview, error) {
	if err := validatePurge(start, end, target); err != nil {
		return domain.PurgePreview{}, fmt.Errorf("service.PurgeService.Preview: %w", err)
	}

	var preview domain.PurgePreview

	if target.IncludesTrips() {
		n, err := s.trips.CountByDateRange(ctx, start, end)
		if err != nil {
			return domain.PurgePreview{}, fmt.Errorf("service.PurgeService.Preview: %w", err)
		}
		preview.Trips = n
	}

	if target.IncludesDiesel() {
		n, err := s.diesel.CountByDateRange(ctx, start, end)
		if err != nil {
			return domain.PurgePreview{}, fmt.Errorf("service.PurgeService.Preview: %w", err)
		}
		preview.Diesel = n
	}

	return preview, nil
}

// Execute performs the confirmed deletion. Tables are processed in a fixed
// order (trips, then diesel expenses); the first failure aborts the
// remaining deletes and is returned alongside whatever was already removed.
func (s *PurgeService) Execute(ctx context.Context, start, end time.Time, target domain.PurgeTarget) (domain.PurgeResult, error) {
	if err := validatePurge(start, end, target); err != nil {
		return domain.PurgeResult{}, fmt.Errorf("service.PurgeService.Execute: %w", err)
	}

	var result domain.PurgeResult

	if target.IncludesTrips() {
		n, err := s.trips.DeleteByDateRange(ctx, start, end)
		if err != nil {
			return result, fmt.Errorf("service.PurgeService.Execute: %w", err)
		}
		result.TripsDeleted = n
	}

	if target.IncludesDiesel() {
		n, err := s.diesel.DeleteByDateRange(ctx, start, end)
		if err != nil {
			return result, fmt.Errorf("service.PurgeService.Execute: %w", err)
		}
		result.DieselDeleted = n
	}

	return result, nil
}

// validatePurge checks the interval and target shared by Preview and Execute.
func validatePurge(start, end time.Time, target domain.PurgeTarget) error {
	switch {
	case start.IsZero() || end.IsZero():
		return fmt.Errorf("%w: both start and end dates are required", domain.ErrValidation)
	case start.After(end):
		return fmt.Errorf("%w: start date must be before or equal to end date", domain.ErrValidation)
	case !target.Valid():
		return fmt.Errorf("%w: delete type must be trips, diesel, or both", domain.ErrValidation)
	}
	return nil
}
