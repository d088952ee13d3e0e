package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sivacabs/backend/internal/domain"
	"github.com/sivacabs/backend/internal/repo"
)

// SummaryService maintains the paid/pending running totals over the full
// trip set. The value is recomputed — never patched — from a complete
// re-read, so a refresh triggered by a change notification and one triggered
// by a user request can land in either order without drifting: last write
// wins and both writes are the same deterministic aggregate.
type SummaryService struct {
	trips repo.TripRepo
	log   *slog.Logger

	mu     sync.Mutex
	cached *domain.Summary
}

// NewSummaryService constructs a SummaryService backed by the provided TripRepo.
func NewSummaryService(trips repo.TripRepo, log *slog.Logger) *SummaryService {
	return &SummaryService{trips: trips, log: log}
}

// Get returns the current summary. A cached value is served when one exists
// and force is false; otherwise the totals are recomputed from the store.
// The cache is warmed by change notifications, so steady-state reads are
// served from memory.
func (s *SummaryService) Get(ctx context.Context, force bool) (domain.Summary, error) {
	if !force {
		s.mu.Lock()
		cached := s.cached
		s.mu.Unlock()
		if cached != nil {
			return *cached, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the totals from a full trip read and stores the result.
func (s *SummaryService) Refresh(ctx context.Context) (domain.Summary, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	sum := domain.SummarizeTrips(trips)

	s.mu.Lock()
	s.cached = &sum
	s.mu.Unlock()

	return sum, nil
}

// HandleTripsChange is the change-notification callback: any insert, update,
// or delete on the trips table triggers a full recompute. Failures are
// logged and otherwise dropped — the next user-triggered read recomputes
// anyway, so a missed refresh cannot leave a stale value visible for long.
func (s *SummaryService) HandleTripsChange(ctx context.Context) {
	if _, err := s.Refresh(ctx); err != nil {
		if errors.Is(err, domain.ErrSchemaMissing) {
			s.log.Warn("summary refresh skipped: schema not set up")
			return
		}
		s.log.Error("summary refresh failed", "error", err)
	}
}
