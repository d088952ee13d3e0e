package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivacabs/backend/internal/domain"
	"github.com/sivacabs/backend/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingTripRepo serves fixed rows and counts List calls so tests can
// assert whether the cache or the store answered.
func countingTripRepo(trips []domain.Trip, calls *int) *mockTripRepo {
	return &mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			*calls++
			return trips, nil
		},
	}
}

func TestSummaryService_Get_ComputesTotals(t *testing.T) {
	trips := []domain.Trip{
		reportTrip(day(2024, time.June, 1), "Kumar", "Airport", "500", domain.TripStatusPaid),
		reportTrip(day(2024, time.June, 2), "Ravi", "Harbour", "300", domain.TripStatusUnpaid),
		reportTrip(day(2024, time.June, 3), "Mani", "Harbour", "200", domain.TripStatusUnpaid),
	}
	var calls int
	svc := service.NewSummaryService(countingTripRepo(trips, &calls), discardLogger())

	sum, err := svc.Get(context.Background(), false)

	require.NoError(t, err)
	assert.True(t, sum.TotalPaid.Equal(amt("500")), "paid = %s", sum.TotalPaid)
	assert.True(t, sum.TotalPending.Equal(amt("500")), "pending = %s", sum.TotalPending)
}

func TestSummaryService_Get_ServesCachedValue(t *testing.T) {
	var calls int
	svc := service.NewSummaryService(countingTripRepo(nil, &calls), discardLogger())

	_, err := svc.Get(context.Background(), false)
	require.NoError(t, err)
	_, err = svc.Get(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second read should come from the cache")
}

func TestSummaryService_Get_ForceBypassesCache(t *testing.T) {
	var calls int
	svc := service.NewSummaryService(countingTripRepo(nil, &calls), discardLogger())

	_, err := svc.Get(context.Background(), false)
	require.NoError(t, err)
	_, err = svc.Get(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "force should recompute from the store")
}

func TestSummaryService_Get_ErrorLeavesNoCache(t *testing.T) {
	calls := 0
	repoErr := errors.New("connection refused")
	svc := service.NewSummaryService(&mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			calls++
			if calls == 1 {
				return nil, repoErr
			}
			return nil, nil
		},
	}, discardLogger())

	_, err := svc.Get(context.Background(), false)
	assert.ErrorIs(t, err, repoErr)

	// The failed read must not have cached anything; the next read retries.
	_, err = svc.Get(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSummaryService_HandleTripsChange_RefreshesCache(t *testing.T) {
	trips := []domain.Trip{
		reportTrip(day(2024, time.June, 1), "Kumar", "Airport", "500", domain.TripStatusPaid),
	}
	var calls int
	repo := countingTripRepo(trips, &calls)
	svc := service.NewSummaryService(repo, discardLogger())

	svc.HandleTripsChange(context.Background())

	// The notification warmed the cache, so a read hits memory.
	sum, err := svc.Get(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, sum.TotalPaid.Equal(amt("500")))
	assert.Equal(t, 1, calls)
}

func TestSummaryService_HandleTripsChange_SchemaMissing(t *testing.T) {
	svc := service.NewSummaryService(&mockTripRepo{
		list: func(_ context.Context) ([]domain.Trip, error) {
			return nil, domain.ErrSchemaMissing
		},
	}, discardLogger())

	// Must not panic; the error is logged and dropped.
	svc.HandleTripsChange(context.Background())
}
