package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivacabs/backend/internal/domain"
	"github.com/sivacabs/backend/internal/repo"
	"github.com/sivacabs/backend/testutil"
)

func newDieselRepo(t *testing.T) repo.DieselRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewDieselRepo(tx)
}

func dieselFixture(day int) domain.DieselExpense {
	return domain.DieselExpense{
		Date:   time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
		Amount: decimal.RequireFromString("200.00"),
	}
}

func TestDieselRepo_Create(t *testing.T) {
	r := newDieselRepo(t)
	ctx := context.Background()

	got, err := r.Create(ctx, dieselFixture(15))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("200.00")))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestDieselRepo_List_OrderedByDateDesc(t *testing.T) {
	r := newDieselRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, dieselFixture(1))
	require.NoError(t, err)
	_, err = r.Create(ctx, dieselFixture(20))
	require.NoError(t, err)

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 20, got[0].Date.Day(), "most recent expense must come first")
}

func TestDieselRepo_ListByDateRange_InclusiveBounds(t *testing.T) {
	r := newDieselRepo(t)
	ctx := context.Background()

	for _, d := range []int{9, 10, 20, 21} {
		_, err := r.Create(ctx, dieselFixture(d))
		require.NoError(t, err)
	}

	got, err := r.ListByDateRange(ctx,
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Date.Day())
	assert.Equal(t, 20, got[1].Date.Day())
}

func TestDieselRepo_Update(t *testing.T) {
	r := newDieselRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, dieselFixture(15))
	require.NoError(t, err)

	created.Amount = decimal.RequireFromString("350.50")

	got, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("350.50")))
}

func TestDieselRepo_Delete_NotFound(t *testing.T) {
	r := newDieselRepo(t)

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDieselRepo_CountAndDeleteByDateRange(t *testing.T) {
	r := newDieselRepo(t)
	ctx := context.Background()

	for _, d := range []int{1, 10, 20} {
		_, err := r.Create(ctx, dieselFixture(d))
		require.NoError(t, err)
	}

	start := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	n, err := r.CountByDateRange(ctx, start, end)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	deleted, err := r.DeleteByDateRange(ctx, start, end)
	require.NoError(t, err)
	assert.Equal(t, n, deleted, "delete must remove exactly what the preview counted")

	remaining, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
