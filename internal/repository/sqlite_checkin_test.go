package repository

import (
	"context"
	"testing"
	"time"

	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteCheckInRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteCheckInRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := &domain.CheckIn{
		Date:      "2026-09-01",
		Done:      true,
		Note:      "Respiration faite ce matin",
		CreatedAt: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Upsert(ctx, c))

	got, err := repo.Get(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.True(t, got.Done)
	assert.Equal(t, "Respiration faite ce matin", got.Note)
}

func TestSQLiteCheckInRepo_UpsertOverwritesSameDay(t *testing.T) {
	repo := NewSQLiteCheckInRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.CheckIn{Date: "2026-09-01", Done: false, CreatedAt: time.Now().UTC()}))
	require.NoError(t, repo.Upsert(ctx, &domain.CheckIn{Date: "2026-09-01", Done: true, Note: "finalement oui", CreatedAt: time.Now().UTC()}))

	got, err := repo.Get(ctx, "2026-09-01")
	require.NoError(t, err)
	assert.True(t, got.Done)
	assert.Equal(t, "finalement oui", got.Note)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "same-day check-ins collapse to one row")
}

func TestSQLiteCheckInRepo_GetNotFound(t *testing.T) {
	repo := NewSQLiteCheckInRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "2026-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteCheckInRepo_ListRecentFiltersWindow(t *testing.T) {
	repo := NewSQLiteCheckInRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	recent := now.AddDate(0, 0, -2).Format(domain.DateLayout)
	old := now.AddDate(0, 0, -40).Format(domain.DateLayout)
	require.NoError(t, repo.Upsert(ctx, &domain.CheckIn{Date: recent, Done: true, CreatedAt: now}))
	require.NoError(t, repo.Upsert(ctx, &domain.CheckIn{Date: old, Done: true, CreatedAt: now}))

	got, err := repo.ListRecent(ctx, 14)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, recent, got[0].Date)
}

func TestSQLiteCheckInRepo_ListOrdersNewestFirst(t *testing.T) {
	repo := NewSQLiteCheckInRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	for _, d := range []string{"2026-08-30", "2026-09-01", "2026-08-31"} {
		require.NoError(t, repo.Upsert(ctx, &domain.CheckIn{Date: d, Done: true, CreatedAt: now}))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2026-09-01", got[0].Date)
	assert.Equal(t, "2026-08-30", got[2].Date)
}
