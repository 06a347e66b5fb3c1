package repository_test

import (
	"context"
	"testing"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/repository"
	"github.com/shelfwise/shelfwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteLocationRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteLocationRepo(database)
	ctx := context.Background()

	loc := &domain.LocationProfile{
		ID: "loc-1", Name: "End Cap", Zone: domain.ZoneEndCap,
		TrafficIndex: 250, Visibility: 1.5, MonthlyCost: 1200,
		Affinities: []domain.Category{domain.CategoryBeverages, domain.CategorySnacks},
	}
	require.NoError(t, repo.Upsert(ctx, loc))

	got, err := repo.GetByID(ctx, "loc-1")
	require.NoError(t, err)
	assert.Equal(t, "End Cap", got.Name)
	assert.Equal(t, domain.ZoneEndCap, got.Zone)
	assert.Equal(t, []domain.Category{domain.CategoryBeverages, domain.CategorySnacks}, got.Affinities)
}

func TestSQLiteLocationRepo_UpsertReplaces(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteLocationRepo(database)
	ctx := context.Background()

	loc := &domain.LocationProfile{ID: "loc-1", Name: "Old Name", Zone: domain.ZoneCheckout, MonthlyCost: 500}
	require.NoError(t, repo.Upsert(ctx, loc))

	loc.Name = "New Name"
	loc.MonthlyCost = 800
	require.NoError(t, repo.Upsert(ctx, loc))

	got, err := repo.GetByID(ctx, "loc-1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, 800.0, got.MonthlyCost)
}

func TestSQLiteLocationRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteLocationRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLiteLocationRepo_ListOrderedByName(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteLocationRepo(database)
	ctx := context.Background()

	for _, l := range testutil.FixtureLocations() {
		loc := l
		require.NoError(t, repo.Upsert(ctx, &loc))
	}

	locations, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 4)
	for i := 1; i < len(locations); i++ {
		assert.LessOrEqual(t, locations[i-1].Name, locations[i].Name)
	}
}
