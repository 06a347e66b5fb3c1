package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/testutil"
)

func TestCompetitorRepo_StatsAggregatesSlot(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCompetitorRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.CategoryBeverages, "loc-endcap", "Rival Cola", 2.99, 1.5))
	require.NoError(t, repo.Add(ctx, domain.CategoryBeverages, "loc-endcap", "Budget Cola", 1.99, 1.1))

	stats, err := repo.Stats(ctx, domain.CategoryBeverages, "loc-endcap")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.SampleSize)
	assert.InDelta(t, 2.49, stats.AvgPrice, 1e-9)
	assert.InDelta(t, 1.3, stats.AvgObservedROI, 1e-9)
}

func TestCompetitorRepo_StatsEmptySlotIsNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCompetitorRepo(db)

	stats, err := repo.Stats(context.Background(), domain.CategoryBeverages, "loc-empty")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestCompetitorRepo_StatsScopedByCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCompetitorRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.CategorySnacks, "loc-endcap", "Crisp Co", 1.49, 1.2))

	stats, err := repo.Stats(ctx, domain.CategoryBeverages, "loc-endcap")
	require.NoError(t, err)
	assert.Nil(t, stats)
}
