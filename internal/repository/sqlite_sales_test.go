package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/testutil"
)

func salesFixture() []SalesRow {
	return []SalesRow{
		{LocationID: "loc-endcap", Category: domain.CategoryBeverages, Zone: domain.ZoneEndCap, UnitsSold: 140, SoldOn: "2026-01-15"},
		{LocationID: "loc-aisle", Category: domain.CategoryBeverages, Zone: domain.ZoneCategoryAisle, UnitsSold: 100, SoldOn: "2026-01-10"},
		{LocationID: "loc-checkout", Category: domain.CategorySnacks, Zone: domain.ZoneCheckout, UnitsSold: 80, SoldOn: "2026-01-12"},
	}
}

func TestSalesRepo_InsertBatchAndCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSalesRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertBatch(ctx, salesFixture()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSalesRepo_ListByCategoryOrdersBySoldOn(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSalesRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertBatch(ctx, salesFixture()))

	rows, err := repo.ListByCategory(ctx, domain.CategoryBeverages)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "loc-aisle", rows[0].LocationID)
	assert.Equal(t, "loc-endcap", rows[1].LocationID)
	assert.Equal(t, domain.ZoneEndCap, rows[1].Zone)
}

func TestSalesRepo_InsertBatchEmptyIsNoop(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSalesRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.InsertBatch(ctx, nil))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
