package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/repository"
	"github.com/shelfwise/shelfwise/internal/service"
	"github.com/shelfwise/shelfwise/internal/session"
	"github.com/shelfwise/shelfwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyzeFixture struct {
	svc   service.AnalyzeService
	store *session.MemoryStore
}

func newAnalyzeFixture(t *testing.T) analyzeFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	locations := repository.NewSQLiteLocationRepo(database)
	for _, loc := range testutil.FixtureLocations() {
		l := loc
		require.NoError(t, locations.Upsert(ctx, &l))
	}

	lifts := repository.NewSQLiteLiftRepo(database)
	require.NoError(t, lifts.Upsert(ctx, testutil.FixtureBeverageLift()))

	competitors := repository.NewSQLiteCompetitorRepo(database)
	require.NoError(t, competitors.Add(ctx, "beverages", "loc-endcap", "Rival Cola", 2.99, 1.5))

	store := session.NewMemoryStore()
	return analyzeFixture{
		svc:   service.NewAnalyzeService(locations, lifts, competitors, store),
		store: store,
	}
}

func beverageAnalyzeRequest() contract.AnalyzeRequest {
	return contract.AnalyzeRequest{
		ProductName:        "Sparkling Cola",
		Category:           "beverages",
		UnitPrice:          2.50,
		Budget:             2000,
		TargetMonthlySales: 600,
		ExpectedROI:        1.5,
	}
}

func TestAnalyze_BudgetFilterExcludesExpensiveSlots(t *testing.T) {
	f := newAnalyzeFixture(t)

	resp, err := f.svc.Analyze(context.Background(), beverageAnalyzeRequest())

	require.NoError(t, err)
	assert.False(t, resp.Empty)
	require.Len(t, resp.Excluded, 1)
	assert.Equal(t, "loc-premium", resp.Excluded[0].LocationID)
	for _, p := range resp.Predictions {
		assert.LessOrEqual(t, p.MonthlyCost, 2000.0)
	}
}

func TestAnalyze_ZeroBudgetIsEmptyResultNotError(t *testing.T) {
	f := newAnalyzeFixture(t)
	req := beverageAnalyzeRequest()
	req.Budget = 0

	resp, err := f.svc.Analyze(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Empty)
	assert.Empty(t, resp.Predictions)
	assert.Len(t, resp.Excluded, 4)

	// The session exists and is flagged, so follow-ups stay answerable.
	sess, err := f.store.Get(resp.SessionID)
	require.NoError(t, err)
	assert.True(t, sess.Empty)
}

func TestAnalyze_PredictionsSortedByROI(t *testing.T) {
	f := newAnalyzeFixture(t)

	resp, err := f.svc.Analyze(context.Background(), beverageAnalyzeRequest())

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(resp.Predictions), 2)
	for i := 1; i < len(resp.Predictions); i++ {
		assert.GreaterOrEqual(t, resp.Predictions[i-1].ROI, resp.Predictions[i].ROI)
	}
}

func TestAnalyze_SessionKeepsFullRankedList(t *testing.T) {
	f := newAnalyzeFixture(t)
	req := beverageAnalyzeRequest()
	req.TopN = 1

	resp, err := f.svc.Analyze(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, resp.Predictions, 1)

	sess, err := f.store.Get(resp.SessionID)
	require.NoError(t, err)
	assert.Len(t, sess.Ranked, 3) // all affordable locations, not just top-1
}

func TestAnalyze_ValidationErrorNamesField(t *testing.T) {
	f := newAnalyzeFixture(t)
	req := beverageAnalyzeRequest()
	req.UnitPrice = -1

	_, err := f.svc.Analyze(context.Background(), req)

	var verr *contract.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "unit_price", verr.Field)
}

func TestAnalyze_UnknownCategoryString(t *testing.T) {
	f := newAnalyzeFixture(t)
	req := beverageAnalyzeRequest()
	req.Category = "electronics"

	_, err := f.svc.Analyze(context.Background(), req)

	var cerr *contract.UnknownCategoryError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "electronics", cerr.Category)
}

func TestAnalyze_CategoryWithoutHistory(t *testing.T) {
	f := newAnalyzeFixture(t)
	req := beverageAnalyzeRequest()
	req.Category = "frozen" // in the taxonomy, never imported

	_, err := f.svc.Analyze(context.Background(), req)

	var cerr *contract.UnknownCategoryError
	require.ErrorAs(t, err, &cerr)
}

func TestAnalyze_AdvisoryWarningsDoNotBlock(t *testing.T) {
	f := newAnalyzeFixture(t)
	req := beverageAnalyzeRequest()
	req.ExpectedROI = 4.0 // ambitious, but allowed

	resp, err := f.svc.Analyze(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Warnings)
	assert.NotEmpty(t, resp.Predictions)
}

func TestAnalyze_IdenticalRequestsScoreIdentically(t *testing.T) {
	f := newAnalyzeFixture(t)
	ctx := context.Background()

	first, err := f.svc.Analyze(ctx, beverageAnalyzeRequest())
	require.NoError(t, err)
	second, err := f.svc.Analyze(ctx, beverageAnalyzeRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	require.Equal(t, len(first.Predictions), len(second.Predictions))
	for i := range first.Predictions {
		assert.Equal(t, first.Predictions[i].LocationID, second.Predictions[i].LocationID)
		assert.Equal(t, first.Predictions[i].ROI, second.Predictions[i].ROI)
	}
}

func TestAnalyze_ConcurrentRequestsGetIsolatedSessions(t *testing.T) {
	f := newAnalyzeFixture(t)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	ids := make([]string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			resp, err := f.svc.Analyze(ctx, beverageAnalyzeRequest())
			if assert.NoError(t, err) {
				ids[n] = resp.SessionID
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, id := range ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true

		sess, err := f.store.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "Sparkling Cola", sess.Request.Name)
		assert.Len(t, sess.Ranked, 3)
	}
}
