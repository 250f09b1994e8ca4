package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

func newTestAdRepository(store docstore.Store) *adRepository {
	repo := NewAdRepository(store, 500).(*adRepository)
	repo.now = func() time.Time { return time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC) }
	return repo
}

func TestAdRepositoryCatalog(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	repo := newTestAdRepository(store)

	stats := repo.SaveCatalogAds(ctx, []*domain.Ad{
		{ID: "AD2", CampaignID: "C1", AdName: "Promo B", AdSetName: "Set 1"},
		{ID: "AD1", CampaignID: "C1", AdName: "Promo A", AdSetName: "Set 1",
			FacebookStats: &domain.FacebookStats{Spend: 12.5, Impressions: 1000, Clicks: 20, Reach: 800}},
		nil,
	}, "2025-11")
	assert.Equal(t, 4, stats.Committed)

	ads, err := repo.ListCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "AD1", ads[0].ID)
	assert.Equal(t, "AD2", ads[1].ID)
	require.NotNil(t, ads[0].FacebookStats)
	assert.Equal(t, 12.5, ads[0].FacebookStats.Spend)
	assert.Equal(t, int64(1000), ads[0].FacebookStats.Impressions)

	_, err = store.Get(ctx, "advertData/2025-11/ads/AD1")
	assert.NoError(t, err)

	ad, err := repo.GetAd(ctx, "AD2")
	require.NoError(t, err)
	assert.Equal(t, "Promo B", ad.AdName)

	missing, err := repo.GetAd(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAdRepositoryGHLStatsPolicies(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	repo := newTestAdRepository(store)

	repo.SaveCatalogAds(ctx, []*domain.Ad{{ID: "AD1", AdName: "Promo",
		FacebookStats: &domain.FacebookStats{Spend: 5}}}, "")

	totals := map[string]*domain.GHLStats{"AD1": {Leads: 2, Deposits: 1, CashAmount: 1500}}
	monthly := map[string]map[string]*domain.GHLStats{"2025-11": {"AD1": {Leads: 2, Deposits: 1, CashAmount: 1500}}}

	tests := []struct {
		name      string
		policy    domain.WritePolicy
		runs      int
		wantLeads int
	}{
		{name: "replace é idempotente", policy: domain.WriteReplace, runs: 2, wantLeads: 2},
		{name: "increment soma a cada execução", policy: domain.WriteIncrement, runs: 2, wantLeads: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < tt.runs; i++ {
				stats := repo.SaveGHLStats(ctx, totals, monthly, tt.policy)
				assert.Equal(t, 2, stats.Committed)
			}

			ad, err := repo.GetAd(ctx, "AD1")
			require.NoError(t, err)
			require.NotNil(t, ad.GHLStats)
			assert.Equal(t, tt.wantLeads, ad.GHLStats.Leads)
			require.NotNil(t, ad.FacebookStats)
			assert.Equal(t, 5.0, ad.FacebookStats.Spend)
			assert.Equal(t, "Promo", ad.AdName)
		})
	}
}

func TestAdRepositoryUpdateFacebookStats(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	repo := newTestAdRepository(store)

	repo.SaveCatalogAds(ctx, []*domain.Ad{{ID: "AD1", AdName: "Promo"}}, "")
	stats := repo.UpdateFacebookStats(ctx, map[string]*domain.FacebookStats{
		"AD1": {Spend: 99.9, Clicks: 4},
	}, "2025-10")
	assert.Equal(t, 2, stats.Committed)

	ad, err := repo.GetAd(ctx, "AD1")
	require.NoError(t, err)
	assert.Equal(t, "Promo", ad.AdName)
	assert.Equal(t, 99.9, ad.FacebookStats.Spend)
	assert.Equal(t, int64(4), ad.FacebookStats.Clicks)
}
