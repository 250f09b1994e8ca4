package aggregating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

func testConfig(policy string) *config.Config {
	return &config.Config{
		Aggregation: config.Aggregation{WritePolicy: policy, DefaultDealValue: 1500, Timezone: "UTC"},
	}
}

type fixture struct {
	store      *docstore.MemoryStore
	weeklyRepo repository.WeeklyStatsRepository
	adRepo     repository.AdRepository
	svc        *Service
}

func newFixture(t *testing.T, policy string) *fixture {
	store := docstore.NewMemoryStore()
	weeklyRepo := repository.NewWeeklyStatsRepository(store, 500)
	adRepo := repository.NewAdRepository(store, 500)

	svc, err := NewService(testConfig(policy), weeklyRepo, adRepo)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC) }

	return &fixture{store: store, weeklyRepo: weeklyRepo, adRepo: adRepo, svc: svc}
}

func depositOpportunity() ([]domain.Opportunity, map[string]*domain.OpportunityMapping) {
	opps := []domain.Opportunity{opportunity("o1", "Deposit Received", 0, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC))}
	return opps, map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD1")}
}

func TestNewServiceRejectsInvalidConfig(t *testing.T) {
	_, err := NewService(testConfig("append"), nil, nil)
	assert.Error(t, err)

	cfg := testConfig("replace")
	cfg.Aggregation.Timezone = "Mars/Olympus"
	_, err = NewService(cfg, nil, nil)
	assert.Error(t, err)
}

func TestRebuildPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy string
		want   domain.WeeklyBucket
	}{
		{
			name:   "replace é idempotente",
			policy: "replace",
			want:   domain.WeeklyBucket{AdID: "AD1", WeekID: novemberWeek, Leads: 1, Deposits: 1, CashAmount: 1500},
		},
		{
			name:   "increment acumula entre execuções",
			policy: "increment",
			want:   domain.WeeklyBucket{AdID: "AD1", WeekID: novemberWeek, Leads: 2, Deposits: 2, CashAmount: 3000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, tt.policy)
			opps, mappings := depositOpportunity()

			for n := 0; n < 2; n++ {
				report, err := f.svc.Rebuild(ctx, opps, mappings, Options{})
				require.NoError(t, err)
				assert.Equal(t, 1, report.Buckets)
				assert.Equal(t, 0, report.Errors())
			}

			buckets, err := f.weeklyRepo.ListByAd(ctx, "AD1", "2025-11")
			require.NoError(t, err)
			require.Len(t, buckets, 1)
			assert.Equal(t, tt.want, *buckets[0])
		})
	}
}

func TestRebuildFullWritesConsolidatedStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "replace")
	f.adRepo.SaveCatalogAds(ctx, []*domain.Ad{{ID: "AD1"}, {ID: "AD2"}}, "")

	seed := f.adRepo.SaveGHLStats(ctx, map[string]*domain.GHLStats{"AD2": {Leads: 7}}, nil, domain.WriteReplace)
	require.Equal(t, 0, seed.Errors)

	opps, mappings := depositOpportunity()
	report, err := f.svc.Rebuild(ctx, opps, mappings, Options{Full: true, ResetMissing: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.ResetAds)

	ad1, err := f.adRepo.GetAd(ctx, "AD1")
	require.NoError(t, err)
	assert.Equal(t, &domain.GHLStats{Leads: 1, Deposits: 1, CashAmount: 1500}, ad1.GHLStats)

	ad2, err := f.adRepo.GetAd(ctx, "AD2")
	require.NoError(t, err)
	assert.Equal(t, &domain.GHLStats{}, ad2.GHLStats)

	assert.Contains(t, f.store.Paths(), "advertData/2025-11/ads/AD1")
}

func TestRebuildWindowSkipsConsolidatedStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "replace")
	opps, mappings := depositOpportunity()

	report, err := f.svc.Rebuild(ctx, opps, mappings, Options{ResetMissing: true})
	require.NoError(t, err)
	assert.Equal(t, 0, report.StatsWrites.Committed)

	ad, err := f.adRepo.GetAd(ctx, "AD1")
	require.NoError(t, err)
	assert.Nil(t, ad)
}

type rebuildRun struct {
	opps     []domain.Opportunity
	mappings map[string]*domain.OpportunityMapping
	opts     Options
}

func (f *fixture) bucketsOf(t *testing.T, adID, month string) map[domain.WeekID]domain.WeeklyBucket {
	t.Helper()
	buckets, err := f.weeklyRepo.ListByAd(context.Background(), adID, month)
	require.NoError(t, err)

	out := make(map[domain.WeekID]domain.WeeklyBucket, len(buckets))
	for _, b := range buckets {
		out[b.WeekID] = *b
	}
	return out
}

func (f *fixture) monthlyStats(t *testing.T, month, adID string) *domain.GHLStats {
	t.Helper()
	doc, err := f.store.Get(context.Background(), docstore.Join("advertData", month, "ads", adID))
	require.NoError(t, err)

	ad := &domain.Ad{}
	require.NoError(t, docstore.Decode(doc, ad))
	return ad.GHLStats
}

func TestRebuildReplaceAcrossRuns(t *testing.T) {
	nov5 := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	oct29 := time.Date(2025, 10, 29, 0, 0, 0, 0, time.UTC)
	nov4 := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)
	octoberWeek := domain.WeekID("2025-10-27_2025-11-02")
	full := Options{Full: true, ResetMissing: true}

	tests := []struct {
		name     string
		runs     []rebuildRun
		wantErr  error
		validate func(t *testing.T, f *fixture)
	}{
		{
			name: "oportunidade reatribuída conta em um só anúncio",
			runs: []rebuildRun{
				{
					opps:     []domain.Opportunity{opportunity("o1", "Deposit Received", 0, nov5)},
					mappings: map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD1")},
					opts:     full,
				},
				{
					opps:     []domain.Opportunity{opportunity("o1", "Deposit Received", 0, nov5)},
					mappings: map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD2")},
					opts:     full,
				},
			},
			validate: func(t *testing.T, f *fixture) {
				assert.Empty(t, f.bucketsOf(t, "AD1", "2025-11"))
				assert.Equal(t, map[domain.WeekID]domain.WeeklyBucket{
					novemberWeek: {AdID: "AD2", WeekID: novemberWeek, Leads: 1, Deposits: 1, CashAmount: 1500},
				}, f.bucketsOf(t, "AD2", "2025-11"))

				assert.Equal(t, &domain.GHLStats{}, f.monthlyStats(t, "2025-11", "AD1"))
				assert.Equal(t, &domain.GHLStats{Leads: 1, Deposits: 1, CashAmount: 1500}, f.monthlyStats(t, "2025-11", "AD2"))
			},
		},
		{
			name: "janela recalcula só as semanas dentro dela",
			runs: []rebuildRun{
				{
					opps: []domain.Opportunity{
						opportunity("o1", "Deposit Received", 0, nov5),
						opportunity("o2", "New Lead", 0, nov5),
						opportunity("o3", "New Lead", 0, oct29),
					},
					mappings: map[string]*domain.OpportunityMapping{
						"o1": assigned("o1", "AD1"),
						"o2": assigned("o2", "AD2"),
						"o3": assigned("o3", "AD2"),
					},
					opts: full,
				},
				{
					opps:     []domain.Opportunity{opportunity("o1", "Deposit Received", 0, nov5)},
					mappings: map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD1")},
					opts:     Options{Since: &nov4},
				},
			},
			validate: func(t *testing.T, f *fixture) {
				assert.Len(t, f.bucketsOf(t, "AD1", "2025-11"), 1)
				assert.Empty(t, f.bucketsOf(t, "AD2", "2025-11"))
				assert.Equal(t, map[domain.WeekID]domain.WeeklyBucket{
					octoberWeek: {AdID: "AD2", WeekID: octoberWeek, Leads: 1},
				}, f.bucketsOf(t, "AD2", "2025-10"))
			},
		},
		{
			name: "execução filtrada em replace não sobrescreve o bucket",
			runs: []rebuildRun{
				{
					opps: []domain.Opportunity{
						opportunity("o1", "Deposit Received", 0, nov5),
						opportunity("o2", "Booked Call", 0, nov5),
					},
					mappings: map[string]*domain.OpportunityMapping{
						"o1": assigned("o1", "AD1"),
						"o2": assigned("o2", "AD1"),
					},
					opts: full,
				},
				{
					opps:     []domain.Opportunity{opportunity("o1", "Deposit Received", 0, nov5)},
					mappings: map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD1")},
					opts:     Options{Filtered: true},
				},
			},
			wantErr: ErrFilteredReplace,
			validate: func(t *testing.T, f *fixture) {
				b := f.bucketsOf(t, "AD1", "2025-11")[novemberWeek]
				assert.Equal(t, 2, b.Leads)
				assert.Equal(t, 1, b.BookedAppointments)
				assert.Equal(t, 1, b.Deposits)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, "replace")

			var err error
			for _, run := range tt.runs {
				_, err = f.svc.Rebuild(ctx, run.opps, run.mappings, run.opts)
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			tt.validate(t, f)
		})
	}
}

func TestRebuildReportsPrunedBuckets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "replace")
	nov5 := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)
	opps := []domain.Opportunity{opportunity("o1", "New Lead", 0, nov5)}

	_, err := f.svc.Rebuild(ctx, opps, map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD1")}, Options{})
	require.NoError(t, err)

	report, err := f.svc.Rebuild(ctx, opps, map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD2")}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.PrunedBuckets)
	assert.Equal(t, 1, report.PruneWrites.Committed)
	assert.Equal(t, 0, report.Errors())
}
