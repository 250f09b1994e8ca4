package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

const novemberWeek = domain.WeekID("2025-11-03_2025-11-09")

func opportunity(id, stage string, value float64, createdAt time.Time) domain.Opportunity {
	return domain.Opportunity{ID: id, StageName: stage, MonetaryValue: value, CreatedAt: createdAt}
}

func assigned(oppID, adID string, candidates ...string) *domain.OpportunityMapping {
	return &domain.OpportunityMapping{OpportunityID: oppID, AdID: adID, Method: domain.MatchByAdID, CandidateAdIDs: candidates}
}

func TestAggregate(t *testing.T) {
	nov5 := time.Date(2025, 11, 5, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		creditAll bool
		opps      []domain.Opportunity
		mappings  map[string]*domain.OpportunityMapping
		validate  func(t *testing.T, r *Result)
	}{
		{
			name:     "depósito sem valor recebe o valor padrão",
			opps:     []domain.Opportunity{opportunity("o1", "Deposit Received", 0, nov5)},
			mappings: map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD1")},
			validate: func(t *testing.T, r *Result) {
				b := r.Bucket("AD1", novemberWeek)
				require.NotNil(t, b)
				assert.Equal(t, domain.WeeklyBucket{AdID: "AD1", WeekID: novemberWeek, Leads: 1, Deposits: 1, CashAmount: 1500}, *b)
			},
		},
		{
			name:     "depósito com valor positivo mantém o valor",
			opps:     []domain.Opportunity{opportunity("o1", "Deposit Received", 2500, nov5)},
			mappings: map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD1")},
			validate: func(t *testing.T, r *Result) {
				assert.Equal(t, 2500.0, r.Bucket("AD1", novemberWeek).CashAmount)
			},
		},
		{
			name: "etapas classificadas nos contadores certos",
			opps: []domain.Opportunity{
				opportunity("o1", "Booked Call", 900, nov5),
				opportunity("o2", "Cash Collected", 3000, nov5),
				opportunity("o3", "New Lead", 800, nov5),
			},
			mappings: map[string]*domain.OpportunityMapping{
				"o1": assigned("o1", "AD1"),
				"o2": assigned("o2", "AD1"),
				"o3": assigned("o3", "AD1"),
			},
			validate: func(t *testing.T, r *Result) {
				b := r.Bucket("AD1", novemberWeek)
				assert.Equal(t, 3, b.Leads)
				assert.Equal(t, 1, b.BookedAppointments)
				assert.Equal(t, 1, b.CashCollected)
				assert.Equal(t, 3000.0, b.CashAmount)
			},
		},
		{
			name: "oportunidade repetida conta uma vez",
			opps: []domain.Opportunity{
				opportunity("o1", "New Lead", 0, nov5),
				opportunity("o1", "New Lead", 0, nov5),
			},
			mappings: map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD1")},
			validate: func(t *testing.T, r *Result) {
				assert.Equal(t, 1, r.Bucket("AD1", novemberWeek).Leads)
				assert.Equal(t, 1, r.Duplicates)
			},
		},
		{
			name: "sem mapeamento ou não casada fica de fora",
			opps: []domain.Opportunity{
				opportunity("o1", "New Lead", 0, nov5),
				opportunity("o2", "New Lead", 0, nov5),
				opportunity("o3", "New Lead", 0, time.Time{}),
			},
			mappings: map[string]*domain.OpportunityMapping{
				"o2": {OpportunityID: "o2", Method: domain.Unmatched},
				"o3": assigned("o3", "AD1"),
			},
			validate: func(t *testing.T, r *Result) {
				assert.Equal(t, 0, r.Counted)
				assert.Equal(t, 2, r.Unassigned)
				assert.Equal(t, 1, r.Undated)
				assert.Empty(t, r.Buckets())
			},
		},
		{
			name:      "modo legado credita todos os candidatos",
			creditAll: true,
			opps:      []domain.Opportunity{opportunity("o1", "New Lead", 0, nov5)},
			mappings:  map[string]*domain.OpportunityMapping{"o1": assigned("o1", "A", "A", "B")},
			validate: func(t *testing.T, r *Result) {
				assert.Equal(t, 1, r.Bucket("A", novemberWeek).Leads)
				assert.Equal(t, 1, r.Bucket("B", novemberWeek).Leads)
				assert.Equal(t, 1, r.Counted)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(time.UTC, 1500, tt.creditAll)
			tt.validate(t, agg.Aggregate(tt.opps, tt.mappings))
		})
	}
}

func TestAggregateSingleAssignment(t *testing.T) {
	opps := []domain.Opportunity{
		opportunity("o1", "Deposit", 100, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)),
		opportunity("o2", "Deposit", 200, time.Date(2025, 11, 12, 0, 0, 0, 0, time.UTC)),
	}
	mappings := map[string]*domain.OpportunityMapping{
		"o1": assigned("o1", "A", "A", "B"),
		"o2": assigned("o2", "B", "A", "B"),
	}

	r := NewAggregator(time.UTC, 0, false).Aggregate(opps, mappings)

	buckets := r.Buckets()
	require.Len(t, buckets, 2)
	assert.Equal(t, domain.WeeklyBucket{AdID: "A", WeekID: novemberWeek, Leads: 1, Deposits: 1, CashAmount: 100}, *buckets[0])
	assert.Equal(t, domain.WeeklyBucket{AdID: "B", WeekID: "2025-11-10_2025-11-16", Leads: 1, Deposits: 1, CashAmount: 200}, *buckets[1])
	assert.Nil(t, r.Bucket("A", "2025-11-10_2025-11-16"))
	assert.Nil(t, r.Bucket("B", novemberWeek))
}

func TestAggregateWeekUsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	// segunda 02:00 UTC ainda é domingo em São Paulo
	createdAt := time.Date(2025, 11, 10, 2, 0, 0, 0, time.UTC)
	opps := []domain.Opportunity{opportunity("o1", "New Lead", 0, createdAt)}
	mappings := map[string]*domain.OpportunityMapping{"o1": assigned("o1", "AD1")}

	assert.NotNil(t, NewAggregator(loc, 0, false).Aggregate(opps, mappings).Bucket("AD1", novemberWeek))
	assert.NotNil(t, NewAggregator(time.UTC, 0, false).Aggregate(opps, mappings).Bucket("AD1", "2025-11-10_2025-11-16"))
}

func TestResultRollups(t *testing.T) {
	opps := []domain.Opportunity{
		opportunity("o1", "Deposit", 100, time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC)),
		opportunity("o2", "Deposit", 200, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)),
		opportunity("o3", "Booked", 0, time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC)),
	}
	mappings := map[string]*domain.OpportunityMapping{
		"o1": assigned("o1", "A"),
		"o2": assigned("o2", "A"),
		"o3": assigned("o3", "A"),
	}

	r := NewAggregator(time.UTC, 0, false).Aggregate(opps, mappings)

	assert.Equal(t, &domain.GHLStats{Leads: 3, Bookings: 1, Deposits: 2, CashAmount: 300}, r.Totals()["A"])

	monthly := r.Monthly()
	assert.Equal(t, &domain.GHLStats{Leads: 1, Deposits: 1, CashAmount: 100}, monthly["2025-10"]["A"])
	assert.Equal(t, &domain.GHLStats{Leads: 2, Bookings: 1, Deposits: 1, CashAmount: 200}, monthly["2025-11"]["A"])
}
