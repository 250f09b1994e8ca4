package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

// Aggregator distribui oportunidades já atribuídas em buckets (anúncio, semana)
type Aggregator struct {
	loc              *time.Location
	defaultDealValue float64
	creditAll        bool
}

// NewAggregator cria o agregador. defaultDealValue 0 desliga a substituição de valor.
// creditAll credita todos os candidatos do mapeamento em vez do anúncio atribuído.
func NewAggregator(loc *time.Location, defaultDealValue float64, creditAll bool) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{
		loc:              loc,
		defaultDealValue: defaultDealValue,
		creditAll:        creditAll,
	}
}

// Result guarda os buckets por anúncio e semana
type Result struct {
	buckets    map[string]map[domain.WeekID]*domain.WeeklyBucket
	Counted    int `json:"counted"`
	Unassigned int `json:"unassigned"`
	Undated    int `json:"undated"`
	Duplicates int `json:"duplicates"`
}

// Aggregate conta cada oportunidade uma única vez, no bucket do seu anúncio atual
func (a *Aggregator) Aggregate(opportunities []domain.Opportunity, mappings map[string]*domain.OpportunityMapping) *Result {
	result := &Result{buckets: make(map[string]map[domain.WeekID]*domain.WeeklyBucket)}
	seen := make(map[string]struct{}, len(opportunities))

	for _, opp := range opportunities {
		if _, dup := seen[opp.ID]; dup {
			result.Duplicates++
			continue
		}
		seen[opp.ID] = struct{}{}

		adIDs := a.creditedAds(mappings[opp.ID])
		if len(adIDs) == 0 {
			result.Unassigned++
			continue
		}

		if opp.CreatedAt.IsZero() {
			result.Undated++
			continue
		}

		week := domain.WeekOf(opp.CreatedAt, a.loc)
		category := domain.ClassifyStage(opp.StageName)

		for _, adID := range adIDs {
			a.add(result.bucket(adID, week), category, opp.MonetaryValue)
		}
		result.Counted++
	}

	return result
}

func (a *Aggregator) creditedAds(mapping *domain.OpportunityMapping) []string {
	if mapping == nil || mapping.AdID == "" || mapping.Method == domain.Unmatched {
		return nil
	}

	if !a.creditAll || len(mapping.CandidateAdIDs) == 0 {
		return []string{mapping.AdID}
	}

	seen := make(map[string]struct{}, len(mapping.CandidateAdIDs))
	ids := make([]string, 0, len(mapping.CandidateAdIDs))
	for _, id := range mapping.CandidateAdIDs {
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (a *Aggregator) add(b *domain.WeeklyBucket, category domain.StageCategory, monetaryValue float64) {
	b.Leads++

	switch category {
	case domain.StageBookedAppointment:
		b.BookedAppointments++
	case domain.StageDeposit:
		b.Deposits++
	case domain.StageCashCollected:
		b.CashCollected++
	}

	if category.CarriesValue() {
		b.CashAmount += a.dealValue(monetaryValue)
	}
}

// dealValue aplica o valor padrão quando o CRM informa zero
func (a *Aggregator) dealValue(monetaryValue float64) float64 {
	if monetaryValue > 0 {
		return monetaryValue
	}
	return a.defaultDealValue
}

func (r *Result) bucket(adID string, week domain.WeekID) *domain.WeeklyBucket {
	weeks, ok := r.buckets[adID]
	if !ok {
		weeks = make(map[domain.WeekID]*domain.WeeklyBucket)
		r.buckets[adID] = weeks
	}

	b, ok := weeks[week]
	if !ok {
		b = &domain.WeeklyBucket{AdID: adID, WeekID: week}
		weeks[week] = b
	}
	return b
}

// Bucket devolve o bucket de (anúncio, semana) ou nil
func (r *Result) Bucket(adID string, week domain.WeekID) *domain.WeeklyBucket {
	return r.buckets[adID][week]
}

// Buckets devolve todos os buckets ordenados por anúncio e semana
func (r *Result) Buckets() []*domain.WeeklyBucket {
	var out []*domain.WeeklyBucket
	for _, weeks := range r.buckets {
		for _, b := range weeks {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AdID != out[j].AdID {
			return out[i].AdID < out[j].AdID
		}
		return out[i].WeekID < out[j].WeekID
	})
	return out
}

// Totals consolida os buckets por anúncio
func (r *Result) Totals() map[string]*domain.GHLStats {
	totals := make(map[string]*domain.GHLStats, len(r.buckets))
	for adID, weeks := range r.buckets {
		stats := &domain.GHLStats{}
		for _, b := range weeks {
			stats.AddBucket(b)
		}
		totals[adID] = stats
	}
	return totals
}

// Monthly consolida os buckets por mês (da segunda-feira) e anúncio
func (r *Result) Monthly() map[string]map[string]*domain.GHLStats {
	monthly := make(map[string]map[string]*domain.GHLStats)
	for adID, weeks := range r.buckets {
		for week, b := range weeks {
			month := week.Month()
			if monthly[month] == nil {
				monthly[month] = make(map[string]*domain.GHLStats)
			}
			stats, ok := monthly[month][adID]
			if !ok {
				stats = &domain.GHLStats{}
				monthly[month][adID] = stats
			}
			stats.AddBucket(b)
		}
	}
	return monthly
}

func (r *Result) Ads() int {
	return len(r.buckets)
}
