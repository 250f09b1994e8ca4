package aggregating

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Rebuilder interface {
	Rebuild(ctx context.Context, opportunities []domain.Opportunity, mappings map[string]*domain.OpportunityMapping, opts Options) (*Report, error)
}

// ErrFilteredReplace recusa gravar em replace os buckets de um subconjunto das oportunidades
var ErrFilteredReplace = errors.New("a política replace não aceita execução filtrada por pipeline ou status")

type Options struct {
	// Full indica que a execução cobre todas as oportunidades; só então os
	// consolidados ghlStats (total e mensal) são gravados
	Full bool
	// ResetMissing zera o ghlStats dos anúncios sem oportunidades (só com replace)
	ResetMissing bool
	// Filtered indica filtro por pipeline ou status
	Filtered bool
	// Since e Until delimitam as semanas recalculadas; nil não limita
	Since *time.Time
	Until *time.Time
}

type Report struct {
	Policy        domain.WritePolicy  `json:"policy"`
	Opportunities int                 `json:"opportunities"`
	Counted       int                 `json:"counted"`
	Unassigned    int                 `json:"unassigned"`
	Undated       int                 `json:"undated"`
	Duplicates    int                 `json:"duplicates"`
	Ads           int                 `json:"ads"`
	Buckets       int                 `json:"buckets"`
	ResetAds      int                 `json:"resetAds"`
	ResetMonthly  int                 `json:"resetMonthly"`
	PrunedBuckets int                 `json:"prunedBuckets"`
	PruneWrites   docstore.WriteStats `json:"pruneWrites"`
	BucketWrites  docstore.WriteStats `json:"bucketWrites"`
	StatsWrites   docstore.WriteStats `json:"statsWrites"`
}

// Errors soma os batches que falharam nas escritas
func (r *Report) Errors() int {
	return r.PruneWrites.Errors + r.BucketWrites.Errors + r.StatsWrites.Errors
}

type Service struct {
	aggregator *Aggregator
	policy     domain.WritePolicy
	weeklyRepo repository.WeeklyStatsRepository
	adRepo     repository.AdRepository
	loc        *time.Location
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	weeklyRepo repository.WeeklyStatsRepository,
	adRepo repository.AdRepository,
) (*Service, error) {
	policy, err := domain.ParseWritePolicy(cfg.Aggregation.WritePolicy)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Aggregation.Location()
	if err != nil {
		return nil, fmt.Errorf("fuso inválido para agregação: %w", err)
	}

	return &Service{
		aggregator: NewAggregator(loc, cfg.Aggregation.DefaultDealValue, cfg.Attribution.Assignment == "all"),
		policy:     policy,
		weeklyRepo: weeklyRepo,
		adRepo:     adRepo,
		loc:        loc,
		now:        time.Now,
	}, nil
}

// Rebuild agrega as oportunidades e grava os buckets semanais e os consolidados.
// Em replace, os buckets já gravados nas semanas da janela que não aparecem no
// resultado são apagados, assim uma oportunidade reatribuída conta em um só anúncio.
func (s *Service) Rebuild(
	ctx context.Context,
	opportunities []domain.Opportunity,
	mappings map[string]*domain.OpportunityMapping,
	opts Options,
) (*Report, error) {
	if opts.Filtered && s.policy == domain.WriteReplace {
		return nil, ErrFilteredReplace
	}

	result := s.aggregator.Aggregate(opportunities, mappings)
	buckets := result.Buckets()
	months := s.affectedMonths(buckets, opts)

	report := &Report{
		Policy:        s.policy,
		Opportunities: len(opportunities),
		Counted:       result.Counted,
		Unassigned:    result.Unassigned,
		Undated:       result.Undated,
		Duplicates:    result.Duplicates,
		Ads:           result.Ads(),
		Buckets:       len(buckets),
	}

	if s.policy == domain.WriteReplace {
		stale, err := s.staleBuckets(ctx, result, months, opts)
		if err != nil {
			return report, err
		}
		report.PrunedBuckets = len(stale)
		if len(stale) > 0 {
			report.PruneWrites = s.weeklyRepo.DeleteBuckets(ctx, stale)
			metrics.ObserveWrite("weekly_buckets_pruned", report.PruneWrites.Committed, report.PruneWrites.Errors)
		}
	}

	report.BucketWrites = s.weeklyRepo.SaveBuckets(ctx, buckets, s.policy)
	metrics.ObserveWrite("weekly_buckets", report.BucketWrites.Committed, report.BucketWrites.Errors)

	if opts.Full {
		totals := result.Totals()
		monthly := result.Monthly()

		if opts.ResetMissing && s.policy == domain.WriteReplace {
			reset, err := s.resetMissing(ctx, totals)
			if err != nil {
				return report, err
			}
			report.ResetAds = reset

			resetMonthly, err := s.resetMonthly(ctx, monthly, months)
			if err != nil {
				return report, err
			}
			report.ResetMonthly = resetMonthly
		}

		report.StatsWrites = s.adRepo.SaveGHLStats(ctx, totals, monthly, s.policy)
		metrics.ObserveWrite("ghl_stats", report.StatsWrites.Committed, report.StatsWrites.Errors)
	}

	logrus.WithFields(logrus.Fields{
		"policy":        s.policy,
		"opportunities": report.Opportunities,
		"counted":       report.Counted,
		"unassigned":    report.Unassigned,
		"undated":       report.Undated,
		"ads":           report.Ads,
		"buckets":       report.Buckets,
		"pruned":        report.PrunedBuckets,
		"resetAds":      report.ResetAds,
		"resetMonthly":  report.ResetMonthly,
		"full":          opts.Full,
		"errors":        report.Errors(),
	}).Info("Agregação semanal concluída")

	return report, nil
}

// affectedMonths junta os meses do resultado com os meses das semanas da janela
func (s *Service) affectedMonths(buckets []*domain.WeeklyBucket, opts Options) []string {
	set := make(map[string]struct{})
	for _, b := range buckets {
		set[b.WeekID.Month()] = struct{}{}
	}

	if opts.Since != nil {
		until := s.now()
		if opts.Until != nil {
			until = *opts.Until
		}
		last := domain.WeekOf(until, s.loc).Start()
		for monday := domain.WeekOf(*opts.Since, s.loc).Start(); !monday.After(last); monday = monday.AddDate(0, 0, 7) {
			set[monday.Format("2006-01")] = struct{}{}
		}
	}

	months := make([]string, 0, len(set))
	for month := range set {
		months = append(months, month)
	}
	sort.Strings(months)
	return months
}

func (s *Service) inWindow(week domain.WeekID, opts Options) bool {
	start := week.Start()
	if opts.Since != nil && start.Before(domain.WeekOf(*opts.Since, s.loc).Start()) {
		return false
	}
	if opts.Until != nil && start.After(domain.WeekOf(*opts.Until, s.loc).Start()) {
		return false
	}
	return true
}

// staleBuckets lista os buckets gravados nas semanas da janela que o resultado não tem mais
func (s *Service) staleBuckets(ctx context.Context, result *Result, months []string, opts Options) ([]*domain.WeeklyBucket, error) {
	var stale []*domain.WeeklyBucket
	for _, month := range months {
		existing, err := s.weeklyRepo.ListMonth(ctx, month)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar os buckets de %s: %w", month, err)
		}

		for _, b := range existing {
			if !s.inWindow(b.WeekID, opts) || result.Bucket(b.AdID, b.WeekID) != nil {
				continue
			}
			stale = append(stale, b)
		}
	}
	return stale, nil
}

// resetMissing inclui zeros para os anúncios do catálogo que ficaram sem oportunidades
func (s *Service) resetMissing(ctx context.Context, totals map[string]*domain.GHLStats) (int, error) {
	ads, err := s.adRepo.ListCatalog(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar o catálogo para zerar consolidados: %w", err)
	}

	reset := 0
	for _, ad := range ads {
		if _, ok := totals[ad.ID]; ok {
			continue
		}
		totals[ad.ID] = &domain.GHLStats{}
		reset++
	}
	return reset, nil
}

// resetMonthly inclui zeros para os anúncios com documento no mês e sem oportunidades nele
func (s *Service) resetMonthly(ctx context.Context, monthly map[string]map[string]*domain.GHLStats, months []string) (int, error) {
	reset := 0
	for _, month := range months {
		adIDs, err := s.adRepo.ListMonthlyAdIDs(ctx, month)
		if err != nil {
			return 0, fmt.Errorf("erro ao listar os anúncios de %s para zerar consolidados: %w", month, err)
		}

		for _, adID := range adIDs {
			if monthly[month] == nil {
				monthly[month] = make(map[string]*domain.GHLStats)
			}
			if _, ok := monthly[month][adID]; ok {
				continue
			}
			monthly[month][adID] = &domain.GHLStats{}
			reset++
		}
	}
	return reset, nil
}
