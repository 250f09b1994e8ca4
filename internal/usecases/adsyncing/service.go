package adsyncing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/metrics"
)

// CheckpointName identifica o cursor da sincronização do catálogo
const CheckpointName = "adCatalogSync"

var ErrStoreWrite = errors.New("falha ao gravar no banco de documentos")

type SyncReport struct {
	Campaigns   int                   `json:"campaigns"`
	Ads         int                   `json:"ads"`
	Skipped     int                   `json:"skipped"`
	StatsFailed int                   `json:"statsFailed"`
	NoDelivery  int                   `json:"noDelivery"`
	Resumed     bool                  `json:"resumed"`
	Checkpoint  domain.SyncCheckpoint `json:"checkpoint"`
	Write       docstore.WriteStats   `json:"write"`
	FinishedAt  time.Time             `json:"finishedAt"`
}

type ResolveReport struct {
	Requested int                 `json:"requested"`
	Resolved  int                 `json:"resolved"`
	Missing   []string            `json:"missing"`
	Write     docstore.WriteStats `json:"write"`
	Ads       []*domain.Ad        `json:"-"`
}

type RefreshReport struct {
	Since time.Time           `json:"since"`
	Until time.Time           `json:"until"`
	Ads   int                 `json:"ads"`
	Write docstore.WriteStats `json:"write"`
}

type Service struct {
	metaService    meta.MetaIntegrator
	adRepo         repository.AdRepository
	checkpointRepo repository.CheckpointRepository
	now            func() time.Time
}

func NewService(
	metaService meta.MetaIntegrator,
	adRepo repository.AdRepository,
	checkpointRepo repository.CheckpointRepository,
) *Service {
	return &Service{
		metaService:    metaService,
		adRepo:         adRepo,
		checkpointRepo: checkpointRepo,
		now:            time.Now,
	}
}

func (s *Service) Sync(ctx context.Context, opts SyncOptions) (*SyncReport, error) {
	report := &SyncReport{}

	checkpoint, err := s.loadCheckpoint(ctx, opts.Restart)
	if err != nil {
		return nil, err
	}
	report.Resumed = checkpoint.TotalProcessed > 0

	month := s.partition(opts.Filters)

	campaigns, err := s.metaService.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas: %w", err)
	}
	report.Campaigns = len(campaigns)

	logrus.WithFields(logrus.Fields{
		"campaigns":         len(campaigns),
		"resumed":           report.Resumed,
		"lastCampaignIndex": checkpoint.LastCampaignIndex,
		"lastAdIndex":       checkpoint.LastAdIndex,
		"month":             month,
	}).Info("Iniciando sincronização do catálogo de anúncios")

	for ci, campaign := range campaigns {
		if ci < checkpoint.LastCampaignIndex {
			continue
		}

		ads, err := s.metaService.ListCampaignAds(ctx, campaign)
		if err != nil {
			return report, fmt.Errorf("erro ao listar anúncios da campanha %s: %w", campaign.ID, err)
		}

		for ai, ad := range ads {
			if checkpoint.Done(ci, ai) {
				report.Skipped++
				continue
			}

			if err := ctx.Err(); err != nil {
				report.Checkpoint = *checkpoint
				return report, err
			}

			stats, err := s.metaService.GetAdStats(ctx, ad.ID, opts.Filters)
			switch {
			case err != nil:
				report.StatsFailed++
			case stats == nil:
				report.NoDelivery++
			default:
				ad.FacebookStats = stats
			}

			write := s.adRepo.SaveCatalogAds(ctx, []*domain.Ad{ad}, month)
			report.Write.Add(write)
			if write.Errors > 0 {
				report.Checkpoint = *checkpoint
				return report, fmt.Errorf("erro ao gravar o anúncio %s: %w", ad.ID, ErrStoreWrite)
			}

			checkpoint.Advance(ci, ai, s.now())
			if err := s.checkpointRepo.Save(ctx, checkpoint); err != nil {
				report.Checkpoint = *checkpoint
				return report, fmt.Errorf("erro ao salvar o cursor da sincronização: %w", err)
			}
			report.Ads++
		}
	}

	report.Checkpoint = *checkpoint
	if err := s.checkpointRepo.Clear(ctx, CheckpointName); err != nil {
		logrus.WithError(err).Warn("Erro ao limpar o cursor da sincronização")
	}

	metrics.ObserveWrite("ad_catalog", report.Write.Committed, report.Write.Errors)
	report.FinishedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"campaigns":   report.Campaigns,
		"ads":         report.Ads,
		"skipped":     report.Skipped,
		"statsFailed": report.StatsFailed,
		"noDelivery":  report.NoDelivery,
	}).Info("Sincronização do catálogo de anúncios concluída")

	return report, nil
}

func (s *Service) loadCheckpoint(ctx context.Context, restart bool) (*domain.SyncCheckpoint, error) {
	if restart {
		if err := s.checkpointRepo.Clear(ctx, CheckpointName); err != nil {
			return nil, fmt.Errorf("erro ao limpar o cursor da sincronização: %w", err)
		}
		return domain.NewSyncCheckpoint(CheckpointName), nil
	}

	checkpoint, err := s.checkpointRepo.Get(ctx, CheckpointName)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar o cursor da sincronização: %w", err)
	}
	if checkpoint == nil {
		return domain.NewSyncCheckpoint(CheckpointName), nil
	}
	return checkpoint, nil
}

// partition é o mês de advertData que recebe as métricas do período consultado
func (s *Service) partition(filters *domain.InsightFilters) string {
	if filters != nil && filters.EndDate != nil {
		return filters.EndDate.Format("2006-01")
	}
	return s.now().Format("2006-01")
}

func (s *Service) SyncAdsByID(ctx context.Context, ids []string) (*ResolveReport, error) {
	report := &ResolveReport{Missing: []string{}}
	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		report.Requested++

		ad, err := s.metaService.GetAd(ctx, id)
		if err != nil {
			if errors.Is(err, metaclient.ErrNotFound) {
				report.Missing = append(report.Missing, id)
				continue
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			logrus.WithError(err).WithField("ad_id", id).Warn("Erro ao resolver anúncio na Graph API")
			report.Missing = append(report.Missing, id)
			continue
		}

		report.Ads = append(report.Ads, ad)
	}
	report.Resolved = len(report.Ads)

	if len(report.Ads) > 0 {
		report.Write = s.adRepo.SaveCatalogAds(ctx, report.Ads, "")
		metrics.ObserveWrite("ad_catalog", report.Write.Committed, report.Write.Errors)
	}

	logrus.WithFields(logrus.Fields{
		"requested": report.Requested,
		"resolved":  report.Resolved,
		"missing":   len(report.Missing),
	}).Info("Anúncios desconhecidos resolvidos")

	return report, nil
}

func (s *Service) RefreshStats(ctx context.Context, since, until time.Time) (*RefreshReport, error) {
	if until.Before(since) {
		return nil, fmt.Errorf("período inválido: %s depois de %s", since.Format("2006-01-02"), until.Format("2006-01-02"))
	}

	filters := &domain.InsightFilters{StartDate: &since, EndDate: &until}
	stats, err := s.metaService.GetAccountAdStats(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas dos anúncios: %w", err)
	}

	report := &RefreshReport{Since: since, Until: until, Ads: len(stats)}
	report.Write = s.adRepo.UpdateFacebookStats(ctx, stats, s.partition(filters))
	metrics.ObserveWrite("facebook_stats", report.Write.Committed, report.Write.Errors)

	logrus.WithFields(logrus.Fields{
		"since":  since.Format("2006-01-02"),
		"until":  until.Format("2006-01-02"),
		"ads":    report.Ads,
		"errors": report.Write.Errors,
	}).Info("Métricas do Facebook atualizadas")

	return report, nil
}
