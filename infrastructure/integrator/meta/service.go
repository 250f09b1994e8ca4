package meta

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type MetaIntegrator interface {
	ListCampaigns(ctx context.Context) ([]metadomain.Campaign, error)
	ListCampaignAds(ctx context.Context, campaign metadomain.Campaign) ([]*domain.Ad, error)
	GetAd(ctx context.Context, adID string) (*domain.Ad, error)
	GetAdStats(ctx context.Context, adID string, filters *domain.InsightFilters) (*domain.FacebookStats, error)
	GetAccountAdStats(ctx context.Context, filters *domain.InsightFilters) (map[string]*domain.FacebookStats, error)
}

type MetaService struct {
	cfg    *config.Config
	Client metaclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client metaclient.Client) MetaIntegrator {
	return &MetaService{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// ListCampaigns devolve as campanhas da conta ordenadas por id, base estável para o cursor de retomada
func (s *MetaService) ListCampaigns(ctx context.Context) ([]metadomain.Campaign, error) {
	campaigns, err := s.Client.GetCampaigns(ctx, s.cfg.Meta.AdAccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": s.cfg.Meta.AdAccountID,
			"error":      err.Error(),
		}).Error("meta: failed to list campaigns")
		return nil, err
	}

	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].ID < campaigns[j].ID })

	return campaigns, nil
}

// ListCampaignAds devolve os anúncios da campanha ordenados por id
func (s *MetaService) ListCampaignAds(ctx context.Context, campaign metadomain.Campaign) ([]*domain.Ad, error) {
	raw, err := s.Client.GetAdsByCampaign(ctx, campaign.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Error("meta: failed to list campaign ads")
		return nil, err
	}

	ads := make([]*domain.Ad, 0, len(raw))
	for _, r := range raw {
		ad := s.toDomainAd(r)
		if ad.CampaignID == "" {
			ad.CampaignID = campaign.ID
		}
		if ad.CampaignName == "" {
			ad.CampaignName = campaign.Name
		}
		ads = append(ads, ad)
	}

	sort.Slice(ads, func(i, j int) bool { return ads[i].ID < ads[j].ID })

	return ads, nil
}

func (s *MetaService) GetAd(ctx context.Context, adID string) (*domain.Ad, error) {
	raw, err := s.Client.GetAd(ctx, adID)
	if err != nil {
		return nil, err
	}
	return s.toDomainAd(*raw), nil
}

// GetAdStats devolve nil quando o anúncio não teve entrega no período
func (s *MetaService) GetAdStats(ctx context.Context, adID string, filters *domain.InsightFilters) (*domain.FacebookStats, error) {
	insight, err := s.Client.GetAdInsights(ctx, adID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Warn("meta: failed to get ad insights")
		return nil, err
	}

	if insight == nil {
		return nil, nil
	}
	return toFacebookStats(insight), nil
}

// GetAccountAdStats busca as métricas de todos os anúncios da conta numa única consulta level=ad
func (s *MetaService) GetAccountAdStats(ctx context.Context, filters *domain.InsightFilters) (map[string]*domain.FacebookStats, error) {
	insights, err := s.Client.GetAccountAdInsights(ctx, s.cfg.Meta.AdAccountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": s.cfg.Meta.AdAccountID,
			"error":      err.Error(),
		}).Error("meta: failed to get account ad insights")
		return nil, err
	}

	stats := make(map[string]*domain.FacebookStats, len(insights))
	for i := range insights {
		insight := &insights[i]
		if insight.AdID == "" {
			continue
		}

		current := toFacebookStats(insight)
		if existing, ok := stats[insight.AdID]; ok {
			existing.Spend = utils.RoundWithTwoDecimalPlace(existing.Spend + current.Spend)
			existing.Impressions += current.Impressions
			existing.Clicks += current.Clicks
			existing.Reach += current.Reach
			existing.Leads += current.Leads
			continue
		}
		stats[insight.AdID] = current
	}

	logrus.WithFields(logrus.Fields{
		"account_id": s.cfg.Meta.AdAccountID,
		"ads":        len(stats),
	}).Debug("meta: account ad insights loaded")

	return stats, nil
}

func (s *MetaService) toDomainAd(raw metadomain.Ad) *domain.Ad {
	ad := &domain.Ad{
		ID:         raw.ID,
		AccountID:  raw.AccountID,
		CampaignID: raw.CampaignID,
		AdName:     strings.TrimSpace(raw.Name),
		AdSetID:    raw.AdSetID,
		Status:     raw.Status,
		UpdatedAt:  s.now().UTC(),
	}

	if raw.Campaign != nil {
		if ad.CampaignID == "" {
			ad.CampaignID = raw.Campaign.ID
		}
		ad.CampaignName = strings.TrimSpace(raw.Campaign.Name)
	}

	if raw.AdSet != nil {
		if ad.AdSetID == "" {
			ad.AdSetID = raw.AdSet.ID
		}
		ad.AdSetName = strings.TrimSpace(raw.AdSet.Name)
	}

	if ad.AccountID == "" {
		ad.AccountID = strings.TrimPrefix(s.cfg.Meta.AdAccountID, "act_")
	}

	return ad
}

func toFacebookStats(insight *metadomain.AdInsight) *domain.FacebookStats {
	return &domain.FacebookStats{
		Spend:       utils.RoundWithTwoDecimalPlace(metadomain.ParseFloat(insight.Spend, "spend")),
		Impressions: metadomain.ParseInt(insight.Impressions, "impressions"),
		Clicks:      metadomain.ParseInt(insight.Clicks, "clicks"),
		Reach:       metadomain.ParseInt(insight.Reach, "reach"),
		Leads:       insight.Leads(),
		DateStart:   insight.DateStart,
		DateStop:    insight.DateStop,
	}
}
