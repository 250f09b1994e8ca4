package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

//go:generate mockgen -source=ad.go -destination=mocks/mock_ad.go -package=mocks

type AdRepository interface {
	ListCatalog(ctx context.Context) ([]*domain.Ad, error)
	GetAd(ctx context.Context, adID string) (*domain.Ad, error)
	ListMonthlyAdIDs(ctx context.Context, month string) ([]string, error)
	SaveCatalogAds(ctx context.Context, ads []*domain.Ad, month string) docstore.WriteStats
	UpdateFacebookStats(ctx context.Context, stats map[string]*domain.FacebookStats, month string) docstore.WriteStats
	SaveGHLStats(ctx context.Context, totals map[string]*domain.GHLStats, monthly map[string]map[string]*domain.GHLStats, policy domain.WritePolicy) docstore.WriteStats
}

type adRepository struct {
	store     docstore.Store
	batchSize int
	now       func() time.Time
}

func NewAdRepository(store docstore.Store, batchSize int) AdRepository {
	return &adRepository{
		store:     store,
		batchSize: batchSize,
		now:       time.Now,
	}
}

// ListCatalog carrega adPerformance ordenado pelo id do anúncio
func (r *adRepository) ListCatalog(ctx context.Context) ([]*domain.Ad, error) {
	snaps, err := r.store.List(ctx, adPerformanceCollection)
	if err != nil {
		return nil, err
	}

	ads := make([]*domain.Ad, 0, len(snaps))
	for _, snap := range snaps {
		ad := &domain.Ad{}
		if err := docstore.Decode(snap.Data, ad); err != nil {
			logrus.WithError(err).WithField("path", snap.Path).Warn("Documento de anúncio inválido ignorado")
			continue
		}
		if ad.ID == "" {
			ad.ID = snap.ID
		}
		ads = append(ads, ad)
	}

	sort.SliceStable(ads, func(i, j int) bool { return ads[i].ID < ads[j].ID })
	return ads, nil
}

func (r *adRepository) GetAd(ctx context.Context, adID string) (*domain.Ad, error) {
	doc, err := r.store.Get(ctx, adPerformancePath(adID))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	ad := &domain.Ad{}
	if err := docstore.Decode(doc, ad); err != nil {
		return nil, err
	}
	if ad.ID == "" {
		ad.ID = adID
	}
	return ad, nil
}

func (r *adRepository) ListMonthlyAdIDs(ctx context.Context, month string) ([]string, error) {
	return listMonthlyAdIDs(ctx, r.store, month)
}

// SaveCatalogAds grava metadados e facebookStats sem tocar em ghlStats
func (r *adRepository) SaveCatalogAds(ctx context.Context, ads []*domain.Ad, month string) docstore.WriteStats {
	w := docstore.NewWriter(r.store, r.batchSize)
	now := r.now()

	for _, ad := range ads {
		if ad == nil || ad.ID == "" {
			continue
		}
		doc := adMetadataDocument(ad, now)
		w.Merge(ctx, adPerformancePath(ad.ID), doc)
		if month != "" {
			w.Merge(ctx, monthlyAdPath(month, ad.ID), adMetadataDocument(ad, now))
		}
	}

	return w.Close(ctx)
}

func (r *adRepository) UpdateFacebookStats(ctx context.Context, stats map[string]*domain.FacebookStats, month string) docstore.WriteStats {
	w := docstore.NewWriter(r.store, r.batchSize)
	now := docstore.Timestamp(r.now())

	for _, adID := range sortedKeys(stats) {
		doc := docstore.Document{
			"adId":          adID,
			"facebookStats": facebookStatsDocument(stats[adID]),
			"updatedAt":     now,
		}
		w.Merge(ctx, adPerformancePath(adID), doc)
		if month != "" {
			w.Merge(ctx, monthlyAdPath(month, adID), docstore.Document{
				"adId":          adID,
				"facebookStats": facebookStatsDocument(stats[adID]),
				"updatedAt":     now,
			})
		}
	}

	return w.Close(ctx)
}

// SaveGHLStats grava o consolidado total (adPerformance) e mensal (advertData)
func (r *adRepository) SaveGHLStats(
	ctx context.Context,
	totals map[string]*domain.GHLStats,
	monthly map[string]map[string]*domain.GHLStats,
	policy domain.WritePolicy,
) docstore.WriteStats {
	w := docstore.NewWriter(r.store, r.batchSize)
	now := docstore.Timestamp(r.now())

	for _, adID := range sortedKeys(totals) {
		w.Merge(ctx, adPerformancePath(adID), docstore.Document{
			"adId":              adID,
			"ghlStats":          ghlStatsDocument(totals[adID], policy),
			"ghlStatsUpdatedAt": now,
		})
	}

	for _, month := range sortedKeys(monthly) {
		for _, adID := range sortedKeys(monthly[month]) {
			w.Merge(ctx, monthlyAdPath(month, adID), docstore.Document{
				"adId":              adID,
				"ghlStats":          ghlStatsDocument(monthly[month][adID], policy),
				"ghlStatsUpdatedAt": now,
			})
		}
	}

	return w.Close(ctx)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
