package repository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

//go:generate mockgen -source=weekly_stats.go -destination=mocks/mock_weekly_stats.go -package=mocks

type WeeklyStatsRepository interface {
	SaveBuckets(ctx context.Context, buckets []*domain.WeeklyBucket, policy domain.WritePolicy) docstore.WriteStats
	ListByAd(ctx context.Context, adID, month string) ([]*domain.WeeklyBucket, error)
	ListMonth(ctx context.Context, month string) ([]*domain.WeeklyBucket, error)
	DeleteBuckets(ctx context.Context, buckets []*domain.WeeklyBucket) docstore.WriteStats
}

type weeklyStatsRepository struct {
	store     docstore.Store
	batchSize int
	now       func() time.Time
}

func NewWeeklyStatsRepository(store docstore.Store, batchSize int) WeeklyStatsRepository {
	return &weeklyStatsRepository{
		store:     store,
		batchSize: batchSize,
		now:       time.Now,
	}
}

// SaveBuckets em replace sobrescreve o documento inteiro; em increment soma os contadores.
// O documento mensal do anúncio recebe o adId para que ListMonth encontre os buckets.
func (r *weeklyStatsRepository) SaveBuckets(ctx context.Context, buckets []*domain.WeeklyBucket, policy domain.WritePolicy) docstore.WriteStats {
	w := docstore.NewWriter(r.store, r.batchSize)
	now := r.now()
	parents := make(map[string]struct{})

	for _, b := range buckets {
		if b == nil || b.AdID == "" || b.WeekID == "" {
			continue
		}

		parent := monthlyAdPath(b.WeekID.Month(), b.AdID)
		if _, ok := parents[parent]; !ok {
			parents[parent] = struct{}{}
			w.Merge(ctx, parent, docstore.Document{"adId": b.AdID})
		}

		path := weeklyBucketPath(b.AdID, b.WeekID)
		doc := bucketDocument(b, policy, now)
		if policy == domain.WriteIncrement {
			w.Merge(ctx, path, doc)
			continue
		}
		w.Set(ctx, path, doc)
	}

	return w.Close(ctx)
}

func (r *weeklyStatsRepository) ListByAd(ctx context.Context, adID, month string) ([]*domain.WeeklyBucket, error) {
	snaps, err := r.store.List(ctx, weeklyCollectionPath(month, adID))
	if err != nil {
		return nil, err
	}

	out := make([]*domain.WeeklyBucket, 0, len(snaps))
	for _, snap := range snaps {
		bucket := &domain.WeeklyBucket{}
		if err := docstore.Decode(snap.Data, bucket); err != nil {
			logrus.WithError(err).WithField("path", snap.Path).Warn("Bucket semanal inválido ignorado")
			continue
		}
		if bucket.WeekID == "" {
			bucket.WeekID = domain.WeekID(snap.ID)
		}
		if bucket.AdID == "" {
			bucket.AdID = adID
		}
		out = append(out, bucket)
	}
	return out, nil
}

// ListMonth carrega os buckets de todos os anúncios com documento no mês
func (r *weeklyStatsRepository) ListMonth(ctx context.Context, month string) ([]*domain.WeeklyBucket, error) {
	adIDs, err := listMonthlyAdIDs(ctx, r.store, month)
	if err != nil {
		return nil, err
	}

	var out []*domain.WeeklyBucket
	for _, adID := range adIDs {
		buckets, err := r.ListByAd(ctx, adID, month)
		if err != nil {
			return nil, err
		}
		out = append(out, buckets...)
	}
	return out, nil
}

func (r *weeklyStatsRepository) DeleteBuckets(ctx context.Context, buckets []*domain.WeeklyBucket) docstore.WriteStats {
	w := docstore.NewWriter(r.store, r.batchSize)
	for _, b := range buckets {
		if b == nil || b.AdID == "" || b.WeekID == "" {
			continue
		}
		w.Delete(ctx, weeklyBucketPath(b.AdID, b.WeekID))
	}
	return w.Close(ctx)
}
