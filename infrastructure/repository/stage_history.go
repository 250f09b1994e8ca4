package repository

import (
	"context"

	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

//go:generate mockgen -source=stage_history.go -destination=mocks/mock_stage_history.go -package=mocks

type StageHistoryRepository interface {
	ListIDs(ctx context.Context) (map[string]struct{}, error)
	SaveEntries(ctx context.Context, created, seen []*domain.StageHistoryEntry) docstore.WriteStats
}

type stageHistoryRepository struct {
	store     docstore.Store
	batchSize int
}

func NewStageHistoryRepository(store docstore.Store, batchSize int) StageHistoryRepository {
	return &stageHistoryRepository{
		store:     store,
		batchSize: batchSize,
	}
}

func (r *stageHistoryRepository) ListIDs(ctx context.Context) (map[string]struct{}, error) {
	snaps, err := r.store.List(ctx, stageHistoryCollection)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]struct{}, len(snaps))
	for _, snap := range snaps {
		ids[snap.ID] = struct{}{}
	}
	return ids, nil
}

// SaveEntries cria as entradas novas e, nas já existentes, atualiza só o que muda entre execuções
func (r *stageHistoryRepository) SaveEntries(ctx context.Context, created, seen []*domain.StageHistoryEntry) docstore.WriteStats {
	w := docstore.NewWriter(r.store, r.batchSize)

	for _, e := range created {
		w.Set(ctx, stageHistoryPath(e.ID), stageHistoryDocument(e))
	}

	for _, e := range seen {
		w.Merge(ctx, stageHistoryPath(e.ID), docstore.Document{
			"adId":           e.AdID,
			"monetaryValue":  e.MonetaryValue,
			"stageName":      e.StageName,
			"category":       string(e.Category),
			"lastObservedAt": docstore.Timestamp(e.LastObservedAt),
		})
	}

	return w.Close(ctx)
}
