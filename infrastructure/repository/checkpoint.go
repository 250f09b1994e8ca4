package repository

import (
	"context"
	"errors"

	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

//go:generate mockgen -source=checkpoint.go -destination=mocks/mock_checkpoint.go -package=mocks

// CheckpointRepository guarda o cursor de sincronizações longas no próprio banco de documentos
type CheckpointRepository interface {
	Get(ctx context.Context, name string) (*domain.SyncCheckpoint, error)
	Save(ctx context.Context, checkpoint *domain.SyncCheckpoint) error
	Clear(ctx context.Context, name string) error
}

type checkpointRepository struct {
	store docstore.Store
}

func NewCheckpointRepository(store docstore.Store) CheckpointRepository {
	return &checkpointRepository{store: store}
}

func (r *checkpointRepository) Get(ctx context.Context, name string) (*domain.SyncCheckpoint, error) {
	doc, err := r.store.Get(ctx, checkpointPath(name))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	cp := &domain.SyncCheckpoint{}
	if err := docstore.Decode(doc, cp); err != nil {
		return nil, err
	}
	if cp.Name == "" {
		cp.Name = name
	}
	return cp, nil
}

func (r *checkpointRepository) Save(ctx context.Context, checkpoint *domain.SyncCheckpoint) error {
	batch := r.store.NewBatch()
	batch.Set(checkpointPath(checkpoint.Name), checkpointDocument(checkpoint))
	return batch.Commit(ctx)
}

func (r *checkpointRepository) Clear(ctx context.Context, name string) error {
	batch := r.store.NewBatch()
	batch.Delete(checkpointPath(name))
	return batch.Commit(ctx)
}
