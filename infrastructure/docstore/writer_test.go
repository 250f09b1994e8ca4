package docstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStore registra o tamanho de cada commit e falha nos commits escolhidos
type flakyStore struct {
	*MemoryStore
	sizes  []int
	failOn map[int]error
}

func (f *flakyStore) NewBatch() Batch {
	return newOpBatch(func(ctx context.Context, ops []op) error {
		n := len(f.sizes)
		f.sizes = append(f.sizes, len(ops))
		if err, ok := f.failOn[n]; ok {
			return err
		}
		return f.MemoryStore.commit(ctx, ops)
	})
}

func TestWriterChunksBatches(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: NewMemoryStore()}

	w := NewWriter(store, 500)
	for i := 0; i < 1201; i++ {
		w.Set(ctx, fmt.Sprintf("ads/%04d", i), Document{"i": i})
	}
	stats := w.Close(ctx)

	assert.Equal(t, []int{500, 500, 201}, store.sizes)
	assert.Equal(t, WriteStats{Committed: 1201, Batches: 3}, stats)
	assert.Len(t, store.Paths(), 1201)
}

func TestWriterCountsFailuresAndContinues(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{
		MemoryStore: NewMemoryStore(),
		failOn: map[int]error{
			0: errors.New("deadline exceeded"),
			1: &CommitError{Failed: 1, Total: 2, Err: errors.New("permission denied")},
		},
	}

	w := NewWriter(store, 2)
	for i := 0; i < 6; i++ {
		w.Merge(ctx, fmt.Sprintf("ads/%d", i), Document{"i": i})
	}
	stats := w.Close(ctx)

	assert.Equal(t, 3, stats.Batches)
	assert.Equal(t, 2, stats.Errors)
	assert.Equal(t, 3, stats.Failed)
	assert.Equal(t, 3, stats.Committed)
	assert.Len(t, store.Paths(), 2)
}

func TestWriterClampsSize(t *testing.T) {
	store := &flakyStore{MemoryStore: NewMemoryStore()}
	w := NewWriter(store, 10000)
	require.Equal(t, MaxBatchSize, w.size)

	stats := w.Close(context.Background())
	assert.Equal(t, WriteStats{}, stats)
	assert.Empty(t, store.sizes)
}
