package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	batch := store.NewBatch()
	batch.Set("ghlOpportunityMapping/opp1", Document{"adId": "AD1", "nested": Document{"a": 1}})
	require.Equal(t, 1, batch.Len())
	require.NoError(t, batch.Commit(ctx))
	assert.Equal(t, 0, batch.Len())

	doc, err := store.Get(ctx, "ghlOpportunityMapping/opp1")
	require.NoError(t, err)
	assert.Equal(t, "AD1", doc["adId"])
	assert.Equal(t, map[string]any{"a": 1}, doc["nested"])

	doc["adId"] = "mutated"
	again, err := store.Get(ctx, "ghlOpportunityMapping/opp1")
	require.NoError(t, err)
	assert.Equal(t, "AD1", again["adId"])

	_, err = store.Get(ctx, "ghlOpportunityMapping/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreMergeAndIncrement(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	path := "adPerformance/AD1"

	batch := store.NewBatch()
	batch.Set(path, Document{
		"adName":        "Promo",
		"facebookStats": Document{"spend": 10.5},
	})
	batch.Merge(path, Document{
		"ghlStats": Document{"leads": Increment(1), "cashAmount": Increment(1500.0)},
	})
	batch.Merge(path, Document{
		"ghlStats": Document{"leads": Increment(2)},
	})
	require.NoError(t, batch.Commit(ctx))

	doc, err := store.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Promo", doc["adName"])
	assert.Equal(t, map[string]any{"spend": 10.5}, doc["facebookStats"])
	assert.Equal(t, map[string]any{"leads": int64(3), "cashAmount": 1500.0}, doc["ghlStats"])
}

func TestMemoryStoreSetResolvesIncrements(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	batch := store.NewBatch()
	batch.Set("c/d", Document{"n": 5})
	batch.Set("c/d", Document{"n": Increment(2)})
	require.NoError(t, batch.Commit(ctx))

	doc, err := store.Get(ctx, "c/d")
	require.NoError(t, err)
	assert.Equal(t, 2, doc["n"])
}

func TestMemoryStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	batch := store.NewBatch()
	batch.Set("ads/B", Document{"n": 2})
	batch.Set("ads/A", Document{"n": 1})
	batch.Set("ads/A/ghlWeekly/w1", Document{"n": 3})
	batch.Set("other/X", Document{})
	require.NoError(t, batch.Commit(ctx))

	snaps, err := store.List(ctx, "ads")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "ads/A", snaps[0].Path)
	assert.Equal(t, "A", snaps[0].ID)
	assert.Equal(t, "ads/B", snaps[1].Path)

	nested, err := store.List(ctx, "ads/A/ghlWeekly")
	require.NoError(t, err)
	assert.Len(t, nested, 1)

	batch = store.NewBatch()
	batch.Delete("ads/B")
	require.NoError(t, batch.Commit(ctx))

	snaps, err = store.List(ctx, "ads")
	require.NoError(t, err)
	assert.Len(t, snaps, 1)

	_, err = store.List(ctx, "ads/A")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestBatchRejectsInvalidPath(t *testing.T) {
	store := NewMemoryStore()

	batch := store.NewBatch()
	batch.Set("ads/ok", Document{})
	batch.Set("ads", Document{})

	err := batch.Commit(context.Background())
	var commitErr *CommitError
	require.ErrorAs(t, err, &commitErr)
	assert.Equal(t, 2, commitErr.Failed)
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.Empty(t, store.Paths())
}

func TestDryRunDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryStore()

	seed := backend.NewBatch()
	seed.Set("ads/A", Document{"n": 1})
	require.NoError(t, seed.Commit(ctx))

	store := DryRun(backend)
	batch := store.NewBatch()
	batch.Set("ads/B", Document{"n": 2})
	batch.Merge("ads/A", Document{"n": Increment(5)})
	require.NoError(t, batch.Commit(ctx))

	doc, err := store.Get(ctx, "ads/A")
	require.NoError(t, err)
	assert.Equal(t, 1, doc["n"])
	assert.Equal(t, []string{"ads/A"}, backend.Paths())
}
