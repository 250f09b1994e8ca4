package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

func TestOpportunityMappingRepository(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	repo := NewOpportunityMappingRepository(store, 500)

	created := time.Date(2025, 11, 5, 14, 0, 0, 0, time.UTC)
	mapping := &domain.OpportunityMapping{
		OpportunityID:        "opp1",
		AdID:                 "AD1",
		CampaignID:           "C1",
		Method:               domain.MatchByCampaignIDOnly,
		CandidateAdIDs:       []string{"AD1", "AD2"},
		Attribution:          domain.AttributionRef{CampaignID: "C1"},
		StageName:            "Deposit Received",
		OpportunityCreatedAt: created,
		MatchedAt:            created.Add(time.Hour),
	}

	for i := 0; i < 2; i++ {
		stats := repo.SaveAll(ctx, []*domain.OpportunityMapping{mapping, nil, {}})
		assert.Equal(t, 1, stats.Committed)
	}
	assert.Equal(t, []string{"ghlOpportunityMapping/opp1"}, store.Paths())

	got, err := repo.Get(ctx, "opp1")
	require.NoError(t, err)
	assert.Equal(t, mapping, got)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]*domain.OpportunityMapping{"opp1": mapping}, all)

	missing, err := repo.Get(ctx, "opp2")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
