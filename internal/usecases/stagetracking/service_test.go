package stagetracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestRecord(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	svc := NewService(repository.NewStageHistoryRepository(store, 500))

	first := time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	opps := []domain.Opportunity{
		{ID: "o1", PipelineStageID: "s-dep", StageName: "Deposit Received", MonetaryValue: 2000},
		{ID: "o2", PipelineStageID: "s-new", StageName: "New Lead"},
		{ID: "o2", PipelineStageID: "s-new", StageName: "New Lead"},
	}
	mappings := map[string]*domain.OpportunityMapping{
		"o1": {OpportunityID: "o1", AdID: "AD1", Method: domain.MatchByAdID},
		"o2": {OpportunityID: "o2", Method: domain.Unmatched},
	}

	svc.now = func() time.Time { return first }
	report, err := svc.Record(ctx, opps, mappings)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Observed)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 0, report.Refreshed)
	assert.Equal(t, 1, report.ByCategory[domain.StageDeposit])

	svc.now = func() time.Time { return second }
	report, err = svc.Record(ctx, opps[:1], mappings)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Created)
	assert.Equal(t, 1, report.Refreshed)

	doc, err := store.Get(ctx, "opportunityStageHistory/o1_s-dep")
	require.NoError(t, err)

	entry := &domain.StageHistoryEntry{}
	require.NoError(t, docstore.Decode(doc, entry))
	assert.Equal(t, "AD1", entry.AdID)
	assert.Equal(t, domain.StageDeposit, entry.Category)
	assert.True(t, entry.FirstObservedAt.Equal(first))
	assert.True(t, entry.LastObservedAt.Equal(second))

	doc, err = store.Get(ctx, "opportunityStageHistory/o2_s-new")
	require.NoError(t, err)
	assert.Equal(t, "", doc["adId"])
}

func TestRecordListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStageHistoryRepository(ctrl)
	repo.EXPECT().ListIDs(gomock.Any()).Return(nil, errors.New("indisponível"))

	_, err := NewService(repo).Record(context.Background(), nil, nil)
	assert.Error(t, err)
}
