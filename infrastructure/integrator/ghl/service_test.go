package ghl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ghldomain "github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl/domain"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl/ghlclient"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl/mocks"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		GHL: config.GHL{PageLimit: 2, DetailWorkers: 3},
	}
}

var pipelines = []ghldomain.Pipeline{
	{ID: "p1", Name: "Vendas", Stages: []ghldomain.Stage{
		{ID: "s-new", Name: "New Lead"},
		{ID: "s-dep", Name: "Deposit Received"},
	}},
}

func TestFetchOpportunities(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.OpportunityFilter
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, opps []domain.Opportunity, err error)
	}{
		{
			name: "segue o cursor e resolve nomes de etapa",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetPipelines(gomock.Any()).Return(pipelines, nil)
				gomock.InOrder(
					client.EXPECT().SearchOpportunities(gomock.Any(), ghlclient.SearchParams{Limit: 2}).
						Return(&ghldomain.SearchOpportunitiesResponse{
							Opportunities: []ghldomain.Opportunity{
								{ID: "o1", PipelineStageID: "s-dep", CreatedAt: "2025-11-05T10:00:00Z"},
								{ID: "o2", PipelineStageID: "s-new", CreatedAt: "2025-11-06T10:00:00Z"},
							},
							Meta: ghldomain.SearchMeta{Total: 3, StartAfterID: "o2", StartAfter: 100},
						}, nil),
					client.EXPECT().SearchOpportunities(gomock.Any(), ghlclient.SearchParams{Limit: 2, StartAfterID: "o2", StartAfter: 100}).
						Return(&ghldomain.SearchOpportunitiesResponse{
							Opportunities: []ghldomain.Opportunity{
								{ID: "o2", PipelineStageID: "s-new", CreatedAt: "2025-11-06T10:00:00Z"},
								{ID: "o3", PipelineStageID: "s-new", CreatedAt: "2025-11-07T10:00:00Z"},
							},
							Meta: ghldomain.SearchMeta{Total: 3, StartAfterID: "o3", StartAfter: 200},
						}, nil),
				)
			},
			validate: func(t *testing.T, opps []domain.Opportunity, err error) {
				require.NoError(t, err)
				require.Len(t, opps, 3)
				assert.Equal(t, "Deposit Received", opps[0].StageName)
				assert.Equal(t, time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC), opps[0].CreatedAt)
				assert.Equal(t, "o3", opps[2].ID)
			},
		},
		{
			name: "aplica o filtro de datas sobre createdAt",
			filter: domain.OpportunityFilter{
				Since: ptrTime(time.Date(2025, 11, 6, 0, 0, 0, 0, time.UTC)),
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetPipelines(gomock.Any()).Return(pipelines, nil)
				client.EXPECT().SearchOpportunities(gomock.Any(), gomock.Any()).
					Return(&ghldomain.SearchOpportunitiesResponse{
						Opportunities: []ghldomain.Opportunity{
							{ID: "o1", CreatedAt: "2025-11-05T10:00:00Z"},
							{ID: "o2", CreatedAt: "2025-11-06T10:00:00Z"},
						},
						Meta: ghldomain.SearchMeta{Total: 2},
					}, nil)
			},
			validate: func(t *testing.T, opps []domain.Opportunity, err error) {
				require.NoError(t, err)
				require.Len(t, opps, 1)
				assert.Equal(t, "o2", opps[0].ID)
			},
		},
		{
			name: "falha de página aborta a busca",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetPipelines(gomock.Any()).Return(pipelines, nil)
				client.EXPECT().SearchOpportunities(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("503"))
			},
			validate: func(t *testing.T, opps []domain.Opportunity, err error) {
				assert.Error(t, err)
				assert.Nil(t, opps)
			},
		},
		{
			name: "credencial recusada ao carregar pipelines",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetPipelines(gomock.Any()).Return(nil, ghlclient.ErrUnauthorized)
			},
			validate: func(t *testing.T, opps []domain.Opportunity, err error) {
				assert.ErrorIs(t, err, ghlclient.ErrUnauthorized)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			opps, err := New(testConfig(), client).FetchOpportunities(context.Background(), tt.filter)
			tt.validate(t, opps, err)
		})
	}
}

func TestFetchOpportunityDetailsSkipsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetPipelines(gomock.Any()).Return(pipelines, nil)
	client.EXPECT().GetOpportunity(gomock.Any(), "o1").Return(&ghldomain.Opportunity{ID: "o1", PipelineStageID: "s-dep"}, nil)
	client.EXPECT().GetOpportunity(gomock.Any(), "o2").Return(nil, ghlclient.ErrNotFound)
	client.EXPECT().GetOpportunity(gomock.Any(), "o3").Return(&ghldomain.Opportunity{ID: "o3"}, nil)

	opps, err := New(testConfig(), client).FetchOpportunityDetails(context.Background(), []string{"o1", "o2", "o3"})
	require.NoError(t, err)
	require.Len(t, opps, 2)
	assert.Equal(t, "o1", opps[0].ID)
	assert.Equal(t, "Deposit Received", opps[0].StageName)
	assert.Equal(t, "o3", opps[1].ID)
}

func TestWorkersAbortOnUnauthorized(t *testing.T) {
	tests := []struct {
		name string
		run  func(svc GHLIntegrator, client *mocks.MockClient) error
	}{
		{
			name: "detalhes de oportunidades",
			run: func(svc GHLIntegrator, client *mocks.MockClient) error {
				client.EXPECT().GetPipelines(gomock.Any()).Return(pipelines, nil)
				client.EXPECT().GetOpportunity(gomock.Any(), gomock.Any()).Return(nil, ghlclient.ErrUnauthorized).MinTimes(1)
				_, err := svc.FetchOpportunityDetails(context.Background(), []string{"o1", "o2", "o3"})
				return err
			},
		},
		{
			name: "enriquecimento por contato",
			run: func(svc GHLIntegrator, client *mocks.MockClient) error {
				client.EXPECT().GetContact(gomock.Any(), gomock.Any()).Return(nil, ghlclient.ErrUnauthorized).MinTimes(1)
				_, err := svc.EnrichFromContacts(context.Background(), []domain.Opportunity{
					{ID: "o1", ContactID: "c1"},
					{ID: "o2", ContactID: "c2"},
				})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)

			err := tt.run(New(testConfig(), client), client)
			assert.ErrorIs(t, err, ghlclient.ErrUnauthorized)
		})
	}
}

func TestEnrichFromContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetContact(gomock.Any(), "c2").Return(&ghldomain.Contact{
		ID:                    "c2",
		AttributionSource:     map[string]any{"utmCampaign": "Primeiro"},
		LastAttributionSource: map[string]any{"h_ad_id": "AD9"},
	}, nil)
	client.EXPECT().GetContact(gomock.Any(), "c3").Return(nil, ghlclient.ErrNotFound)

	opps := []domain.Opportunity{
		{ID: "o1", ContactID: "c1", Attributions: []domain.Attribution{{AdID: "AD1"}}},
		{ID: "o2", ContactID: "c2"},
		{ID: "o3", ContactID: "c3"},
		{ID: "o4"},
	}

	enriched, err := New(testConfig(), client).EnrichFromContacts(context.Background(), opps)
	require.NoError(t, err)
	assert.Equal(t, 1, enriched)
	require.Len(t, opps[1].Attributions, 2)
	assert.True(t, opps[1].Attributions[1].IsLast)
	assert.Equal(t, "AD9", opps[1].Attributions[1].AdID)
	assert.Empty(t, opps[2].Attributions)
}

func TestFetchFormAttributionsKeepsLatestPerContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	next := 2
	gomock.InOrder(
		client.EXPECT().GetFormSubmissions(gomock.Any(), gomock.Any()).Return(&ghldomain.FormSubmissionsResponse{
			Submissions: []ghldomain.FormSubmission{
				submission("c1", "2025-11-02T10:00:00Z", map[string]any{"h_ad_id": "AD-NOVO"}),
				submission("c2", "2025-11-02T10:00:00Z", map[string]any{"utm_source": "fb"}),
			},
			Meta: ghldomain.FormSubmissionsMeta{CurrentPage: 1, NextPage: &next},
		}, nil),
		client.EXPECT().GetFormSubmissions(gomock.Any(), gomock.Any()).Return(&ghldomain.FormSubmissionsResponse{
			Submissions: []ghldomain.FormSubmission{
				submission("c1", "2025-11-01T10:00:00Z", map[string]any{"h_ad_id": "AD-VELHO"}),
			},
			Meta: ghldomain.FormSubmissionsMeta{CurrentPage: 2},
		}, nil),
	)

	out, err := New(testConfig(), client).FetchFormAttributions(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "AD-NOVO", out["c1"].AdID)
	assert.True(t, out["c1"].IsLast)
}

func submission(contactID, createdAt string, params map[string]any) ghldomain.FormSubmission {
	return ghldomain.FormSubmission{
		ContactID: contactID,
		CreatedAt: createdAt,
		Others:    map[string]any{"eventData": map[string]any{"url_params": params}},
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
