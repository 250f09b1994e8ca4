package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(client *mocks.MockClient) *MetaService {
	svc := New(&config.Config{Meta: config.Meta{AdAccountID: "act_99"}}, client).(*MetaService)
	svc.now = func() time.Time { return time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestListCampaignAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetAdsByCampaign(gomock.Any(), "C1").Return([]metadomain.Ad{
		{ID: "A2", Name: " Vídeo B ", AdSet: &metadomain.Reference{ID: "S1", Name: "Público Frio"}},
		{ID: "A1", Name: "Vídeo A", CampaignID: "C1", Campaign: &metadomain.Reference{ID: "C1", Name: "Black Friday"}},
	}, nil)

	ads, err := newTestService(client).ListCampaignAds(context.Background(), metadomain.Campaign{ID: "C1", Name: "Black Friday"})
	require.NoError(t, err)
	require.Len(t, ads, 2)

	assert.Equal(t, "A1", ads[0].ID)
	assert.Equal(t, "Black Friday", ads[0].CampaignName)
	assert.Equal(t, "99", ads[0].AccountID)

	assert.Equal(t, "A2", ads[1].ID)
	assert.Equal(t, "Vídeo B", ads[1].AdName)
	assert.Equal(t, "C1", ads[1].CampaignID)
	assert.Equal(t, "S1", ads[1].AdSetID)
	assert.Equal(t, "Público Frio", ads[1].AdSetName)
}

func TestGetAccountAdStats(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, stats map[string]*domain.FacebookStats, err error)
	}{
		{
			name: "converte números textuais e soma linhas repetidas",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetAccountAdInsights(gomock.Any(), "act_99", gomock.Any()).Return([]metadomain.AdInsight{
					{AdID: "A1", Spend: "10.25", Impressions: "100", Clicks: "3", Reach: "90",
						Actions: []metadomain.Action{{ActionType: "lead", Value: "2"}, {ActionType: "link_click", Value: "3"}}},
					{AdID: "A1", Spend: "5.5", Impressions: "50", Clicks: "1", Reach: "40"},
					{AdID: "A2", Spend: "abc", Impressions: "7"},
					{Spend: "1"},
				}, nil)
			},
			validate: func(t *testing.T, stats map[string]*domain.FacebookStats, err error) {
				require.NoError(t, err)
				require.Len(t, stats, 2)
				assert.Equal(t, 15.75, stats["A1"].Spend)
				assert.Equal(t, int64(150), stats["A1"].Impressions)
				assert.Equal(t, int64(2), stats["A1"].Leads)
				assert.Equal(t, 0.0, stats["A2"].Spend)
				assert.Equal(t, int64(7), stats["A2"].Impressions)
			},
		},
		{
			name: "erro da API",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetAccountAdInsights(gomock.Any(), "act_99", gomock.Any()).Return(nil, errors.New("500"))
			},
			validate: func(t *testing.T, stats map[string]*domain.FacebookStats, err error) {
				assert.Error(t, err)
				assert.Nil(t, stats)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			stats, err := newTestService(client).GetAccountAdStats(context.Background(), nil)
			tt.validate(t, stats, err)
		})
	}
}

func TestGetAdStatsWithoutDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetAdInsights(gomock.Any(), "A1", gomock.Any()).Return(nil, nil)

	stats, err := newTestService(client).GetAdStats(context.Background(), "A1", nil)
	require.NoError(t, err)
	assert.Nil(t, stats)
}
