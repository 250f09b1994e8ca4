package attributing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

func TestExtract(t *testing.T) {
	attributions := []domain.Attribution{
		{AdID: "AD-FIRST", CampaignID: "C-FIRST", AdName: "Primeiro", IsFirst: true},
		{AdID: "", CampaignID: "C-MID", AdSetName: "Conjunto"},
		{AdID: "AD-FLAGGED", AdName: "Marcado", IsLast: true},
		{AdID: "", AdName: "Depois da marca"},
	}

	tests := []struct {
		name         string
		strategy     ExtractionStrategy
		attributions []domain.Attribution
		want         domain.AttributionRef
	}{
		{
			name:     "lista vazia devolve tudo vazio",
			strategy: StrategyLastFlagged,
			want:     domain.AttributionRef{},
		},
		{
			name:         "usa a entrada marcada isLast",
			strategy:     StrategyLastFlagged,
			attributions: attributions,
			want:         domain.AttributionRef{AdID: "AD-FLAGGED", AdName: "Marcado"},
		},
		{
			name:     "sem marca usa o último elemento",
			strategy: StrategyLastFlagged,
			attributions: []domain.Attribution{
				{AdID: "AD1"},
				{CampaignID: "C2", AdSetName: "S2"},
			},
			want: domain.AttributionRef{CampaignID: "C2", AdSetName: "S2"},
		},
		{
			name:         "varredura reversa pega o primeiro não vazio por campo",
			strategy:     StrategyReverseScan,
			attributions: attributions,
			want: domain.AttributionRef{
				AdID:       "AD-FLAGGED",
				CampaignID: "C-MID",
				AdName:     "Depois da marca",
				AdSetName:  "Conjunto",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewExtractor(tt.strategy).Extract(tt.attributions)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFromRawEntries(t *testing.T) {
	raw := []map[string]any{
		{"utmAdId": "  ", "adId": "AD-OLD"},
		{"isLast": "true", "h_ad_id": " AD1 ", "utmCampaignId": "C1", "utmCampaign": "Vídeo A", "utmMedium": "Frio"},
	}

	got := NewExtractor(StrategyLastFlagged).Extract(domain.ParseAttributions(raw))
	assert.Equal(t, domain.AttributionRef{AdID: "AD1", CampaignID: "C1", AdName: "Vídeo A", AdSetName: "Frio"}, got)
}

func TestParseExtractionStrategy(t *testing.T) {
	s, err := ParseExtractionStrategy("")
	assert.NoError(t, err)
	assert.Equal(t, StrategyLastFlagged, s)

	s, err = ParseExtractionStrategy("reverse_scan")
	assert.NoError(t, err)
	assert.Equal(t, StrategyReverseScan, s)

	_, err = ParseExtractionStrategy("first")
	assert.Error(t, err)
}
