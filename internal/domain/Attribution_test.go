package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttribution(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want Attribution
	}{
		{
			name: "h_ad_id tem precedência",
			raw: map[string]any{
				"h_ad_id": " 120210001 ",
				"utmAdId": "999",
				"adId":    "888",
				"isLast":  true,
			},
			want: Attribution{AdID: "120210001", IsLast: true},
		},
		{
			name: "utmAdId quando h_ad_id vazio",
			raw: map[string]any{
				"h_ad_id":       "   ",
				"utmAdId":       "777",
				"utmCampaignId": "C1",
				"utmCampaign":   "Promo Ad",
				"utmMedium":     "Adset 1",
				"utmSource":     "facebook",
				"fbclid":        "abc",
			},
			want: Attribution{
				AdID:       "777",
				CampaignID: "C1",
				AdName:     "Promo Ad",
				AdSetName:  "Adset 1",
				Source:     "facebook",
				FBClid:     "abc",
			},
		},
		{
			name: "aliases snake_case e números",
			raw: map[string]any{
				"utm_ad_id":       json.Number("120212345678901234"),
				"utm_campaign_id": float64(42),
				"isLast":          "true",
			},
			want: Attribution{AdID: "120212345678901234", CampaignID: "42", IsLast: true},
		},
		{
			name: "entrada nula",
			raw:  nil,
			want: Attribution{},
		},
		{
			name: "tipos inesperados ignorados",
			raw:  map[string]any{"h_ad_id": []any{"x"}, "isLast": "talvez"},
			want: Attribution{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAttribution(tt.raw))
		})
	}
}

func TestAttributionRefIsEmpty(t *testing.T) {
	assert.True(t, AttributionRef{}.IsEmpty())
	assert.False(t, AttributionRef{AdSetName: "x"}.IsEmpty())
}
