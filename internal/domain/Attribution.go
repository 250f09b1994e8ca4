package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Attribution é um ponto de contato de marketing já normalizado
type Attribution struct {
	AdID       string `json:"adId,omitempty"`
	CampaignID string `json:"campaignId,omitempty"`
	AdName     string `json:"adName,omitempty"`
	AdSetName  string `json:"adSetName,omitempty"`
	Source     string `json:"source,omitempty"`
	FBClid     string `json:"fbclid,omitempty"`
	IsFirst    bool   `json:"isFirst,omitempty"`
	IsLast     bool   `json:"isLast,omitempty"`
}

// AttributionRef é a tupla de identificadores usada no casamento com anúncios
type AttributionRef struct {
	AdID       string `json:"adId,omitempty"`
	CampaignID string `json:"campaignId,omitempty"`
	AdName     string `json:"adName,omitempty"`
	AdSetName  string `json:"adSetName,omitempty"`
}

// Ref devolve apenas os identificadores usados no casamento
func (a Attribution) Ref() AttributionRef {
	return AttributionRef{
		AdID:       a.AdID,
		CampaignID: a.CampaignID,
		AdName:     a.AdName,
		AdSetName:  a.AdSetName,
	}
}

func (r AttributionRef) IsEmpty() bool {
	return r.AdID == "" && r.CampaignID == "" && r.AdName == "" && r.AdSetName == ""
}

// Aliases conhecidos por campo, na ordem de precedência
var (
	adIDAliases       = []string{"h_ad_id", "utmAdId", "adId", "utm_ad_id", "ad_id"}
	campaignIDAliases = []string{"utmCampaignId", "utm_campaign_id", "campaignId"}
	adNameAliases     = []string{"utmCampaign", "utm_campaign"}
	adSetNameAliases  = []string{"utmMedium", "utm_medium"}
	sourceAliases     = []string{"utmSource", "utm_source", "utmSessionSource"}
	fbclidAliases     = []string{"fbclid", "fbClid", "fbClickId"}
)

// ParseAttribution converte uma entrada bruta da API do CRM em Attribution.
// Todos os aliases de campo ficam concentrados aqui.
func ParseAttribution(raw map[string]any) Attribution {
	if raw == nil {
		return Attribution{}
	}

	return Attribution{
		AdID:       firstString(raw, adIDAliases),
		CampaignID: firstString(raw, campaignIDAliases),
		AdName:     firstString(raw, adNameAliases),
		AdSetName:  firstString(raw, adSetNameAliases),
		Source:     firstString(raw, sourceAliases),
		FBClid:     firstString(raw, fbclidAliases),
		IsFirst:    boolValue(raw["isFirst"]),
		IsLast:     boolValue(raw["isLast"]),
	}
}

// ParseAttributions converte uma lista bruta preservando a ordem
func ParseAttributions(raw []map[string]any) []Attribution {
	if len(raw) == 0 {
		return nil
	}

	out := make([]Attribution, 0, len(raw))
	for _, entry := range raw {
		out = append(out, ParseAttribution(entry))
	}
	return out
}

func firstString(raw map[string]any, aliases []string) string {
	for _, key := range aliases {
		if v := stringValue(raw[key]); v != "" {
			return v
		}
	}
	return ""
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return strings.TrimSpace(val.String())
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

func boolValue(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	case json.Number:
		n, err := val.Int64()
		return err == nil && n != 0
	case float64:
		return val != 0
	default:
		return false
	}
}
