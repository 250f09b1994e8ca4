package attributing

import (
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

// Matcher resolve a tupla de identificadores contra o catálogo
type Matcher struct {
	catalog          *Catalog
	keepUnknownAdIDs bool
}

func NewMatcher(catalog *Catalog, keepUnknownAdIDs bool) *Matcher {
	return &Matcher{
		catalog:          catalog,
		keepUnknownAdIDs: keepUnknownAdIDs,
	}
}

// Match aplica os 4 níveis e devolve todos os candidatos do primeiro nível que casar
func (m *Matcher) Match(ref domain.AttributionRef) domain.MatchResult {
	if ref.AdID != "" {
		if _, ok := m.catalog.Ad(ref.AdID); ok {
			return domain.MatchResult{AdIDs: []string{ref.AdID}, Method: domain.MatchByAdID}
		}
	}

	if ref.CampaignID != "" {
		if ids := m.catalog.ByCampaign(ref.CampaignID); len(ids) > 0 {
			return domain.MatchResult{AdIDs: ids, Method: domain.MatchByCampaignID}
		}
	}

	if ids := m.catalog.ByAdName(ref.AdName); len(ids) > 0 {
		return domain.MatchResult{AdIDs: ids, Method: domain.MatchByAdName}
	}

	if ids := m.catalog.ByAdSetName(ref.AdSetName); len(ids) > 0 {
		return domain.MatchResult{AdIDs: ids, Method: domain.MatchByAdSetName}
	}

	return domain.MatchResult{AdIDs: []string{}, Method: domain.Unmatched}
}

// AssignOne escolhe exatamente um anúncio. campaignHint é uma campanha já conhecida
// da oportunidade (por exemplo, do mapeamento anterior) usada para desempatar nomes.
func (m *Matcher) AssignOne(ref domain.AttributionRef, campaignHint string) domain.Assignment {
	result := m.Match(ref)

	switch result.Method {
	case domain.MatchByAdID:
		return m.assignment(result.AdIDs[0], domain.MatchByAdID, result.AdIDs)

	case domain.MatchByCampaignID:
		if ref.AdName != "" {
			want := normalizeName(ref.AdName)
			for _, id := range result.AdIDs {
				if ad, _ := m.catalog.Ad(id); normalizeName(ad.AdName) == want {
					return m.assignment(id, domain.MatchByCampaignIDAndAdName, result.AdIDs)
				}
			}
		}
		return m.assignment(result.AdIDs[0], domain.MatchByCampaignIDOnly, result.AdIDs)

	case domain.MatchByAdName:
		if id, ok := m.preferCampaign(result.AdIDs, campaignHint, ref.CampaignID); ok {
			return m.assignment(id, domain.MatchByCampaignIDAndAdName, result.AdIDs)
		}
		return m.assignment(result.AdIDs[0], domain.MatchByAdName, result.AdIDs)

	case domain.MatchByAdSetName:
		if id, ok := m.preferCampaign(result.AdIDs, campaignHint, ref.CampaignID); ok {
			return m.assignment(id, domain.MatchByAdSetName, result.AdIDs)
		}
		return m.assignment(result.AdIDs[0], domain.MatchByAdSetName, result.AdIDs)
	}

	if ref.AdID != "" && m.keepUnknownAdIDs {
		return domain.Assignment{
			AdID:       ref.AdID,
			CampaignID: ref.CampaignID,
			Method:     domain.MatchByOriginalHAdID,
			Candidates: []string{ref.AdID},
		}
	}

	return domain.Assignment{Method: domain.Unmatched}
}

// preferCampaign devolve o primeiro candidato cuja campanha é uma das dicas
func (m *Matcher) preferCampaign(ids []string, hints ...string) (string, bool) {
	for _, hint := range hints {
		if hint == "" {
			continue
		}
		for _, id := range ids {
			if ad, _ := m.catalog.Ad(id); ad.CampaignID == hint {
				return id, true
			}
		}
	}
	return "", false
}

func (m *Matcher) assignment(adID string, method domain.MatchMethod, candidates []string) domain.Assignment {
	ad, _ := m.catalog.Ad(adID)
	return domain.Assignment{
		AdID:       adID,
		CampaignID: ad.CampaignID,
		Method:     method,
		Candidates: candidates,
	}
}
