package attributing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

func testCatalog() *Catalog {
	return NewCatalog([]*domain.Ad{
		{ID: "B", CampaignID: "C1", AdName: "Vídeo B", AdSetName: "Frio"},
		{ID: "A", CampaignID: "C1", AdName: "Vídeo A", AdSetName: "Frio"},
		{ID: "AD1", CampaignID: "C9", AdName: "Depoimento", AdSetName: "Quente"},
		{ID: "D", CampaignID: "C2", AdName: "Vídeo A", AdSetName: "Lookalike"},
		{ID: "E", CampaignID: "C3", AdName: "Carrossel", AdSetName: "Lookalike"},
	})
}

func TestCatalogIndexes(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []string{"A", "B"}, c.ByCampaign("C1"))
	assert.Equal(t, []string{"A", "D"}, c.ByAdName("  VÍDEO a "))
	assert.Equal(t, []string{"D", "E"}, c.ByAdSetName("lookalike"))
	assert.Empty(t, c.ByAdName(""))
	assert.Equal(t, []string{"A", "AD1", "B", "D", "E"}, c.IDs())

	c.Add(&domain.Ad{ID: "A", CampaignID: "OUTRA"})
	assert.Equal(t, "C1", func() string { ad, _ := c.Ad("A"); return ad.CampaignID }())
}

func TestCatalogOrdersNumericIDsByValue(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{
			name: "ids de tamanhos diferentes",
			ids:  []string{"120210000000000010", "99000000000000", "120210000000000009"},
			want: []string{"99000000000000", "120210000000000009", "120210000000000010"},
		},
		{
			name: "zeros à esquerda não colapsam ids distintos",
			ids:  []string{"007", "7", "10"},
			want: []string{"007", "7", "10"},
		},
		{
			name: "ids não numéricos seguem a ordem de texto",
			ids:  []string{"b", "10", "a"},
			want: []string{"10", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ads := make([]*domain.Ad, 0, len(tt.ids))
			for _, id := range tt.ids {
				ads = append(ads, &domain.Ad{ID: id, CampaignID: "C1"})
			}

			c := NewCatalog(ads)
			assert.Equal(t, tt.want, c.IDs())
			assert.Equal(t, tt.want, c.ByCampaign("C1"))
		})
	}
}

func TestMatch(t *testing.T) {
	m := NewMatcher(testCatalog(), false)

	tests := []struct {
		name string
		ref  domain.AttributionRef
		want domain.MatchResult
	}{
		{
			name: "ad id do catálogo vence os demais campos",
			ref:  domain.AttributionRef{AdID: "AD1", CampaignID: "C1", AdName: "Vídeo A", AdSetName: "Lookalike"},
			want: domain.MatchResult{AdIDs: []string{"AD1"}, Method: domain.MatchByAdID},
		},
		{
			name: "campanha devolve todos os anúncios dela",
			ref:  domain.AttributionRef{AdID: "DESCONHECIDO", CampaignID: "C1"},
			want: domain.MatchResult{AdIDs: []string{"A", "B"}, Method: domain.MatchByCampaignID},
		},
		{
			name: "nome do anúncio sem diferenciar caixa",
			ref:  domain.AttributionRef{AdName: "vídeo a"},
			want: domain.MatchResult{AdIDs: []string{"A", "D"}, Method: domain.MatchByAdName},
		},
		{
			name: "nome do conjunto",
			ref:  domain.AttributionRef{AdName: "sem correspondência", AdSetName: "Quente"},
			want: domain.MatchResult{AdIDs: []string{"AD1"}, Method: domain.MatchByAdSetName},
		},
		{
			name: "nada casa",
			ref:  domain.AttributionRef{AdID: "X", CampaignID: "Y"},
			want: domain.MatchResult{AdIDs: []string{}, Method: domain.Unmatched},
		},
		{
			name: "atribuição vazia",
			ref:  domain.AttributionRef{},
			want: domain.MatchResult{AdIDs: []string{}, Method: domain.Unmatched},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.ref)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, m.Match(tt.ref), "Match deve ser determinístico")
		})
	}
}

func TestAssignOne(t *testing.T) {
	tests := []struct {
		name        string
		keepUnknown bool
		ref         domain.AttributionRef
		hint        string
		wantAdID    string
		wantMethod  domain.MatchMethod
	}{
		{
			name:       "ad id",
			ref:        domain.AttributionRef{AdID: "AD1"},
			wantAdID:   "AD1",
			wantMethod: domain.MatchByAdID,
		},
		{
			name:       "campanha com dois anúncios escolhe o primeiro",
			ref:        domain.AttributionRef{CampaignID: "C1"},
			wantAdID:   "A",
			wantMethod: domain.MatchByCampaignIDOnly,
		},
		{
			name:       "campanha e nome desempatam",
			ref:        domain.AttributionRef{CampaignID: "C1", AdName: "VÍDEO B"},
			wantAdID:   "B",
			wantMethod: domain.MatchByCampaignIDAndAdName,
		},
		{
			name:       "nome repetido sem dica fica com o primeiro",
			ref:        domain.AttributionRef{AdName: "Vídeo A"},
			wantAdID:   "A",
			wantMethod: domain.MatchByAdName,
		},
		{
			name:       "nome repetido com campanha conhecida",
			ref:        domain.AttributionRef{AdName: "Vídeo A"},
			hint:       "C2",
			wantAdID:   "D",
			wantMethod: domain.MatchByCampaignIDAndAdName,
		},
		{
			name:       "conjunto com campanha conhecida",
			ref:        domain.AttributionRef{AdSetName: "lookalike"},
			hint:       "C3",
			wantAdID:   "E",
			wantMethod: domain.MatchByAdSetName,
		},
		{
			name:       "ad id desconhecido descartado",
			ref:        domain.AttributionRef{AdID: "999"},
			wantMethod: domain.Unmatched,
		},
		{
			name:        "ad id desconhecido mantido",
			keepUnknown: true,
			ref:         domain.AttributionRef{AdID: "999"},
			wantAdID:    "999",
			wantMethod:  domain.MatchByOriginalHAdID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(testCatalog(), tt.keepUnknown)

			got := m.AssignOne(tt.ref, tt.hint)
			assert.Equal(t, tt.wantAdID, got.AdID)
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, got, m.AssignOne(tt.ref, tt.hint))

			if tt.wantMethod != domain.Unmatched {
				assert.Contains(t, got.Candidates, got.AdID)
			}
		})
	}
}

// Para qualquer ordem de carga do catálogo, o resultado é o mesmo
func TestAssignOneIndependentOfCatalogOrder(t *testing.T) {
	ads := []*domain.Ad{
		{ID: "Z", CampaignID: "C1", AdName: "Mesmo Nome"},
		{ID: "M", CampaignID: "C2", AdName: "Mesmo Nome"},
		{ID: "A", CampaignID: "C1", AdName: "Outro"},
	}
	reversed := []*domain.Ad{ads[2], ads[1], ads[0]}

	ref := domain.AttributionRef{AdName: "mesmo nome"}
	first := NewMatcher(NewCatalog(ads), false).AssignOne(ref, "")
	second := NewMatcher(NewCatalog(reversed), false).AssignOne(ref, "")

	require.Equal(t, first, second)
	assert.Equal(t, "M", first.AdID)
}
