package attributing

import (
	"slices"
	"strings"

	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

// Catalog indexa os anúncios conhecidos por id, campanha, nome e conjunto.
// As listas seguem a ordem crescente de id do anúncio (numérica quando os ids são só dígitos).
type Catalog struct {
	byID        map[string]*domain.Ad
	byCampaign  map[string][]string
	byAdName    map[string][]string
	byAdSetName map[string][]string
}

func NewCatalog(ads []*domain.Ad) *Catalog {
	c := &Catalog{
		byID:        make(map[string]*domain.Ad, len(ads)),
		byCampaign:  make(map[string][]string),
		byAdName:    make(map[string][]string),
		byAdSetName: make(map[string][]string),
	}

	sorted := slices.Clone(ads)
	slices.SortStableFunc(sorted, func(a, b *domain.Ad) int {
		if a == nil || b == nil {
			return 0
		}
		return compareAdIDs(a.ID, b.ID)
	})

	for _, ad := range sorted {
		c.Add(ad)
	}
	return c
}

// Add indexa um anúncio; ids repetidos são ignorados
func (c *Catalog) Add(ad *domain.Ad) {
	if ad == nil || ad.ID == "" {
		return
	}
	if _, exists := c.byID[ad.ID]; exists {
		return
	}

	c.byID[ad.ID] = ad

	if ad.CampaignID != "" {
		c.byCampaign[ad.CampaignID] = insertSorted(c.byCampaign[ad.CampaignID], ad.ID)
	}
	if key := normalizeName(ad.AdName); key != "" {
		c.byAdName[key] = insertSorted(c.byAdName[key], ad.ID)
	}
	if key := normalizeName(ad.AdSetName); key != "" {
		c.byAdSetName[key] = insertSorted(c.byAdSetName[key], ad.ID)
	}
}

func (c *Catalog) Ad(adID string) (*domain.Ad, bool) {
	ad, ok := c.byID[adID]
	return ad, ok
}

func (c *Catalog) ByCampaign(campaignID string) []string {
	return slices.Clone(c.byCampaign[campaignID])
}

func (c *Catalog) ByAdName(name string) []string {
	return slices.Clone(c.byAdName[normalizeName(name)])
}

func (c *Catalog) ByAdSetName(name string) []string {
	return slices.Clone(c.byAdSetName[normalizeName(name)])
}

func (c *Catalog) Len() int {
	return len(c.byID)
}

// IDs devolve todos os ids em ordem crescente
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareAdIDs)
	return ids
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// compareAdIDs ordena ids numéricos pelo valor ("9" antes de "10") e antes dos demais
func compareAdIDs(a, b string) int {
	da, db := isDigits(a), isDigits(b)
	if da != db {
		if da {
			return -1
		}
		return 1
	}
	if da {
		ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
		if len(ta) != len(tb) {
			return len(ta) - len(tb)
		}
		if c := strings.Compare(ta, tb); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func insertSorted(ids []string, id string) []string {
	i, found := slices.BinarySearchFunc(ids, id, compareAdIDs)
	if found {
		return ids
	}
	return slices.Insert(ids, i, id)
}
