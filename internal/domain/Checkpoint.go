package domain

import "time"

// SyncCheckpoint é o cursor persistido para retomar uma sincronização longa
type SyncCheckpoint struct {
	Name              string    `json:"name"`
	LastCampaignIndex int       `json:"lastCampaignIndex"`
	LastAdIndex       int       `json:"lastAdIndex"`
	TotalProcessed    int       `json:"totalProcessed"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NewSyncCheckpoint cria um cursor no início: nenhum anúncio concluído
func NewSyncCheckpoint(name string) *SyncCheckpoint {
	return &SyncCheckpoint{
		Name:              name,
		LastCampaignIndex: 0,
		LastAdIndex:       -1,
	}
}

// Done indica se o anúncio (campaignIdx, adIdx) já foi concluído
func (c *SyncCheckpoint) Done(campaignIdx, adIdx int) bool {
	if campaignIdx != c.LastCampaignIndex {
		return campaignIdx < c.LastCampaignIndex
	}
	return adIdx <= c.LastAdIndex
}

// Advance registra a conclusão do anúncio (campaignIdx, adIdx)
func (c *SyncCheckpoint) Advance(campaignIdx, adIdx int, now time.Time) {
	c.LastCampaignIndex = campaignIdx
	c.LastAdIndex = adIdx
	c.TotalProcessed++
	c.UpdatedAt = now
}
