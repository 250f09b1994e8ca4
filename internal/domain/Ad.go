package domain

import "time"

// Ad é um anúncio do Facebook espelhado no banco de documentos
type Ad struct {
	ID            string         `json:"adId"`
	AccountID     string         `json:"accountId,omitempty"`
	CampaignID    string         `json:"campaignId,omitempty"`
	CampaignName  string         `json:"campaignName,omitempty"`
	AdName        string         `json:"adName,omitempty"`
	AdSetID       string         `json:"adSetId,omitempty"`
	AdSetName     string         `json:"adSetName,omitempty"`
	Status        string         `json:"status,omitempty"`
	FacebookStats *FacebookStats `json:"facebookStats,omitempty"`
	GHLStats      *GHLStats      `json:"ghlStats,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type FacebookStats struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Reach       int64   `json:"reach"`
	Leads       int64   `json:"leads"`
	DateStart   string  `json:"dateStart,omitempty"`
	DateStop    string  `json:"dateStop,omitempty"`
}

// GHLStats é o consolidado do CRM por anúncio; sempre reconstruído pela agregação
type GHLStats struct {
	Leads         int     `json:"leads"`
	Bookings      int     `json:"bookings"`
	Deposits      int     `json:"deposits"`
	CashCollected int     `json:"cashCollected"`
	CashAmount    float64 `json:"cashAmount"`
}

// AddBucket soma um bucket semanal ao consolidado
func (s *GHLStats) AddBucket(b *WeeklyBucket) {
	s.Leads += b.Leads
	s.Bookings += b.BookedAppointments
	s.Deposits += b.Deposits
	s.CashCollected += b.CashCollected
	s.CashAmount += b.CashAmount
}
