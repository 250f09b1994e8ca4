package domain

import "time"

// StageHistoryEntry registra que uma oportunidade foi vista em uma etapa
type StageHistoryEntry struct {
	ID                   string        `json:"id"`
	OpportunityID        string        `json:"opportunityId"`
	PipelineID           string        `json:"pipelineId,omitempty"`
	StageID              string        `json:"stageId"`
	StageName            string        `json:"stageName,omitempty"`
	Category             StageCategory `json:"category"`
	AdID                 string        `json:"adId,omitempty"`
	MonetaryValue        float64       `json:"monetaryValue"`
	OpportunityCreatedAt time.Time     `json:"opportunityCreatedAt"`
	FirstObservedAt      time.Time     `json:"firstObservedAt"`
	LastObservedAt       time.Time     `json:"lastObservedAt"`
}

// StageHistoryID é determinístico para que reexecuções sobrescrevam
func StageHistoryID(opportunityID, stageID string) string {
	if stageID == "" {
		stageID = "unknown"
	}
	return opportunityID + "_" + stageID
}
