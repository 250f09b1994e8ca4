package domain

import (
	"fmt"
	"time"
)

// MatchMethod identifica a regra que resolveu a oportunidade para um anúncio
type MatchMethod string

const (
	MatchByAdID                MatchMethod = "ad_id"
	MatchByCampaignID          MatchMethod = "campaign_id"
	MatchByAdName              MatchMethod = "ad_name"
	MatchByAdSetName           MatchMethod = "adset_name"
	MatchByCampaignIDAndAdName MatchMethod = "campaign_id_and_ad_name"
	MatchByCampaignIDOnly      MatchMethod = "campaign_id_only"
	MatchByOriginalHAdID       MatchMethod = "original_h_ad_id"
	Unmatched                  MatchMethod = "unmatched"
)

// MatchResult é o resultado do casamento em 4 níveis: todos os candidatos
type MatchResult struct {
	AdIDs  []string    `json:"adIds"`
	Method MatchMethod `json:"method"`
}

func (r MatchResult) Matched() bool {
	return r.Method != Unmatched && len(r.AdIDs) > 0
}

// Assignment é a atribuição canônica de exatamente um anúncio
type Assignment struct {
	AdID       string      `json:"adId"`
	CampaignID string      `json:"campaignId,omitempty"`
	Method     MatchMethod `json:"method"`
	Candidates []string    `json:"candidates,omitempty"`
}

func (a Assignment) Assigned() bool {
	return a.AdID != "" && a.Method != Unmatched
}

// OpportunityMapping é persistido em ghlOpportunityMapping/{opportunityId}
type OpportunityMapping struct {
	OpportunityID        string         `json:"opportunityId"`
	AdID                 string         `json:"adId"`
	CampaignID           string         `json:"campaignId,omitempty"`
	AdName               string         `json:"adName,omitempty"`
	Method               MatchMethod    `json:"matchMethod"`
	CandidateAdIDs       []string       `json:"candidateAdIds,omitempty"`
	Attribution          AttributionRef `json:"attribution"`
	ContactID            string         `json:"contactId,omitempty"`
	PipelineID           string         `json:"pipelineId,omitempty"`
	StageName            string         `json:"stageName,omitempty"`
	MonetaryValue        float64        `json:"monetaryValue"`
	OpportunityCreatedAt time.Time      `json:"opportunityCreatedAt"`
	RunID                string         `json:"runId,omitempty"`
	MatchedAt            time.Time      `json:"matchedAt"`
}

// WritePolicy define como os buckets são persistidos
type WritePolicy string

const (
	WriteReplace   WritePolicy = "replace"
	WriteIncrement WritePolicy = "increment"
)

func ParseWritePolicy(s string) (WritePolicy, error) {
	switch WritePolicy(s) {
	case "", WriteReplace:
		return WriteReplace, nil
	case WriteIncrement:
		return WriteIncrement, nil
	default:
		return "", fmt.Errorf("política de escrita desconhecida: %q", s)
	}
}
