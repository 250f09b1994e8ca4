package domain

import "time"

// Opportunity é um lead/negócio do CRM já normalizado
type Opportunity struct {
	ID              string        `json:"id"`
	Name            string        `json:"name,omitempty"`
	ContactID       string        `json:"contactId,omitempty"`
	PipelineID      string        `json:"pipelineId,omitempty"`
	PipelineStageID string        `json:"pipelineStageId,omitempty"`
	StageName       string        `json:"stageName,omitempty"`
	Status          string        `json:"status,omitempty"`
	Source          string        `json:"source,omitempty"`
	MonetaryValue   float64       `json:"monetaryValue"`
	Attributions    []Attribution `json:"attributions,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// OpportunityFilter restringe as oportunidades buscadas no CRM
type OpportunityFilter struct {
	PipelineID string
	Status     string
	Since      *time.Time
	Until      *time.Time
}

// Includes verifica se a oportunidade está dentro do filtro (datas sobre createdAt)
func (f OpportunityFilter) Includes(o Opportunity) bool {
	if f.PipelineID != "" && o.PipelineID != f.PipelineID {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Since != nil && o.CreatedAt.Before(*f.Since) {
		return false
	}
	if f.Until != nil && !o.CreatedAt.Before(*f.Until) {
		return false
	}
	return true
}
