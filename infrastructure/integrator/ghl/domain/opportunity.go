package ghldomain

// Opportunity é o formato bruto retornado por /opportunities/search e /opportunities/{id}
type Opportunity struct {
	ID              string           `json:"id"`
	Name            string           `json:"name,omitempty"`
	MonetaryValue   float64          `json:"monetaryValue,omitempty"`
	PipelineID      string           `json:"pipelineId,omitempty"`
	PipelineStageID string           `json:"pipelineStageId,omitempty"`
	Status          string           `json:"status,omitempty"`
	Source          string           `json:"source,omitempty"`
	ContactID       string           `json:"contactId,omitempty"`
	LocationID      string           `json:"locationId,omitempty"`
	Attributions    []map[string]any `json:"attributions,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	UpdatedAt       string           `json:"updatedAt,omitempty"`
	Contact         *ContactSummary  `json:"contact,omitempty"`
}

type ContactSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// SearchMeta carrega os cursores de paginação
type SearchMeta struct {
	Total        int    `json:"total"`
	NextPageURL  string `json:"nextPageUrl,omitempty"`
	StartAfterID string `json:"startAfterId,omitempty"`
	StartAfter   int64  `json:"startAfter,omitempty"`
	CurrentPage  int    `json:"currentPage,omitempty"`
	NextPage     *int   `json:"nextPage,omitempty"`
}

type SearchOpportunitiesResponse struct {
	Opportunities []Opportunity `json:"opportunities"`
	Meta          SearchMeta    `json:"meta"`
}

type OpportunityResponse struct {
	Opportunity Opportunity `json:"opportunity"`
}
