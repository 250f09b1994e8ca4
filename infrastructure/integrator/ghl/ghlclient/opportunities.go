package ghlclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	ghldomain "github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl/domain"
)

type SearchParams struct {
	PipelineID   string
	Status       string
	Limit        int
	StartAfter   int64
	StartAfterID string
	Page         int
}

func (c *GHLClient) SearchOpportunities(ctx context.Context, params SearchParams) (*ghldomain.SearchOpportunitiesResponse, error) {
	query := url.Values{}
	query.Set("location_id", c.config.LocationID)

	limit := params.Limit
	if limit <= 0 {
		limit = c.config.PageLimit
	}
	query.Set("limit", strconv.Itoa(limit))

	if params.PipelineID != "" {
		query.Set("pipeline_id", params.PipelineID)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	if params.StartAfterID != "" {
		query.Set("startAfterId", params.StartAfterID)
		query.Set("startAfter", strconv.FormatInt(params.StartAfter, 10))
	} else if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}

	var response ghldomain.SearchOpportunitiesResponse
	if err := c.get(ctx, "/opportunities/search", query, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar oportunidades")
	}

	return &response, nil
}

func (c *GHLClient) GetOpportunity(ctx context.Context, opportunityID string) (*ghldomain.Opportunity, error) {
	var response ghldomain.OpportunityResponse
	if err := c.get(ctx, "/opportunities/"+url.PathEscape(opportunityID), url.Values{}, &response); err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar oportunidade %s", opportunityID)
	}

	return &response.Opportunity, nil
}

func (c *GHLClient) GetPipelines(ctx context.Context) ([]ghldomain.Pipeline, error) {
	query := url.Values{}
	query.Set("locationId", c.config.LocationID)

	var response ghldomain.PipelinesResponse
	if err := c.get(ctx, "/opportunities/pipelines", query, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pipelines")
	}

	return response.Pipelines, nil
}
