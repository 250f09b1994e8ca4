package ghlclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	ghldomain "github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl/domain"
)

type FormSubmissionParams struct {
	FormID  string
	StartAt time.Time
	EndAt   time.Time
	Page    int
	Limit   int
}

func (c *GHLClient) GetContact(ctx context.Context, contactID string) (*ghldomain.Contact, error) {
	var response ghldomain.ContactResponse
	if err := c.get(ctx, "/contacts/"+url.PathEscape(contactID), url.Values{}, &response); err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar contato %s", contactID)
	}

	return &response.Contact, nil
}

func (c *GHLClient) GetFormSubmissions(ctx context.Context, params FormSubmissionParams) (*ghldomain.FormSubmissionsResponse, error) {
	query := url.Values{}
	query.Set("locationId", c.config.LocationID)

	if params.FormID != "" {
		query.Set("formId", params.FormID)
	}
	if !params.StartAt.IsZero() {
		query.Set("startAt", params.StartAt.Format(time.DateOnly))
	}
	if !params.EndAt.IsZero() {
		query.Set("endAt", params.EndAt.Format(time.DateOnly))
	}

	page := params.Page
	if page <= 0 {
		page = 1
	}
	query.Set("page", strconv.Itoa(page))

	limit := params.Limit
	if limit <= 0 {
		limit = c.config.PageLimit
	}
	query.Set("limit", strconv.Itoa(limit))

	var response ghldomain.FormSubmissionsResponse
	if err := c.get(ctx, "/forms/submissions", query, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar envios de formulário")
	}

	return &response, nil
}
