package metaclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/pkg/utils"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

var ErrNotFound = errors.New("objeto não encontrado na Graph API")

const (
	adFields      = "id,name,status,account_id,campaign_id,adset_id,campaign{id,name},adset{id,name},created_time"
	insightFields = "account_id,ad_id,ad_name,adset_id,adset_name,campaign_id,campaign_name,spend,impressions,clicks,reach,actions,date_start,date_stop"
	pageLimit     = "100"
)

// APIError é uma resposta de erro da Graph API que não envolve token
type APIError struct {
	StatusCode int
	Details    *metadomain.ErrorResponse
	Body       string
}

func (e *APIError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("erro na resposta da API. Status: %d, %s", e.StatusCode, e.Details.Error.String())
	}
	return fmt.Sprintf("erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

// Retryable indica limite de chamadas ou falha do servidor
func (e *APIError) Retryable() bool {
	if e.Details != nil && e.Details.IsRateLimited() {
		return true
	}
	return utils.IsRetryableStatus(e.StatusCode)
}

// notFound cobre o código 100/33: objeto inexistente ou sem permissão
func (e *APIError) notFound() bool {
	return e.StatusCode == http.StatusNotFound ||
		(e.Details != nil && e.Details.Error.Code == 100 && e.Details.Error.ErrorSubcode == 33)
}

type Client interface {
	GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	GetAdsByCampaign(ctx context.Context, campaignID string) ([]metadomain.Ad, error)
	GetAd(ctx context.Context, adID string) (*metadomain.Ad, error)
	GetAdInsights(ctx context.Context, adID string, filters *domain.InsightFilters) (*metadomain.AdInsight, error)
	GetAccountAdInsights(ctx context.Context, accountID string, filters *domain.InsightFilters) ([]metadomain.AdInsight, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
	backoff      utils.Backoff
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: cfg.Meta.Timeout},
		backoff:      utils.NewBackoff(cfg.Meta.RetryWait, cfg.Meta.RetryCount).Exponential(),
	}
}

func (c *MetaClient) GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("limit", pageLimit)

	campaigns, err := getAllPages[metadomain.Campaign](ctx, c, accountID+"/campaigns", params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanhas de %s: %w", accountID, err)
	}
	return campaigns, nil
}

func (c *MetaClient) GetAdsByCampaign(ctx context.Context, campaignID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", adFields)
	params.Add("limit", pageLimit)

	ads, err := getAllPages[metadomain.Ad](ctx, c, campaignID+"/ads", params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anúncios da campanha %s: %w", campaignID, err)
	}
	return ads, nil
}

func (c *MetaClient) GetAd(ctx context.Context, adID string) (*metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", adFields)

	var ad metadomain.Ad
	if err := c.get(ctx, adID, params, &ad); err != nil {
		return nil, fmt.Errorf("erro ao buscar anúncio %s: %w", adID, err)
	}
	return &ad, nil
}

// GetAdInsights devolve nil sem erro quando o anúncio não teve entrega no período
func (c *MetaClient) GetAdInsights(ctx context.Context, adID string, filters *domain.InsightFilters) (*metadomain.AdInsight, error) {
	params := insightParams(filters)

	var page metadomain.Page[metadomain.AdInsight]
	if err := c.get(ctx, adID+"/insights", params, &page); err != nil {
		return nil, fmt.Errorf("erro ao buscar insights do anúncio %s: %w", adID, err)
	}

	if len(page.Data) == 0 {
		return nil, nil
	}
	return &page.Data[0], nil
}

func (c *MetaClient) GetAccountAdInsights(ctx context.Context, accountID string, filters *domain.InsightFilters) ([]metadomain.AdInsight, error) {
	params := insightParams(filters)
	params.Set("level", "ad")
	params.Set("limit", "500")

	insights, err := getAllPages[metadomain.AdInsight](ctx, c, accountID+"/insights", params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights da conta %s: %w", accountID, err)
	}
	return insights, nil
}

func insightParams(filters *domain.InsightFilters) url.Values {
	params := url.Values{}
	params.Add("fields", insightFields)

	if since, until, ok := filters.TimeRange(); ok {
		params.Add("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since, until))
	} else {
		params.Add("date_preset", "maximum")
	}
	return params
}

// getAllPages segue o cursor "after" enquanto a Graph API indicar próxima página
func getAllPages[T any](ctx context.Context, c *MetaClient, resource string, params url.Values) ([]T, error) {
	var all []T

	for {
		var page metadomain.Page[T]
		if err := c.get(ctx, resource, params, &page); err != nil {
			return nil, err
		}

		all = append(all, page.Data...)

		if page.Paging.Next == "" || page.Paging.Cursors.After == "" {
			return all, nil
		}
		params.Set("after", page.Paging.Cursors.After)

		if err := utils.Sleep(ctx, c.Cfg.Meta.RequestDelay); err != nil {
			return nil, err
		}
	}
}

// get faz a requisição com retentativas; um token renovado repete a chamada uma única vez
func (c *MetaClient) get(ctx context.Context, resource string, params url.Values, out any) error {
	return c.backoff.Do(ctx, func(attempt int) error {
		if attempt > 0 {
			logrus.WithFields(logrus.Fields{
				"resource": resource,
				"attempt":  attempt,
			}).Warn("Repetindo requisição à Graph API")
		}

		err := c.fetch(ctx, resource, params, out)
		if errors.Is(err, ErrTokenRefreshed) {
			err = c.fetch(ctx, resource, params, out)
		}
		if err == nil {
			return nil
		}

		if ctx.Err() != nil {
			return utils.Permanent(err)
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.notFound() {
				return utils.Permanent(fmt.Errorf("%w: %v", ErrNotFound, err))
			}
			if !apiErr.Retryable() {
				return utils.Permanent(err)
			}
		}
		if errors.Is(err, ErrReauthorizationRequired) || errors.Is(err, ErrMissingAccessToken) || errors.Is(err, ErrTokenRefreshed) {
			return utils.Permanent(err)
		}

		return err
	})
}

func (c *MetaClient) fetch(ctx context.Context, resource string, params url.Values, out any) error {
	if err := c.TokenManager.EnsureValidToken(ctx); err != nil {
		return fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("access_token", c.TokenManager.AccessToken())

	endpoint := fmt.Sprintf("%s/%s?%s", strings.TrimRight(c.Cfg.Meta.URL, "/"), strings.TrimLeft(resource, "/"), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := c.TokenManager.HandleResponse(ctx, resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return nil
}
