package ghlclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	ghldomain "github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/pkg/utils"
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

var (
	ErrUnauthorized = errors.New("GHL recusou as credenciais")
	ErrNotFound     = errors.New("recurso não encontrado no GHL")
)

// StatusError descreve uma resposta não esperada da API
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status %d: %s", e.StatusCode, e.Body)
}

type Client interface {
	SearchOpportunities(ctx context.Context, params SearchParams) (*ghldomain.SearchOpportunitiesResponse, error)
	GetOpportunity(ctx context.Context, opportunityID string) (*ghldomain.Opportunity, error)
	GetContact(ctx context.Context, contactID string) (*ghldomain.Contact, error)
	GetPipelines(ctx context.Context) ([]ghldomain.Pipeline, error)
	GetFormSubmissions(ctx context.Context, params FormSubmissionParams) (*ghldomain.FormSubmissionsResponse, error)
}

type GHLClient struct {
	httpClient *http.Client
	config     *config.GHL
	backoff    utils.Backoff
}

// NewClient cria o cliente da API do GoHighLevel
func NewClient(cfg *config.Config) Client {
	return &GHLClient{
		httpClient: &http.Client{
			Timeout: cfg.GHL.Timeout,
		},
		config:  &cfg.GHL,
		backoff: utils.NewBackoff(cfg.GHL.RetryWait, cfg.GHL.RetryCount),
	}
}

// get executa um GET com retentativas para timeouts, 429 e 5xx
func (c *GHLClient) get(ctx context.Context, resource string, query url.Values, out any) error {
	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	endpoint.RawQuery = query.Encode()

	return c.backoff.Do(ctx, func(attempt int) error {
		if attempt > 0 {
			logrus.WithFields(logrus.Fields{
				"resource": resource,
				"attempt":  attempt,
			}).Warn("Repetindo requisição ao GHL")
		}

		err := c.do(ctx, endpoint.String(), out)
		if err == nil {
			return nil
		}

		if ctx.Err() != nil {
			return utils.Permanent(err)
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !utils.IsRetryableStatus(statusErr.StatusCode) {
			return utils.Permanent(err)
		}
		if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound) {
			return utils.Permanent(err)
		}

		return err
	})
}

func (c *GHLClient) do(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Version", c.config.Version)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}
