package ghl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	ghldomain "github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl/domain"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl/ghlclient"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/pkg/utils"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type GHLIntegrator interface {
	FetchOpportunities(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, error)
	FetchOpportunityDetails(ctx context.Context, ids []string) ([]domain.Opportunity, error)
	EnrichFromContacts(ctx context.Context, opportunities []domain.Opportunity) (int, error)
	FetchFormAttributions(ctx context.Context, since, until time.Time) (map[string]domain.Attribution, error)
}

type GHLService struct {
	cfg    *config.Config
	Client ghlclient.Client
}

func New(cfg *config.Config, client ghlclient.Client) GHLIntegrator {
	return &GHLService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchOpportunities percorre todas as páginas da busca. Uma página que falha
// depois das retentativas aborta a busca inteira.
func (s *GHLService) FetchOpportunities(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, error) {
	stageNames, err := s.stageNames(ctx)
	if err != nil {
		return nil, err
	}

	params := ghlclient.SearchParams{
		PipelineID: filter.PipelineID,
		Status:     filter.Status,
		Limit:      s.cfg.GHL.PageLimit,
	}

	seen := make(map[string]struct{})
	var opportunities []domain.Opportunity

	for page := 1; ; page++ {
		resp, err := s.Client.SearchOpportunities(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("erro na página %d de oportunidades: %w", page, err)
		}

		for _, raw := range resp.Opportunities {
			if _, dup := seen[raw.ID]; dup || raw.ID == "" {
				continue
			}
			seen[raw.ID] = struct{}{}

			opp := toDomainOpportunity(raw, stageNames)
			if filter.Includes(opp) {
				opportunities = append(opportunities, opp)
			}
		}

		logrus.WithFields(logrus.Fields{
			"page":     page,
			"received": len(resp.Opportunities),
			"total":    resp.Meta.Total,
			"kept":     len(opportunities),
		}).Debug("Página de oportunidades recebida")

		next, ok := nextPage(params, resp, page, len(seen))
		if !ok {
			break
		}
		params = next

		if err := utils.Sleep(ctx, s.cfg.GHL.RequestDelay); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"fetched": len(seen),
		"kept":    len(opportunities),
	}).Info("Oportunidades carregadas do GHL")

	return opportunities, nil
}

// nextPage prefere o cursor startAfterId e cai para a paginação numérica
func nextPage(current ghlclient.SearchParams, resp *ghldomain.SearchOpportunitiesResponse, page, seen int) (ghlclient.SearchParams, bool) {
	if len(resp.Opportunities) == 0 {
		return current, false
	}
	if resp.Meta.Total > 0 && seen >= resp.Meta.Total {
		return current, false
	}

	next := current
	switch {
	case resp.Meta.StartAfterID != "":
		if resp.Meta.StartAfterID == current.StartAfterID && resp.Meta.StartAfter == current.StartAfter {
			return current, false
		}
		next.StartAfterID = resp.Meta.StartAfterID
		next.StartAfter = resp.Meta.StartAfter
	case resp.Meta.NextPage != nil && *resp.Meta.NextPage > page:
		next.Page = *resp.Meta.NextPage
	default:
		return current, false
	}

	return next, true
}

// FetchOpportunityDetails busca cada oportunidade individualmente com um pool
// limitado. Falhas por registro são registradas e ignoradas; credencial recusada aborta.
func (s *GHLService) FetchOpportunityDetails(ctx context.Context, ids []string) ([]domain.Opportunity, error) {
	stageNames, err := s.stageNames(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.Opportunity, len(ids))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			raw, err := s.Client.GetOpportunity(gctx, id)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if errors.Is(err, ghlclient.ErrUnauthorized) {
					return fmt.Errorf("erro ao buscar detalhes da oportunidade %s: %w", id, err)
				}
				failed.Add(1)
				logrus.WithError(err).WithField("opportunityId", id).Warn("Falha ao buscar detalhes da oportunidade")
				return nil
			}

			opp := toDomainOpportunity(*raw, stageNames)
			results[i] = &opp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	opportunities := make([]domain.Opportunity, 0, len(ids))
	for _, opp := range results {
		if opp != nil {
			opportunities = append(opportunities, *opp)
		}
	}

	logrus.WithFields(logrus.Fields{
		"requested": len(ids),
		"fetched":   len(opportunities),
		"failed":    failed.Load(),
	}).Info("Detalhes de oportunidades carregados")

	return opportunities, nil
}

// EnrichFromContacts preenche as atribuições de oportunidades sem atribuição
// a partir da origem registrada no contato. Retorna quantas foram preenchidas.
func (s *GHLService) EnrichFromContacts(ctx context.Context, opportunities []domain.Opportunity) (int, error) {
	var enriched atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())

	for i := range opportunities {
		opp := &opportunities[i]
		if len(opp.Attributions) > 0 || opp.ContactID == "" {
			continue
		}

		g.Go(func() error {
			contact, err := s.Client.GetContact(gctx, opp.ContactID)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if errors.Is(err, ghlclient.ErrUnauthorized) {
					return fmt.Errorf("erro ao buscar o contato %s: %w", opp.ContactID, err)
				}
				logrus.WithError(err).WithFields(logrus.Fields{
					"opportunityId": opp.ID,
					"contactId":     opp.ContactID,
				}).Warn("Contato não encontrado, seguindo sem atribuição")
				return nil
			}

			attributions := domain.ParseAttributions(contact.Attributions())
			if len(attributions) == 0 {
				return nil
			}

			opp.Attributions = attributions
			enriched.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(enriched.Load()), err
	}

	return int(enriched.Load()), nil
}

// FetchFormAttributions devolve, por contato, a atribuição do envio de
// formulário mais recente no período
func (s *GHLService) FetchFormAttributions(ctx context.Context, since, until time.Time) (map[string]domain.Attribution, error) {
	type latest struct {
		at          time.Time
		attribution domain.Attribution
	}
	byContact := make(map[string]latest)

	params := ghlclient.FormSubmissionParams{
		StartAt: since,
		EndAt:   until,
		Page:    1,
		Limit:   s.cfg.GHL.PageLimit,
	}

	for {
		resp, err := s.Client.GetFormSubmissions(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("erro na página %d de formulários: %w", params.Page, err)
		}

		for _, submission := range resp.Submissions {
			urlParams := submission.URLParams()
			if submission.ContactID == "" || urlParams == nil {
				continue
			}

			attribution := domain.ParseAttribution(urlParams)
			attribution.IsLast = true
			if attribution.Ref().IsEmpty() {
				continue
			}

			createdAt := parseTime(submission.CreatedAt)
			if current, ok := byContact[submission.ContactID]; ok && current.at.After(createdAt) {
				continue
			}
			byContact[submission.ContactID] = latest{at: createdAt, attribution: attribution}
		}

		if len(resp.Submissions) == 0 || resp.Meta.NextPage == nil || *resp.Meta.NextPage <= params.Page {
			break
		}
		params.Page = *resp.Meta.NextPage

		if err := utils.Sleep(ctx, s.cfg.GHL.RequestDelay); err != nil {
			return nil, err
		}
	}

	out := make(map[string]domain.Attribution, len(byContact))
	for contactID, entry := range byContact {
		out[contactID] = entry.attribution
	}

	logrus.WithField("contacts", len(out)).Info("Atribuições de formulários carregadas")

	return out, nil
}

func (s *GHLService) stageNames(ctx context.Context) (map[string]string, error) {
	pipelines, err := s.Client.GetPipelines(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar etapas dos pipelines: %w", err)
	}
	return ghldomain.StageNames(pipelines), nil
}

func (s *GHLService) workers() int {
	if s.cfg.GHL.DetailWorkers <= 0 {
		return 1
	}
	return s.cfg.GHL.DetailWorkers
}

func toDomainOpportunity(raw ghldomain.Opportunity, stageNames map[string]string) domain.Opportunity {
	return domain.Opportunity{
		ID:              raw.ID,
		Name:            strings.TrimSpace(raw.Name),
		ContactID:       raw.ContactID,
		PipelineID:      raw.PipelineID,
		PipelineStageID: raw.PipelineStageID,
		StageName:       stageNames[raw.PipelineStageID],
		Status:          raw.Status,
		Source:          raw.Source,
		MonetaryValue:   raw.MonetaryValue,
		Attributions:    domain.ParseAttributions(raw.Attributions),
		CreatedAt:       parseTime(raw.CreatedAt),
		UpdatedAt:       parseTime(raw.UpdatedAt),
	}
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logrus.WithField("value", value).Warn("Data inválida retornada pelo GHL")
		return time.Time{}
	}
	return t.UTC()
}
