package attributing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Attributor interface {
	LoadCatalog(ctx context.Context) (*Catalog, error)
	Assign(ctx context.Context, catalog *Catalog, opportunities []domain.Opportunity, runID string) ([]*domain.OpportunityMapping, *AssignReport, error)
	FindDuplicates(ctx context.Context) (*DuplicatesReport, error)
	UnknownAdIDs(catalog *Catalog, opportunities []domain.Opportunity) []string
	LoadMappings(ctx context.Context) (map[string]*domain.OpportunityMapping, error)
}

// AssignReport resume uma execução de atribuição
type AssignReport struct {
	RunID       string                     `json:"runId"`
	Total       int                        `json:"total"`
	Matched     int                        `json:"matched"`
	Unmatched   int                        `json:"unmatched"`
	Ambiguous   int                        `json:"ambiguous"`
	ByMethod    map[domain.MatchMethod]int `json:"byMethod"`
	Unassigned  []UnassignedOpportunity    `json:"unassigned"`
	Changed     []ChangedAssignment        `json:"changed"`
	Write       docstore.WriteStats        `json:"write"`
	GeneratedAt time.Time                  `json:"generatedAt"`
}

type UnassignedOpportunity struct {
	OpportunityID string                `json:"opportunityId"`
	Name          string                `json:"name,omitempty"`
	Attribution   domain.AttributionRef `json:"attribution"`
}

type ChangedAssignment struct {
	OpportunityID  string             `json:"opportunityId"`
	PreviousAdID   string             `json:"previousAdId"`
	PreviousMethod domain.MatchMethod `json:"previousMethod"`
	AdID           string             `json:"adId"`
	Method         domain.MatchMethod `json:"method"`
}

// DuplicatesReport lista oportunidades cujos candidatos cruzam mais de uma campanha
type DuplicatesReport struct {
	Total      int                      `json:"total"`
	Duplicates []CrossCampaignDuplicate `json:"duplicates"`
}

type CrossCampaignDuplicate struct {
	OpportunityID string             `json:"opportunityId"`
	AssignedAdID  string             `json:"assignedAdId"`
	Method        domain.MatchMethod `json:"method"`
	CandidateAds  []string           `json:"candidateAds"`
	Campaigns     []string           `json:"campaigns"`
}

type Service struct {
	cfg         *config.Config
	extractor   Extractor
	adRepo      repository.AdRepository
	mappingRepo repository.OpportunityMappingRepository
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	adRepo repository.AdRepository,
	mappingRepo repository.OpportunityMappingRepository,
) (*Service, error) {
	strategy, err := ParseExtractionStrategy(cfg.Attribution.ExtractionStrategy)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:         cfg,
		extractor:   NewExtractor(strategy),
		adRepo:      adRepo,
		mappingRepo: mappingRepo,
		now:         time.Now,
	}, nil
}

// LoadCatalog carrega os anúncios de adPerformance e monta os índices
func (s *Service) LoadCatalog(ctx context.Context) (*Catalog, error) {
	ads, err := s.adRepo.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}

	if len(ads) == 0 {
		return nil, ErrEmptyCatalog
	}

	catalog := NewCatalog(ads)

	logrus.WithField("ads", catalog.Len()).Info("Catálogo de anúncios carregado")

	return catalog, nil
}

// Assign resolve cada oportunidade para exatamente um anúncio e grava o
// mapeamento em ghlOpportunityMapping/{opportunityId}
func (s *Service) Assign(
	ctx context.Context,
	catalog *Catalog,
	opportunities []domain.Opportunity,
	runID string,
) ([]*domain.OpportunityMapping, *AssignReport, error) {
	existing, err := s.mappingRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrLoadMappings, err)
	}

	matcher := NewMatcher(catalog, s.cfg.Attribution.KeepUnknownAdIDs)
	now := s.now().UTC()

	sorted := make([]domain.Opportunity, len(opportunities))
	copy(sorted, opportunities)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	report := &AssignReport{
		RunID:       runID,
		ByMethod:    make(map[domain.MatchMethod]int),
		Unassigned:  []UnassignedOpportunity{},
		Changed:     []ChangedAssignment{},
		GeneratedAt: now,
	}

	mappings := make([]*domain.OpportunityMapping, 0, len(sorted))
	for _, opp := range sorted {
		ref := s.extractor.Extract(opp.Attributions)

		var hint string
		previous := existing[opp.ID]
		if previous != nil {
			hint = previous.CampaignID
		}

		assignment := matcher.AssignOne(ref, hint)
		mapping := s.toMapping(opp, ref, assignment, catalog, runID, now)
		mappings = append(mappings, mapping)

		report.Total++
		report.ByMethod[assignment.Method]++
		metrics.OpportunitiesMatched.WithLabelValues(string(assignment.Method)).Inc()

		if !assignment.Assigned() {
			report.Unmatched++
			report.Unassigned = append(report.Unassigned, UnassignedOpportunity{
				OpportunityID: opp.ID,
				Name:          opp.Name,
				Attribution:   ref,
			})
			continue
		}

		report.Matched++
		if len(assignment.Candidates) > 1 {
			report.Ambiguous++
		}

		if previous != nil && previous.AdID != "" && previous.AdID != assignment.AdID {
			report.Changed = append(report.Changed, ChangedAssignment{
				OpportunityID:  opp.ID,
				PreviousAdID:   previous.AdID,
				PreviousMethod: previous.Method,
				AdID:           assignment.AdID,
				Method:         assignment.Method,
			})
		}
	}

	report.Write = s.mappingRepo.SaveAll(ctx, mappings)
	metrics.ObserveWrite("opportunity_mapping", report.Write.Committed, report.Write.Errors)

	logrus.WithFields(logrus.Fields{
		"runId":     runID,
		"total":     report.Total,
		"matched":   report.Matched,
		"unmatched": report.Unmatched,
		"ambiguous": report.Ambiguous,
		"changed":   len(report.Changed),
		"byMethod":  report.ByMethod,
		"written":   report.Write.Committed,
		"errors":    report.Write.Errors,
	}).Info("Atribuição de oportunidades concluída")

	return mappings, report, nil
}

func (s *Service) toMapping(
	opp domain.Opportunity,
	ref domain.AttributionRef,
	assignment domain.Assignment,
	catalog *Catalog,
	runID string,
	now time.Time,
) *domain.OpportunityMapping {
	mapping := &domain.OpportunityMapping{
		OpportunityID:        opp.ID,
		AdID:                 assignment.AdID,
		CampaignID:           assignment.CampaignID,
		Method:               assignment.Method,
		CandidateAdIDs:       assignment.Candidates,
		Attribution:          ref,
		ContactID:            opp.ContactID,
		PipelineID:           opp.PipelineID,
		StageName:            opp.StageName,
		MonetaryValue:        opp.MonetaryValue,
		OpportunityCreatedAt: opp.CreatedAt,
		RunID:                runID,
		MatchedAt:            now,
	}

	if ad, ok := catalog.Ad(assignment.AdID); ok {
		mapping.AdName = ad.AdName
	}

	return mapping
}

// UnknownAdIDs lista os ids de anúncio extraídos das oportunidades que não existem no catálogo
func (s *Service) UnknownAdIDs(catalog *Catalog, opportunities []domain.Opportunity) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, opp := range opportunities {
		ref := s.extractor.Extract(opp.Attributions)
		if ref.AdID == "" {
			continue
		}
		if _, ok := catalog.Ad(ref.AdID); ok {
			continue
		}
		if _, dup := seen[ref.AdID]; dup {
			continue
		}
		seen[ref.AdID] = struct{}{}
		ids = append(ids, ref.AdID)
	}
	sort.Strings(ids)
	return ids
}

func (s *Service) LoadMappings(ctx context.Context) (map[string]*domain.OpportunityMapping, error) {
	mappings, err := s.mappingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadMappings, err)
	}
	return mappings, nil
}

// FindDuplicates percorre os mapeamentos gravados e aponta as oportunidades cujos
// candidatos pertencem a campanhas diferentes
func (s *Service) FindDuplicates(ctx context.Context) (*DuplicatesReport, error) {
	mappings, err := s.mappingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadMappings, err)
	}

	ads, err := s.adRepo.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}
	catalog := NewCatalog(ads)

	ids := make([]string, 0, len(mappings))
	for id := range mappings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	report := &DuplicatesReport{Duplicates: []CrossCampaignDuplicate{}}
	for _, id := range ids {
		m := mappings[id]
		if len(m.CandidateAdIDs) < 2 {
			continue
		}

		campaigns := campaignsOf(catalog, m.CandidateAdIDs)
		if len(campaigns) < 2 {
			continue
		}

		report.Duplicates = append(report.Duplicates, CrossCampaignDuplicate{
			OpportunityID: id,
			AssignedAdID:  m.AdID,
			Method:        m.Method,
			CandidateAds:  m.CandidateAdIDs,
			Campaigns:     campaigns,
		})
	}
	report.Total = len(report.Duplicates)

	logrus.WithField("duplicates", report.Total).Info("Verificação de duplicidade entre campanhas concluída")

	return report, nil
}

func campaignsOf(catalog *Catalog, adIDs []string) []string {
	seen := make(map[string]struct{})
	var campaigns []string
	for _, id := range adIDs {
		ad, ok := catalog.Ad(id)
		if !ok || ad.CampaignID == "" {
			continue
		}
		if _, dup := seen[ad.CampaignID]; dup {
			continue
		}
		seen[ad.CampaignID] = struct{}{}
		campaigns = append(campaigns, ad.CampaignID)
	}
	sort.Strings(campaigns)
	return campaigns
}
