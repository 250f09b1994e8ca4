package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/integrator/ghl"
	"github.com/vfg2006/ad-attribution-sync/internal/config"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/metrics"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/adsyncing"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/aggregating"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/attributing"
	"github.com/vfg2006/ad-attribution-sync/internal/usecases/stagetracking"
	"github.com/vfg2006/ad-attribution-sync/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Runner executa o pipeline CRM -> atribuição -> consolidação semanal
type Runner interface {
	Run(ctx context.Context, opts RunOptions) (*RunReport, error)
	Aggregate(ctx context.Context, opts RunOptions) (*RunReport, error)
}

// ReportWriter grava o relatório da execução
type ReportWriter interface {
	WriteJSON(name string, v any) (string, error)
}

type RunOptions struct {
	PipelineID string     `json:"pipelineId,omitempty"`
	Status     string     `json:"status,omitempty"`
	Since      *time.Time `json:"since,omitempty"`
	Until      *time.Time `json:"until,omitempty"`
	// FetchDetails busca o detalhe das oportunidades que vieram da busca sem atribuição
	FetchDetails bool `json:"fetchDetails"`
	// FormBackfill usa os envios de formulário para oportunidades sem atribuição
	FormBackfill bool `json:"formBackfill"`
	// SkipAggregate só atribui e grava os mapeamentos
	SkipAggregate    bool `json:"skipAggregate"`
	SkipStageHistory bool `json:"skipStageHistory"`
	WriteReport      bool `json:"writeReport"`
}

// Full indica execução sem filtros: cobre todas as oportunidades
func (o RunOptions) Full() bool {
	return !o.Filtered() && o.Since == nil && o.Until == nil
}

// Filtered indica filtro por pipeline ou status
func (o RunOptions) Filtered() bool {
	return o.PipelineID != "" || o.Status != ""
}

type RunReport struct {
	RunID          string                    `json:"runId"`
	Options        RunOptions                `json:"options"`
	WindowStart    *time.Time                `json:"windowStart,omitempty"`
	WindowEnd      *time.Time                `json:"windowEnd,omitempty"`
	StartedAt      time.Time                 `json:"startedAt"`
	FinishedAt     time.Time                 `json:"finishedAt"`
	Opportunities  int                       `json:"opportunities"`
	DetailFilled   int                       `json:"detailFilled"`
	FormBackfilled int                       `json:"formBackfilled"`
	Enriched       int                       `json:"enriched"`
	CatalogAds     int                       `json:"catalogAds"`
	ResolvedAds    *adsyncing.ResolveReport  `json:"resolvedAds,omitempty"`
	Assign         *attributing.AssignReport `json:"assign,omitempty"`
	Aggregate      *aggregating.Report       `json:"aggregate,omitempty"`
	StageHistory   *stagetracking.Report     `json:"stageHistory,omitempty"`
	ReportPath     string                    `json:"-"`
}

type Service struct {
	cfg        *config.Config
	ghl        ghl.GHLIntegrator
	attributor attributing.Attributor
	rebuilder  aggregating.Rebuilder
	adSyncer   adsyncing.AdSyncer
	tracker    stagetracking.Tracker
	reporter   ReportWriter
	loc        *time.Location
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	ghlService ghl.GHLIntegrator,
	attributor attributing.Attributor,
	rebuilder aggregating.Rebuilder,
	adSyncer adsyncing.AdSyncer,
	tracker stagetracking.Tracker,
	reporter ReportWriter,
) (*Service, error) {
	loc, err := cfg.Aggregation.Location()
	if err != nil {
		return nil, fmt.Errorf("fuso inválido para agregação: %w", err)
	}

	return &Service{
		cfg:        cfg,
		ghl:        ghlService,
		attributor: attributor,
		rebuilder:  rebuilder,
		adSyncer:   adSyncer,
		tracker:    tracker,
		reporter:   reporter,
		loc:        loc,
		now:        time.Now,
	}, nil
}

// Run busca as oportunidades, atribui, consolida e registra o histórico de etapas.
// Falha de paginação aborta antes de qualquer gravação.
func (s *Service) Run(ctx context.Context, opts RunOptions) (report *RunReport, err error) {
	report = s.newReport(opts)
	defer s.finish("attribution", report, &err)

	logrus.WithFields(logrus.Fields{
		"runId":      report.RunID,
		"full":       opts.Full(),
		"pipelineId": opts.PipelineID,
		"status":     opts.Status,
	}).Info("Iniciando sincronização de atribuição")

	if !opts.SkipAggregate {
		if err := s.checkScope(opts); err != nil {
			return report, err
		}
	}

	opportunities, err := s.fetch(ctx, report)
	if err != nil {
		return report, err
	}

	if opts.FetchDetails || s.cfg.GHL.FetchDetails {
		if err := s.fillFromDetails(ctx, opportunities, report); err != nil {
			return report, stageError(StageDetails, err)
		}
	}

	if opts.FormBackfill {
		if err := s.backfillFromForms(ctx, opportunities, report); err != nil {
			return report, stageError(StageFormBackfill, err)
		}
	}

	if s.cfg.GHL.EnrichFromContacts {
		enriched, err := s.ghl.EnrichFromContacts(ctx, opportunities)
		if err != nil {
			return report, stageError(StageEnrich, err)
		}
		report.Enriched = enriched
	}

	catalog, err := s.attributor.LoadCatalog(ctx)
	if err != nil {
		return report, stageError(StageCatalog, err)
	}

	if s.cfg.Attribution.ResolveUnknownAds {
		if err := s.resolveUnknownAds(ctx, catalog, opportunities, report); err != nil {
			return report, stageError(StageResolveAds, err)
		}
	}
	report.CatalogAds = catalog.Len()

	mappings, assignReport, err := s.attributor.Assign(ctx, catalog, opportunities, report.RunID)
	if err != nil {
		return report, stageError(StageAssign, err)
	}
	report.Assign = assignReport

	byOpportunity := make(map[string]*domain.OpportunityMapping, len(mappings))
	for _, m := range mappings {
		byOpportunity[m.OpportunityID] = m
	}

	if !opts.SkipAggregate {
		if err := s.aggregate(ctx, opportunities, byOpportunity, report); err != nil {
			return report, err
		}
	}

	if !opts.SkipStageHistory {
		stageReport, err := s.tracker.Record(ctx, opportunities, byOpportunity)
		if err != nil {
			return report, stageError(StageStageHistory, err)
		}
		report.StageHistory = stageReport
	}

	return report, s.complete(report)
}

// Aggregate reconstrói os buckets a partir dos mapeamentos já gravados, sem reatribuir
func (s *Service) Aggregate(ctx context.Context, opts RunOptions) (report *RunReport, err error) {
	report = s.newReport(opts)
	defer s.finish("aggregate", report, &err)

	if err := s.checkScope(opts); err != nil {
		return report, err
	}

	opportunities, err := s.fetch(ctx, report)
	if err != nil {
		return report, err
	}

	mappings, err := s.attributor.LoadMappings(ctx)
	if err != nil {
		return report, stageError(StageMappings, err)
	}

	if err := s.aggregate(ctx, opportunities, mappings, report); err != nil {
		return report, err
	}

	return report, s.complete(report)
}

func (s *Service) newReport(opts RunOptions) *RunReport {
	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar id curto da execução, usando uuid")
		runID = uuid.NewString()
	}

	return &RunReport{
		RunID:     runID,
		Options:   opts,
		StartedAt: s.now().UTC(),
	}
}

// checkScope recusa antes de qualquer leitura a consolidação em replace de um subconjunto filtrado
func (s *Service) checkScope(opts RunOptions) error {
	if !opts.Filtered() || s.cfg.Aggregation.WritePolicy != string(domain.WriteReplace) {
		return nil
	}
	return stageError(StageAggregate, aggregating.ErrFilteredReplace)
}

// fetch alinha a janela à semana inteira (segunda a domingo) para que as semanas parciais sejam recalculadas inteiras
func (s *Service) fetch(ctx context.Context, report *RunReport) ([]domain.Opportunity, error) {
	filter := domain.OpportunityFilter{
		PipelineID: report.Options.PipelineID,
		Status:     report.Options.Status,
	}

	if report.Options.Since != nil {
		start := s.weekStart(*report.Options.Since)
		filter.Since = &start
		report.WindowStart = &start
	}
	if report.Options.Until != nil {
		end := s.weekEnd(*report.Options.Until)
		filter.Until = &end
		report.WindowEnd = &end
	}

	opportunities, err := s.ghl.FetchOpportunities(ctx, filter)
	if err != nil {
		return nil, stageError(StageFetch, err)
	}
	report.Opportunities = len(opportunities)

	return opportunities, nil
}

func (s *Service) weekStart(t time.Time) time.Time {
	monday := domain.WeekOf(t, s.loc).Start()
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, s.loc)
}

// weekEnd devolve o último instante do domingo da semana de t
func (s *Service) weekEnd(t time.Time) time.Time {
	return s.weekStart(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// fillFromDetails completa as atribuições que a busca não trouxe com o detalhe de cada oportunidade
func (s *Service) fillFromDetails(ctx context.Context, opportunities []domain.Opportunity, report *RunReport) error {
	var ids []string
	for _, opp := range opportunities {
		if len(opp.Attributions) == 0 {
			ids = append(ids, opp.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	details, err := s.ghl.FetchOpportunityDetails(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[string]domain.Opportunity, len(details))
	for _, d := range details {
		byID[d.ID] = d
	}

	for i := range opportunities {
		opp := &opportunities[i]
		detail, ok := byID[opp.ID]
		if !ok || len(opp.Attributions) > 0 || len(detail.Attributions) == 0 {
			continue
		}
		opp.Attributions = detail.Attributions
		if opp.ContactID == "" {
			opp.ContactID = detail.ContactID
		}
		report.DetailFilled++
	}

	return nil
}

// backfillFromForms completa oportunidades sem atribuição com o último envio de formulário do contato
func (s *Service) backfillFromForms(ctx context.Context, opportunities []domain.Opportunity, report *RunReport) error {
	since, until := s.formWindow(opportunities, report)

	byContact, err := s.ghl.FetchFormAttributions(ctx, since, until)
	if err != nil {
		return err
	}

	for i := range opportunities {
		opp := &opportunities[i]
		if len(opp.Attributions) > 0 || opp.ContactID == "" {
			continue
		}

		attribution, ok := byContact[opp.ContactID]
		if !ok {
			continue
		}
		opp.Attributions = []domain.Attribution{attribution}
		report.FormBackfilled++
	}

	return nil
}

func (s *Service) formWindow(opportunities []domain.Opportunity, report *RunReport) (time.Time, time.Time) {
	until := s.now()
	if report.WindowEnd != nil {
		until = *report.WindowEnd
	}

	if report.WindowStart != nil {
		return *report.WindowStart, until
	}

	var since time.Time
	for _, opp := range opportunities {
		if opp.CreatedAt.IsZero() {
			continue
		}
		if since.IsZero() || opp.CreatedAt.Before(since) {
			since = opp.CreatedAt
		}
	}
	return since, until
}

func (s *Service) resolveUnknownAds(
	ctx context.Context,
	catalog *attributing.Catalog,
	opportunities []domain.Opportunity,
	report *RunReport,
) error {
	ids := s.attributor.UnknownAdIDs(catalog, opportunities)
	if len(ids) == 0 {
		return nil
	}

	resolved, err := s.adSyncer.SyncAdsByID(ctx, ids)
	if err != nil {
		return err
	}

	for _, ad := range resolved.Ads {
		catalog.Add(ad)
	}
	report.ResolvedAds = resolved

	return nil
}

func (s *Service) aggregate(
	ctx context.Context,
	opportunities []domain.Opportunity,
	mappings map[string]*domain.OpportunityMapping,
	report *RunReport,
) error {
	full := report.Options.Full()

	aggReport, err := s.rebuilder.Rebuild(ctx, opportunities, mappings, aggregating.Options{
		Full:         full,
		ResetMissing: full,
		Filtered:     report.Options.Filtered(),
		Since:        report.WindowStart,
		Until:        report.WindowEnd,
	})
	report.Aggregate = aggReport
	if err != nil {
		return stageError(StageAggregate, err)
	}
	return nil
}

// complete grava o relatório e sinaliza gravações parciais
func (s *Service) complete(report *RunReport) error {
	report.FinishedAt = s.now().UTC()

	if report.Options.WriteReport && s.reporter != nil {
		path, err := s.reporter.WriteJSON("attribution_run", report)
		if err != nil {
			return stageError(StageReport, err)
		}
		report.ReportPath = path
	}

	if failed := writeErrors(report); failed > 0 {
		return &SyncError{
			Err:     ErrPartialWrite,
			Stage:   StageReport,
			Details: fmt.Sprintf("%d batches com erro", failed),
		}
	}
	return nil
}

func writeErrors(report *RunReport) int {
	total := 0
	if report.Assign != nil {
		total += report.Assign.Write.Errors
	}
	if report.Aggregate != nil {
		total += report.Aggregate.Errors()
	}
	if report.StageHistory != nil {
		total += report.StageHistory.Write.Errors
	}
	if report.ResolvedAds != nil {
		total += report.ResolvedAds.Write.Errors
	}
	return total
}

func (s *Service) finish(job string, report *RunReport, err *error) {
	if report.FinishedAt.IsZero() {
		report.FinishedAt = s.now().UTC()
	}
	elapsed := report.FinishedAt.Sub(report.StartedAt)
	metrics.ObserveJob(job, elapsed.Seconds(), *err)

	log := logrus.WithFields(logrus.Fields{
		"runId":         report.RunID,
		"job":           job,
		"opportunities": report.Opportunities,
		"duration":      elapsed.Round(time.Millisecond).String(),
	})
	if *err != nil {
		log.WithError(*err).Error("Sincronização finalizada com erro")
		return
	}
	log.Info("Sincronização finalizada")
}
