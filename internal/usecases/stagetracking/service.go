package stagetracking

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/repository"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
	"github.com/vfg2006/ad-attribution-sync/internal/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Tracker registra a passagem das oportunidades pelas etapas do pipeline
type Tracker interface {
	Record(ctx context.Context, opportunities []domain.Opportunity, mappings map[string]*domain.OpportunityMapping) (*Report, error)
}

type Report struct {
	Observed   int                          `json:"observed"`
	Created    int                          `json:"created"`
	Refreshed  int                          `json:"refreshed"`
	ByCategory map[domain.StageCategory]int `json:"byCategory"`
	Write      docstore.WriteStats          `json:"write"`
}

type Service struct {
	repo repository.StageHistoryRepository
	now  func() time.Time
}

func NewService(repo repository.StageHistoryRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Record cria uma entrada por (oportunidade, etapa); entradas existentes só têm lastObservedAt renovado
func (s *Service) Record(
	ctx context.Context,
	opportunities []domain.Opportunity,
	mappings map[string]*domain.OpportunityMapping,
) (*Report, error) {
	existing, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar o histórico de etapas: %w", err)
	}

	now := s.now().UTC()
	report := &Report{ByCategory: make(map[domain.StageCategory]int)}
	seenIDs := make(map[string]struct{}, len(opportunities))

	var created, seen []*domain.StageHistoryEntry
	for _, opp := range opportunities {
		entry := newEntry(opp, mappings[opp.ID], now)
		if _, dup := seenIDs[entry.ID]; dup {
			continue
		}
		seenIDs[entry.ID] = struct{}{}

		report.Observed++
		report.ByCategory[entry.Category]++

		if _, ok := existing[entry.ID]; ok {
			seen = append(seen, entry)
			continue
		}
		created = append(created, entry)
	}

	report.Created = len(created)
	report.Refreshed = len(seen)
	report.Write = s.repo.SaveEntries(ctx, created, seen)
	metrics.ObserveWrite("stage_history", report.Write.Committed, report.Write.Errors)

	logrus.WithFields(logrus.Fields{
		"observed":  report.Observed,
		"created":   report.Created,
		"refreshed": report.Refreshed,
		"errors":    report.Write.Errors,
	}).Info("Histórico de etapas registrado")

	return report, nil
}

func newEntry(opp domain.Opportunity, mapping *domain.OpportunityMapping, now time.Time) *domain.StageHistoryEntry {
	entry := &domain.StageHistoryEntry{
		ID:                   domain.StageHistoryID(opp.ID, opp.PipelineStageID),
		OpportunityID:        opp.ID,
		PipelineID:           opp.PipelineID,
		StageID:              opp.PipelineStageID,
		StageName:            opp.StageName,
		Category:             domain.ClassifyStage(opp.StageName),
		MonetaryValue:        opp.MonetaryValue,
		OpportunityCreatedAt: opp.CreatedAt,
		FirstObservedAt:      now,
		LastObservedAt:       now,
	}

	if mapping != nil && mapping.Method != domain.Unmatched {
		entry.AdID = mapping.AdID
	}
	return entry
}
