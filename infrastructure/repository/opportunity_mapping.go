package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/docstore"
	"github.com/vfg2006/ad-attribution-sync/internal/domain"
)

//go:generate mockgen -source=opportunity_mapping.go -destination=mocks/mock_opportunity_mapping.go -package=mocks

type OpportunityMappingRepository interface {
	Get(ctx context.Context, opportunityID string) (*domain.OpportunityMapping, error)
	GetAll(ctx context.Context) (map[string]*domain.OpportunityMapping, error)
	SaveAll(ctx context.Context, mappings []*domain.OpportunityMapping) docstore.WriteStats
}

type opportunityMappingRepository struct {
	store     docstore.Store
	batchSize int
}

func NewOpportunityMappingRepository(store docstore.Store, batchSize int) OpportunityMappingRepository {
	return &opportunityMappingRepository{
		store:     store,
		batchSize: batchSize,
	}
}

func (r *opportunityMappingRepository) Get(ctx context.Context, opportunityID string) (*domain.OpportunityMapping, error) {
	doc, err := r.store.Get(ctx, mappingPath(opportunityID))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	mapping := &domain.OpportunityMapping{}
	if err := docstore.Decode(doc, mapping); err != nil {
		return nil, err
	}
	if mapping.OpportunityID == "" {
		mapping.OpportunityID = opportunityID
	}
	return mapping, nil
}

func (r *opportunityMappingRepository) GetAll(ctx context.Context) (map[string]*domain.OpportunityMapping, error) {
	snaps, err := r.store.List(ctx, opportunityMappingPrefix)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*domain.OpportunityMapping, len(snaps))
	for _, snap := range snaps {
		mapping := &domain.OpportunityMapping{}
		if err := docstore.Decode(snap.Data, mapping); err != nil {
			logrus.WithError(err).WithField("path", snap.Path).Warn("Mapeamento inválido ignorado")
			continue
		}
		if mapping.OpportunityID == "" {
			mapping.OpportunityID = snap.ID
		}
		out[mapping.OpportunityID] = mapping
	}

	return out, nil
}

// SaveAll sobrescreve cada mapeamento; o id do documento é o id da oportunidade
func (r *opportunityMappingRepository) SaveAll(ctx context.Context, mappings []*domain.OpportunityMapping) docstore.WriteStats {
	w := docstore.NewWriter(r.store, r.batchSize)
	for _, m := range mappings {
		if m == nil || m.OpportunityID == "" {
			continue
		}
		w.Set(ctx, mappingPath(m.OpportunityID), mappingDocument(m))
	}
	return w.Close(ctx)
}
