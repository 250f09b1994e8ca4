package syncing

import (
	"errors"
	"fmt"
)

// Etapas do pipeline de sincronização
const (
	StageFetch        = "fetch"
	StageDetails      = "details"
	StageFormBackfill = "form_backfill"
	StageEnrich       = "enrich"
	StageCatalog      = "catalog"
	StageResolveAds   = "resolve_ads"
	StageAssign       = "assign"
	StageMappings     = "mappings"
	StageAggregate    = "aggregate"
	StageStageHistory = "stage_history"
	StageReport       = "report"
)

// ErrPartialWrite indica que algum batch falhou na gravação; o restante foi persistido
var ErrPartialWrite = errors.New("gravação parcial no banco de documentos")

// SyncError identifica a etapa em que a execução falhou
type SyncError struct {
	Err     error
	Stage   string
	Details string
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("sincronização falhou na etapa %s: %v (%s)", e.Stage, e.Err, e.Details)
	}
	return fmt.Sprintf("sincronização falhou na etapa %s: %v", e.Stage, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func stageError(stage string, err error) *SyncError {
	return &SyncError{Err: err, Stage: stage}
}
