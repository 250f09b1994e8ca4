package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-attribution-sync/pkg/apiErrors"
	"github.com/vfg2006/ad-attribution-sync/pkg/log"
)

//go:generate mockgen -source=jobs.go -destination=mocks/mock_jobs.go -package=mocks

// Tipos de job aceitos em /v1/jobs/:type
const (
	JobTypeAttribution = "attribution"
	JobTypeAdCatalog   = "ad-catalog"
	JobTypeAll         = "all"
)

// JobTrigger dispara manualmente um job agendado
type JobTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// JobServices contém os agendadores que podem ser disparados pela API
type JobServices struct {
	Attribution JobTrigger
	AdCatalog   JobTrigger
}

func (s JobServices) byType() map[string]JobTrigger {
	jobs := make(map[string]JobTrigger, 2)
	if s.Attribution != nil {
		jobs[JobTypeAttribution] = s.Attribution
	}
	if s.AdCatalog != nil {
		jobs[JobTypeAdCatalog] = s.AdCatalog
	}
	return jobs
}

// RunJob dispara um job; 409 quando já houver execução em andamento
func RunJob(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger := log.ForContext(r.Context()).WithField("job", jobType)

		jobs := services.byType()

		var selected []string
		switch jobType {
		case JobTypeAttribution, JobTypeAdCatalog:
			if _, ok := jobs[jobType]; !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Job não disponível", jobType)
				return
			}
			selected = []string{jobType}
		case JobTypeAll:
			for _, name := range []string{JobTypeAdCatalog, JobTypeAttribution} {
				if _, ok := jobs[name]; ok {
					selected = append(selected, name)
				}
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de job inválido. Valores aceitos: attribution, ad-catalog, all", jobType)
			return
		}

		started := make([]string, 0, len(selected))
		running := make([]string, 0)
		for _, name := range selected {
			if jobs[name].TriggerManualSync() {
				started = append(started, name)
			} else {
				running = append(running, name)
			}
		}

		if len(started) == 0 {
			logger.Warn("Job já em execução")
			apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Job já em execução", running)
			return
		}

		logger.Info("Job disparado manualmente")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Job iniciado com sucesso",
			"started": started,
			"running": running,
		})
	}
}

// GetJobStatus retorna o status de cada agendador
func GetJobStatus(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}
		writeJSON(w, http.StatusOK, status)
	}
}
