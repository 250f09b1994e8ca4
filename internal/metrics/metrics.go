package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "attribution"

var (
	OpportunitiesMatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "opportunities_matched_total",
		Help:      "Oportunidades processadas por método de casamento.",
	}, []string{"method"})

	StoreWriteErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_write_errors_total",
		Help:      "Batches que falharam ao gravar no banco de documentos.",
	}, []string{"component"})

	StoreDocumentsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_documents_written_total",
		Help:      "Operações confirmadas no banco de documentos.",
	}, []string{"component"})

	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duração das execuções de cada job.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
	}, []string{"job"})

	JobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_runs_total",
		Help:      "Execuções de jobs por resultado.",
	}, []string{"job", "outcome"})
)

// ObserveWrite registra o resultado de uma sequência de commits
func ObserveWrite(component string, committed, errors int) {
	StoreDocumentsWritten.WithLabelValues(component).Add(float64(committed))
	if errors > 0 {
		StoreWriteErrors.WithLabelValues(component).Add(float64(errors))
	}
}

// ObserveJob registra duração e resultado de uma execução
func ObserveJob(job string, seconds float64, err error) {
	JobDuration.WithLabelValues(job).Observe(seconds)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	JobRuns.WithLabelValues(job, outcome).Inc()
}
