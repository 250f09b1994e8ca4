package scheduler

import (
	"sync"
	"time"
)

// syncState guarda o estado de execução de um job e impede execuções sobrepostas
type syncState struct {
	mu                  sync.Mutex
	running             bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
	lastRunID           string
}

// begin marca o job como em execução; devolve false se já havia uma execução em andamento
func (s *syncState) begin(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastSyncStartedAt = now
	return true
}

func (s *syncState) end(now time.Time, runID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastSyncCompletedAt = now
	s.lastRunID = runID
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *syncState) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *syncState) snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"running":                s.running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
	}
}
