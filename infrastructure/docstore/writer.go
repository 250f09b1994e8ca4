package docstore

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// MaxBatchSize é o limite de operações por commit
const MaxBatchSize = 500

// WriteStats resume o resultado de uma sequência de commits
type WriteStats struct {
	Committed int `json:"committed"`
	Failed    int `json:"failed"`
	Batches   int `json:"batches"`
	Errors    int `json:"errors"`
}

func (s *WriteStats) Add(other WriteStats) {
	s.Committed += other.Committed
	s.Failed += other.Failed
	s.Batches += other.Batches
	s.Errors += other.Errors
}

// Writer divide as operações em batches de no máximo size operações.
// Falhas são contabilizadas e a escrita continua com o próximo batch.
type Writer struct {
	store Store
	size  int
	batch Batch
	stats WriteStats
}

func NewWriter(store Store, size int) *Writer {
	if size <= 0 || size > MaxBatchSize {
		size = MaxBatchSize
	}
	return &Writer{store: store, size: size}
}

func (w *Writer) current() Batch {
	if w.batch == nil {
		w.batch = w.store.NewBatch()
	}
	return w.batch
}

func (w *Writer) Set(ctx context.Context, path string, data Document) {
	w.current().Set(path, data)
	w.flushIfFull(ctx)
}

func (w *Writer) Merge(ctx context.Context, path string, data Document) {
	w.current().Merge(path, data)
	w.flushIfFull(ctx)
}

func (w *Writer) Delete(ctx context.Context, path string) {
	w.current().Delete(path)
	w.flushIfFull(ctx)
}

func (w *Writer) flushIfFull(ctx context.Context) {
	if w.batch != nil && w.batch.Len() >= w.size {
		w.Flush(ctx)
	}
}

// Flush envia o batch pendente
func (w *Writer) Flush(ctx context.Context) {
	if w.batch == nil || w.batch.Len() == 0 {
		return
	}

	batch := w.batch
	w.batch = nil
	total := batch.Len()
	w.stats.Batches++

	err := batch.Commit(ctx)
	if err == nil {
		w.stats.Committed += total
		return
	}

	failed := total
	var commitErr *CommitError
	if errors.As(err, &commitErr) && commitErr.Failed < total {
		failed = commitErr.Failed
	}

	w.stats.Committed += total - failed
	w.stats.Failed += failed
	w.stats.Errors++

	logrus.WithFields(logrus.Fields{
		"operations": total,
		"failed":     failed,
	}).WithError(err).Error("docstore: falha ao gravar batch")
}

// Close envia o que restou e devolve as estatísticas acumuladas
func (w *Writer) Close(ctx context.Context) WriteStats {
	w.Flush(ctx)
	return w.stats
}

func (w *Writer) Stats() WriteStats {
	return w.stats
}
