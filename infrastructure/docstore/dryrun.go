package docstore

import (
	"context"

	"github.com/sirupsen/logrus"
)

// dryRunStore lê do backend real e descarta todas as escritas
type dryRunStore struct {
	Store
}

// DryRun envolve um Store para simulação: leituras passam, commits só registram log
func DryRun(s Store) Store {
	return &dryRunStore{Store: s}
}

func (d *dryRunStore) NewBatch() Batch {
	return newOpBatch(func(ctx context.Context, ops []op) error {
		for _, o := range ops {
			logrus.WithFields(logrus.Fields{
				"op":   o.kind.String(),
				"path": o.path,
			}).Debug("docstore: dry-run, escrita ignorada")
		}
		logrus.WithField("operations", len(ops)).Info("docstore: dry-run, batch descartado")
		return nil
	})
}

func (k opKind) String() string {
	switch k {
	case opSet:
		return "set"
	case opMerge:
		return "merge"
	case opDelete:
		return "delete"
	default:
		return "unknown"
	}
}
