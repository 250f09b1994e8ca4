package docstore

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore mantém os documentos em memória; usado em testes e simulações
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

func (m *MemoryStore) Get(ctx context.Context, path string) (Document, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[path]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDocument(doc), nil
}

func (m *MemoryStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	if err := ValidateCollectionPath(collection); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Snapshot
	for path, doc := range m.docs {
		if Parent(path) != collection {
			continue
		}
		out = append(out, Snapshot{Path: path, ID: ID(path), Data: cloneDocument(doc)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (m *MemoryStore) NewBatch() Batch {
	return newOpBatch(m.commit)
}

func (m *MemoryStore) commit(ctx context.Context, ops []op) error {
	if err := ctx.Err(); err != nil {
		return &CommitError{Failed: len(ops), Total: len(ops), Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range ops {
		switch o.kind {
		case opSet:
			m.docs[o.path] = materialize(o.data)
		case opMerge:
			current, ok := m.docs[o.path]
			if !ok {
				current = Document{}
			}
			mergeInto(current, o.data)
			m.docs[o.path] = current
		case opDelete:
			delete(m.docs, o.path)
		}
	}
	return nil
}

// Paths lista todos os caminhos armazenados em ordem
func (m *MemoryStore) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.docs))
	for p := range m.docs {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (m *MemoryStore) Close() error {
	return nil
}
