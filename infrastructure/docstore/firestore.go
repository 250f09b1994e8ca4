package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore grava no Firestore usando BulkWriter
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Get(ctx context.Context, path string) (Document, error) {
	ref := s.client.Doc(path)
	if ref == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("firestore: erro ao ler %s: %w", path, err)
	}

	return Document(snap.Data()), nil
}

func (s *FirestoreStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	col := s.client.Collection(collection)
	if col == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, collection)
	}

	iter := col.Documents(ctx)
	defer iter.Stop()

	var out []Snapshot
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore: erro ao listar %s: %w", collection, err)
		}

		out = append(out, Snapshot{
			Path: Join(collection, doc.Ref.ID),
			ID:   doc.Ref.ID,
			Data: Document(doc.Data()),
		})
	}

	return out, nil
}

func (s *FirestoreStore) NewBatch() Batch {
	return newOpBatch(s.commit)
}

func (s *FirestoreStore) commit(ctx context.Context, ops []op) error {
	bw := s.client.BulkWriter(ctx)

	jobs := make([]*firestore.BulkWriterJob, 0, len(ops))
	var errs []error

	for _, o := range ops {
		ref := s.client.Doc(o.path)
		if ref == nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidPath, o.path))
			continue
		}

		var (
			job *firestore.BulkWriterJob
			err error
		)
		switch o.kind {
		case opSet:
			job, err = bw.Set(ref, toFirestore(o.data))
		case opMerge:
			job, err = bw.Set(ref, toFirestore(o.data), firestore.MergeAll)
		case opDelete:
			job, err = bw.Delete(ref)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.path, err))
			continue
		}
		jobs = append(jobs, job)
	}

	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return &CommitError{Failed: len(errs), Total: len(ops), Err: errors.Join(errs...)}
	}
	return nil
}

// toFirestore converte Inc em transformações de incremento do Firestore
func toFirestore(doc Document) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		switch val := v.(type) {
		case Inc:
			out[k] = firestore.Increment(val.Value)
		default:
			if m, ok := asMap(val); ok {
				out[k] = toFirestore(Document(m))
				continue
			}
			out[k] = val
		}
	}
	return out
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
