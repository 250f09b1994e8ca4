package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-attribution-sync/infrastructure/database/postgres"
)

// PostgresStore guarda cada documento como uma linha jsonb indexada pelo caminho
type PostgresStore struct {
	conn  postgres.Conn
	table string
}

func NewPostgresStore(conn postgres.Conn, table string) *PostgresStore {
	if table == "" {
		table = "documents"
	}
	return &PostgresStore{conn: conn, table: table}
}

// EnsureSchema cria a tabela de documentos se ainda não existir
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			path TEXT PRIMARY KEY,
			collection TEXT NOT NULL,
			doc_id TEXT NOT NULL,
			data JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, s.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_collection_idx ON %s (collection)`, s.table, s.table),
	}

	for _, stmt := range stmts {
		if _, err := s.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: erro ao criar schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, path string) (Document, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	query, args, err := squirrel.Select("data").
		From(s.table).
		Where(squirrel.Eq{"path": path}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var raw []byte
	if err := s.conn.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("postgres: erro ao ler %s: %w", path, err)
	}

	return unmarshalDocument(raw)
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	if err := ValidateCollectionPath(collection); err != nil {
		return nil, err
	}

	query, args, err := squirrel.Select("path", "data").
		From(s.table).
		Where(squirrel.Eq{"collection": collection}).
		OrderBy("path").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: erro ao listar %s: %w", collection, err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var (
			path string
			raw  []byte
		)
		if err := rows.Scan(&path, &raw); err != nil {
			return nil, err
		}

		doc, err := unmarshalDocument(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, Snapshot{Path: path, ID: ID(path), Data: doc})
	}

	return out, rows.Err()
}

func (s *PostgresStore) NewBatch() Batch {
	return newOpBatch(s.commit)
}

// commit aplica o batch inteiro em uma transação; Merge lê a linha com FOR UPDATE
func (s *PostgresStore) commit(ctx context.Context, ops []op) error {
	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, o := range ops {
			var err error
			switch o.kind {
			case opSet:
				err = s.upsert(ctx, tx, o.path, materialize(o.data))
			case opMerge:
				err = s.merge(ctx, tx, o.path, o.data)
			case opDelete:
				err = s.delete(ctx, tx, o.path)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", o.path, err)
			}
		}
		return nil
	})
	if err != nil {
		return &CommitError{Failed: len(ops), Total: len(ops), Err: err}
	}
	return nil
}

func (s *PostgresStore) merge(ctx context.Context, tx *sql.Tx, path string, data Document) error {
	query, args, err := squirrel.Select("data").
		From(s.table).
		Where(squirrel.Eq{"path": path}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	current := Document{}
	var raw []byte
	err = tx.QueryRowContext(ctx, query, args...).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return err
	default:
		if current, err = unmarshalDocument(raw); err != nil {
			return err
		}
	}

	mergeInto(current, data)
	return s.upsert(ctx, tx, path, current)
}

func (s *PostgresStore) upsert(ctx context.Context, tx *sql.Tx, path string, data Document) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	query, args, err := squirrel.Insert(s.table).
		Columns("path", "collection", "doc_id", "data").
		Values(path, Parent(path), ID(path), string(payload)).
		Suffix("ON CONFLICT (path) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func (s *PostgresStore) delete(ctx context.Context, tx *sql.Tx, path string) error {
	query, args, err := squirrel.Delete(s.table).
		Where(squirrel.Eq{"path": path}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func unmarshalDocument(raw []byte) (Document, error) {
	doc := Document{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("postgres: documento inválido: %w", err)
	}
	return doc, nil
}

func (s *PostgresStore) Close() error {
	return s.conn.Close()
}
