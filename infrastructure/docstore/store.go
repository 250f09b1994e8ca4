// Package docstore abstrai o banco de documentos hierárquico
// (coleção/documento/coleção/documento) usado para persistir a atribuição.
package docstore

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("docstore: documento não encontrado")
	ErrInvalidPath = errors.New("docstore: caminho inválido")
)

// Document é o conteúdo de um documento; mapas aninhados viram subcampos
type Document map[string]any

// Snapshot é um documento lido de uma coleção
type Snapshot struct {
	Path string
	ID   string
	Data Document
}

type Store interface {
	// Get retorna ErrNotFound quando o documento não existe
	Get(ctx context.Context, path string) (Document, error)
	// List retorna os documentos de uma coleção ordenados pelo caminho
	List(ctx context.Context, collection string) ([]Snapshot, error)
	NewBatch() Batch
	Close() error
}

// Batch acumula operações aplicadas em um único commit
type Batch interface {
	// Set substitui o documento inteiro
	Set(path string, data Document)
	// Merge mescla recursivamente; valores Inc são somados ao valor atual
	Merge(path string, data Document)
	Delete(path string)
	Len() int
	Commit(ctx context.Context) error
}

// Inc marca um campo para ser incrementado em Merge
type Inc struct {
	Value any
}

// Increment cria um incremento numérico (int ou float)
func Increment(n any) Inc {
	return Inc{Value: n}
}

// CommitError indica quantos documentos de um commit falharam
type CommitError struct {
	Failed int
	Total  int
	Err    error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("docstore: %d de %d operações falharam: %v", e.Failed, e.Total, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

type opKind int

const (
	opSet opKind = iota
	opMerge
	opDelete
)

type op struct {
	kind opKind
	path string
	data Document
}

type commitFunc func(ctx context.Context, ops []op) error

// opBatch é a implementação de Batch compartilhada pelos backends
type opBatch struct {
	ops    []op
	commit commitFunc
}

func newOpBatch(fn commitFunc) *opBatch {
	return &opBatch{commit: fn}
}

func (b *opBatch) Set(path string, data Document) {
	b.ops = append(b.ops, op{kind: opSet, path: path, data: data})
}

func (b *opBatch) Merge(path string, data Document) {
	b.ops = append(b.ops, op{kind: opMerge, path: path, data: data})
}

func (b *opBatch) Delete(path string) {
	b.ops = append(b.ops, op{kind: opDelete, path: path})
}

func (b *opBatch) Len() int {
	return len(b.ops)
}

func (b *opBatch) Commit(ctx context.Context) error {
	if len(b.ops) == 0 {
		return nil
	}

	for _, o := range b.ops {
		if err := ValidateDocumentPath(o.path); err != nil {
			return &CommitError{Failed: len(b.ops), Total: len(b.ops), Err: err}
		}
	}

	ops := b.ops
	b.ops = nil
	return b.commit(ctx, ops)
}
