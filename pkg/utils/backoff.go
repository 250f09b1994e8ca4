package utils

import (
	"context"
	"errors"
	"time"
)

// Backoff repete uma operação com espera fixa (ou exponencial) entre tentativas
type Backoff struct {
	wait        time.Duration
	maxRetries  int
	exponential bool
}

func NewBackoff(wait time.Duration, maxRetries int) Backoff {
	return Backoff{wait: wait, maxRetries: maxRetries}
}

// Exponential dobra a espera a cada nova tentativa
func (b Backoff) Exponential() Backoff {
	b.exponential = true
	return b
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marca um erro que não deve ser repetido
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do executa fn até maxRetries+1 vezes. Erros Permanent e cancelamento do contexto encerram na hora.
func (b Backoff) Do(ctx context.Context, fn func(attempt int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		err = fn(i)
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}

		if i == b.maxRetries {
			break
		}

		wait := b.wait
		if b.exponential {
			wait = time.Duration(1<<i) * b.wait
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(wait):
		}
	}
	return err
}

// Sleep espera d ou até o contexto ser cancelado
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
