// Package tx runs functions inside Postgres transactions.
package tx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Manager struct {
	DB *sql.DB
}

const maxRetries = 5

var ErrRetryExhausted = errors.New("transaction retry exhausted")

// WithTx runs fn in a transaction and commits it, retrying the whole
// function on serialization failures and deadlocks.
func (m *Manager) WithTx(
	ctx context.Context,
	fn func(ctx context.Context, tx *sql.Tx) error,
) error {

	for i := 0; i < maxRetries; i++ {

		tx, err := m.DB.BeginTx(ctx, &sql.TxOptions{
			Isolation: sql.LevelReadCommitted,
		})
		if err != nil {
			return err
		}

		err = fn(ctx, tx)
		if err != nil {
			_ = tx.Rollback()
			if Retryable(err) {
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if Retryable(err) {
				continue
			}
			return err
		}

		return nil
	}

	return ErrRetryExhausted
}

// Retryable reports whether err is a serialization failure (40001) or a
// deadlock (40P01).
func Retryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}
