package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Tx controls a database transaction. *sqlx.Tx satisfies it.
type Tx interface {
	Commit() error
	Rollback() error
}

// TxBeginner starts transactions. *sqlx.DB satisfies it.
type TxBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// Function types for the transaction helpers, injected into services so
// tests can substitute failing or recording implementations.
type (
	BeginTxFunc    func(ctx context.Context, db TxBeginner) (Tx, error)
	CommitTxFunc   func(tx Tx) error
	RollbackTxFunc func(tx Tx)
)

// BeginTx starts a new transaction on the given handle.
func BeginTx(ctx context.Context, db TxBeginner) (Tx, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// CommitTx commits the transaction.
func CommitTx(tx Tx) error {
	return tx.Commit()
}

// RollbackTx rolls back the transaction. Safe to defer after a commit:
// ErrTxDone is ignored.
func RollbackTx(tx Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Error().Err(err).Msg("failed to roll back transaction")
	}
}
