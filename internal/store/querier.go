package store

import (
	"context"
	"database/sql"
)

// Querier is the set of database operations the repositories need.
// Both *sqlx.DB and *sqlx.Tx satisfy it, so every repository method can run
// against the pooled handle directly or inside a transaction.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
