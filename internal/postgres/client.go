package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/techAMA2025/NewCRM-sub003/internal/config"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
)

type contextKey string

// ctxTx carries an open transaction through the context so that nested
// repository calls inside WithTx share the same transaction.
const ctxTx contextKey = "ctx_pg_tx"

// IClient is the persistence port the repositories are built on
type IClient interface {
	// Querier returns the transaction bound to ctx if one is open,
	// otherwise the root connection pool.
	Querier(ctx context.Context) Querier

	// WithTx runs fn inside a single transaction. Nested calls reuse the
	// already-open transaction rather than opening a new one.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	Close() error
}

// Querier is the subset of sqlx used by the repositories, satisfied by
// both *sqlx.DB and *sqlx.Tx.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type client struct {
	db  *sqlx.DB
	log *logger.Logger
}

// NewClient opens a connection pool against the configured Postgres instance
func NewClient(cfg *config.Configuration, log *logger.Logger) (IClient, error) {
	db, err := sqlx.Connect("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to connect to postgres").
			Mark(ierr.ErrDatabase)
	}

	return &client{db: db, log: log}, nil
}

func (c *client) Querier(ctx context.Context) Querier {
	if tx, ok := ctx.Value(ctxTx).(*sqlx.Tx); ok {
		return tx
	}
	return c.db
}

func (c *client) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(ctxTx).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to begin transaction").
			Mark(ierr.ErrDatabase)
	}

	txCtx := context.WithValue(ctx, ctxTx, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			c.log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to commit transaction").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (c *client) Close() error {
	return c.db.Close()
}
