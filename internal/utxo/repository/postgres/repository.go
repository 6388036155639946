// Package postgres implements the UTXO index storage contracts on PostgreSQL.
// Guarded coin writes are single conditional statements, so they are atomic per coin.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type (
	// Metrics records storage operation outcomes.
	Metrics interface {
		Observe(operation string, chain model.Chain, network model.Network, err error, started time.Time)
	}

	db interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
		BeginFunc(ctx context.Context, f func(pgx.Tx) error) error
	}
)

// Repository stores the index in PostgreSQL.
type Repository struct {
	db      db
	pool    *pgxpool.Pool
	metrics Metrics
}

// NewRepository connects a pool to dsn.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	return &Repository{db: pool, pool: pool, metrics: metrics}, nil
}

// Close releases the pool.
func (r *Repository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

func walletStrings(wallets []model.WalletID) []string {
	out := make([]string, len(wallets))
	for i, w := range wallets {
		out[i] = string(w)
	}
	return out
}

func walletIDs(values []string) []model.WalletID {
	if len(values) == 0 {
		return nil
	}
	out := make([]model.WalletID, len(values))
	for i, v := range values {
		out[i] = model.WalletID(v)
	}
	return out
}

// execBatch runs every queued statement and returns the affected row counts in queue order.
func (r *Repository) execBatch(ctx context.Context, b *pgx.Batch) (affected []int64, err error) {
	results := r.db.SendBatch(ctx, b)
	defer func() {
		if cerr := results.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close batch: %w", cerr)
		}
	}()

	affected = make([]int64, 0, b.Len())
	for i := 0; i < b.Len(); i++ {
		tag, execErr := results.Exec()
		if execErr != nil {
			return nil, fmt.Errorf("batch statement %d: %w", i, execErr)
		}
		affected = append(affected, tag.RowsAffected())
	}
	return affected, nil
}
