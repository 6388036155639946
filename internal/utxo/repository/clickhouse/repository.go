// Package clickhouse implements the UTXO index storage contracts on ClickHouse.
//
// Tables are ReplacingMergeTree keyed by entity identity and versioned per write; reads select the
// latest row version with FINAL. Conditional coin writes read the latest version before appending,
// so every coin write of a Repository holds coinWrites for the read and the append.
package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

type (
	// Metrics records storage operation outcomes.
	Metrics interface {
		Observe(operation string, chain model.Chain, network model.Network, err error, started time.Time)
	}

	// Conn is the subset of the ClickHouse connection used by the repository.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Exec(ctx context.Context, query string, args ...any) error
	}

	// Rows iterates a query result.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}

	// Batch buffers rows for a single insert.
	Batch interface {
		Append(v ...any) error
		Send() error
	}
)

// Repository stores the index in ClickHouse.
type Repository struct {
	conn    Conn
	metrics Metrics
	close   func() error

	mu          sync.Mutex
	lastVersion uint64

	coinWrites sync.Mutex
}

// NewRepository opens a ClickHouse connection for dsn.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{conn: conn}, metrics: metrics, close: conn.Close}, nil
}

// Close releases the connection.
func (r *Repository) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// nextVersion returns a strictly increasing row version.
func (r *Repository) nextVersion() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := uint64(time.Now().UnixNano())
	if v <= r.lastVersion {
		v = r.lastVersion + 1
	}
	r.lastVersion = v
	return v
}

func closeRows(rows Rows, err *error) {
	if cerr := rows.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close rows: %w", cerr)
	}
}

type driverConn struct {
	conn driver.Conn
}

func (d driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := d.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (d driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	batch, err := d.conn.PrepareBatch(ctx, query)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (d driverConn) Exec(ctx context.Context, query string, args ...any) error {
	return d.conn.Exec(ctx, query, args...)
}
