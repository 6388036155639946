package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/jackc/pgx/v4"
)

const transactionColumns = `chain, network, txid, block_height, block_hash, block_time, block_time_normalized,
	coinbase, fee, size, lock_time, value, wallets, main_chain`

func scanTransaction(row pgx.Row) (model.Transaction, error) {
	var (
		tx       model.Transaction
		chain    string
		network  string
		lockTime int64
		wallets  []string
	)
	if err := row.Scan(
		&chain,
		&network,
		&tx.TxID,
		&tx.BlockHeight,
		&tx.BlockHash,
		&tx.BlockTime,
		&tx.BlockTimeNormalized,
		&tx.Coinbase,
		&tx.Fee,
		&tx.Size,
		&lockTime,
		&tx.Value,
		&wallets,
		&tx.MainChain,
	); err != nil {
		return model.Transaction{}, err
	}
	tx.Chain = model.Chain(chain)
	tx.Network = model.Network(network)
	tx.LockTime = uint32(lockTime)
	tx.Wallets = walletIDs(wallets)
	tx.BlockTime = tx.BlockTime.UTC()
	tx.BlockTimeNormalized = tx.BlockTimeNormalized.UTC()
	return tx, nil
}

// UpsertTransactions inserts or replaces transactions by txid.
func (r *Repository) UpsertTransactions(ctx context.Context, txs []model.Transaction) (err error) {
	if len(txs) == 0 {
		return nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_transactions", txs[0].Chain, txs[0].Network, err, start)
	}()

	batch := &pgx.Batch{}
	for _, tx := range txs {
		batch.Queue(`INSERT INTO transactions (`+transactionColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (chain, network, txid) DO UPDATE SET
	block_height = EXCLUDED.block_height,
	block_hash = EXCLUDED.block_hash,
	block_time = EXCLUDED.block_time,
	block_time_normalized = EXCLUDED.block_time_normalized,
	coinbase = EXCLUDED.coinbase,
	fee = EXCLUDED.fee,
	size = EXCLUDED.size,
	lock_time = EXCLUDED.lock_time,
	value = EXCLUDED.value,
	wallets = EXCLUDED.wallets,
	main_chain = EXCLUDED.main_chain`,
			string(tx.Chain),
			string(tx.Network),
			tx.TxID,
			tx.BlockHeight,
			tx.BlockHash,
			tx.BlockTime,
			tx.BlockTimeNormalized,
			tx.Coinbase,
			tx.Fee,
			tx.Size,
			int64(tx.LockTime),
			tx.Value,
			walletStrings(tx.Wallets),
			tx.MainChain,
		)
	}
	if _, err = r.execBatch(ctx, batch); err != nil {
		return fmt.Errorf("upsert transactions: %w", err)
	}
	return nil
}

// DemoteTransactionsFrom moves every transaction confirmed at or above height off the main chain.
func (r *Repository) DemoteTransactionsFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("demote_transactions_from", chain, network, err, start)
	}()

	if _, err = r.db.Exec(ctx, `UPDATE transactions SET main_chain = FALSE
WHERE chain = $1 AND network = $2 AND block_height >= $3 AND main_chain`,
		string(chain), string(network), height); err != nil {
		return fmt.Errorf("demote transactions from %d: %w", height, err)
	}
	return nil
}

// TransactionsByIDs returns the stored transactions among txids.
func (r *Repository) TransactionsByIDs(ctx context.Context, chain model.Chain, network model.Network, txids []string) (txs []model.Transaction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_ids", chain, network, err, start)
	}()

	if len(txids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+transactionColumns+` FROM transactions
WHERE chain = $1 AND network = $2 AND txid = ANY($3)`, string(chain), string(network), txids)
	if err != nil {
		return nil, fmt.Errorf("query transactions by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan transaction: %w", scanErr)
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(clause string, args ...any) {
	for _, arg := range args {
		w.args = append(w.args, arg)
		clause = strings.Replace(clause, "?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.clauses = append(w.clauses, clause)
}

func (w *whereBuilder) String() string {
	return strings.Join(w.clauses, " AND ")
}

// StreamTransactions calls fn for each main chain transaction matching q in (height, txid) order.
func (r *Repository) StreamTransactions(ctx context.Context, q model.TransactionQuery, fn func(model.Transaction) error) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("stream_transactions", q.Chain, q.Network, err, start)
	}()

	var w whereBuilder
	w.add("chain = ?", string(q.Chain))
	w.add("network = ?", string(q.Network))
	w.add("main_chain")
	if q.Wallet != "" {
		w.add("? = ANY(wallets)", string(q.Wallet))
	}
	if q.StartHeight != nil {
		w.add("block_height >= ?", *q.StartHeight)
	}
	if q.EndHeight != nil {
		w.add("block_height <= ?", *q.EndHeight)
	}
	if q.StartTime != nil {
		w.add("block_time_normalized >= ?", *q.StartTime)
	}
	if q.EndTime != nil {
		w.add("block_time_normalized < ?", *q.EndTime)
	}
	if q.After != nil {
		w.add("(block_height, txid) > (?, ?)", q.After.BlockHeight, q.After.TxID)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + w.String() + ` ORDER BY block_height, txid`
	if q.Limit > 0 {
		query += " LIMIT " + strconv.Itoa(q.Limit)
	}

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan transaction: %w", scanErr)
			return err
		}
		if err = fn(tx); err != nil {
			return err
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate transactions: %w", err)
	}
	return nil
}

// DailyTransactionCounts counts confirmed main chain transactions per UTC day in [from, to).
func (r *Repository) DailyTransactionCounts(ctx context.Context, chain model.Chain, network model.Network, from, to time.Time) (counts []model.DailyCount, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("daily_transaction_counts", chain, network, err, start)
	}()

	rows, err := r.db.Query(ctx, `SELECT date_trunc('day', block_time_normalized AT TIME ZONE 'UTC') AS day, count(*)
FROM transactions
WHERE chain = $1 AND network = $2 AND main_chain AND block_height >= 0
	AND block_time_normalized >= $3 AND block_time_normalized < $4
GROUP BY day
ORDER BY day`, string(chain), string(network), from, to)
	if err != nil {
		return nil, fmt.Errorf("query daily counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.DailyCount
		if err = rows.Scan(&c.Day, &c.Transactions); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		c.Day = time.Date(c.Day.Year(), c.Day.Month(), c.Day.Day(), 0, 0, 0, 0, time.UTC)
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily counts: %w", err)
	}
	return counts, nil
}

// ChainStats aggregates transaction and unspent coin totals.
func (r *Repository) ChainStats(ctx context.Context, chain model.Chain, network model.Network) (stats model.ChainStats, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("chain_stats", chain, network, err, start)
	}()

	err = r.db.QueryRow(ctx, `SELECT
	(SELECT count(*) FROM transactions WHERE chain = $1 AND network = $2 AND main_chain AND block_height >= 0),
	(SELECT count(*) FROM coins WHERE chain = $1 AND network = $2 AND spent_txid = '' AND spent_height = 0 AND mint_height >= 0),
	(SELECT COALESCE(sum(value), 0)::BIGINT FROM coins WHERE chain = $1 AND network = $2 AND spent_txid = '' AND spent_height = 0 AND mint_height >= 0)`,
		string(chain), string(network)).Scan(&stats.Transactions, &stats.UnspentCoins, &stats.UnspentSupply)
	if err != nil {
		return model.ChainStats{}, fmt.Errorf("select chain stats: %w", err)
	}
	return stats, nil
}
