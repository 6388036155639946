package clickhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

func transactionsQuery(q model.TransactionQuery) (string, []any) {
	clauses := []string{"chain = ?", "network = ?", "main_chain"}
	args := []any{string(q.Chain), string(q.Network)}
	if q.Wallet != "" {
		clauses = append(clauses, "has(wallets, ?)")
		args = append(args, string(q.Wallet))
	}
	if q.StartHeight != nil {
		clauses = append(clauses, "block_height >= ?")
		args = append(args, *q.StartHeight)
	}
	if q.EndHeight != nil {
		clauses = append(clauses, "block_height <= ?")
		args = append(args, *q.EndHeight)
	}
	if q.StartTime != nil {
		clauses = append(clauses, "block_time_normalized >= ?")
		args = append(args, *q.StartTime)
	}
	if q.EndTime != nil {
		clauses = append(clauses, "block_time_normalized < ?")
		args = append(args, *q.EndTime)
	}
	if q.After != nil {
		clauses = append(clauses, "(block_height, txid) > (?, ?)")
		args = append(args, q.After.BlockHeight, q.After.TxID)
	}

	query := `
SELECT ` + transactionColumns + `
FROM utxo_transactions FINAL
WHERE ` + strings.Join(clauses, " AND ") + `
ORDER BY block_height, txid`
	if q.Limit > 0 {
		query += "\nLIMIT ?"
		args = append(args, q.Limit)
	}
	return query, args
}

// StreamTransactions calls fn for each main chain transaction matching q in (height, txid) order.
func (r *Repository) StreamTransactions(ctx context.Context, q model.TransactionQuery, fn func(model.Transaction) error) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("stream_transactions", q.Chain, q.Network, err, start)
	}()

	query, args := transactionsQuery(q)
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		err = fmt.Errorf("query transactions: %w", err)
		return err
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var tx model.Transaction
		if tx, err = scanTransaction(rows); err != nil {
			err = fmt.Errorf("scan transaction: %w", err)
			return err
		}
		if err = fn(tx); err != nil {
			return err
		}
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate transactions: %w", err)
		return err
	}
	return nil
}
