package clickhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

func unspentCoinsWhere(f model.CoinFilter) (string, []any) {
	clauses := []string{"chain = ?", "network = ?", "spent_txid = ''", "spent_height = 0"}
	args := []any{string(f.Chain), string(f.Network)}
	if f.Address != "" {
		clauses = append(clauses, "address = ?")
		args = append(args, f.Address)
	}
	if f.Wallet != "" {
		clauses = append(clauses, "has(wallets, ?)")
		args = append(args, string(f.Wallet))
	}
	return strings.Join(clauses, " AND "), args
}

// WalletBalance sums unspent coins matching the filter.
func (r *Repository) WalletBalance(ctx context.Context, f model.CoinFilter) (model.Balance, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("wallet_balance", f.Chain, f.Network, err, start)
	}()

	where, args := unspentCoinsWhere(f)
	query := `
SELECT
	sumIf(value, mint_height != -1) AS confirmed,
	sumIf(value, mint_height = -1) AS unconfirmed,
	count() AS coins
FROM utxo_coins FINAL
WHERE ` + where

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		err = fmt.Errorf("query balance: %w", err)
		return model.Balance{}, err
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		err = fmt.Errorf("balance not found")
		return model.Balance{}, err
	}
	var (
		b     model.Balance
		count uint64
	)
	if err = rows.Scan(&b.Confirmed, &b.Unconfirmed, &count); err != nil {
		err = fmt.Errorf("scan balance: %w", err)
		return model.Balance{}, err
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate balance: %w", err)
		return model.Balance{}, err
	}
	b.Count = int64(count)
	return b, nil
}
