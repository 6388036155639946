package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// StreamUnspentCoins calls fn for each unspent coin matching q in (txid, index) order.
func (r *Repository) StreamUnspentCoins(ctx context.Context, q model.CoinQuery, fn func(model.Coin) error) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("stream_unspent_coins", q.Chain, q.Network, err, start)
	}()

	where, args := unspentCoinsWhere(q.CoinFilter)
	if q.After != nil {
		where += " AND (mint_txid, mint_index) > (?, ?)"
		args = append(args, q.After.TxID, q.After.Index)
	}
	query := `
SELECT ` + coinColumns + `
FROM utxo_coins FINAL
WHERE ` + where + `
ORDER BY mint_txid, mint_index`
	if q.Limit > 0 {
		query += "\nLIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		err = fmt.Errorf("query unspent coins: %w", err)
		return err
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var c model.Coin
		if c, err = scanCoin(rows); err != nil {
			err = fmt.Errorf("scan coin: %w", err)
			return err
		}
		if err = fn(c); err != nil {
			return err
		}
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate unspent coins: %w", err)
		return err
	}
	return nil
}
