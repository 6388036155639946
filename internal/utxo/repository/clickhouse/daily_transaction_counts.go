package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const dailyTransactionCountsQuery = `
SELECT
	toStartOfDay(block_time_normalized, 'UTC') AS day,
	count() AS transactions
FROM utxo_transactions FINAL
WHERE chain = ? AND network = ? AND main_chain AND block_height >= 0
	AND block_time_normalized >= ? AND block_time_normalized < ?
GROUP BY day
ORDER BY day`

// DailyTransactionCounts counts confirmed main chain transactions per UTC day in [from, to).
func (r *Repository) DailyTransactionCounts(ctx context.Context, chain model.Chain, network model.Network, from, to time.Time) ([]model.DailyCount, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("daily_transaction_counts", chain, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, dailyTransactionCountsQuery, string(chain), string(network), from, to)
	if err != nil {
		err = fmt.Errorf("query daily counts: %w", err)
		return nil, err
	}
	defer closeRows(rows, &err)

	var counts []model.DailyCount
	for rows.Next() {
		var (
			day time.Time
			n   uint64
		)
		if err = rows.Scan(&day, &n); err != nil {
			err = fmt.Errorf("scan daily count: %w", err)
			return nil, err
		}
		counts = append(counts, model.DailyCount{Day: day.UTC(), Transactions: int64(n)})
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate daily counts: %w", err)
		return nil, err
	}
	return counts, nil
}
