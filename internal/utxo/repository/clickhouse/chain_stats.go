package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const chainStatsQuery = `
SELECT
	(SELECT count() FROM utxo_transactions FINAL
		WHERE chain = ? AND network = ? AND main_chain AND block_height >= 0) AS transactions,
	(SELECT count() FROM utxo_coins FINAL
		WHERE chain = ? AND network = ? AND spent_txid = '' AND spent_height = 0 AND mint_height >= 0) AS unspent_coins,
	(SELECT sum(value) FROM utxo_coins FINAL
		WHERE chain = ? AND network = ? AND spent_txid = '' AND spent_height = 0 AND mint_height >= 0) AS unspent_supply`

// ChainStats aggregates transaction and unspent coin totals.
func (r *Repository) ChainStats(ctx context.Context, chain model.Chain, network model.Network) (model.ChainStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("chain_stats", chain, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, chainStatsQuery,
		string(chain), string(network),
		string(chain), string(network),
		string(chain), string(network),
	)
	if err != nil {
		err = fmt.Errorf("query chain stats: %w", err)
		return model.ChainStats{}, err
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		err = fmt.Errorf("chain stats not found")
		return model.ChainStats{}, err
	}
	var (
		txs, coins uint64
		supply     int64
	)
	if err = rows.Scan(&txs, &coins, &supply); err != nil {
		err = fmt.Errorf("scan chain stats: %w", err)
		return model.ChainStats{}, err
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate chain stats: %w", err)
		return model.ChainStats{}, err
	}
	return model.ChainStats{Transactions: int64(txs), UnspentCoins: int64(coins), UnspentSupply: supply}, nil
}
