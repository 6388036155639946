package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const coinsAffectedFromQuery = `
SELECT ` + coinColumns + `
FROM utxo_coins FINAL
WHERE chain = ? AND network = ? AND (spent_height >= ? OR mint_height >= ?)`

// RollbackCoinsFrom reverts spends confirmed at or above height and marks coins minted there as conflicting.
func (r *Repository) RollbackCoinsFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("rollback_coins_from", chain, network, err, start)
	}()

	r.coinWrites.Lock()
	defer r.coinWrites.Unlock()

	coins, err := r.queryCoins(ctx, coinsAffectedFromQuery, string(chain), string(network), height, height)
	if err != nil {
		err = fmt.Errorf("query coins from %d: %w", height, err)
		return err
	}
	for i := range coins {
		if coins[i].SpentHeight >= height {
			coins[i].SpentTxID = ""
			coins[i].SpentHeight = model.SpentHeightUnspent
		}
		if coins[i].MintHeight >= height {
			coins[i].SpentHeight = model.SpentHeightConflicting
		}
	}
	if err = r.insertCoins(ctx, coins); err != nil {
		err = fmt.Errorf("rollback coins from %d: %w", height, err)
		return err
	}
	return nil
}
