package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// CoinsByKeys returns the stored coins among keys.
func (r *Repository) CoinsByKeys(ctx context.Context, chain model.Chain, network model.Network, keys []model.CoinKey) ([]model.Coin, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("coins_by_keys", chain, network, err, start)
	}()

	stored, err := r.latestCoins(ctx, chain, network, keys)
	if err != nil {
		err = fmt.Errorf("query coins by keys: %w", err)
		return nil, err
	}
	coins := make([]model.Coin, 0, len(stored))
	for _, k := range keys {
		if c, ok := stored[k]; ok {
			coins = append(coins, c)
			delete(stored, k)
		}
	}
	return coins, nil
}
