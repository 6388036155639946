package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// MintCoins writes coins, skipping those whose latest version carries a confirmed spend.
func (r *Repository) MintCoins(ctx context.Context, coins []model.Coin) error {
	if len(coins) == 0 {
		return nil
	}
	chain, network := coins[0].Chain, coins[0].Network
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mint_coins", chain, network, err, start)
	}()

	r.coinWrites.Lock()
	defer r.coinWrites.Unlock()

	keys := make([]model.CoinKey, len(coins))
	for i, c := range coins {
		keys[i] = c.Key()
	}
	stored, err := r.latestCoins(ctx, chain, network, keys)
	if err != nil {
		err = fmt.Errorf("query minted coins: %w", err)
		return err
	}

	writes := make([]model.Coin, 0, len(coins))
	for _, c := range coins {
		if prev, ok := stored[c.Key()]; ok && !prev.Spendable() {
			continue
		}
		writes = append(writes, c)
	}
	if err = r.insertCoins(ctx, writes); err != nil {
		err = fmt.Errorf("mint coins: %w", err)
		return err
	}
	return nil
}
