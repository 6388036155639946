package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// SpendCoins applies spends to coins without a confirmed spend and returns the spends that matched nothing.
func (r *Repository) SpendCoins(ctx context.Context, spends []model.Spend) ([]model.Spend, error) {
	if len(spends) == 0 {
		return nil, nil
	}
	chain, network := spends[0].Chain, spends[0].Network
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("spend_coins", chain, network, err, start)
	}()

	r.coinWrites.Lock()
	defer r.coinWrites.Unlock()

	keys := make([]model.CoinKey, len(spends))
	for i, sp := range spends {
		keys[i] = sp.Key
	}
	stored, err := r.latestCoins(ctx, chain, network, keys)
	if err != nil {
		err = fmt.Errorf("query spent coins: %w", err)
		return nil, err
	}

	var (
		writes    []model.Coin
		unmatched []model.Spend
	)
	for _, sp := range spends {
		c, ok := stored[sp.Key]
		if !ok || !c.Spendable() {
			unmatched = append(unmatched, sp)
			continue
		}
		c.SpentTxID = sp.SpentTxID
		c.SpentHeight = sp.SpentHeight
		stored[sp.Key] = c
		writes = append(writes, c)
	}
	if err = r.insertCoins(ctx, writes); err != nil {
		err = fmt.Errorf("spend coins: %w", err)
		return nil, err
	}
	return unmatched, nil
}
