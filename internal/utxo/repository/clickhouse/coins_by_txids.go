package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const coinsSpentByQuery = `
SELECT ` + coinColumns + `
FROM utxo_coins FINAL
WHERE chain = ? AND network = ? AND spent_txid IN ?
ORDER BY mint_txid, mint_index`

// CoinsSpentBy returns coins whose spending transaction is one of txids.
func (r *Repository) CoinsSpentBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("coins_spent_by", chain, network, err, start)
	}()

	if len(txids) == 0 {
		return nil, nil
	}
	coins, err := r.queryCoins(ctx, coinsSpentByQuery, string(chain), string(network), txids)
	if err != nil {
		err = fmt.Errorf("query coins spent by: %w", err)
		return nil, err
	}
	return coins, nil
}

// CoinsMintedBy returns coins created by one of txids.
func (r *Repository) CoinsMintedBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("coins_minted_by", chain, network, err, start)
	}()

	if len(txids) == 0 {
		return nil, nil
	}
	coins, err := r.queryCoins(ctx, coinsByTxIDsQuery, string(chain), string(network), txids)
	if err != nil {
		err = fmt.Errorf("query coins minted by: %w", err)
		return nil, err
	}
	return coins, nil
}
