package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const mainChainTransactionsFromQuery = `
SELECT ` + transactionColumns + `
FROM utxo_transactions FINAL
WHERE chain = ? AND network = ? AND main_chain AND block_height >= ?`

// DemoteTransactionsFrom moves every transaction confirmed at or above height off the main chain.
func (r *Repository) DemoteTransactionsFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("demote_transactions_from", chain, network, err, start)
	}()

	txs, err := r.queryTransactions(ctx, mainChainTransactionsFromQuery, string(chain), string(network), height)
	if err != nil {
		err = fmt.Errorf("query transactions from %d: %w", height, err)
		return err
	}
	for i := range txs {
		txs[i].MainChain = false
	}
	if err = r.insertTransactions(ctx, txs); err != nil {
		err = fmt.Errorf("demote transactions from %d: %w", height, err)
		return err
	}
	return nil
}
