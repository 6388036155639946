package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const transactionsByIDsQuery = `
SELECT ` + transactionColumns + `
FROM utxo_transactions FINAL
WHERE chain = ? AND network = ? AND txid IN ?`

// TransactionsByIDs returns the stored transactions among txids.
func (r *Repository) TransactionsByIDs(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_by_ids", chain, network, err, start)
	}()

	if len(txids) == 0 {
		return nil, nil
	}
	txs, err := r.queryTransactions(ctx, transactionsByIDsQuery, string(chain), string(network), txids)
	if err != nil {
		err = fmt.Errorf("query transactions by ids: %w", err)
		return nil, err
	}
	return txs, nil
}
