package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// UpsertTransactions writes a new version of each transaction.
func (r *Repository) UpsertTransactions(ctx context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_transactions", txs[0].Chain, txs[0].Network, err, start)
	}()

	if err = r.insertTransactions(ctx, txs); err != nil {
		err = fmt.Errorf("upsert transactions: %w", err)
		return err
	}
	return nil
}
