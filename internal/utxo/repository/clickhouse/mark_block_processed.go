package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// MarkBlockProcessed flags a block as fully indexed.
func (r *Repository) MarkBlockProcessed(ctx context.Context, chain model.Chain, network model.Network, hash string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_block_processed", chain, network, err, start)
	}()

	err = r.updateBlock(ctx, chain, network, hash, func(b *model.Block) { b.Processed = true })
	if err != nil {
		err = fmt.Errorf("mark block %s processed: %w", hash, err)
		return err
	}
	return nil
}
