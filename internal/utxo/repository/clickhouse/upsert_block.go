package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// UpsertBlock writes a new version of the block.
func (r *Repository) UpsertBlock(ctx context.Context, block model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_block", block.Chain, block.Network, err, start)
	}()

	if err = r.insertBlocks(ctx, []model.Block{block}); err != nil {
		err = fmt.Errorf("upsert block %s: %w", block.Hash, err)
		return err
	}
	return nil
}
