package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const mainChainBlocksFromQuery = `
SELECT ` + blockColumns + `
FROM utxo_blocks FINAL
WHERE chain = ? AND network = ? AND main_chain AND height >= ?`

// DemoteBlocksFrom moves every block at or above height off the main chain.
func (r *Repository) DemoteBlocksFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("demote_blocks_from", chain, network, err, start)
	}()

	blocks, err := r.queryBlocks(ctx, mainChainBlocksFromQuery, string(chain), string(network), height)
	if err != nil {
		err = fmt.Errorf("query blocks from %d: %w", height, err)
		return err
	}
	for i := range blocks {
		blocks[i].MainChain = false
	}
	if err = r.insertBlocks(ctx, blocks); err != nil {
		err = fmt.Errorf("demote blocks from %d: %w", height, err)
		return err
	}
	return nil
}
