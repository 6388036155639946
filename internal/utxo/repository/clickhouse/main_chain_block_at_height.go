package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const mainChainBlockAtHeightQuery = `
SELECT ` + blockColumns + `
FROM utxo_blocks FINAL
WHERE chain = ? AND network = ? AND main_chain AND height = ?
LIMIT 1`

// MainChainBlockAtHeight returns the main chain block at height, processed or not.
func (r *Repository) MainChainBlockAtHeight(ctx context.Context, chain model.Chain, network model.Network, height int64) (model.Block, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("main_chain_block_at_height", chain, network, err, start)
	}()

	block, ok, err := r.queryBlock(ctx, mainChainBlockAtHeightQuery, string(chain), string(network), height)
	if err != nil {
		err = fmt.Errorf("query block at height %d: %w", height, err)
		return model.Block{}, false, err
	}
	return block, ok, nil
}
