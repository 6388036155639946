package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const blockByHashQuery = `
SELECT ` + blockColumns + `
FROM utxo_blocks FINAL
WHERE chain = ? AND network = ? AND hash = ?`

// BlockByHash returns a stored block.
func (r *Repository) BlockByHash(ctx context.Context, chain model.Chain, network model.Network, hash string) (model.Block, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_by_hash", chain, network, err, start)
	}()

	block, ok, err := r.queryBlock(ctx, blockByHashQuery, string(chain), string(network), hash)
	if err != nil {
		err = fmt.Errorf("query block %s: %w", hash, err)
		return model.Block{}, false, err
	}
	return block, ok, nil
}
