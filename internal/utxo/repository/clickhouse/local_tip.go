package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const localTipQuery = `
SELECT ` + blockColumns + `
FROM utxo_blocks FINAL
WHERE chain = ? AND network = ? AND main_chain AND processed
ORDER BY height DESC
LIMIT 1`

// LocalTip returns the highest processed main chain block.
func (r *Repository) LocalTip(ctx context.Context, chain model.Chain, network model.Network) (model.Block, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("local_tip", chain, network, err, start)
	}()

	block, ok, err := r.queryBlock(ctx, localTipQuery, string(chain), string(network))
	if err != nil {
		err = fmt.Errorf("query local tip: %w", err)
		return model.Block{}, false, err
	}
	return block, ok, nil
}
