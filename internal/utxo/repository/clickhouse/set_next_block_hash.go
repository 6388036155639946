package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// SetNextBlockHash links a stored block to its successor.
func (r *Repository) SetNextBlockHash(ctx context.Context, chain model.Chain, network model.Network, hash, next string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("set_next_block_hash", chain, network, err, start)
	}()

	err = r.updateBlock(ctx, chain, network, hash, func(b *model.Block) { b.NextHash = next })
	if err != nil {
		err = fmt.Errorf("set next hash of %s: %w", hash, err)
		return err
	}
	return nil
}

func (r *Repository) updateBlock(ctx context.Context, chain model.Chain, network model.Network, hash string, apply func(*model.Block)) error {
	block, ok, err := r.queryBlock(ctx, blockByHashQuery, string(chain), string(network), hash)
	if err != nil || !ok {
		return err
	}
	apply(&block)
	return r.insertBlocks(ctx, []model.Block{block})
}
