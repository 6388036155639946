package clickhouse

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const blockColumns = `chain, network, hash, height, prev_hash, next_hash, merkle_root, block_version, nonce, bits,
	time, time_normalized, transaction_count, size, reward, main_chain, processed`

const insertBlocksQuery = `
INSERT INTO utxo_blocks (
	chain,
	network,
	hash,
	height,
	prev_hash,
	next_hash,
	merkle_root,
	block_version,
	nonce,
	bits,
	time,
	time_normalized,
	transaction_count,
	size,
	reward,
	main_chain,
	processed,
	version
) VALUES`

func (r *Repository) insertBlocks(ctx context.Context, blocks []model.Block) error {
	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	version := r.nextVersion()
	for _, b := range blocks {
		if err := batch.Append(
			string(b.Chain),
			string(b.Network),
			b.Hash,
			b.Height,
			b.PrevHash,
			b.NextHash,
			b.MerkleRoot,
			b.Version,
			b.Nonce,
			b.Bits,
			b.Time,
			b.TimeNormalized,
			int64(b.TransactionCount),
			int64(b.Size),
			b.Reward,
			b.MainChain,
			b.Processed,
			version,
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}

func (r *Repository) queryBlocks(ctx context.Context, query string, args ...any) (blocks []model.Block, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			b              model.Block
			chain, network string
			txCount, size  int64
		)
		if err = rows.Scan(
			&chain,
			&network,
			&b.Hash,
			&b.Height,
			&b.PrevHash,
			&b.NextHash,
			&b.MerkleRoot,
			&b.Version,
			&b.Nonce,
			&b.Bits,
			&b.Time,
			&b.TimeNormalized,
			&txCount,
			&size,
			&b.Reward,
			&b.MainChain,
			&b.Processed,
		); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		b.Chain = model.Chain(chain)
		b.Network = model.Network(network)
		b.TransactionCount = int(txCount)
		b.Size = int(size)
		b.Time = b.Time.UTC()
		b.TimeNormalized = b.TimeNormalized.UTC()
		blocks = append(blocks, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocks: %w", err)
	}
	return blocks, nil
}

func (r *Repository) queryBlock(ctx context.Context, query string, args ...any) (model.Block, bool, error) {
	blocks, err := r.queryBlocks(ctx, query, args...)
	if err != nil || len(blocks) == 0 {
		return model.Block{}, false, err
	}
	return blocks[0], true, nil
}
