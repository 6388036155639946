package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/jackc/pgx/v4"
)

const blockColumns = `chain, network, hash, height, prev_hash, next_hash, merkle_root, version, nonce, bits,
	time, time_normalized, transaction_count, size, reward, main_chain, processed`

func scanBlock(row pgx.Row) (model.Block, error) {
	var (
		b           model.Block
		chain       string
		network     string
		nonce, bits int64
	)
	if err := row.Scan(
		&chain,
		&network,
		&b.Hash,
		&b.Height,
		&b.PrevHash,
		&b.NextHash,
		&b.MerkleRoot,
		&b.Version,
		&nonce,
		&bits,
		&b.Time,
		&b.TimeNormalized,
		&b.TransactionCount,
		&b.Size,
		&b.Reward,
		&b.MainChain,
		&b.Processed,
	); err != nil {
		return model.Block{}, err
	}
	b.Chain = model.Chain(chain)
	b.Network = model.Network(network)
	b.Nonce = uint32(nonce)
	b.Bits = uint32(bits)
	b.Time = b.Time.UTC()
	b.TimeNormalized = b.TimeNormalized.UTC()
	return b, nil
}

func (r *Repository) queryBlock(ctx context.Context, query string, args ...any) (model.Block, bool, error) {
	b, err := scanBlock(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Block{}, false, nil
	}
	if err != nil {
		return model.Block{}, false, err
	}
	return b, true, nil
}

// BlockByHash returns a stored block.
func (r *Repository) BlockByHash(ctx context.Context, chain model.Chain, network model.Network, hash string) (b model.Block, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_by_hash", chain, network, err, start)
	}()

	b, ok, err = r.queryBlock(ctx, `SELECT `+blockColumns+` FROM blocks WHERE chain = $1 AND network = $2 AND hash = $3`,
		string(chain), string(network), hash)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("select block %s: %w", hash, err)
	}
	return b, ok, nil
}

// MainChainBlockAtHeight returns the main chain block at height, processed or not.
func (r *Repository) MainChainBlockAtHeight(ctx context.Context, chain model.Chain, network model.Network, height int64) (b model.Block, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("main_chain_block_at_height", chain, network, err, start)
	}()

	b, ok, err = r.queryBlock(ctx, `SELECT `+blockColumns+` FROM blocks
WHERE chain = $1 AND network = $2 AND main_chain AND height = $3
LIMIT 1`, string(chain), string(network), height)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("select block at height %d: %w", height, err)
	}
	return b, ok, nil
}

// LocalTip returns the highest processed main chain block.
func (r *Repository) LocalTip(ctx context.Context, chain model.Chain, network model.Network) (b model.Block, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("local_tip", chain, network, err, start)
	}()

	b, ok, err = r.queryBlock(ctx, `SELECT `+blockColumns+` FROM blocks
WHERE chain = $1 AND network = $2 AND main_chain AND processed
ORDER BY height DESC
LIMIT 1`, string(chain), string(network))
	if err != nil {
		return model.Block{}, false, fmt.Errorf("select local tip: %w", err)
	}
	return b, ok, nil
}

// RecentMainChainHashes returns up to limit processed main chain hashes, highest first.
func (r *Repository) RecentMainChainHashes(ctx context.Context, chain model.Chain, network model.Network, limit int) (hashes []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_main_chain_hashes", chain, network, err, start)
	}()

	rows, err := r.db.Query(ctx, `SELECT hash FROM blocks
WHERE chain = $1 AND network = $2 AND main_chain AND processed
ORDER BY height DESC
LIMIT $3`, string(chain), string(network), limit)
	if err != nil {
		return nil, fmt.Errorf("query recent hashes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hash string
		if err = rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("scan hash: %w", err)
		}
		hashes = append(hashes, hash)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent hashes: %w", err)
	}
	return hashes, nil
}

// UpsertBlock inserts or replaces a block by hash.
func (r *Repository) UpsertBlock(ctx context.Context, block model.Block) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_block", block.Chain, block.Network, err, start)
	}()

	_, err = r.db.Exec(ctx, `INSERT INTO blocks (`+blockColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (chain, network, hash) DO UPDATE SET
	height = EXCLUDED.height,
	prev_hash = EXCLUDED.prev_hash,
	next_hash = EXCLUDED.next_hash,
	merkle_root = EXCLUDED.merkle_root,
	version = EXCLUDED.version,
	nonce = EXCLUDED.nonce,
	bits = EXCLUDED.bits,
	time = EXCLUDED.time,
	time_normalized = EXCLUDED.time_normalized,
	transaction_count = EXCLUDED.transaction_count,
	size = EXCLUDED.size,
	reward = EXCLUDED.reward,
	main_chain = EXCLUDED.main_chain,
	processed = EXCLUDED.processed`,
		string(block.Chain),
		string(block.Network),
		block.Hash,
		block.Height,
		block.PrevHash,
		block.NextHash,
		block.MerkleRoot,
		block.Version,
		int64(block.Nonce),
		int64(block.Bits),
		block.Time,
		block.TimeNormalized,
		block.TransactionCount,
		block.Size,
		block.Reward,
		block.MainChain,
		block.Processed,
	)
	if err != nil {
		return fmt.Errorf("upsert block %s: %w", block.Hash, err)
	}
	return nil
}

// SetNextBlockHash links a stored block to its successor.
func (r *Repository) SetNextBlockHash(ctx context.Context, chain model.Chain, network model.Network, hash, next string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("set_next_block_hash", chain, network, err, start)
	}()

	if _, err = r.db.Exec(ctx, `UPDATE blocks SET next_hash = $4 WHERE chain = $1 AND network = $2 AND hash = $3`,
		string(chain), string(network), hash, next); err != nil {
		return fmt.Errorf("set next hash of %s: %w", hash, err)
	}
	return nil
}

// MarkBlockProcessed flags a block as fully indexed.
func (r *Repository) MarkBlockProcessed(ctx context.Context, chain model.Chain, network model.Network, hash string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("mark_block_processed", chain, network, err, start)
	}()

	if _, err = r.db.Exec(ctx, `UPDATE blocks SET processed = TRUE WHERE chain = $1 AND network = $2 AND hash = $3`,
		string(chain), string(network), hash); err != nil {
		return fmt.Errorf("mark block %s processed: %w", hash, err)
	}
	return nil
}

// DemoteBlocksFrom moves every block at or above height off the main chain.
func (r *Repository) DemoteBlocksFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("demote_blocks_from", chain, network, err, start)
	}()

	if _, err = r.db.Exec(ctx, `UPDATE blocks SET main_chain = FALSE
WHERE chain = $1 AND network = $2 AND height >= $3 AND main_chain`,
		string(chain), string(network), height); err != nil {
		return fmt.Errorf("demote blocks from %d: %w", height, err)
	}
	return nil
}
