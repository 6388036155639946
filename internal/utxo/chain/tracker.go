// Package chain tracks the local best chain: block metadata, reorg detection and rollback.
package chain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/retry"
	"go.uber.org/zap"
)

// LocatorSize is the maximum number of hashes returned by LocatorHashes.
const LocatorSize = 30

const defaultMaxElapsedTime = 30 * time.Second

// ErrReorgDetected signals that the local tip was rolled back and sync must restart from the new tip.
var ErrReorgDetected = errors.New("chain reorganization detected")

// OrphanBlockError reports a block whose parent is not indexed.
type OrphanBlockError struct {
	Hash     string
	PrevHash string
}

func (e *OrphanBlockError) Error() string {
	return fmt.Sprintf("block %s has unknown parent %s", e.Hash, e.PrevHash)
}

// Tracker applies blocks to the index one at a time.
type Tracker struct {
	chain    model.Chain
	network  model.Network
	store    BlockStore
	ledger   CoinLedger
	indexer  TransactionIndexer
	schedule Schedule
	metrics  Metrics
	logger   *zap.Logger

	// MaxElapsedTime bounds retries of store calls.
	MaxElapsedTime time.Duration

	mu sync.Mutex
}

// NewTracker constructs a Tracker for one chain and network.
func NewTracker(
	chain model.Chain,
	network model.Network,
	store BlockStore,
	ledger CoinLedger,
	indexer TransactionIndexer,
	schedule Schedule,
	metrics Metrics,
	logger *zap.Logger,
) *Tracker {
	return &Tracker{
		chain:    chain,
		network:  network,
		store:    store,
		ledger:   ledger,
		indexer:  indexer,
		schedule: schedule,
		metrics:  metrics,
		logger: logger.With(
			zap.String("component", "chain_tracker"),
			zap.String("chain", string(chain)),
			zap.String("network", string(network)),
		),
		MaxElapsedTime: defaultMaxElapsedTime,
	}
}

// LocalTip returns the highest processed main chain block. Exists is false for an empty index.
func (t *Tracker) LocalTip(ctx context.Context) (model.Tip, error) {
	var (
		block model.Block
		ok    bool
	)
	err := t.retry(ctx, "local_tip", func() (err error) {
		block, ok, err = t.store.LocalTip(ctx, t.chain, t.network)
		return err
	})
	if err != nil {
		return model.Tip{}, fmt.Errorf("local tip: %w", err)
	}
	return model.Tip{Block: block, Exists: ok}, nil
}

// LocatorHashes returns up to LocatorSize main chain hashes, highest first. With fewer than
// two blocks indexed it returns the zero hash alone.
func (t *Tracker) LocatorHashes(ctx context.Context) ([]string, error) {
	var hashes []string
	err := t.retry(ctx, "recent_main_chain_hashes", func() (err error) {
		hashes, err = t.store.RecentMainChainHashes(ctx, t.chain, t.network, LocatorSize)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("locator hashes: %w", err)
	}
	if len(hashes) < 2 {
		return []string{model.ZeroHash}, nil
	}
	return hashes, nil
}

// BlockByHash returns a stored block, on or off the main chain.
func (t *Tracker) BlockByHash(ctx context.Context, hash string) (model.Block, bool, error) {
	block, ok, err := t.store.BlockByHash(ctx, t.chain, t.network, hash)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("block %s: %w", hash, err)
	}
	return block, ok, nil
}

// BlockByHeight returns the main chain block at height.
func (t *Tracker) BlockByHeight(ctx context.Context, height int64) (model.Block, bool, error) {
	block, ok, err := t.store.MainChainBlockAtHeight(ctx, t.chain, t.network, height)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("block at height %d: %w", height, err)
	}
	return block, ok, nil
}

// AddBlock applies raw on top of the local tip. It returns ErrReorgDetected when raw does
// not extend the tip, after rolling the tip back, and *OrphanBlockError when the parent of
// raw is unknown. The block is marked processed only once all of its transactions are indexed.
func (t *Tracker) AddBlock(ctx context.Context, raw model.RawBlock) (err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	started := time.Now()
	var height int64
	defer func() {
		t.metrics.ObserveBlock(height, err, started)
	}()

	reorg, err := t.handleReorg(ctx, raw)
	if err != nil {
		return err
	}
	if reorg {
		t.metrics.Reorg()
		return ErrReorgDetected
	}

	var (
		parent      model.Block
		parentFound bool
	)
	err = t.retry(ctx, "block_by_hash", func() (err error) {
		parent, parentFound, err = t.store.BlockByHash(ctx, t.chain, t.network, raw.PrevHash)
		return err
	})
	if err != nil {
		return fmt.Errorf("load parent of %s: %w", raw.Hash, err)
	}

	timeNormalized := raw.Time
	switch {
	case parentFound:
		height = parent.Height + 1
		if floor := parent.TimeNormalized.Add(time.Millisecond); timeNormalized.Before(floor) {
			timeNormalized = floor
		}
	case raw.PrevHash == model.ZeroHash:
		height = model.GenesisHeight
	case raw.PrevHash == t.schedule.GenesisHash():
		// Header sync starts above the network genesis block, which is never served.
		height = model.GenesisHeight + 1
	default:
		return &OrphanBlockError{Hash: raw.Hash, PrevHash: raw.PrevHash}
	}

	if err := t.clearHeight(ctx, height, raw.Hash); err != nil {
		return err
	}

	block := model.Block{
		Chain:            t.chain,
		Network:          t.network,
		Hash:             raw.Hash,
		Height:           height,
		PrevHash:         raw.PrevHash,
		MerkleRoot:       raw.MerkleRoot,
		Version:          raw.Version,
		Nonce:            raw.Nonce,
		Bits:             raw.Bits,
		Time:             raw.Time,
		TimeNormalized:   timeNormalized,
		TransactionCount: len(raw.Transactions),
		Size:             raw.Size,
		Reward:           t.schedule.Reward(height),
		MainChain:        true,
	}
	if err := t.retry(ctx, "upsert_block", func() error {
		return t.store.UpsertBlock(ctx, block)
	}); err != nil {
		return fmt.Errorf("upsert block %s: %w", raw.Hash, err)
	}
	if parentFound {
		if err := t.retry(ctx, "set_next_block_hash", func() error {
			return t.store.SetNextBlockHash(ctx, t.chain, t.network, parent.Hash, raw.Hash)
		}); err != nil {
			return fmt.Errorf("link parent of %s: %w", raw.Hash, err)
		}
	}

	err = t.indexer.BatchImport(ctx, model.ImportParams{
		Chain:               t.chain,
		Network:             t.network,
		Height:              height,
		BlockHash:           raw.Hash,
		BlockTime:           raw.Time,
		BlockTimeNormalized: timeNormalized,
		Transactions:        raw.Transactions,
	})
	if err != nil {
		return fmt.Errorf("index block %s at height %d: %w", raw.Hash, height, err)
	}

	if err := t.retry(ctx, "mark_block_processed", func() error {
		return t.store.MarkBlockProcessed(ctx, t.chain, t.network, raw.Hash)
	}); err != nil {
		return fmt.Errorf("mark block %s processed: %w", raw.Hash, err)
	}

	t.logger.Debug("block added",
		zap.String("hash", raw.Hash),
		zap.Int64("height", height),
		zap.Int("transactions", len(raw.Transactions)),
	)
	return nil
}

// HandleReorg rolls back the local tip when raw does not build on it and reports whether it did.
func (t *Tracker) HandleReorg(ctx context.Context, raw model.RawBlock) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	reorg, err := t.handleReorg(ctx, raw)
	if reorg {
		t.metrics.Reorg()
	}
	return reorg, err
}

// handleReorg compares the declared parent of raw with the local tip only; deeper forks
// unwind one tip at a time as sync re-requests headers from the new tip.
func (t *Tracker) handleReorg(ctx context.Context, raw model.RawBlock) (bool, error) {
	tip, err := t.LocalTip(ctx)
	if err != nil {
		return false, err
	}
	if !tip.Exists || tip.Height == model.GenesisHeight || tip.Hash == raw.PrevHash || tip.Hash == raw.Hash {
		return false, nil
	}

	t.logger.Warn("reorg detected",
		zap.String("tip", tip.Hash),
		zap.Int64("tip_height", tip.Height),
		zap.String("block", raw.Hash),
		zap.String("prev", raw.PrevHash),
	)
	if err := t.rollback(ctx, tip.Height); err != nil {
		return false, err
	}
	return true, nil
}

// clearHeight rolls back a different main chain block left at height by an interrupted run.
func (t *Tracker) clearHeight(ctx context.Context, height int64, hash string) error {
	var (
		occupant model.Block
		ok       bool
	)
	err := t.retry(ctx, "main_chain_block_at_height", func() (err error) {
		occupant, ok, err = t.store.MainChainBlockAtHeight(ctx, t.chain, t.network, height)
		return err
	})
	if err != nil {
		return fmt.Errorf("load block at height %d: %w", height, err)
	}
	if !ok || occupant.Hash == hash {
		return nil
	}
	t.logger.Warn("replacing main chain block",
		zap.String("stale", occupant.Hash),
		zap.String("hash", hash),
		zap.Int64("height", height),
	)
	return t.rollback(ctx, height)
}

// rollback moves blocks and transactions at or above height off the main chain and reverts
// their coins. Rolled back records are kept.
func (t *Tracker) rollback(ctx context.Context, height int64) error {
	if err := t.retry(ctx, "demote_blocks_from", func() error {
		return t.store.DemoteBlocksFrom(ctx, t.chain, t.network, height)
	}); err != nil {
		return fmt.Errorf("demote blocks from %d: %w", height, err)
	}
	if err := t.retry(ctx, "demote_transactions_from", func() error {
		return t.store.DemoteTransactionsFrom(ctx, t.chain, t.network, height)
	}); err != nil {
		return fmt.Errorf("demote transactions from %d: %w", height, err)
	}
	return t.ledger.Rollback(ctx, t.chain, t.network, height)
}

func (t *Tracker) retry(ctx context.Context, operation string, fn func() error) error {
	return retry.Do(ctx, t.logger, operation, t.MaxElapsedTime, fn)
}
