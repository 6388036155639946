package memory

import (
	"context"
	"sort"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// BlockByHash returns a stored block.
func (s *Store) BlockByHash(_ context.Context, chain model.Chain, network model.Network, hash string) (model.Block, bool, error) {
	defer s.observe("block_by_hash", chain, network, nil, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocks[blockKey{scope{chain, network}, hash}]
	return b, ok, nil
}

// MainChainBlockAtHeight returns the main chain block at height, processed or not.
func (s *Store) MainChainBlockAtHeight(_ context.Context, chain model.Chain, network model.Network, height int64) (model.Block, bool, error) {
	defer s.observe("main_chain_block_at_height", chain, network, nil, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	for k, b := range s.blocks {
		if k.chain == chain && k.network == network && b.MainChain && b.Height == height {
			return b, true, nil
		}
	}
	return model.Block{}, false, nil
}

// LocalTip returns the highest processed main chain block.
func (s *Store) LocalTip(_ context.Context, chain model.Chain, network model.Network) (model.Block, bool, error) {
	defer s.observe("local_tip", chain, network, nil, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	var (
		tip   model.Block
		found bool
	)
	for k, b := range s.blocks {
		if k.chain != chain || k.network != network || !b.MainChain || !b.Processed {
			continue
		}
		if !found || b.Height > tip.Height {
			tip, found = b, true
		}
	}
	return tip, found, nil
}

// RecentMainChainHashes returns up to limit processed main chain hashes, highest first.
func (s *Store) RecentMainChainHashes(_ context.Context, chain model.Chain, network model.Network, limit int) ([]string, error) {
	defer s.observe("recent_main_chain_hashes", chain, network, nil, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	var blocks []model.Block
	for k, b := range s.blocks {
		if k.chain == chain && k.network == network && b.MainChain && b.Processed {
			blocks = append(blocks, b)
		}
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Height > blocks[j].Height })
	if limit > 0 && len(blocks) > limit {
		blocks = blocks[:limit]
	}
	hashes := make([]string, 0, len(blocks))
	for _, b := range blocks {
		hashes = append(hashes, b.Hash)
	}
	return hashes, nil
}

// UpsertBlock inserts or replaces a block by hash.
func (s *Store) UpsertBlock(_ context.Context, block model.Block) error {
	defer s.observe("upsert_block", block.Chain, block.Network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[blockKey{scope{block.Chain, block.Network}, block.Hash}] = block
	return nil
}

// SetNextBlockHash links a stored block to its successor.
func (s *Store) SetNextBlockHash(_ context.Context, chain model.Chain, network model.Network, hash, next string) error {
	defer s.observe("set_next_block_hash", chain, network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	k := blockKey{scope{chain, network}, hash}
	if b, ok := s.blocks[k]; ok {
		b.NextHash = next
		s.blocks[k] = b
	}
	return nil
}

// MarkBlockProcessed flags a block as fully indexed.
func (s *Store) MarkBlockProcessed(_ context.Context, chain model.Chain, network model.Network, hash string) error {
	defer s.observe("mark_block_processed", chain, network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	k := blockKey{scope{chain, network}, hash}
	if b, ok := s.blocks[k]; ok {
		b.Processed = true
		s.blocks[k] = b
	}
	return nil
}

// DemoteBlocksFrom moves every block at or above height off the main chain.
func (s *Store) DemoteBlocksFrom(_ context.Context, chain model.Chain, network model.Network, height int64) error {
	defer s.observe("demote_blocks_from", chain, network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, b := range s.blocks {
		if k.chain == chain && k.network == network && b.Height >= height && b.MainChain {
			b.MainChain = false
			s.blocks[k] = b
		}
	}
	return nil
}
