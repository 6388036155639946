package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"go.uber.org/zap"
)

const defaultRPCHeaderBatch = 500

// RPCTransport serves headers and blocks from a trusted node over JSON-RPC.
// Block announcements come from an optional signal channel, typically a ZMQ subscription.
type RPCTransport struct {
	client      NodeClient
	logger      *zap.Logger
	headerBatch int64
	signal      <-chan struct{}

	best   atomic.Int64
	events chan model.PeerEvent

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRPCTransport builds an RPC chain source. signal may be nil.
func NewRPCTransport(client NodeClient, signal <-chan struct{}, headerBatch int, logger *zap.Logger) *RPCTransport {
	if headerBatch <= 0 {
		headerBatch = defaultRPCHeaderBatch
	}
	return &RPCTransport{
		client:      client,
		logger:      logger.Named("rpc_transport"),
		headerBatch: int64(headerBatch),
		signal:      signal,
		events:      make(chan model.PeerEvent, 16),
	}
}

// Connect checks the node is reachable and starts relaying block signals.
func (t *RPCTransport) Connect(ctx context.Context) error {
	if _, err := t.refreshBest(); err != nil {
		return fmt.Errorf("rpc connect: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil || t.signal == nil {
		return nil
	}
	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})
	go t.relay(ctx)
	return nil
}

// BestHeight returns the node height seen by the last refresh.
func (t *RPCTransport) BestHeight() int64 {
	return t.best.Load()
}

// GetHeaders returns up to one batch of main chain headers following the first locator hash known to the node.
func (t *RPCTransport) GetHeaders(ctx context.Context, locator []string) ([]model.BlockHeader, error) {
	best, err := t.refreshBest()
	if err != nil {
		return nil, err
	}

	start := int64(1)
	for _, hash := range locator {
		if hash == model.ZeroHash {
			continue
		}
		h, err := chainhash.NewHashFromStr(hash)
		if err != nil {
			return nil, fmt.Errorf("locator hash %s: %w", hash, err)
		}
		verbose, err := t.client.GetBlockHeaderVerbose(h)
		if err != nil || verbose.Confirmations < 0 {
			continue
		}
		start = int64(verbose.Height) + 1
		break
	}

	end := min(start+t.headerBatch-1, best)
	headers := make([]model.BlockHeader, 0, max(end-start+1, 0))
	for height := start; height <= end; height++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hash, err := t.client.GetBlockHash(height)
		if err != nil {
			return nil, fmt.Errorf("get block hash %d: %w", height, err)
		}
		header, err := t.client.GetBlockHeader(hash)
		if err != nil {
			return nil, fmt.Errorf("get block header %s: %w", hash, err)
		}
		headers = append(headers, ConvertHeader(header))
	}
	return headers, nil
}

// GetBlock fetches a full block by hash.
func (t *RPCTransport) GetBlock(ctx context.Context, hash string) (model.RawBlock, error) {
	if err := ctx.Err(); err != nil {
		return model.RawBlock{}, err
	}
	h, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return model.RawBlock{}, fmt.Errorf("block hash %s: %w", hash, err)
	}
	block, err := t.client.GetBlock(h)
	if err != nil {
		return model.RawBlock{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	return ConvertBlock(block), nil
}

// Events delivers block announcements.
func (t *RPCTransport) Events() <-chan model.PeerEvent {
	return t.events
}

// Close stops relaying signals.
func (t *RPCTransport) Close() error {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel = nil
	t.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}

func (t *RPCTransport) refreshBest() (int64, error) {
	count, err := t.client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	t.best.Store(count)
	return count, nil
}

func (t *RPCTransport) relay(ctx context.Context) {
	defer close(t.done)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-t.signal:
			if !ok {
				return
			}
			if _, err := t.refreshBest(); err != nil && !errors.Is(err, context.Canceled) {
				t.logger.Warn("refresh best height failed", zap.Error(err))
			}
			select {
			case t.events <- model.PeerEvent{Kind: model.EventInventory, Peer: "rpc"}:
			default:
			}
		}
	}
}
