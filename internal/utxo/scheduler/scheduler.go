// Package scheduler drives header-first sync against the peer network and relays
// announced blocks and transactions into the index.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/indexer"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/batcher"
	lru "github.com/hashicorp/golang-lru/v2"
	lndclock "github.com/lightningnetwork/lnd/clock"
	"github.com/lightningnetwork/lnd/ticker"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrTransportClosed is returned by Run when the peer event stream ends.
var ErrTransportClosed = errors.New("peer transport closed")

// Config tunes a Scheduler. Zero values fall back to defaults.
type Config struct {
	BlockCacheSize   int
	RetryInterval    time.Duration
	MaxRetryInterval time.Duration
	ResyncInterval   time.Duration

	MempoolBatchSize int
	MempoolInterval  time.Duration
	MempoolRPS       int
}

// Scheduler runs sync cycles and the live relay loop for one chain and network.
type Scheduler struct {
	chain     model.Chain
	network   model.Network
	transport PeerTransport
	tracker   ChainTracker
	mempool   MempoolIndexer
	metrics   Metrics
	logger    *zap.Logger
	cfg       Config

	state      atomic.Int32
	apply      sync.Mutex
	fetches    singleflight.Group
	prefetches sync.WaitGroup
	blocks     *lru.Cache[string, model.RawBlock]
	throughput *Throughput
	clock      lndclock.Clock
	resync     ticker.Ticker
	sleep      func(context.Context, time.Duration) error
}

// New constructs a Scheduler.
func New(
	chain model.Chain,
	network model.Network,
	transport PeerTransport,
	tracker ChainTracker,
	mempool MempoolIndexer,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Scheduler, error) {
	if cfg.BlockCacheSize <= 0 {
		cfg.BlockCacheSize = defaultBlockCacheSize
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = retryInterval
	}
	if cfg.MaxRetryInterval <= 0 {
		cfg.MaxRetryInterval = maxRetryInterval
	}
	if cfg.ResyncInterval <= 0 {
		cfg.ResyncInterval = defaultResyncInterval
	}
	if cfg.MempoolBatchSize <= 0 {
		cfg.MempoolBatchSize = mempoolBatchSize
	}
	if cfg.MempoolInterval <= 0 {
		cfg.MempoolInterval = mempoolFlushInterval
	}
	if cfg.MempoolRPS <= 0 {
		cfg.MempoolRPS = mempoolFlushRPS
	}

	blocks, err := lru.New[string, model.RawBlock](cfg.BlockCacheSize)
	if err != nil {
		return nil, fmt.Errorf("block cache: %w", err)
	}

	return &Scheduler{
		chain:     chain,
		network:   network,
		transport: transport,
		tracker:   tracker,
		mempool:   mempool,
		metrics:   metrics,
		logger: logger.With(
			zap.String("component", "sync_scheduler"),
			zap.String("chain", string(chain)),
			zap.String("network", string(network)),
		),
		cfg:        cfg,
		blocks:     blocks,
		throughput: NewThroughput(ThroughputWindow),
		clock:      lndclock.NewDefaultClock(),
		resync:     ticker.New(cfg.ResyncInterval),
		sleep:      clock.SleepWithContext,
	}, nil
}

// State returns whether a sync cycle is currently running.
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// Syncing reports whether a sync cycle is running.
func (s *Scheduler) Syncing() bool {
	return s.State() == Syncing
}

// BestHeight returns the best height advertised by the peer network.
func (s *Scheduler) BestHeight() int64 {
	return s.transport.BestHeight()
}

// Sync catches the index up with the peer network. A call made while another sync is
// running returns immediately. Reorgs restart the cycle from the new tip, transient
// failures back off and retry, and data anomalies halt sync with the offending error.
func (s *Scheduler) Sync(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(Idle), int32(Syncing)) {
		s.logger.Debug("sync already running")
		return nil
	}
	s.metrics.SetSyncing(true)
	defer func() {
		s.state.Store(int32(Idle))
		s.metrics.SetSyncing(false)
	}()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.cfg.RetryInterval
	policy.MaxInterval = s.cfg.MaxRetryInterval
	policy.MaxElapsedTime = 0

	for {
		started := s.clock.Now()
		err := s.cycle(ctx)
		switch {
		case err == nil:
			s.metrics.ObserveCycle(metrics.OutcomeDone, started)
			return nil
		case ctx.Err() != nil:
			s.metrics.ObserveCycle(metrics.OutcomeCanceled, started)
			return ctx.Err()
		case errors.Is(err, chain.ErrReorgDetected):
			s.metrics.ObserveCycle(metrics.OutcomeReorg, started)
			s.logger.Info("reorg detected, restarting sync from new tip")
			policy.Reset()
		case Halts(err):
			s.metrics.ObserveCycle(metrics.OutcomeHalted, started)
			s.logger.Error("sync halted", zap.Error(err))
			return err
		default:
			s.metrics.ObserveCycle(metrics.OutcomeRetry, started)
			wait := policy.NextBackOff()
			s.logger.Warn("sync cycle failed, backing off", zap.Error(err), zap.Duration("sleep", wait))
			if err := s.sleep(ctx, wait); err != nil {
				return err
			}
		}
	}
}

// cycle requests headers from the local locator and applies their blocks until the
// network returns fewer than two headers. Cancellation is checked between blocks only.
func (s *Scheduler) cycle(ctx context.Context) error {
	defer s.prefetches.Wait()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tip, err := s.tracker.LocalTip(ctx)
		if err != nil {
			return err
		}
		best := s.transport.BestHeight()
		locator, err := s.tracker.LocatorHashes(ctx)
		if err != nil {
			return err
		}
		headers, err := s.transport.GetHeaders(ctx, locator)
		if err != nil {
			return fmt.Errorf("get headers: %w", err)
		}
		s.logger.Debug("headers received",
			zap.Int64("tip", tip.Height),
			zap.Bool("tip_exists", tip.Exists),
			zap.Int64("best", best),
			zap.Int("headers", len(headers)),
		)

		height := tip.Height
		for i, header := range headers {
			if err := ctx.Err(); err != nil {
				return err
			}
			if i+1 < len(headers) {
				next := headers[i+1].Hash
				s.prefetches.Go(func() { s.prefetch(ctx, next) })
			}

			block, err := s.block(ctx, header.Hash)
			if err != nil {
				return err
			}
			started := s.clock.Now()
			if err := s.addBlock(context.WithoutCancel(ctx), block); err != nil {
				return err
			}
			height++
			s.throughput.Add(s.clock.Now().Sub(started))
			s.metrics.SetProgress(best, s.throughput.BlocksPerSecond(), s.throughput.ETA(best-height))
		}

		if len(headers) < 2 {
			s.logger.Info("sync complete", zap.Int64("height", height), zap.Int64("best", best))
			return nil
		}
	}
}

func (s *Scheduler) addBlock(ctx context.Context, block model.RawBlock) error {
	s.apply.Lock()
	defer s.apply.Unlock()
	return s.tracker.AddBlock(ctx, block)
}

// block returns a fetched block, joining any in-flight request for the same hash.
func (s *Scheduler) block(ctx context.Context, hash string) (model.RawBlock, error) {
	if block, ok := s.blocks.Get(hash); ok {
		return block, nil
	}
	v, err, _ := s.fetches.Do(hash, func() (any, error) {
		block, err := s.transport.GetBlock(ctx, hash)
		if err != nil {
			return nil, err
		}
		s.blocks.Add(hash, block)
		return block, nil
	})
	if err != nil {
		return model.RawBlock{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	return v.(model.RawBlock), nil
}

func (s *Scheduler) prefetch(ctx context.Context, hash string) {
	if _, err := s.block(ctx, hash); err != nil && ctx.Err() == nil {
		s.logger.Debug("prefetch failed", zap.String("hash", hash), zap.Error(err))
	}
}

// Run connects the transport, catches up and then follows peer announcements until ctx
// is canceled, the transport closes or sync halts.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.transport.Connect(ctx); err != nil {
		return fmt.Errorf("connect transport: %w", err)
	}
	defer func() {
		if err := s.transport.Close(); err != nil {
			s.logger.Warn("close transport", zap.Error(err))
		}
	}()

	mempool := batcher.New(s.logger.Named("mempool"), s.importMempool, batcher.Config[model.RawTransaction]{
		Size:     s.cfg.MempoolBatchSize,
		Interval: s.cfg.MempoolInterval,
		RPS:      s.cfg.MempoolRPS,
		Key:      func(tx model.RawTransaction) string { return tx.TxID },
	})
	mempool.Start(ctx)
	defer mempool.Stop()

	s.resync.Resume()
	defer s.resync.Stop()

	if err := s.Sync(ctx); err != nil {
		return err
	}

	events := s.transport.Events()
	for {
		var err error
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.resync.Ticks():
			err = s.Sync(ctx)
		case event, ok := <-events:
			if !ok {
				return ErrTransportClosed
			}
			err = s.handleEvent(ctx, event, mempool)
		}
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return ctx.Err()
		case Halts(err):
			return err
		default:
			s.logger.Warn("run iteration failed", zap.Error(err))
		}
	}
}

func (s *Scheduler) handleEvent(ctx context.Context, event model.PeerEvent, mempool *batcher.Batcher[model.RawTransaction]) error {
	switch event.Kind {
	case model.EventInventory, model.EventHeaders:
		return s.Sync(ctx)
	case model.EventBlock:
		if event.Block == nil {
			return nil
		}
		if s.State() == Syncing {
			return nil
		}
		raw := *event.Block
		known, ok, err := s.tracker.BlockByHash(ctx, raw.Hash)
		if err != nil {
			return err
		}
		if ok && known.MainChain && known.Processed {
			s.logger.Debug("relayed block already indexed", zap.String("hash", raw.Hash))
			return nil
		}
		tip, err := s.tracker.LocalTip(ctx)
		if err != nil {
			return err
		}
		if tip.Exists && tip.Hash != raw.PrevHash {
			s.logger.Info("relayed block does not extend the tip, syncing",
				zap.String("hash", raw.Hash),
				zap.String("tip", tip.Hash),
			)
			return s.Sync(ctx)
		}
		err = s.addBlock(context.WithoutCancel(ctx), raw)
		var orphan *chain.OrphanBlockError
		if errors.Is(err, chain.ErrReorgDetected) || errors.As(err, &orphan) {
			s.logger.Info("relayed block rejected, syncing",
				zap.String("hash", raw.Hash),
				zap.Error(err),
			)
			return s.Sync(ctx)
		}
		return err
	case model.EventTransaction:
		if event.Transaction == nil {
			return nil
		}
		if !mempool.Offer(*event.Transaction) {
			s.logger.Debug("mempool buffer full, dropping transaction", zap.String("txid", event.Transaction.TxID))
		}
		return nil
	default:
		s.logger.Debug("ignoring peer event", zap.String("kind", string(event.Kind)), zap.String("peer", event.Peer))
		return nil
	}
}

func (s *Scheduler) importMempool(ctx context.Context, txs []model.RawTransaction) error {
	s.apply.Lock()
	defer s.apply.Unlock()

	now := s.clock.Now()
	err := s.mempool.BatchImport(ctx, model.ImportParams{
		Chain:               s.chain,
		Network:             s.network,
		Height:              model.MempoolHeight,
		BlockTime:           now,
		BlockTimeNormalized: now,
		Transactions:        txs,
	})
	s.metrics.ObserveMempool(len(txs), err)
	return err
}

// Halts reports whether err is a data anomaly that must stop sync.
func Halts(err error) bool {
	var (
		missing  *indexer.MissingUtxoError
		double   *indexer.DoubleSpendError
		negative *indexer.NegativeFeeError
		address  *indexer.AddressDerivationError
	)
	return errors.As(err, &missing) ||
		errors.As(err, &double) ||
		errors.As(err, &negative) ||
		errors.As(err, &address)
}
