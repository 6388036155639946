// Package ledger maintains the coin ledger: guarded mints and spends, reorg rollback and balance reads.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/retry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPartitionSize  = 1000
	defaultConcurrency    = 4
	defaultPageSize       = 1000
	defaultMaxElapsedTime = 30 * time.Second
)

// Config tunes partitioning and retries of ledger writes.
type Config struct {
	// PartitionSize caps the number of coins or spends per store call.
	PartitionSize int
	// Concurrency caps parallel store calls of one write.
	Concurrency int
	// PageSize is the number of coins fetched per store call while iterating unspent coins.
	PageSize int
	// MaxElapsedTime bounds retries of a failed store call.
	MaxElapsedTime time.Duration
}

func (c Config) withDefaults() Config {
	if c.PartitionSize <= 0 {
		c.PartitionSize = defaultPartitionSize
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
	if c.MaxElapsedTime <= 0 {
		c.MaxElapsedTime = defaultMaxElapsedTime
	}
	return c
}

// Ledger applies coin writes to the store.
type Ledger struct {
	store  Store
	logger *zap.Logger
	cfg    Config
}

// New constructs a Ledger.
func New(store Store, logger *zap.Logger, cfg Config) *Ledger {
	return &Ledger{
		store:  store,
		logger: logger.With(zap.String("component", "coin_ledger")),
		cfg:    cfg.withDefaults(),
	}
}

// Mint stores coins; a coin that already carries a confirmed spend is left untouched.
// Partitions are written in parallel and in no particular order.
func (l *Ledger) Mint(ctx context.Context, coins []model.Coin) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.Concurrency)
	for _, part := range partition(coins, l.cfg.PartitionSize) {
		g.Go(func() error {
			return l.retry(gctx, "mint", func() error {
				return l.store.MintCoins(gctx, part)
			})
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("mint coins: %w", err)
	}
	return nil
}

// Spend marks coins spent. It returns the spends whose coin is missing or already carries a confirmed spend.
func (l *Ledger) Spend(ctx context.Context, spends []model.Spend) ([]model.Spend, error) {
	var (
		mu        sync.Mutex
		unmatched []model.Spend
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.Concurrency)
	for _, part := range partition(spends, l.cfg.PartitionSize) {
		g.Go(func() error {
			return l.retry(gctx, "spend", func() error {
				missed, err := l.store.SpendCoins(gctx, part)
				if err != nil {
					return err
				}
				mu.Lock()
				unmatched = append(unmatched, missed...)
				mu.Unlock()
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("spend coins: %w", err)
	}
	return unmatched, nil
}

// Coins returns the stored coins among keys.
func (l *Ledger) Coins(ctx context.Context, chain model.Chain, network model.Network, keys []model.CoinKey) ([]model.Coin, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var coins []model.Coin
	err := l.retry(ctx, "coins", func() (err error) {
		coins, err = l.store.CoinsByKeys(ctx, chain, network, keys)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("coins by keys: %w", err)
	}
	return coins, nil
}

// SpentBy returns the coins spent by txids.
func (l *Ledger) SpentBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error) {
	if len(txids) == 0 {
		return nil, nil
	}
	var coins []model.Coin
	err := l.retry(ctx, "spent_by", func() (err error) {
		coins, err = l.store.CoinsSpentBy(ctx, chain, network, txids)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("coins spent by: %w", err)
	}
	return coins, nil
}

// MintedBy returns the coins created by txids.
func (l *Ledger) MintedBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error) {
	if len(txids) == 0 {
		return nil, nil
	}
	var coins []model.Coin
	err := l.retry(ctx, "minted_by", func() (err error) {
		coins, err = l.store.CoinsMintedBy(ctx, chain, network, txids)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("coins minted by: %w", err)
	}
	return coins, nil
}

// Rollback reverts the ledger to the state before height: spends at or above it are undone
// and coins minted at or above it become conflicting.
func (l *Ledger) Rollback(ctx context.Context, chain model.Chain, network model.Network, height int64) error {
	err := l.retry(ctx, "rollback", func() error {
		return l.store.RollbackCoinsFrom(ctx, chain, network, height)
	})
	if err != nil {
		return fmt.Errorf("rollback coins from %d: %w", height, err)
	}
	l.logger.Info("coin ledger rolled back",
		zap.String("chain", string(chain)),
		zap.String("network", string(network)),
		zap.Int64("height", height),
	)
	return nil
}

// Balance aggregates unspent coins of a wallet or address.
func (l *Ledger) Balance(ctx context.Context, f model.CoinFilter) (model.Balance, error) {
	if f.Wallet == "" && f.Address == "" {
		return model.Balance{}, errors.New("balance requires a wallet or an address")
	}
	b, err := l.store.WalletBalance(ctx, f)
	if err != nil {
		return model.Balance{}, fmt.Errorf("wallet balance: %w", err)
	}
	return b, nil
}

// Utxos lazily yields unspent coins matching q ordered by (txid, index), fetching one page at a time.
// q.After resumes after a previously seen coin; q.Limit caps the number of coins yielded.
// Every range over the returned sequence starts again from q.After.
func (l *Ledger) Utxos(ctx context.Context, q model.CoinQuery) iter.Seq2[model.Coin, error] {
	return func(yield func(model.Coin, error) bool) {
		after := q.After
		remaining := q.Limit
		for {
			page := l.cfg.PageSize
			if remaining > 0 && remaining < page {
				page = remaining
			}
			pq := q
			pq.After = after
			pq.Limit = page

			coins := make([]model.Coin, 0, page)
			err := l.store.StreamUnspentCoins(ctx, pq, func(c model.Coin) error {
				coins = append(coins, c)
				return nil
			})
			if err != nil {
				yield(model.Coin{}, fmt.Errorf("stream unspent coins: %w", err))
				return
			}
			for _, c := range coins {
				if !yield(c, nil) {
					return
				}
			}
			if remaining > 0 {
				remaining -= len(coins)
				if remaining <= 0 {
					return
				}
			}
			if len(coins) < page {
				return
			}
			last := coins[len(coins)-1].Key()
			after = &last
		}
	}
}

// WalletsForAddresses resolves wallet memberships of addresses in one store call.
func (l *Ledger) WalletsForAddresses(ctx context.Context, chain model.Chain, network model.Network, addresses []string) (map[string][]model.WalletID, error) {
	if len(addresses) == 0 {
		return map[string][]model.WalletID{}, nil
	}
	var wallets map[string][]model.WalletID
	err := l.retry(ctx, "wallets_for_addresses", func() (err error) {
		wallets, err = l.store.WalletsForAddresses(ctx, chain, network, addresses)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("wallets for addresses: %w", err)
	}
	return wallets, nil
}

// AddWalletAddresses assigns addresses to wallets and tags already indexed coins and transactions.
func (l *Ledger) AddWalletAddresses(ctx context.Context, entries []model.WalletAddress) error {
	if len(entries) == 0 {
		return nil
	}
	if err := l.store.AddWalletAddresses(ctx, entries); err != nil {
		return fmt.Errorf("add wallet addresses: %w", err)
	}
	return nil
}

func (l *Ledger) retry(ctx context.Context, operation string, fn func() error) error {
	return retry.Do(ctx, l.logger, operation, l.cfg.MaxElapsedTime, fn)
}

func partition[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	parts := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		parts = append(parts, items[start:min(start+size, len(items))])
	}
	return parts
}
