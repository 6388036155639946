// Package query serves read-only views of the index.
package query

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	lru "github.com/hashicorp/golang-lru/v2"
	lndclock "github.com/lightningnetwork/lnd/clock"
	"go.uber.org/zap"
)

const (
	defaultPageSize       = 100
	maxPageSize           = 1000
	defaultDailyCacheSize = 32
	defaultDailyDays      = 30
	day                   = 24 * time.Hour
)

var (
	// ErrNotFound is returned when a requested block does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery is returned for queries missing a required selector.
	ErrInvalidQuery = errors.New("invalid query")
)

// Config tunes a Service.
type Config struct {
	DailyCacheSize int
}

// TransactionPage is one page of transactions. Next is nil on the last page.
type TransactionPage struct {
	Transactions []model.Transaction
	Next         *model.TransactionCursor
}

// HistoryPage is one page of wallet history.
type HistoryPage struct {
	Entries []HistoryEntry
	Next    *model.TransactionCursor
}

// Stats summarises the index.
type Stats struct {
	Tip model.Tip
	model.ChainStats
}

// Service answers queries for one chain and network.
type Service struct {
	chain   model.Chain
	network model.Network
	blocks  BlockReader
	coins   CoinReader
	txs     TransactionReader
	logger  *zap.Logger
	clock   lndclock.Clock
	daily   *lru.Cache[string, []model.DailyCount]
}

// New constructs a Service.
func New(
	chain model.Chain,
	network model.Network,
	blocks BlockReader,
	coins CoinReader,
	txs TransactionReader,
	logger *zap.Logger,
	cfg Config,
) (*Service, error) {
	if cfg.DailyCacheSize <= 0 {
		cfg.DailyCacheSize = defaultDailyCacheSize
	}
	daily, err := lru.New[string, []model.DailyCount](cfg.DailyCacheSize)
	if err != nil {
		return nil, fmt.Errorf("daily cache: %w", err)
	}
	return &Service{
		chain:   chain,
		network: network,
		blocks:  blocks,
		coins:   coins,
		txs:     txs,
		logger:  logger.With(zap.String("component", "query"), zap.String("chain", string(chain)), zap.String("network", string(network))),
		clock:   lndclock.NewDefaultClock(),
		daily:   daily,
	}, nil
}

// Balance returns the unspent value of a wallet or an address.
func (s *Service) Balance(ctx context.Context, f model.CoinFilter) (model.Balance, error) {
	if f.Wallet == "" && f.Address == "" {
		return model.Balance{}, fmt.Errorf("%w: wallet or address required", ErrInvalidQuery)
	}
	f.Chain, f.Network = s.chain, s.network
	return s.coins.Balance(ctx, f)
}

// Utxos lists unspent coins of a wallet or an address ordered by (txid, index).
func (s *Service) Utxos(ctx context.Context, q model.CoinQuery) ([]model.Coin, error) {
	if q.Wallet == "" && q.Address == "" {
		return nil, fmt.Errorf("%w: wallet or address required", ErrInvalidQuery)
	}
	q.Chain, q.Network = s.chain, s.network
	q.Limit = pageSize(q.Limit)

	coins := make([]model.Coin, 0, q.Limit)
	for c, err := range s.coins.Utxos(ctx, q) {
		if err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return coins, nil
}

// Transactions returns one page of main chain transactions ordered by height then txid.
func (s *Service) Transactions(ctx context.Context, q model.TransactionQuery) (TransactionPage, error) {
	q.Chain, q.Network = s.chain, s.network
	limit := pageSize(q.Limit)
	q.Limit = limit + 1

	txs := make([]model.Transaction, 0, q.Limit)
	if err := s.txs.StreamTransactions(ctx, q, func(tx model.Transaction) error {
		txs = append(txs, tx)
		return nil
	}); err != nil {
		return TransactionPage{}, fmt.Errorf("stream transactions: %w", err)
	}

	page := TransactionPage{Transactions: txs}
	if len(txs) > limit {
		page.Transactions = txs[:limit]
		last := page.Transactions[limit-1]
		page.Next = &model.TransactionCursor{BlockHeight: last.BlockHeight, TxID: last.TxID}
	}
	return page, nil
}

// WalletHistory returns the send, receive and fee entries of one page of wallet transactions.
func (s *Service) WalletHistory(ctx context.Context, q model.TransactionQuery) (HistoryPage, error) {
	if q.Wallet == "" {
		return HistoryPage{}, fmt.Errorf("%w: wallet required", ErrInvalidQuery)
	}
	page, err := s.Transactions(ctx, q)
	if err != nil {
		return HistoryPage{}, err
	}
	if len(page.Transactions) == 0 {
		return HistoryPage{Next: page.Next}, nil
	}

	txids := make([]string, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		txids = append(txids, tx.TxID)
	}
	minted, err := s.coins.MintedBy(ctx, s.chain, s.network, txids)
	if err != nil {
		return HistoryPage{}, fmt.Errorf("minted coins: %w", err)
	}
	spent, err := s.coins.SpentBy(ctx, s.chain, s.network, txids)
	if err != nil {
		return HistoryPage{}, fmt.Errorf("spent coins: %w", err)
	}

	mintedBy := make(map[string][]model.Coin, len(txids))
	for _, c := range minted {
		mintedBy[c.MintTxID] = append(mintedBy[c.MintTxID], c)
	}
	spentBy := make(map[string][]model.Coin, len(txids))
	for _, c := range spent {
		spentBy[c.SpentTxID] = append(spentBy[c.SpentTxID], c)
	}

	out := HistoryPage{Next: page.Next}
	for _, tx := range page.Transactions {
		outputs := mintedBy[tx.TxID]
		slices.SortFunc(outputs, func(a, b model.Coin) int { return cmp.Compare(a.MintIndex, b.MintIndex) })
		out.Entries = append(out.Entries, walletEntries(q.Wallet, tx, outputs, spentBy[tx.TxID])...)
	}
	return out, nil
}

// BlockByHash returns a block on or off the main chain.
func (s *Service) BlockByHash(ctx context.Context, hash string) (model.Block, error) {
	block, ok, err := s.blocks.BlockByHash(ctx, hash)
	if err != nil {
		return model.Block{}, err
	}
	if !ok {
		return model.Block{}, fmt.Errorf("block %s: %w", hash, ErrNotFound)
	}
	return block, nil
}

// BlockByHeight returns the main chain block at height.
func (s *Service) BlockByHeight(ctx context.Context, height int64) (model.Block, error) {
	block, ok, err := s.blocks.BlockByHeight(ctx, height)
	if err != nil {
		return model.Block{}, err
	}
	if !ok {
		return model.Block{}, fmt.Errorf("block at height %d: %w", height, ErrNotFound)
	}
	return block, nil
}

// Tip returns the local tip.
func (s *Service) Tip(ctx context.Context) (model.Tip, error) {
	return s.blocks.LocalTip(ctx)
}

// LocatorHashes returns the hashes a peer needs to find the fork point with the local chain.
func (s *Service) LocatorHashes(ctx context.Context) ([]string, error) {
	return s.blocks.LocatorHashes(ctx)
}

// DailyTransactions counts main chain transactions for each of the last days complete UTC
// days. Results are cached until the UTC date changes.
func (s *Service) DailyTransactions(ctx context.Context, days int) ([]model.DailyCount, error) {
	if days <= 0 {
		days = defaultDailyDays
	}
	today := s.clock.Now().UTC().Truncate(day)
	key := fmt.Sprintf("%s/%d", today.Format(time.DateOnly), days)
	if counts, ok := s.daily.Get(key); ok {
		return counts, nil
	}

	from := today.Add(-time.Duration(days) * day)
	counts, err := s.txs.DailyTransactionCounts(ctx, s.chain, s.network, from, today)
	if err != nil {
		return nil, fmt.Errorf("daily transaction counts: %w", err)
	}
	s.daily.Add(key, counts)
	s.logger.Debug("daily transactions cached", zap.String("key", key), zap.Int("days", len(counts)))
	return counts, nil
}

// Stats returns the tip with transaction and unspent supply totals.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	tip, err := s.blocks.LocalTip(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats, err := s.txs.ChainStats(ctx, s.chain, s.network)
	if err != nil {
		return Stats{}, fmt.Errorf("chain stats: %w", err)
	}
	return Stats{Tip: tip, ChainStats: stats}, nil
}

func pageSize(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}
