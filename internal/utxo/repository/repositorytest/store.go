// Package repositorytest holds a conformance suite shared by every storage engine.
package repositorytest

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// Store is the full storage contract of the UTXO index.
type Store interface {
	BlockByHash(ctx context.Context, chain model.Chain, network model.Network, hash string) (model.Block, bool, error)
	MainChainBlockAtHeight(ctx context.Context, chain model.Chain, network model.Network, height int64) (model.Block, bool, error)
	LocalTip(ctx context.Context, chain model.Chain, network model.Network) (model.Block, bool, error)
	RecentMainChainHashes(ctx context.Context, chain model.Chain, network model.Network, limit int) ([]string, error)
	UpsertBlock(ctx context.Context, block model.Block) error
	SetNextBlockHash(ctx context.Context, chain model.Chain, network model.Network, hash, next string) error
	MarkBlockProcessed(ctx context.Context, chain model.Chain, network model.Network, hash string) error
	DemoteBlocksFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) error

	UpsertTransactions(ctx context.Context, txs []model.Transaction) error
	DemoteTransactionsFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) error
	TransactionsByIDs(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Transaction, error)
	StreamTransactions(ctx context.Context, q model.TransactionQuery, fn func(model.Transaction) error) error
	DailyTransactionCounts(ctx context.Context, chain model.Chain, network model.Network, from, to time.Time) ([]model.DailyCount, error)
	ChainStats(ctx context.Context, chain model.Chain, network model.Network) (model.ChainStats, error)

	MintCoins(ctx context.Context, coins []model.Coin) error
	SpendCoins(ctx context.Context, spends []model.Spend) ([]model.Spend, error)
	CoinsByKeys(ctx context.Context, chain model.Chain, network model.Network, keys []model.CoinKey) ([]model.Coin, error)
	CoinsSpentBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error)
	CoinsMintedBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error)
	RollbackCoinsFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) error
	WalletBalance(ctx context.Context, f model.CoinFilter) (model.Balance, error)
	StreamUnspentCoins(ctx context.Context, q model.CoinQuery, fn func(model.Coin) error) error

	WalletsForAddresses(ctx context.Context, chain model.Chain, network model.Network, addresses []string) (map[string][]model.WalletID, error)
	AddWalletAddresses(ctx context.Context, entries []model.WalletAddress) error
}
