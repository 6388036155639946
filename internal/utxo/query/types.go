package query

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"iter"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

type (
	// BlockReader reads the tracked chain.
	BlockReader interface {
		LocalTip(ctx context.Context) (model.Tip, error)
		LocatorHashes(ctx context.Context) ([]string, error)
		BlockByHash(ctx context.Context, hash string) (model.Block, bool, error)
		BlockByHeight(ctx context.Context, height int64) (model.Block, bool, error)
	}

	// CoinReader reads coins and balances.
	CoinReader interface {
		Balance(ctx context.Context, f model.CoinFilter) (model.Balance, error)
		Utxos(ctx context.Context, q model.CoinQuery) iter.Seq2[model.Coin, error]
		MintedBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error)
		SpentBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error)
	}

	// TransactionReader reads transactions and aggregates.
	TransactionReader interface {
		StreamTransactions(ctx context.Context, q model.TransactionQuery, fn func(model.Transaction) error) error
		DailyTransactionCounts(ctx context.Context, chain model.Chain, network model.Network, from, to time.Time) ([]model.DailyCount, error)
		ChainStats(ctx context.Context, chain model.Chain, network model.Network) (model.ChainStats, error)
	}
)
