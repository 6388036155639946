package indexer

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/workerpool"
)

type (
	// CoinLedger is the coin ledger used while importing transactions.
	CoinLedger interface {
		Mint(ctx context.Context, coins []model.Coin) error
		Spend(ctx context.Context, spends []model.Spend) ([]model.Spend, error)
		Coins(ctx context.Context, chain model.Chain, network model.Network, keys []model.CoinKey) ([]model.Coin, error)
		SpentBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error)
		WalletsForAddresses(ctx context.Context, chain model.Chain, network model.Network, addresses []string) (map[string][]model.WalletID, error)
	}

	// TransactionStore persists indexed transactions.
	TransactionStore interface {
		UpsertTransactions(ctx context.Context, txs []model.Transaction) error
		TransactionsByIDs(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Transaction, error)
	}

	// AddressDeriver resolves the address of an output locking script.
	AddressDeriver interface {
		Derive(script []byte) (string, error)
	}

	// Dispatcher runs named tasks on the worker pool and waits for all of them.
	Dispatcher interface {
		SendAll(ctx context.Context, tasks []workerpool.Task) error
	}

	// Metrics records batch outcomes and data anomalies.
	Metrics interface {
		ObserveBatch(mempool bool, txs int, err error, started time.Time)
		Anomaly(kind string)
	}
)
