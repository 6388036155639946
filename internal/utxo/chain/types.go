package chain

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

type (
	// BlockStore persists block metadata and main chain membership.
	BlockStore interface {
		BlockByHash(ctx context.Context, chain model.Chain, network model.Network, hash string) (model.Block, bool, error)
		MainChainBlockAtHeight(ctx context.Context, chain model.Chain, network model.Network, height int64) (model.Block, bool, error)
		LocalTip(ctx context.Context, chain model.Chain, network model.Network) (model.Block, bool, error)
		RecentMainChainHashes(ctx context.Context, chain model.Chain, network model.Network, limit int) ([]string, error)
		UpsertBlock(ctx context.Context, block model.Block) error
		SetNextBlockHash(ctx context.Context, chain model.Chain, network model.Network, hash, next string) error
		MarkBlockProcessed(ctx context.Context, chain model.Chain, network model.Network, hash string) error
		DemoteBlocksFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) error
		DemoteTransactionsFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) error
	}

	// CoinLedger reverts coin state above a height.
	CoinLedger interface {
		Rollback(ctx context.Context, chain model.Chain, network model.Network, height int64) error
	}

	// TransactionIndexer imports the transactions of a block.
	TransactionIndexer interface {
		BatchImport(ctx context.Context, p model.ImportParams) error
	}

	// Schedule answers network parameter questions.
	Schedule interface {
		Reward(height int64) int64
		GenesisHash() string
	}

	// Metrics records block application outcomes and reorgs.
	Metrics interface {
		ObserveBlock(height int64, err error, started time.Time)
		Reorg()
	}
)
