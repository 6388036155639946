package scheduler

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

type (
	// PeerTransport serves headers and blocks from the network and relays announcements.
	PeerTransport interface {
		Connect(ctx context.Context) error
		BestHeight() int64
		GetHeaders(ctx context.Context, locator []string) ([]model.BlockHeader, error)
		GetBlock(ctx context.Context, hash string) (model.RawBlock, error)
		Events() <-chan model.PeerEvent
		Close() error
	}

	// ChainTracker applies blocks in order.
	ChainTracker interface {
		LocalTip(ctx context.Context) (model.Tip, error)
		BlockByHash(ctx context.Context, hash string) (model.Block, bool, error)
		LocatorHashes(ctx context.Context) ([]string, error)
		AddBlock(ctx context.Context, raw model.RawBlock) error
	}

	// MempoolIndexer imports relayed unconfirmed transactions.
	MempoolIndexer interface {
		BatchImport(ctx context.Context, p model.ImportParams) error
	}

	// Metrics records sync progress.
	Metrics interface {
		ObserveCycle(outcome string, started time.Time)
		SetSyncing(syncing bool)
		SetProgress(bestHeight int64, blocksPerSecond float64, eta time.Duration)
		ObserveMempool(txs int, err error)
	}
)
