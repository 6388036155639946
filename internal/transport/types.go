package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

type (
	// TipReader reads the local tip.
	TipReader interface {
		Tip(ctx context.Context) (model.Tip, error)
	}

	// SyncStatus reports whether a sync cycle is running.
	SyncStatus interface {
		Syncing() bool
		BestHeight() int64
	}
)
