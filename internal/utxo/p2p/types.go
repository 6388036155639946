package p2p

import (
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

type (
	// Metrics records peer requests and relayed events.
	Metrics interface {
		ObserveRequest(operation string, err error, started time.Time)
		ObserveEvent(kind model.EventKind)
		SetPeers(n int)
	}

	// remote is the part of a connected peer the transport drives.
	remote interface {
		Addr() string
		LastBlock() int32
		QueueMessage(msg wire.Message, done chan<- struct{})
		Disconnect()
	}
)
