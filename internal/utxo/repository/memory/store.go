// Package memory implements the UTXO index storage contracts on in-process maps.
// Every operation holds the store lock, so guarded writes are atomic.
package memory

import (
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

type (
	// Metrics records storage operation outcomes.
	Metrics interface {
		Observe(operation string, chain model.Chain, network model.Network, err error, started time.Time)
	}
)

type scope struct {
	chain   model.Chain
	network model.Network
}

type blockKey struct {
	scope
	hash string
}

type txKey struct {
	scope
	txid string
}

type coinKey struct {
	scope
	model.CoinKey
}

type walletKey struct {
	scope
	wallet  model.WalletID
	address string
}

// Store keeps blocks, transactions, coins and wallet addresses in memory.
type Store struct {
	metrics Metrics

	mu      sync.RWMutex
	blocks  map[blockKey]model.Block
	txs     map[txKey]model.Transaction
	coins   map[coinKey]model.Coin
	wallets map[walletKey]struct{}
}

// NewStore creates an empty store.
func NewStore(metrics Metrics) *Store {
	return &Store{
		metrics: metrics,
		blocks:  make(map[blockKey]model.Block),
		txs:     make(map[txKey]model.Transaction),
		coins:   make(map[coinKey]model.Coin),
		wallets: make(map[walletKey]struct{}),
	}
}

func (s *Store) observe(operation string, chain model.Chain, network model.Network, err error, started time.Time) {
	if s.metrics != nil {
		s.metrics.Observe(operation, chain, network, err, started)
	}
}

func cloneCoin(c model.Coin) model.Coin {
	c.Wallets = append([]model.WalletID(nil), c.Wallets...)
	c.Script = append([]byte(nil), c.Script...)
	return c
}

func cloneTransaction(tx model.Transaction) model.Transaction {
	tx.Wallets = append([]model.WalletID(nil), tx.Wallets...)
	return tx
}
