package model

import "time"

// RawBlock is a decoded block as received from a peer or node.
type RawBlock struct {
	Hash         string
	PrevHash     string
	MerkleRoot   string
	Version      int32
	Nonce        uint32
	Bits         uint32
	Time         time.Time
	Size         int
	Transactions []RawTransaction
}

// RawTransaction is a decoded transaction.
type RawTransaction struct {
	TxID     string
	Coinbase bool
	Size     int
	LockTime uint32
	Inputs   []RawInput
	Outputs  []RawOutput
}

// OutputValue sums the values of all outputs.
func (t RawTransaction) OutputValue() int64 {
	var total int64
	for _, out := range t.Outputs {
		total += out.Value
	}
	return total
}

// RawInput references a previous output.
type RawInput struct {
	PrevTxID  string
	PrevIndex uint32
}

// RawOutput is a transaction output with its locking script.
type RawOutput struct {
	Value  int64
	Script []byte
}

// ImportParams is a batch of transactions confirmed at one height or seen in the mempool.
type ImportParams struct {
	Chain               Chain
	Network             Network
	Height              int64
	BlockHash           string
	BlockTime           time.Time
	BlockTimeNormalized time.Time
	Transactions        []RawTransaction
}

// Mempool reports whether the batch holds unconfirmed transactions.
func (p ImportParams) Mempool() bool {
	return p.Height == MempoolHeight
}

// EventKind names a peer event.
type EventKind string

const (
	EventBlock       EventKind = "block"
	EventTransaction EventKind = "transaction"
	EventInventory   EventKind = "inventory"
	EventHeaders     EventKind = "headers"
)

// PeerEvent is an unsolicited message relayed by the transport.
type PeerEvent struct {
	Kind        EventKind
	Peer        string
	Block       *RawBlock
	Transaction *RawTransaction
	Headers     []BlockHeader
	// Inventory lists announced block hashes.
	Inventory []string
}
