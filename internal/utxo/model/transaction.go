package model

import "time"

// Transaction is the indexed view of a transaction.
type Transaction struct {
	Chain               Chain
	Network             Network
	TxID                string
	BlockHeight         int64
	BlockHash           string
	BlockTime           time.Time
	BlockTimeNormalized time.Time
	Coinbase            bool
	Fee                 int64
	Size                int
	LockTime            uint32
	Value               int64
	Wallets             []WalletID
	MainChain           bool
}

// Confirmed reports whether the transaction belongs to a block.
func (t Transaction) Confirmed() bool {
	return t.BlockHeight > MempoolHeight
}

// TransactionQuery pages through transactions ordered by block height, then txid.
type TransactionQuery struct {
	Chain       Chain
	Network     Network
	Wallet      WalletID
	StartHeight *int64
	EndHeight   *int64
	StartTime   *time.Time
	EndTime     *time.Time
	After       *TransactionCursor
	Limit       int
}

// TransactionCursor is the position after the last transaction of a page.
type TransactionCursor struct {
	BlockHeight int64
	TxID        string
}

// DailyCount is the number of main chain transactions confirmed on a UTC day.
type DailyCount struct {
	Day          time.Time
	Transactions int64
}

// ChainStats summarises the index of one chain and network.
type ChainStats struct {
	Transactions  int64
	UnspentCoins  int64
	UnspentSupply int64
}
