package model

import "strconv"

// SpentHeight sentinels. Any value below SpentHeightMinimum means the coin has no confirmed spend.
const (
	// SpentHeightConflicting marks a coin minted by a transaction that was rolled back by a reorg.
	SpentHeightConflicting int64 = -2
	// SpentHeightPending marks a coin spent by a transaction that is only known from the mempool.
	SpentHeightPending int64 = -1
	// SpentHeightUnspent marks a coin with no known spend.
	SpentHeightUnspent int64 = 0
	// SpentHeightMinimum is the lowest height a confirmed spend can carry.
	SpentHeightMinimum int64 = 1
)

// NoAddress is stored when an output script does not resolve to an address.
const NoAddress = "noaddress"

// CoinKey identifies a transaction output.
type CoinKey struct {
	TxID  string
	Index uint32
}

// String renders the key as txid:index.
func (k CoinKey) String() string {
	return k.TxID + ":" + strconv.FormatUint(uint64(k.Index), 10)
}

// Coin is a transaction output tracked through its mint and spend.
type Coin struct {
	Chain       Chain
	Network     Network
	MintTxID    string
	MintIndex   uint32
	MintHeight  int64
	Coinbase    bool
	Value       int64
	Address     string
	Script      []byte
	Wallets     []WalletID
	SpentTxID   string
	SpentHeight int64
}

// Key returns the coin identity within its chain and network.
func (c Coin) Key() CoinKey {
	return CoinKey{TxID: c.MintTxID, Index: c.MintIndex}
}

// Unspent reports whether the coin counts towards a balance.
func (c Coin) Unspent() bool {
	return c.SpentTxID == "" && c.SpentHeight == SpentHeightUnspent
}

// Spendable reports whether a spend may still be applied to the coin.
func (c Coin) Spendable() bool {
	return c.SpentHeight < SpentHeightMinimum
}

// Spend marks the coin identified by Key as spent by SpentTxID at SpentHeight.
type Spend struct {
	Chain       Chain
	Network     Network
	Key         CoinKey
	SpentTxID   string
	SpentHeight int64
}

// CoinFilter selects coins by wallet or by address.
type CoinFilter struct {
	Chain   Chain
	Network Network
	Wallet  WalletID
	Address string
}

// CoinQuery pages through unspent coins ordered by (MintTxID, MintIndex).
type CoinQuery struct {
	CoinFilter
	After *CoinKey
	Limit int
}

// Balance is the aggregated value of unspent coins.
type Balance struct {
	Confirmed   int64
	Unconfirmed int64
	Count       int64
}

// Total returns confirmed plus unconfirmed value.
func (b Balance) Total() int64 {
	return b.Confirmed + b.Unconfirmed
}
