package clickhouse

import (
	"encoding/hex"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const (
	testChain   = model.BTC
	testNetwork = model.Regtest
)

func fillBlock(dest []any, b model.Block) {
	*dest[0].(*string) = string(b.Chain)
	*dest[1].(*string) = string(b.Network)
	*dest[2].(*string) = b.Hash
	*dest[3].(*int64) = b.Height
	*dest[4].(*string) = b.PrevHash
	*dest[5].(*string) = b.NextHash
	*dest[6].(*string) = b.MerkleRoot
	*dest[7].(*int32) = b.Version
	*dest[8].(*uint32) = b.Nonce
	*dest[9].(*uint32) = b.Bits
	*dest[10].(*time.Time) = b.Time
	*dest[11].(*time.Time) = b.TimeNormalized
	*dest[12].(*int64) = int64(b.TransactionCount)
	*dest[13].(*int64) = int64(b.Size)
	*dest[14].(*int64) = b.Reward
	*dest[15].(*bool) = b.MainChain
	*dest[16].(*bool) = b.Processed
}

func fillCoin(dest []any, c model.Coin) {
	*dest[0].(*string) = string(c.Chain)
	*dest[1].(*string) = string(c.Network)
	*dest[2].(*string) = c.MintTxID
	*dest[3].(*uint32) = c.MintIndex
	*dest[4].(*int64) = c.MintHeight
	*dest[5].(*bool) = c.Coinbase
	*dest[6].(*int64) = c.Value
	*dest[7].(*string) = c.Address
	*dest[8].(*string) = hex.EncodeToString(c.Script)
	*dest[9].(*[]string) = walletStrings(c.Wallets)
	*dest[10].(*string) = c.SpentTxID
	*dest[11].(*int64) = c.SpentHeight
}

func testCoin(txid string, index uint32, spentHeight int64) model.Coin {
	return model.Coin{
		Chain:       testChain,
		Network:     testNetwork,
		MintTxID:    txid,
		MintIndex:   index,
		MintHeight:  1,
		Value:       5000,
		Address:     "addr",
		Script:      []byte{0x51},
		SpentHeight: spentHeight,
	}
}
