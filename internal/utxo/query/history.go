package query

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// HistoryCategory classifies a wallet history entry.
type HistoryCategory string

const (
	CategoryReceive HistoryCategory = "receive"
	CategorySend    HistoryCategory = "send"
	CategoryFee     HistoryCategory = "fee"
)

// HistoryEntry is one movement of value into or out of a wallet. Amount is negative for
// sends and fees.
type HistoryEntry struct {
	TxID        string
	Category    HistoryCategory
	Amount      int64
	Height      int64
	Address     string
	OutputIndex uint32
	BlockTime   time.Time
}

// walletEntries turns one transaction into the entries seen by wallet. A transaction spending
// a wallet coin is a send of every output leaving the wallet plus its fee; otherwise each
// output paying the wallet is a receive.
func walletEntries(wallet model.WalletID, tx model.Transaction, minted, spent []model.Coin) []HistoryEntry {
	sending := false
	for _, c := range spent {
		if model.ContainsWallet(c.Wallets, wallet) {
			sending = true
			break
		}
	}

	var entries []HistoryEntry
	entry := func(category HistoryCategory, amount int64, c model.Coin) HistoryEntry {
		return HistoryEntry{
			TxID:        tx.TxID,
			Category:    category,
			Amount:      amount,
			Height:      tx.BlockHeight,
			Address:     c.Address,
			OutputIndex: c.MintIndex,
			BlockTime:   tx.BlockTimeNormalized,
		}
	}

	if sending {
		for _, c := range minted {
			if !model.ContainsWallet(c.Wallets, wallet) {
				entries = append(entries, entry(CategorySend, -c.Value, c))
			}
		}
		if tx.Fee > 0 {
			entries = append(entries, HistoryEntry{
				TxID:      tx.TxID,
				Category:  CategoryFee,
				Amount:    -tx.Fee,
				Height:    tx.BlockHeight,
				BlockTime: tx.BlockTimeNormalized,
			})
		}
		return entries
	}

	for _, c := range minted {
		if model.ContainsWallet(c.Wallets, wallet) {
			entries = append(entries, entry(CategoryReceive, c.Value, c))
		}
	}
	return entries
}
