package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const insertWalletAddressesQuery = `
INSERT INTO utxo_wallet_addresses (
	chain,
	network,
	wallet_id,
	address,
	version
) VALUES`

const coinsByAddressQuery = `
SELECT ` + coinColumns + `
FROM utxo_coins FINAL
WHERE chain = ? AND network = ? AND address = ?`

// AddWalletAddresses registers addresses and tags the coins and transactions already indexed for them.
func (r *Repository) AddWalletAddresses(ctx context.Context, entries []model.WalletAddress) error {
	if len(entries) == 0 {
		return nil
	}
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("add_wallet_addresses", entries[0].Chain, entries[0].Network, err, start)
	}()

	batch, err := r.conn.PrepareBatch(ctx, insertWalletAddressesQuery)
	if err != nil {
		err = fmt.Errorf("prepare wallet addresses batch: %w", err)
		return err
	}
	version := r.nextVersion()
	for _, e := range entries {
		if err = batch.Append(string(e.Chain), string(e.Network), string(e.Wallet), e.Address, version); err != nil {
			err = fmt.Errorf("append wallet address: %w", err)
			return err
		}
	}
	if err = batch.Send(); err != nil {
		err = fmt.Errorf("insert wallet addresses: %w", err)
		return err
	}

	for _, e := range entries {
		if err = r.tagWallet(ctx, e); err != nil {
			err = fmt.Errorf("tag wallet %s: %w", e.Wallet, err)
			return err
		}
	}
	return nil
}

func (r *Repository) tagWallet(ctx context.Context, e model.WalletAddress) error {
	r.coinWrites.Lock()
	defer r.coinWrites.Unlock()

	coins, err := r.queryCoins(ctx, coinsByAddressQuery, string(e.Chain), string(e.Network), e.Address)
	if err != nil {
		return fmt.Errorf("query coins by address: %w", err)
	}

	tag := []model.WalletID{e.Wallet}
	var (
		tagged []model.Coin
		txids  []string
	)
	for _, c := range coins {
		txids = append(txids, c.MintTxID)
		if c.SpentTxID != "" {
			txids = append(txids, c.SpentTxID)
		}
		if model.ContainsWallet(c.Wallets, e.Wallet) {
			continue
		}
		c.Wallets = model.MergeWallets(c.Wallets, tag)
		tagged = append(tagged, c)
	}
	if err := r.insertCoins(ctx, tagged); err != nil {
		return err
	}
	if len(txids) == 0 {
		return nil
	}

	txs, err := r.queryTransactions(ctx, transactionsByIDsQuery, string(e.Chain), string(e.Network), txids)
	if err != nil {
		return fmt.Errorf("query wallet transactions: %w", err)
	}
	var taggedTxs []model.Transaction
	for _, tx := range txs {
		if model.ContainsWallet(tx.Wallets, e.Wallet) {
			continue
		}
		tx.Wallets = model.MergeWallets(tx.Wallets, tag)
		taggedTxs = append(taggedTxs, tx)
	}
	return r.insertTransactions(ctx, taggedTxs)
}
