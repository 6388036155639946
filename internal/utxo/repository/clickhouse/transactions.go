package clickhouse

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const transactionColumns = `chain, network, txid, block_height, block_hash, block_time, block_time_normalized,
	coinbase, fee, size, lock_time, value, wallets, main_chain`

const insertTransactionsQuery = `
INSERT INTO utxo_transactions (
	chain,
	network,
	txid,
	block_height,
	block_hash,
	block_time,
	block_time_normalized,
	coinbase,
	fee,
	size,
	lock_time,
	value,
	wallets,
	main_chain,
	version
) VALUES`

func (r *Repository) insertTransactions(ctx context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	version := r.nextVersion()
	for _, tx := range txs {
		if err := batch.Append(
			string(tx.Chain),
			string(tx.Network),
			tx.TxID,
			tx.BlockHeight,
			tx.BlockHash,
			tx.BlockTime,
			tx.BlockTimeNormalized,
			tx.Coinbase,
			tx.Fee,
			int64(tx.Size),
			tx.LockTime,
			tx.Value,
			walletStrings(tx.Wallets),
			tx.MainChain,
			version,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

func scanTransaction(rows Rows) (model.Transaction, error) {
	var (
		tx             model.Transaction
		chain, network string
		size           int64
		wallets        []string
	)
	if err := rows.Scan(
		&chain,
		&network,
		&tx.TxID,
		&tx.BlockHeight,
		&tx.BlockHash,
		&tx.BlockTime,
		&tx.BlockTimeNormalized,
		&tx.Coinbase,
		&tx.Fee,
		&size,
		&tx.LockTime,
		&tx.Value,
		&wallets,
		&tx.MainChain,
	); err != nil {
		return model.Transaction{}, err
	}
	tx.Chain = model.Chain(chain)
	tx.Network = model.Network(network)
	tx.Size = int(size)
	tx.Wallets = walletIDs(wallets)
	tx.BlockTime = tx.BlockTime.UTC()
	tx.BlockTimeNormalized = tx.BlockTimeNormalized.UTC()
	return tx, nil
}

func (r *Repository) queryTransactions(ctx context.Context, query string, args ...any) (txs []model.Transaction, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan transaction: %w", scanErr)
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func walletStrings(wallets []model.WalletID) []string {
	out := make([]string, len(wallets))
	for i, w := range wallets {
		out[i] = string(w)
	}
	return out
}

func walletIDs(values []string) []model.WalletID {
	if len(values) == 0 {
		return nil
	}
	out := make([]model.WalletID, len(values))
	for i, v := range values {
		out[i] = model.WalletID(v)
	}
	return out
}
