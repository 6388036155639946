package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/jackc/pgx/v4"
)

// WalletsForAddresses maps each address with at least one wallet to its sorted wallet set.
func (r *Repository) WalletsForAddresses(ctx context.Context, chain model.Chain, network model.Network, addresses []string) (out map[string][]model.WalletID, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("wallets_for_addresses", chain, network, err, start)
	}()

	out = make(map[string][]model.WalletID)
	if len(addresses) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT address, array_agg(wallet_id ORDER BY wallet_id)
FROM wallet_addresses
WHERE chain = $1 AND network = $2 AND address = ANY($3)
GROUP BY address`, string(chain), string(network), addresses)
	if err != nil {
		return nil, fmt.Errorf("query wallet addresses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			address string
			wallets []string
		)
		if err = rows.Scan(&address, &wallets); err != nil {
			return nil, fmt.Errorf("scan wallet address: %w", err)
		}
		out[address] = walletIDs(wallets)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet addresses: %w", err)
	}
	return out, nil
}

// AddWalletAddresses registers addresses and tags the coins and transactions already indexed for them.
func (r *Repository) AddWalletAddresses(ctx context.Context, entries []model.WalletAddress) (err error) {
	if len(entries) == 0 {
		return nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("add_wallet_addresses", entries[0].Chain, entries[0].Network, err, start)
	}()

	err = r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		for _, e := range entries {
			args := []any{string(e.Chain), string(e.Network), string(e.Wallet), e.Address}
			if _, err := tx.Exec(ctx, `INSERT INTO wallet_addresses (chain, network, wallet_id, address)
VALUES ($1, $2, $3, $4)
ON CONFLICT DO NOTHING`, args...); err != nil {
				return fmt.Errorf("insert wallet address: %w", err)
			}
			if _, err := tx.Exec(ctx, `UPDATE transactions SET wallets = array(SELECT DISTINCT unnest(array_append(wallets, $3::TEXT)) ORDER BY 1)
WHERE chain = $1 AND network = $2 AND NOT ($3::TEXT = ANY(wallets)) AND txid IN (
	SELECT mint_txid FROM coins WHERE chain = $1 AND network = $2 AND address = $4
	UNION
	SELECT spent_txid FROM coins WHERE chain = $1 AND network = $2 AND address = $4 AND spent_txid <> ''
)`, args...); err != nil {
				return fmt.Errorf("tag transactions: %w", err)
			}
			if _, err := tx.Exec(ctx, `UPDATE coins SET wallets = array(SELECT DISTINCT unnest(array_append(wallets, $3::TEXT)) ORDER BY 1)
WHERE chain = $1 AND network = $2 AND address = $4 AND NOT ($3::TEXT = ANY(wallets))`, args...); err != nil {
				return fmt.Errorf("tag coins: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("add wallet addresses: %w", err)
	}
	return nil
}
