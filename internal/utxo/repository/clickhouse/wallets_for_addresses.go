package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const walletsForAddressesQuery = `
SELECT
	address,
	arraySort(groupUniqArray(wallet_id)) AS wallets
FROM utxo_wallet_addresses FINAL
WHERE chain = ? AND network = ? AND address IN ?
GROUP BY address`

// WalletsForAddresses maps each address with at least one wallet to its sorted wallet set.
func (r *Repository) WalletsForAddresses(ctx context.Context, chain model.Chain, network model.Network, addresses []string) (map[string][]model.WalletID, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("wallets_for_addresses", chain, network, err, start)
	}()

	result := make(map[string][]model.WalletID)
	if len(addresses) == 0 {
		return result, nil
	}

	rows, err := r.conn.Query(ctx, walletsForAddressesQuery, string(chain), string(network), addresses)
	if err != nil {
		err = fmt.Errorf("query wallet addresses: %w", err)
		return nil, err
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			address string
			wallets []string
		)
		if err = rows.Scan(&address, &wallets); err != nil {
			err = fmt.Errorf("scan wallet address: %w", err)
			return nil, err
		}
		result[address] = walletIDs(wallets)
	}
	if err = rows.Err(); err != nil {
		err = fmt.Errorf("iterate wallet addresses: %w", err)
		return nil, err
	}
	return result, nil
}
