package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

const coinColumns = `chain, network, mint_txid, mint_index, mint_height, coinbase, value, address, script,
	wallets, spent_txid, spent_height`

const insertCoinsQuery = `
INSERT INTO utxo_coins (
	chain,
	network,
	mint_txid,
	mint_index,
	mint_height,
	coinbase,
	value,
	address,
	script,
	wallets,
	spent_txid,
	spent_height,
	version
) VALUES`

func (r *Repository) insertCoins(ctx context.Context, coins []model.Coin) error {
	if len(coins) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertCoinsQuery)
	if err != nil {
		return fmt.Errorf("prepare coins batch: %w", err)
	}

	version := r.nextVersion()
	for _, c := range coins {
		if err := batch.Append(
			string(c.Chain),
			string(c.Network),
			c.MintTxID,
			c.MintIndex,
			c.MintHeight,
			c.Coinbase,
			c.Value,
			c.Address,
			hex.EncodeToString(c.Script),
			walletStrings(c.Wallets),
			c.SpentTxID,
			c.SpentHeight,
			version,
		); err != nil {
			return fmt.Errorf("append coin: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert coins: %w", err)
	}
	return nil
}

func scanCoin(rows Rows) (model.Coin, error) {
	var (
		c              model.Coin
		chain, network string
		script         string
		wallets        []string
	)
	if err := rows.Scan(
		&chain,
		&network,
		&c.MintTxID,
		&c.MintIndex,
		&c.MintHeight,
		&c.Coinbase,
		&c.Value,
		&c.Address,
		&script,
		&wallets,
		&c.SpentTxID,
		&c.SpentHeight,
	); err != nil {
		return model.Coin{}, err
	}
	decoded, err := hex.DecodeString(script)
	if err != nil {
		return model.Coin{}, fmt.Errorf("decode script: %w", err)
	}
	c.Chain = model.Chain(chain)
	c.Network = model.Network(network)
	c.Script = decoded
	c.Wallets = walletIDs(wallets)
	return c, nil
}

func (r *Repository) queryCoins(ctx context.Context, query string, args ...any) (coins []model.Coin, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		c, scanErr := scanCoin(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan coin: %w", scanErr)
		}
		coins = append(coins, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coins: %w", err)
	}
	return coins, nil
}

const coinsByTxIDsQuery = `
SELECT ` + coinColumns + `
FROM utxo_coins FINAL
WHERE chain = ? AND network = ? AND mint_txid IN ?
ORDER BY mint_txid, mint_index`

// latestCoins returns the latest version of every stored coin among keys, keyed by coin key.
func (r *Repository) latestCoins(ctx context.Context, chain model.Chain, network model.Network, keys []model.CoinKey) (map[model.CoinKey]model.Coin, error) {
	wanted := make(map[model.CoinKey]struct{}, len(keys))
	seen := make(map[string]struct{}, len(keys))
	txids := make([]string, 0, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
		if _, ok := seen[k.TxID]; ok {
			continue
		}
		seen[k.TxID] = struct{}{}
		txids = append(txids, k.TxID)
	}
	out := make(map[model.CoinKey]model.Coin, len(keys))
	if len(txids) == 0 {
		return out, nil
	}

	coins, err := r.queryCoins(ctx, coinsByTxIDsQuery, string(chain), string(network), txids)
	if err != nil {
		return nil, err
	}
	for _, c := range coins {
		if _, ok := wanted[c.Key()]; ok {
			out[c.Key()] = c
		}
	}
	return out, nil
}
