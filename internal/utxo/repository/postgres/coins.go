package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/jackc/pgx/v4"
)

const coinColumns = `chain, network, mint_txid, mint_index, mint_height, coinbase, value, address, script,
	wallets, spent_txid, spent_height`

func scanCoin(row pgx.Row) (model.Coin, error) {
	var (
		c       model.Coin
		chain   string
		network string
		index   int64
		wallets []string
	)
	if err := row.Scan(
		&chain,
		&network,
		&c.MintTxID,
		&index,
		&c.MintHeight,
		&c.Coinbase,
		&c.Value,
		&c.Address,
		&c.Script,
		&wallets,
		&c.SpentTxID,
		&c.SpentHeight,
	); err != nil {
		return model.Coin{}, err
	}
	c.Chain = model.Chain(chain)
	c.Network = model.Network(network)
	c.MintIndex = uint32(index)
	c.Wallets = walletIDs(wallets)
	return c, nil
}

func (r *Repository) queryCoins(ctx context.Context, query string, args ...any) ([]model.Coin, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coins []model.Coin
	for rows.Next() {
		c, err := scanCoin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coin: %w", err)
		}
		coins = append(coins, c)
	}
	return coins, rows.Err()
}

// MintCoins inserts coins, replacing stored ones only while they have no confirmed spend.
func (r *Repository) MintCoins(ctx context.Context, coins []model.Coin) (err error) {
	if len(coins) == 0 {
		return nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("mint_coins", coins[0].Chain, coins[0].Network, err, start)
	}()

	batch := &pgx.Batch{}
	for _, c := range coins {
		batch.Queue(`INSERT INTO coins (`+coinColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (chain, network, mint_txid, mint_index) DO UPDATE SET
	mint_height = EXCLUDED.mint_height,
	coinbase = EXCLUDED.coinbase,
	value = EXCLUDED.value,
	address = EXCLUDED.address,
	script = EXCLUDED.script,
	wallets = EXCLUDED.wallets,
	spent_txid = EXCLUDED.spent_txid,
	spent_height = EXCLUDED.spent_height
WHERE coins.spent_height < $13`,
			string(c.Chain),
			string(c.Network),
			c.MintTxID,
			int64(c.MintIndex),
			c.MintHeight,
			c.Coinbase,
			c.Value,
			c.Address,
			c.Script,
			walletStrings(c.Wallets),
			c.SpentTxID,
			c.SpentHeight,
			model.SpentHeightMinimum,
		)
	}
	if _, err = r.execBatch(ctx, batch); err != nil {
		return fmt.Errorf("mint coins: %w", err)
	}
	return nil
}

// SpendCoins applies spends to coins without a confirmed spend and returns the spends that matched nothing.
func (r *Repository) SpendCoins(ctx context.Context, spends []model.Spend) (unmatched []model.Spend, err error) {
	if len(spends) == 0 {
		return nil, nil
	}
	start := time.Now()
	defer func() {
		r.metrics.Observe("spend_coins", spends[0].Chain, spends[0].Network, err, start)
	}()

	batch := &pgx.Batch{}
	for _, sp := range spends {
		batch.Queue(`UPDATE coins SET spent_txid = $5, spent_height = $6
WHERE chain = $1 AND network = $2 AND mint_txid = $3 AND mint_index = $4 AND spent_height < $7`,
			string(sp.Chain),
			string(sp.Network),
			sp.Key.TxID,
			int64(sp.Key.Index),
			sp.SpentTxID,
			sp.SpentHeight,
			model.SpentHeightMinimum,
		)
	}
	affected, err := r.execBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("spend coins: %w", err)
	}
	for i, n := range affected {
		if n == 0 {
			unmatched = append(unmatched, spends[i])
		}
	}
	return unmatched, nil
}

// CoinsByKeys returns the stored coins among keys.
func (r *Repository) CoinsByKeys(ctx context.Context, chain model.Chain, network model.Network, keys []model.CoinKey) (coins []model.Coin, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("coins_by_keys", chain, network, err, start)
	}()

	if len(keys) == 0 {
		return nil, nil
	}
	txids := make([]string, len(keys))
	indexes := make([]int64, len(keys))
	for i, k := range keys {
		txids[i] = k.TxID
		indexes[i] = int64(k.Index)
	}
	coins, err = r.queryCoins(ctx, `SELECT `+coinColumns+` FROM coins
WHERE chain = $1 AND network = $2
	AND (mint_txid, mint_index) IN (SELECT * FROM unnest($3::TEXT[], $4::BIGINT[]))`,
		string(chain), string(network), txids, indexes)
	if err != nil {
		return nil, fmt.Errorf("query coins by keys: %w", err)
	}
	return coins, nil
}

// CoinsSpentBy returns coins whose spending transaction is one of txids.
func (r *Repository) CoinsSpentBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) (coins []model.Coin, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("coins_spent_by", chain, network, err, start)
	}()

	if len(txids) == 0 {
		return nil, nil
	}
	coins, err = r.queryCoins(ctx, `SELECT `+coinColumns+` FROM coins
WHERE chain = $1 AND network = $2 AND spent_txid = ANY($3)
ORDER BY mint_txid, mint_index`, string(chain), string(network), txids)
	if err != nil {
		return nil, fmt.Errorf("query coins spent by: %w", err)
	}
	return coins, nil
}

// CoinsMintedBy returns coins created by one of txids.
func (r *Repository) CoinsMintedBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) (coins []model.Coin, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("coins_minted_by", chain, network, err, start)
	}()

	if len(txids) == 0 {
		return nil, nil
	}
	coins, err = r.queryCoins(ctx, `SELECT `+coinColumns+` FROM coins
WHERE chain = $1 AND network = $2 AND mint_txid = ANY($3)
ORDER BY mint_txid, mint_index`, string(chain), string(network), txids)
	if err != nil {
		return nil, fmt.Errorf("query coins minted by: %w", err)
	}
	return coins, nil
}

// RollbackCoinsFrom reverts spends confirmed at or above height and marks coins minted there as conflicting.
func (r *Repository) RollbackCoinsFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("rollback_coins_from", chain, network, err, start)
	}()

	err = r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE coins SET spent_txid = '', spent_height = $4
WHERE chain = $1 AND network = $2 AND spent_height >= $3`,
			string(chain), string(network), height, model.SpentHeightUnspent); err != nil {
			return fmt.Errorf("revert spends: %w", err)
		}
		if _, err := tx.Exec(ctx, `UPDATE coins SET spent_height = $4
WHERE chain = $1 AND network = $2 AND mint_height >= $3`,
			string(chain), string(network), height, model.SpentHeightConflicting); err != nil {
			return fmt.Errorf("mark conflicting mints: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("rollback coins from %d: %w", height, err)
	}
	return nil
}

func coinFilterWhere(f model.CoinFilter) *whereBuilder {
	w := &whereBuilder{}
	w.add("chain = ?", string(f.Chain))
	w.add("network = ?", string(f.Network))
	w.add("spent_txid = ''")
	w.add("spent_height = ?", model.SpentHeightUnspent)
	if f.Address != "" {
		w.add("address = ?", f.Address)
	}
	if f.Wallet != "" {
		w.add("? = ANY(wallets)", string(f.Wallet))
	}
	return w
}

// WalletBalance sums unspent coins matching the filter.
func (r *Repository) WalletBalance(ctx context.Context, f model.CoinFilter) (b model.Balance, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("wallet_balance", f.Chain, f.Network, err, start)
	}()

	w := coinFilterWhere(f)
	err = r.db.QueryRow(ctx, `SELECT
	COALESCE(sum(value) FILTER (WHERE mint_height <> `+strconv.FormatInt(model.MempoolHeight, 10)+`), 0)::BIGINT,
	COALESCE(sum(value) FILTER (WHERE mint_height = `+strconv.FormatInt(model.MempoolHeight, 10)+`), 0)::BIGINT,
	count(*)
FROM coins WHERE `+w.String(), w.args...).Scan(&b.Confirmed, &b.Unconfirmed, &b.Count)
	if err != nil {
		return model.Balance{}, fmt.Errorf("select balance: %w", err)
	}
	return b, nil
}

// StreamUnspentCoins calls fn for each unspent coin matching q in (txid, index) order.
func (r *Repository) StreamUnspentCoins(ctx context.Context, q model.CoinQuery, fn func(model.Coin) error) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("stream_unspent_coins", q.Chain, q.Network, err, start)
	}()

	w := coinFilterWhere(q.CoinFilter)
	if q.After != nil {
		w.add("(mint_txid, mint_index) > (?, ?)", q.After.TxID, int64(q.After.Index))
	}
	query := `SELECT ` + coinColumns + ` FROM coins WHERE ` + w.String() + ` ORDER BY mint_txid, mint_index`
	if q.Limit > 0 {
		query += " LIMIT " + strconv.Itoa(q.Limit)
	}

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return fmt.Errorf("query unspent coins: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, scanErr := scanCoin(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan coin: %w", scanErr)
			return err
		}
		if err = fn(c); err != nil {
			return err
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate unspent coins: %w", err)
	}
	return nil
}
