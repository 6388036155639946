package memory

import (
	"context"
	"sort"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// MintCoins inserts coins, replacing stored ones only while they have no confirmed spend.
func (s *Store) MintCoins(_ context.Context, coins []model.Coin) error {
	if len(coins) == 0 {
		return nil
	}
	defer s.observe("mint_coins", coins[0].Chain, coins[0].Network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range coins {
		k := coinKey{scope{c.Chain, c.Network}, c.Key()}
		if stored, ok := s.coins[k]; ok && !stored.Spendable() {
			continue
		}
		s.coins[k] = cloneCoin(c)
	}
	return nil
}

// SpendCoins applies spends to coins without a confirmed spend and returns the spends that matched nothing.
func (s *Store) SpendCoins(_ context.Context, spends []model.Spend) ([]model.Spend, error) {
	if len(spends) == 0 {
		return nil, nil
	}
	defer s.observe("spend_coins", spends[0].Chain, spends[0].Network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	var unmatched []model.Spend
	for _, sp := range spends {
		k := coinKey{scope{sp.Chain, sp.Network}, sp.Key}
		c, ok := s.coins[k]
		if !ok || !c.Spendable() {
			unmatched = append(unmatched, sp)
			continue
		}
		c.SpentTxID = sp.SpentTxID
		c.SpentHeight = sp.SpentHeight
		s.coins[k] = c
	}
	return unmatched, nil
}

// CoinsByKeys returns the stored coins among keys.
func (s *Store) CoinsByKeys(_ context.Context, chain model.Chain, network model.Network, keys []model.CoinKey) ([]model.Coin, error) {
	defer s.observe("coins_by_keys", chain, network, nil, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Coin, 0, len(keys))
	for _, key := range keys {
		if c, ok := s.coins[coinKey{scope{chain, network}, key}]; ok {
			out = append(out, cloneCoin(c))
		}
	}
	return out, nil
}

// CoinsSpentBy returns coins whose spending transaction is one of txids.
func (s *Store) CoinsSpentBy(_ context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error) {
	defer s.observe("coins_spent_by", chain, network, nil, time.Now())
	return s.coinsWhere(chain, network, txids, func(c model.Coin) string { return c.SpentTxID }), nil
}

// CoinsMintedBy returns coins created by one of txids.
func (s *Store) CoinsMintedBy(_ context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error) {
	defer s.observe("coins_minted_by", chain, network, nil, time.Now())
	return s.coinsWhere(chain, network, txids, func(c model.Coin) string { return c.MintTxID }), nil
}

func (s *Store) coinsWhere(chain model.Chain, network model.Network, txids []string, field func(model.Coin) string) []model.Coin {
	set := make(map[string]struct{}, len(txids))
	for _, txid := range txids {
		set[txid] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Coin
	for k, c := range s.coins {
		if k.chain != chain || k.network != network {
			continue
		}
		if _, ok := set[field(c)]; ok {
			out = append(out, cloneCoin(c))
		}
	}
	sortCoins(out)
	return out
}

// RollbackCoinsFrom reverts spends confirmed at or above height and marks coins minted there as conflicting.
func (s *Store) RollbackCoinsFrom(_ context.Context, chain model.Chain, network model.Network, height int64) error {
	defer s.observe("rollback_coins_from", chain, network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, c := range s.coins {
		if k.chain != chain || k.network != network {
			continue
		}
		if c.SpentHeight >= height {
			c.SpentTxID = ""
			c.SpentHeight = model.SpentHeightUnspent
		}
		if c.MintHeight >= height {
			c.SpentHeight = model.SpentHeightConflicting
		}
		s.coins[k] = c
	}
	return nil
}

// WalletBalance sums unspent coins matching the filter.
func (s *Store) WalletBalance(_ context.Context, f model.CoinFilter) (model.Balance, error) {
	defer s.observe("wallet_balance", f.Chain, f.Network, nil, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	var b model.Balance
	for k, c := range s.coins {
		if k.chain != f.Chain || k.network != f.Network || !c.Unspent() || !matchCoin(c, f) {
			continue
		}
		if c.MintHeight == model.MempoolHeight {
			b.Unconfirmed += c.Value
		} else {
			b.Confirmed += c.Value
		}
		b.Count++
	}
	return b, nil
}

// StreamUnspentCoins calls fn for each unspent coin matching q in (txid, index) order.
func (s *Store) StreamUnspentCoins(ctx context.Context, q model.CoinQuery, fn func(model.Coin) error) (err error) {
	defer func(started time.Time) {
		s.observe("stream_unspent_coins", q.Chain, q.Network, err, started)
	}(time.Now())

	s.mu.RLock()
	var matched []model.Coin
	for k, c := range s.coins {
		if k.chain != q.Chain || k.network != q.Network || !c.Unspent() || !matchCoin(c, q.CoinFilter) {
			continue
		}
		if q.After != nil && !keyAfter(c.Key(), *q.After) {
			continue
		}
		matched = append(matched, cloneCoin(c))
	}
	s.mu.RUnlock()

	sortCoins(matched)
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	for _, c := range matched {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = fn(c); err != nil {
			return err
		}
	}
	return nil
}

func matchCoin(c model.Coin, f model.CoinFilter) bool {
	if f.Address != "" && c.Address != f.Address {
		return false
	}
	if f.Wallet != "" && !model.ContainsWallet(c.Wallets, f.Wallet) {
		return false
	}
	return true
}

func keyAfter(k, after model.CoinKey) bool {
	if k.TxID != after.TxID {
		return k.TxID > after.TxID
	}
	return k.Index > after.Index
}

func sortCoins(coins []model.Coin) {
	sort.Slice(coins, func(i, j int) bool {
		return keyAfter(coins[j].Key(), coins[i].Key())
	})
}
