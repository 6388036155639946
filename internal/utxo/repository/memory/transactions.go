package memory

import (
	"context"
	"sort"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// UpsertTransactions inserts or replaces transactions by txid.
func (s *Store) UpsertTransactions(_ context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	defer s.observe("upsert_transactions", txs[0].Chain, txs[0].Network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range txs {
		s.txs[txKey{scope{tx.Chain, tx.Network}, tx.TxID}] = cloneTransaction(tx)
	}
	return nil
}

// DemoteTransactionsFrom moves every transaction confirmed at or above height off the main chain.
func (s *Store) DemoteTransactionsFrom(_ context.Context, chain model.Chain, network model.Network, height int64) error {
	defer s.observe("demote_transactions_from", chain, network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, tx := range s.txs {
		if k.chain == chain && k.network == network && tx.BlockHeight >= height && tx.MainChain {
			tx.MainChain = false
			s.txs[k] = tx
		}
	}
	return nil
}

// TransactionsByIDs returns the stored transactions among txids.
func (s *Store) TransactionsByIDs(_ context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Transaction, error) {
	defer s.observe("transactions_by_ids", chain, network, nil, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, 0, len(txids))
	for _, txid := range txids {
		if tx, ok := s.txs[txKey{scope{chain, network}, txid}]; ok {
			out = append(out, cloneTransaction(tx))
		}
	}
	return out, nil
}

// StreamTransactions calls fn for each main chain transaction matching q in (height, txid) order.
func (s *Store) StreamTransactions(ctx context.Context, q model.TransactionQuery, fn func(model.Transaction) error) (err error) {
	defer func(started time.Time) {
		s.observe("stream_transactions", q.Chain, q.Network, err, started)
	}(time.Now())

	s.mu.RLock()
	var matched []model.Transaction
	for k, tx := range s.txs {
		if k.chain == q.Chain && k.network == q.Network && matchTransaction(tx, q) {
			matched = append(matched, cloneTransaction(tx))
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].BlockHeight != matched[j].BlockHeight {
			return matched[i].BlockHeight < matched[j].BlockHeight
		}
		return matched[i].TxID < matched[j].TxID
	})
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	for _, tx := range matched {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = fn(tx); err != nil {
			return err
		}
	}
	return nil
}

func matchTransaction(tx model.Transaction, q model.TransactionQuery) bool {
	if !tx.MainChain {
		return false
	}
	if q.Wallet != "" && !model.ContainsWallet(tx.Wallets, q.Wallet) {
		return false
	}
	if q.StartHeight != nil && tx.BlockHeight < *q.StartHeight {
		return false
	}
	if q.EndHeight != nil && tx.BlockHeight > *q.EndHeight {
		return false
	}
	if q.StartTime != nil && tx.BlockTimeNormalized.Before(*q.StartTime) {
		return false
	}
	if q.EndTime != nil && !tx.BlockTimeNormalized.Before(*q.EndTime) {
		return false
	}
	if q.After != nil {
		if tx.BlockHeight < q.After.BlockHeight {
			return false
		}
		if tx.BlockHeight == q.After.BlockHeight && tx.TxID <= q.After.TxID {
			return false
		}
	}
	return true
}

// DailyTransactionCounts counts confirmed main chain transactions per UTC day in [from, to).
func (s *Store) DailyTransactionCounts(_ context.Context, chain model.Chain, network model.Network, from, to time.Time) ([]model.DailyCount, error) {
	defer s.observe("daily_transaction_counts", chain, network, nil, time.Now())

	s.mu.RLock()
	counts := make(map[time.Time]int64)
	for k, tx := range s.txs {
		if k.chain != chain || k.network != network || !tx.MainChain || !tx.Confirmed() {
			continue
		}
		t := tx.BlockTimeNormalized.UTC()
		if t.Before(from) || !t.Before(to) {
			continue
		}
		counts[t.Truncate(24*time.Hour)]++
	}
	s.mu.RUnlock()

	out := make([]model.DailyCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, model.DailyCount{Day: day, Transactions: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

// ChainStats aggregates transaction and unspent coin totals.
func (s *Store) ChainStats(_ context.Context, chain model.Chain, network model.Network) (model.ChainStats, error) {
	defer s.observe("chain_stats", chain, network, nil, time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	var stats model.ChainStats
	for k, tx := range s.txs {
		if k.chain == chain && k.network == network && tx.MainChain && tx.Confirmed() {
			stats.Transactions++
		}
	}
	for k, c := range s.coins {
		if k.chain == chain && k.network == network && c.Unspent() && c.MintHeight >= model.GenesisHeight {
			stats.UnspentCoins++
			stats.UnspentSupply += c.Value
		}
	}
	return stats, nil
}
