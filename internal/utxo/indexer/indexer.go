// Package indexer imports batches of transactions into the coin ledger and the transaction index.
package indexer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/retry"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/workerpool"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Task names dispatched to the worker pool.
const (
	TaskMintOutputs = "mint-and-index-outputs"
	TaskIndexInputs = "index-inputs-and-compute-fee"
)

const (
	defaultMaxPoolSize    = 10
	defaultTxConcurrency  = 4
	defaultMaxElapsedTime = 30 * time.Second
)

// Config tunes batch partitioning and anomaly handling.
type Config struct {
	// MaxPoolSize is the number of partitions a batch is split into.
	MaxPoolSize int
	// TxConcurrency caps transactions prepared in parallel.
	TxConcurrency int
	Policy        model.FailurePolicy
	// MaxElapsedTime bounds retries of transaction writes.
	MaxElapsedTime time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxPoolSize <= 0 {
		c.MaxPoolSize = defaultMaxPoolSize
	}
	if c.TxConcurrency <= 0 {
		c.TxConcurrency = defaultTxConcurrency
	}
	if c.Policy == "" {
		c.Policy = model.PolicyDegrade
	}
	if c.MaxElapsedTime <= 0 {
		c.MaxElapsedTime = defaultMaxElapsedTime
	}
	return c
}

// Indexer turns raw transactions into coins and transaction records.
type Indexer struct {
	ledger     CoinLedger
	txs        TransactionStore
	deriver    AddressDeriver
	dispatcher Dispatcher
	metrics    Metrics
	logger     *zap.Logger
	cfg        Config
}

// New constructs an Indexer.
func New(
	ledger CoinLedger,
	txs TransactionStore,
	deriver AddressDeriver,
	dispatcher Dispatcher,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) *Indexer {
	return &Indexer{
		ledger:     ledger,
		txs:        txs,
		deriver:    deriver,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger.With(zap.String("component", "transaction_indexer")),
		cfg:        cfg.withDefaults(),
	}
}

// plan is the in-memory import state of one transaction.
type plan struct {
	tx     model.RawTransaction
	mints  []model.Coin
	spends []model.Spend
	// local are coins minted in the same batch and spent by tx, patched before they are written.
	local []*model.Coin
}

// BatchImport indexes the transactions of one block, or of the mempool when p.Height is
// model.MempoolHeight. Outputs of every transaction are minted before any input is applied.
// Re-importing the same batch converges to the same state.
func (ix *Indexer) BatchImport(ctx context.Context, p model.ImportParams) (err error) {
	started := time.Now()
	defer func() {
		ix.metrics.ObserveBatch(p.Mempool(), len(p.Transactions), err, started)
	}()

	txs := uniqueTransactions(p.Transactions)
	if p.Mempool() {
		if txs, err = ix.skipConfirmed(ctx, p, txs); err != nil {
			return err
		}
	}
	if len(txs) == 0 {
		return nil
	}

	plans, err := ix.prepare(ctx, p, txs)
	if err != nil {
		return err
	}
	if err := ix.link(p, plans); err != nil {
		return err
	}

	parts := partition(plans, (len(plans)+ix.cfg.MaxPoolSize-1)/ix.cfg.MaxPoolSize)

	mintTasks := make([]workerpool.Task, 0, len(parts))
	for _, part := range parts {
		mintTasks = append(mintTasks, workerpool.Task{
			Name: TaskMintOutputs,
			Run: func(ctx context.Context) error {
				return ix.mintOutputs(ctx, part)
			},
		})
	}
	if err := ix.dispatcher.SendAll(ctx, mintTasks); err != nil {
		return fmt.Errorf("mint outputs at height %d: %w", p.Height, err)
	}

	inputTasks := make([]workerpool.Task, 0, len(parts))
	for _, part := range parts {
		inputTasks = append(inputTasks, workerpool.Task{
			Name: TaskIndexInputs,
			Run: func(ctx context.Context) error {
				return ix.indexInputs(ctx, p, part)
			},
		})
	}
	if err := ix.dispatcher.SendAll(ctx, inputTasks); err != nil {
		return fmt.Errorf("index inputs at height %d: %w", p.Height, err)
	}

	ix.logger.Debug("batch imported",
		zap.String("chain", string(p.Chain)),
		zap.String("network", string(p.Network)),
		zap.Int64("height", p.Height),
		zap.Int("transactions", len(txs)),
	)
	return nil
}

// skipConfirmed drops mempool transactions that are already confirmed on the main chain.
func (ix *Indexer) skipConfirmed(ctx context.Context, p model.ImportParams, txs []model.RawTransaction) ([]model.RawTransaction, error) {
	txids := make([]string, 0, len(txs))
	for _, tx := range txs {
		txids = append(txids, tx.TxID)
	}
	var stored []model.Transaction
	err := ix.retry(ctx, "transactions_by_ids", func() (err error) {
		stored, err = ix.txs.TransactionsByIDs(ctx, p.Chain, p.Network, txids)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load mempool transactions: %w", err)
	}

	confirmed := make(map[string]struct{}, len(stored))
	for _, tx := range stored {
		if tx.Confirmed() && tx.MainChain {
			confirmed[tx.TxID] = struct{}{}
		}
	}
	out := txs[:0:0]
	for _, tx := range txs {
		if _, ok := confirmed[tx.TxID]; !ok {
			out = append(out, tx)
		}
	}
	return out, nil
}

// prepare builds the coins minted by every transaction and attributes them to wallets.
func (ix *Indexer) prepare(ctx context.Context, p model.ImportParams, txs []model.RawTransaction) ([]*plan, error) {
	plans, err := workerpool.Map(ctx, ix.cfg.TxConcurrency, txs, func(_ context.Context, tx model.RawTransaction) (*plan, error) {
		return ix.mintPlan(p, tx)
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var addresses []string
	for _, pl := range plans {
		for _, c := range pl.mints {
			if c.Address == model.NoAddress {
				continue
			}
			if _, ok := seen[c.Address]; !ok {
				seen[c.Address] = struct{}{}
				addresses = append(addresses, c.Address)
			}
		}
	}
	wallets, err := ix.ledger.WalletsForAddresses(ctx, p.Chain, p.Network, addresses)
	if err != nil {
		return nil, fmt.Errorf("resolve wallets: %w", err)
	}
	for _, pl := range plans {
		for i := range pl.mints {
			pl.mints[i].Wallets = wallets[pl.mints[i].Address]
		}
	}
	return plans, nil
}

func (ix *Indexer) mintPlan(p model.ImportParams, tx model.RawTransaction) (*plan, error) {
	pl := &plan{tx: tx, mints: make([]model.Coin, 0, len(tx.Outputs))}
	for i, out := range tx.Outputs {
		index, err := safe.Uint32(i)
		if err != nil {
			return nil, fmt.Errorf("output index of %s: %w", tx.TxID, err)
		}
		key := model.CoinKey{TxID: tx.TxID, Index: index}

		address, err := ix.deriver.Derive(out.Script)
		if err != nil {
			derr := &AddressDerivationError{Coin: key, Err: err}
			ix.metrics.Anomaly(metrics.AnomalyAddressDerivation)
			if ix.cfg.Policy == model.PolicyStrict {
				return nil, derr
			}
			ix.logger.Warn("address derivation failed", zap.Int64("height", p.Height), zap.Error(derr))
			address = model.NoAddress
		}

		pl.mints = append(pl.mints, model.Coin{
			Chain:       p.Chain,
			Network:     p.Network,
			MintTxID:    tx.TxID,
			MintIndex:   index,
			MintHeight:  p.Height,
			Coinbase:    tx.Coinbase,
			Value:       out.Value,
			Address:     address,
			Script:      out.Script,
			SpentHeight: model.SpentHeightUnspent,
		})
	}
	return pl, nil
}

// link resolves inputs against coins minted in the same batch. Those coins are patched in
// memory and written already spent; every other input becomes a store spend.
func (ix *Indexer) link(p model.ImportParams, plans []*plan) error {
	pending := make(map[model.CoinKey]*model.Coin)
	for _, pl := range plans {
		for i := range pl.mints {
			pending[pl.mints[i].Key()] = &pl.mints[i]
		}
	}

	height := spentHeight(p)
	var errs error
	for _, pl := range plans {
		if pl.tx.Coinbase {
			continue
		}
		for _, in := range pl.tx.Inputs {
			key := model.CoinKey{TxID: in.PrevTxID, Index: in.PrevIndex}
			coin, ok := pending[key]
			if !ok {
				pl.spends = append(pl.spends, model.Spend{
					Chain:       p.Chain,
					Network:     p.Network,
					Key:         key,
					SpentTxID:   pl.tx.TxID,
					SpentHeight: height,
				})
				continue
			}
			if coin.SpentTxID != "" && coin.SpentTxID != pl.tx.TxID {
				errs = multierr.Append(errs, ix.reject(p, metrics.AnomalyDoubleSpend,
					&DoubleSpendError{TxID: pl.tx.TxID, Coin: key, SpentTxID: coin.SpentTxID}))
				continue
			}
			coin.SpentTxID = pl.tx.TxID
			coin.SpentHeight = height
			pl.local = append(pl.local, coin)
		}
	}
	return errs
}

func (ix *Indexer) mintOutputs(ctx context.Context, part []*plan) error {
	var coins []model.Coin
	for _, pl := range part {
		coins = append(coins, pl.mints...)
	}
	return ix.ledger.Mint(ctx, coins)
}

// indexInputs applies the partition's spends, then writes a record for every transaction
// whose inputs were all accepted. Failures of one transaction do not hold back the others.
func (ix *Indexer) indexInputs(ctx context.Context, p model.ImportParams, part []*plan) error {
	var spends []model.Spend
	txids := make([]string, 0, len(part))
	for _, pl := range part {
		spends = append(spends, pl.spends...)
		txids = append(txids, pl.tx.TxID)
	}

	unmatched, err := ix.ledger.Spend(ctx, spends)
	if err != nil {
		return err
	}
	failed, errs := ix.classify(ctx, p, unmatched)
	if failed == nil {
		return errs
	}

	spent, err := ix.ledger.SpentBy(ctx, p.Chain, p.Network, txids)
	if err != nil {
		return multierr.Append(errs, err)
	}
	inputs := make(map[string]map[model.CoinKey]model.Coin, len(part))
	for _, c := range spent {
		if inputs[c.SpentTxID] == nil {
			inputs[c.SpentTxID] = make(map[model.CoinKey]model.Coin)
		}
		inputs[c.SpentTxID][c.Key()] = c
	}

	records := make([]model.Transaction, 0, len(part))
	for _, pl := range part {
		if _, ok := failed[pl.tx.TxID]; ok {
			continue
		}
		resolved := inputs[pl.tx.TxID]
		if resolved == nil {
			resolved = make(map[model.CoinKey]model.Coin, len(pl.local))
		}
		for _, c := range pl.local {
			resolved[c.Key()] = *c
		}
		rec, err := ix.record(p, pl, resolved)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		records = append(records, rec)
	}

	if len(records) > 0 {
		err := ix.retry(ctx, "upsert_transactions", func() error {
			return ix.txs.UpsertTransactions(ctx, records)
		})
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("upsert transactions: %w", err))
		}
	}
	return errs
}

// classify explains spends the ledger did not apply. A coin already spent by the same
// transaction is a replay. It returns the transactions that must not be recorded; the map
// is nil when the coins could not be loaded.
func (ix *Indexer) classify(ctx context.Context, p model.ImportParams, unmatched []model.Spend) (map[string]struct{}, error) {
	failed := make(map[string]struct{})
	if len(unmatched) == 0 {
		return failed, nil
	}

	keys := make([]model.CoinKey, 0, len(unmatched))
	for _, s := range unmatched {
		keys = append(keys, s.Key)
	}
	coins, err := ix.ledger.Coins(ctx, p.Chain, p.Network, keys)
	if err != nil {
		return nil, err
	}
	stored := make(map[model.CoinKey]model.Coin, len(coins))
	for _, c := range coins {
		stored[c.Key()] = c
	}

	var errs error
	for _, s := range unmatched {
		coin, ok := stored[s.Key]
		switch {
		case ok && coin.SpentTxID == s.SpentTxID:
			continue
		case !ok:
			err = ix.reject(p, metrics.AnomalyMissingUtxo, &MissingUtxoError{TxID: s.SpentTxID, Coin: s.Key})
		default:
			err = ix.reject(p, metrics.AnomalyDoubleSpend,
				&DoubleSpendError{TxID: s.SpentTxID, Coin: s.Key, SpentTxID: coin.SpentTxID})
		}
		if err != nil {
			failed[s.SpentTxID] = struct{}{}
			errs = multierr.Append(errs, err)
		}
	}
	return failed, errs
}

// reject reports an unresolved input. Mempool transactions may arrive before their parents
// or lose a race to a confirmed spend, so they are only logged.
func (ix *Indexer) reject(p model.ImportParams, kind string, err error) error {
	if p.Mempool() {
		ix.logger.Debug("mempool input unresolved", zap.Error(err))
		return nil
	}
	ix.metrics.Anomaly(kind)
	return err
}

// record builds the transaction row. The fee is only known once every input is resolved.
func (ix *Indexer) record(p model.ImportParams, pl *plan, inputs map[model.CoinKey]model.Coin) (model.Transaction, error) {
	minted := pl.tx.OutputValue()
	sets := make([][]model.WalletID, 0, len(pl.mints)+len(inputs))
	for _, c := range pl.mints {
		sets = append(sets, c.Wallets)
	}
	var spent int64
	for _, c := range inputs {
		spent += c.Value
		sets = append(sets, c.Wallets)
	}

	var fee int64
	if !pl.tx.Coinbase && len(inputs) == distinctInputs(pl.tx) {
		fee = spent - minted
		if fee < 0 {
			ix.metrics.Anomaly(metrics.AnomalyNegativeFee)
			nerr := &NegativeFeeError{TxID: pl.tx.TxID, Fee: fee}
			if ix.cfg.Policy == model.PolicyStrict {
				return model.Transaction{}, nerr
			}
			ix.logger.Warn("negative fee", zap.Int64("height", p.Height), zap.Error(nerr))
		}
	}

	return model.Transaction{
		Chain:               p.Chain,
		Network:             p.Network,
		TxID:                pl.tx.TxID,
		BlockHeight:         p.Height,
		BlockHash:           p.BlockHash,
		BlockTime:           p.BlockTime,
		BlockTimeNormalized: p.BlockTimeNormalized,
		Coinbase:            pl.tx.Coinbase,
		Fee:                 fee,
		Size:                pl.tx.Size,
		LockTime:            pl.tx.LockTime,
		Value:               minted,
		Wallets:             model.MergeWallets(sets...),
		MainChain:           true,
	}, nil
}

func (ix *Indexer) retry(ctx context.Context, operation string, fn func() error) error {
	return retry.Do(ctx, ix.logger, operation, ix.cfg.MaxElapsedTime, fn)
}

func spentHeight(p model.ImportParams) int64 {
	if p.Mempool() {
		return model.SpentHeightPending
	}
	return p.Height
}

func distinctInputs(tx model.RawTransaction) int {
	keys := make(map[model.CoinKey]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		keys[model.CoinKey{TxID: in.PrevTxID, Index: in.PrevIndex}] = struct{}{}
	}
	return len(keys)
}

func uniqueTransactions(txs []model.RawTransaction) []model.RawTransaction {
	seen := make(map[string]struct{}, len(txs))
	out := make([]model.RawTransaction, 0, len(txs))
	for _, tx := range txs {
		if _, ok := seen[tx.TxID]; ok {
			continue
		}
		seen[tx.TxID] = struct{}{}
		out = append(out, tx)
	}
	return out
}

func partition[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	size = max(size, 1)
	parts := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		parts = append(parts, items[start:min(start+size, len(items))])
	}
	return parts
}
