package repositorytest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/stretchr/testify/suite"
)

const (
	chain   = model.BTC
	network = model.Regtest
)

// Suite checks the storage contract against a fresh store per test.
type Suite struct {
	suite.Suite

	// NewStore returns an empty store.
	NewStore func() Store

	Ctx   context.Context
	store Store
}

// SetupTest creates the store under test.
func (s *Suite) SetupTest() {
	if s.Ctx == nil {
		s.Ctx = context.Background()
	}
	s.store = s.NewStore()
}

// Hash builds a 64 character hash from a short seed.
func Hash(seed string) string {
	return strings.Repeat(seed, 64/len(seed)+1)[:64]
}

func block(height int64, seed string, processed bool) model.Block {
	return model.Block{
		Chain:            chain,
		Network:          network,
		Hash:             Hash(seed),
		Height:           height,
		PrevHash:         model.ZeroHash,
		MerkleRoot:       Hash("f"),
		Version:          1,
		Time:             time.Unix(1_700_000_000+height*600, 0).UTC(),
		TimeNormalized:   time.Unix(1_700_000_000+height*600, 0).UTC(),
		TransactionCount: 1,
		Size:             285,
		Reward:           5_000_000_000,
		MainChain:        true,
		Processed:        processed,
	}
}

func coin(txid string, index uint32, height, value int64, address string) model.Coin {
	return model.Coin{
		Chain:       chain,
		Network:     network,
		MintTxID:    txid,
		MintIndex:   index,
		MintHeight:  height,
		Value:       value,
		Address:     address,
		Script:      []byte{0x51},
		SpentHeight: model.SpentHeightUnspent,
	}
}

func transaction(txid string, height int64, at time.Time) model.Transaction {
	return model.Transaction{
		Chain:               chain,
		Network:             network,
		TxID:                txid,
		BlockHeight:         height,
		BlockHash:           Hash("b"),
		BlockTime:           at,
		BlockTimeNormalized: at,
		Size:                200,
		Value:               1000,
		MainChain:           true,
	}
}

func (s *Suite) TestBlocksAndTip() {
	_, ok, err := s.store.LocalTip(s.Ctx, chain, network)
	s.Require().NoError(err)
	s.Require().False(ok)

	s.Require().NoError(s.store.UpsertBlock(s.Ctx, block(0, "a", true)))
	s.Require().NoError(s.store.UpsertBlock(s.Ctx, block(1, "c", true)))
	s.Require().NoError(s.store.UpsertBlock(s.Ctx, block(2, "d", false)))

	tip, ok, err := s.store.LocalTip(s.Ctx, chain, network)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().Equal(int64(1), tip.Height)

	s.Require().NoError(s.store.SetNextBlockHash(s.Ctx, chain, network, Hash("c"), Hash("d")))
	s.Require().NoError(s.store.MarkBlockProcessed(s.Ctx, chain, network, Hash("d")))

	got, ok, err := s.store.BlockByHash(s.Ctx, chain, network, Hash("c"))
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().Equal(Hash("d"), got.NextHash)

	hashes, err := s.store.RecentMainChainHashes(s.Ctx, chain, network, 2)
	s.Require().NoError(err)
	s.Require().Equal([]string{Hash("d"), Hash("c")}, hashes)

	s.Require().NoError(s.store.DemoteBlocksFrom(s.Ctx, chain, network, 1))
	_, ok, err = s.store.MainChainBlockAtHeight(s.Ctx, chain, network, 2)
	s.Require().NoError(err)
	s.Require().False(ok)

	tip, ok, err = s.store.LocalTip(s.Ctx, chain, network)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().Equal(int64(0), tip.Height)

	_, ok, err = s.store.BlockByHash(s.Ctx, chain, network, Hash("e"))
	s.Require().NoError(err)
	s.Require().False(ok)
}

func (s *Suite) TestMintIsGuardedBySpend() {
	c := coin(Hash("1"), 0, 1, 5000, "addr1")
	s.Require().NoError(s.store.MintCoins(s.Ctx, []model.Coin{c}))

	unmatched, err := s.store.SpendCoins(s.Ctx, []model.Spend{{
		Chain: chain, Network: network, Key: c.Key(), SpentTxID: Hash("2"), SpentHeight: 2,
	}})
	s.Require().NoError(err)
	s.Require().Empty(unmatched)

	// re-minting a spent coin must not clear its spend
	s.Require().NoError(s.store.MintCoins(s.Ctx, []model.Coin{c}))
	coins, err := s.store.CoinsByKeys(s.Ctx, chain, network, []model.CoinKey{c.Key()})
	s.Require().NoError(err)
	s.Require().Len(coins, 1)
	s.Require().Equal(Hash("2"), coins[0].SpentTxID)
	s.Require().Equal(int64(2), coins[0].SpentHeight)

	// a second confirmed spend does not apply
	unmatched, err = s.store.SpendCoins(s.Ctx, []model.Spend{{
		Chain: chain, Network: network, Key: c.Key(), SpentTxID: Hash("3"), SpentHeight: 3,
	}})
	s.Require().NoError(err)
	s.Require().Len(unmatched, 1)

	missing := model.Spend{Chain: chain, Network: network, Key: model.CoinKey{TxID: Hash("9"), Index: 1}, SpentTxID: Hash("3"), SpentHeight: 3}
	unmatched, err = s.store.SpendCoins(s.Ctx, []model.Spend{missing})
	s.Require().NoError(err)
	s.Require().Equal([]model.Spend{missing}, unmatched)

	spent, err := s.store.CoinsSpentBy(s.Ctx, chain, network, []string{Hash("2")})
	s.Require().NoError(err)
	s.Require().Len(spent, 1)

	minted, err := s.store.CoinsMintedBy(s.Ctx, chain, network, []string{Hash("1")})
	s.Require().NoError(err)
	s.Require().Len(minted, 1)
	s.Require().Equal(int64(5000), minted[0].Value)
}

func (s *Suite) TestConcurrentSpendsOfOneCoin() {
	c := coin(Hash("1"), 0, 1, 5000, "addr1")
	s.Require().NoError(s.store.MintCoins(s.Ctx, []model.Coin{c}))

	spenders := []string{Hash("2"), Hash("3")}
	unmatched := make([][]model.Spend, len(spenders))
	errs := make([]error, len(spenders))
	var wg sync.WaitGroup
	for i, txid := range spenders {
		wg.Go(func() {
			unmatched[i], errs[i] = s.store.SpendCoins(s.Ctx, []model.Spend{{
				Chain: chain, Network: network, Key: c.Key(), SpentTxID: txid, SpentHeight: 2,
			}})
		})
	}
	wg.Wait()

	winner := ""
	for i, txid := range spenders {
		s.Require().NoError(errs[i])
		if len(unmatched[i]) == 0 {
			s.Require().Empty(winner, "both spends applied")
			winner = txid
		}
	}
	s.Require().NotEmpty(winner, "no spend applied")

	coins, err := s.store.CoinsByKeys(s.Ctx, chain, network, []model.CoinKey{c.Key()})
	s.Require().NoError(err)
	s.Require().Len(coins, 1)
	s.Require().Equal(winner, coins[0].SpentTxID)
}

func (s *Suite) TestPendingSpendIsOverwritten() {
	c := coin(Hash("1"), 0, 1, 5000, "addr1")
	s.Require().NoError(s.store.MintCoins(s.Ctx, []model.Coin{c}))

	unmatched, err := s.store.SpendCoins(s.Ctx, []model.Spend{{
		Chain: chain, Network: network, Key: c.Key(), SpentTxID: Hash("2"), SpentHeight: model.SpentHeightPending,
	}})
	s.Require().NoError(err)
	s.Require().Empty(unmatched)

	unmatched, err = s.store.SpendCoins(s.Ctx, []model.Spend{{
		Chain: chain, Network: network, Key: c.Key(), SpentTxID: Hash("2"), SpentHeight: 2,
	}})
	s.Require().NoError(err)
	s.Require().Empty(unmatched)

	coins, err := s.store.CoinsByKeys(s.Ctx, chain, network, []model.CoinKey{c.Key()})
	s.Require().NoError(err)
	s.Require().Equal(int64(2), coins[0].SpentHeight)
}

func (s *Suite) TestRollbackCoins() {
	old := coin(Hash("1"), 0, 1, 100, "addr1")
	fresh := coin(Hash("2"), 0, 3, 200, "addr1")
	s.Require().NoError(s.store.MintCoins(s.Ctx, []model.Coin{old, fresh}))
	_, err := s.store.SpendCoins(s.Ctx, []model.Spend{{
		Chain: chain, Network: network, Key: old.Key(), SpentTxID: Hash("2"), SpentHeight: 3,
	}})
	s.Require().NoError(err)

	s.Require().NoError(s.store.RollbackCoinsFrom(s.Ctx, chain, network, 3))

	coins, err := s.store.CoinsByKeys(s.Ctx, chain, network, []model.CoinKey{old.Key(), fresh.Key()})
	s.Require().NoError(err)
	s.Require().Len(coins, 2)
	byTx := map[string]model.Coin{coins[0].MintTxID: coins[0], coins[1].MintTxID: coins[1]}
	s.Require().True(byTx[Hash("1")].Unspent())
	s.Require().Equal(model.SpentHeightConflicting, byTx[Hash("2")].SpentHeight)

	balance, err := s.store.WalletBalance(s.Ctx, model.CoinFilter{Chain: chain, Network: network, Address: "addr1"})
	s.Require().NoError(err)
	s.Require().Equal(model.Balance{Confirmed: 100, Count: 1}, balance)

	// a conflicting coin can be minted again by the new chain
	s.Require().NoError(s.store.MintCoins(s.Ctx, []model.Coin{coin(Hash("2"), 0, 4, 200, "addr1")}))
	balance, err = s.store.WalletBalance(s.Ctx, model.CoinFilter{Chain: chain, Network: network, Address: "addr1"})
	s.Require().NoError(err)
	s.Require().Equal(int64(300), balance.Confirmed)
}

func (s *Suite) TestWalletsAndBalance() {
	s.Require().NoError(s.store.MintCoins(s.Ctx, []model.Coin{
		coin(Hash("1"), 0, 1, 100, "addr1"),
		coin(Hash("1"), 1, 1, 50, "addr2"),
		coin(Hash("2"), 0, model.MempoolHeight, 25, "addr1"),
	}))
	s.Require().NoError(s.store.UpsertTransactions(s.Ctx, []model.Transaction{transaction(Hash("1"), 1, time.Now().UTC())}))

	s.Require().NoError(s.store.AddWalletAddresses(s.Ctx, []model.WalletAddress{
		{Chain: chain, Network: network, Wallet: "w1", Address: "addr1"},
		{Chain: chain, Network: network, Wallet: "w2", Address: "addr1"},
	}))

	wallets, err := s.store.WalletsForAddresses(s.Ctx, chain, network, []string{"addr1", "addr2"})
	s.Require().NoError(err)
	s.Require().Equal(map[string][]model.WalletID{"addr1": {"w1", "w2"}}, wallets)

	balance, err := s.store.WalletBalance(s.Ctx, model.CoinFilter{Chain: chain, Network: network, Wallet: "w1"})
	s.Require().NoError(err)
	s.Require().Equal(model.Balance{Confirmed: 100, Unconfirmed: 25, Count: 2}, balance)

	txs, err := s.store.TransactionsByIDs(s.Ctx, chain, network, []string{Hash("1")})
	s.Require().NoError(err)
	s.Require().Len(txs, 1)
	s.Require().Equal([]model.WalletID{"w1", "w2"}, txs[0].Wallets)

	var keys []model.CoinKey
	s.Require().NoError(s.store.StreamUnspentCoins(s.Ctx, model.CoinQuery{
		CoinFilter: model.CoinFilter{Chain: chain, Network: network, Wallet: "w1"},
	}, func(c model.Coin) error {
		keys = append(keys, c.Key())
		return nil
	}))
	s.Require().Equal([]model.CoinKey{{TxID: Hash("1"), Index: 0}, {TxID: Hash("2"), Index: 0}}, keys)

	keys = nil
	s.Require().NoError(s.store.StreamUnspentCoins(s.Ctx, model.CoinQuery{
		CoinFilter: model.CoinFilter{Chain: chain, Network: network, Wallet: "w1"},
		After:      &model.CoinKey{TxID: Hash("1"), Index: 0},
		Limit:      5,
	}, func(c model.Coin) error {
		keys = append(keys, c.Key())
		return nil
	}))
	s.Require().Equal([]model.CoinKey{{TxID: Hash("2"), Index: 0}}, keys)
}

func (s *Suite) TestTransactionsPagingAndStats() {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		transaction(Hash("1"), 1, day.Add(time.Hour)),
		transaction(Hash("2"), 1, day.Add(time.Hour)),
		transaction(Hash("3"), 2, day.Add(25*time.Hour)),
		transaction(Hash("4"), model.MempoolHeight, day.Add(2*time.Hour)),
	}
	txs[0].Wallets = []model.WalletID{"w1"}
	txs[2].Wallets = []model.WalletID{"w1"}
	s.Require().NoError(s.store.UpsertTransactions(s.Ctx, txs))

	collect := func(q model.TransactionQuery) []string {
		var ids []string
		s.Require().NoError(s.store.StreamTransactions(s.Ctx, q, func(tx model.Transaction) error {
			ids = append(ids, tx.TxID)
			return nil
		}))
		return ids
	}

	start := int64(1)
	s.Require().Equal([]string{Hash("1"), Hash("2"), Hash("3")}, collect(model.TransactionQuery{
		Chain: chain, Network: network, StartHeight: &start,
	}))
	s.Require().Equal([]string{Hash("1"), Hash("3")}, collect(model.TransactionQuery{
		Chain: chain, Network: network, Wallet: "w1",
	}))
	s.Require().Equal([]string{Hash("2")}, collect(model.TransactionQuery{
		Chain: chain, Network: network, StartHeight: &start,
		After: &model.TransactionCursor{BlockHeight: 1, TxID: Hash("1")}, Limit: 1,
	}))

	counts, err := s.store.DailyTransactionCounts(s.Ctx, chain, network, day, day.Add(48*time.Hour))
	s.Require().NoError(err)
	s.Require().Len(counts, 2)
	s.Require().True(counts[0].Day.Equal(day))
	s.Require().Equal(int64(2), counts[0].Transactions)
	s.Require().Equal(int64(1), counts[1].Transactions)

	s.Require().NoError(s.store.DemoteTransactionsFrom(s.Ctx, chain, network, 2))
	stats, err := s.store.ChainStats(s.Ctx, chain, network)
	s.Require().NoError(err)
	s.Require().Equal(int64(2), stats.Transactions)
}
