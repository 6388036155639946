package memory

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// WalletsForAddresses maps each address with at least one wallet to its sorted wallet set.
func (s *Store) WalletsForAddresses(_ context.Context, chain model.Chain, network model.Network, addresses []string) (map[string][]model.WalletID, error) {
	defer s.observe("wallets_for_addresses", chain, network, nil, time.Now())

	set := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		set[a] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]model.WalletID)
	for k := range s.wallets {
		if k.chain != chain || k.network != network {
			continue
		}
		if _, ok := set[k.address]; ok {
			out[k.address] = model.MergeWallets(out[k.address], []model.WalletID{k.wallet})
		}
	}
	return out, nil
}

// AddWalletAddresses registers addresses and tags the coins and transactions already indexed for them.
func (s *Store) AddWalletAddresses(_ context.Context, entries []model.WalletAddress) error {
	if len(entries) == 0 {
		return nil
	}
	defer s.observe("add_wallet_addresses", entries[0].Chain, entries[0].Network, nil, time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		sc := scope{e.Chain, e.Network}
		s.wallets[walletKey{sc, e.Wallet, e.Address}] = struct{}{}

		tag := []model.WalletID{e.Wallet}
		txids := make(map[string]struct{})
		for k, c := range s.coins {
			if k.scope != sc || c.Address != e.Address {
				continue
			}
			c.Wallets = model.MergeWallets(c.Wallets, tag)
			s.coins[k] = c
			txids[c.MintTxID] = struct{}{}
			if c.SpentTxID != "" {
				txids[c.SpentTxID] = struct{}{}
			}
		}
		for txid := range txids {
			k := txKey{sc, txid}
			if tx, ok := s.txs[k]; ok {
				tx.Wallets = model.MergeWallets(tx.Wallets, tag)
				s.txs[k] = tx
			}
		}
	}
	return nil
}
