package model

import "slices"

// WalletID identifies a wallet owned by the wallet management service.
type WalletID string

// WalletAddress associates an address with a wallet.
type WalletAddress struct {
	Chain   Chain
	Network Network
	Wallet  WalletID
	Address string
}

// MergeWallets returns the sorted union of the given wallet sets.
func MergeWallets(sets ...[]WalletID) []WalletID {
	var out []WalletID
	for _, set := range sets {
		out = append(out, set...)
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// ContainsWallet reports whether wallets includes w.
func ContainsWallet(wallets []WalletID, w WalletID) bool {
	return slices.Contains(wallets, w)
}
