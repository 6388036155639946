package ledger

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

type (
	// Store persists coins and wallet address assignments.
	Store interface {
		MintCoins(ctx context.Context, coins []model.Coin) error
		SpendCoins(ctx context.Context, spends []model.Spend) ([]model.Spend, error)
		CoinsByKeys(ctx context.Context, chain model.Chain, network model.Network, keys []model.CoinKey) ([]model.Coin, error)
		CoinsSpentBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error)
		CoinsMintedBy(ctx context.Context, chain model.Chain, network model.Network, txids []string) ([]model.Coin, error)
		RollbackCoinsFrom(ctx context.Context, chain model.Chain, network model.Network, height int64) error
		WalletBalance(ctx context.Context, f model.CoinFilter) (model.Balance, error)
		StreamUnspentCoins(ctx context.Context, q model.CoinQuery, fn func(model.Coin) error) error
		WalletsForAddresses(ctx context.Context, chain model.Chain, network model.Network, addresses []string) (map[string][]model.WalletID, error)
		AddWalletAddresses(ctx context.Context, entries []model.WalletAddress) error
	}
)
