// Package bitcoin adapts btcd wire types, scripts and RPC to the UTXO index model.
package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/safe"
)

// ChainParams returns btcd parameters for a network name.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// Schedule answers chain-parameter questions the tracker needs about a network.
type Schedule struct {
	params *chaincfg.Params
}

// NewSchedule builds a Schedule for network.
func NewSchedule(network model.Network) (*Schedule, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &Schedule{params: params}, nil
}

// Reward returns the block subsidy at height following the network halving interval.
func (s *Schedule) Reward(height int64) int64 {
	h, err := safe.Int32(height)
	if err != nil || h < 0 {
		return 0
	}
	return blockchain.CalcBlockSubsidy(h, s.params)
}

// GenesisHash returns the hash of the network genesis block.
func (s *Schedule) GenesisHash() string {
	return s.params.GenesisHash.String()
}
