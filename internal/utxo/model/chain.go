// Package model defines domain models for the UTXO index.
package model

// Chain names a UTXO chain family.
type Chain string

// Network names a chain network.
type Network string

const (
	BTC Chain = "BTC"
	LTC Chain = "LTC"
	BCH Chain = "BCH"
)

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

// ZeroHash is the declared parent of a genesis block.
const ZeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

const (
	// GenesisHeight is the height of the first block of a chain.
	GenesisHeight int64 = 0
	// MempoolHeight is the block height recorded for unconfirmed transactions.
	MempoolHeight int64 = -1
)

// FailurePolicy controls how data anomalies found during indexing are handled.
type FailurePolicy string

const (
	// PolicyDegrade logs and counts anomalies and keeps indexing.
	PolicyDegrade FailurePolicy = "degrade"
	// PolicyStrict fails the block on the first anomaly.
	PolicyStrict FailurePolicy = "strict"
)
