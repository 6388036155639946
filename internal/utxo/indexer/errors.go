package indexer

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// MissingUtxoError reports an input whose referenced coin is not indexed.
type MissingUtxoError struct {
	TxID string
	Coin model.CoinKey
}

func (e *MissingUtxoError) Error() string {
	return fmt.Sprintf("transaction %s spends unknown coin %s", e.TxID, e.Coin)
}

// DoubleSpendError reports an input whose coin already carries a confirmed spend by another transaction.
type DoubleSpendError struct {
	TxID      string
	Coin      model.CoinKey
	SpentTxID string
}

func (e *DoubleSpendError) Error() string {
	return fmt.Sprintf("transaction %s spends coin %s already spent by %s", e.TxID, e.Coin, e.SpentTxID)
}

// NegativeFeeError reports a transaction whose inputs are worth less than its outputs.
type NegativeFeeError struct {
	TxID string
	Fee  int64
}

func (e *NegativeFeeError) Error() string {
	return fmt.Sprintf("transaction %s has negative fee %d", e.TxID, e.Fee)
}

// AddressDerivationError reports an output script that could not be parsed.
type AddressDerivationError struct {
	Coin model.CoinKey
	Err  error
}

func (e *AddressDerivationError) Error() string {
	return fmt.Sprintf("derive address of %s: %v", e.Coin, e.Err)
}

func (e *AddressDerivationError) Unwrap() error {
	return e.Err
}
