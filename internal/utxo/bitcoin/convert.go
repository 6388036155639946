package bitcoin

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// ConvertBlock maps a wire block into the index input model.
func ConvertBlock(msg *wire.MsgBlock) model.RawBlock {
	hash := msg.BlockHash()
	txs := make([]model.RawTransaction, 0, len(msg.Transactions))
	for _, tx := range msg.Transactions {
		txs = append(txs, ConvertTransaction(tx))
	}
	return model.RawBlock{
		Hash:         hash.String(),
		PrevHash:     msg.Header.PrevBlock.String(),
		MerkleRoot:   msg.Header.MerkleRoot.String(),
		Version:      msg.Header.Version,
		Nonce:        msg.Header.Nonce,
		Bits:         msg.Header.Bits,
		Time:         msg.Header.Timestamp.UTC(),
		Size:         msg.SerializeSize(),
		Transactions: txs,
	}
}

// ConvertTransaction maps a wire transaction into the index input model.
func ConvertTransaction(tx *wire.MsgTx) model.RawTransaction {
	coinbase := blockchain.IsCoinBaseTx(tx)
	out := model.RawTransaction{
		TxID:     tx.TxHash().String(),
		Coinbase: coinbase,
		Size:     tx.SerializeSize(),
		LockTime: tx.LockTime,
		Outputs:  make([]model.RawOutput, 0, len(tx.TxOut)),
	}
	if !coinbase {
		out.Inputs = make([]model.RawInput, 0, len(tx.TxIn))
		for _, in := range tx.TxIn {
			out.Inputs = append(out.Inputs, model.RawInput{
				PrevTxID:  in.PreviousOutPoint.Hash.String(),
				PrevIndex: in.PreviousOutPoint.Index,
			})
		}
	}
	for _, o := range tx.TxOut {
		out.Outputs = append(out.Outputs, model.RawOutput{
			Value:  o.Value,
			Script: append([]byte(nil), o.PkScript...),
		})
	}
	return out
}

// ConvertHeader maps a wire header into the header announced to the scheduler.
func ConvertHeader(h *wire.BlockHeader) model.BlockHeader {
	hash := h.BlockHash()
	return model.BlockHeader{
		Hash:     hash.String(),
		PrevHash: h.PrevBlock.String(),
		Time:     h.Timestamp.UTC(),
	}
}
