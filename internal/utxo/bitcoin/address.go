package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
)

// ErrMalformedScript reports a locking script that cannot be parsed.
var ErrMalformedScript = errors.New("malformed script")

// AddressDeriver resolves the owning address of an output locking script.
type AddressDeriver struct {
	params *chaincfg.Params
}

// NewAddressDeriver builds a deriver for the network.
func NewAddressDeriver(network model.Network) (*AddressDeriver, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &AddressDeriver{params: params}, nil
}

// Derive returns the address that controls script. Scripts without a single owner
// (null data, bare multisig, non-standard) yield model.NoAddress. A script that
// cannot be parsed yields model.NoAddress and an error wrapping ErrMalformedScript.
func (d *AddressDeriver) Derive(script []byte) (string, error) {
	if len(script) == 0 {
		return model.NoAddress, nil
	}

	// Pay-to-pubkey outputs are attributed to the pubkey-hash address of the key.
	if pubKey, ok := payToPubKey(script); ok {
		addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pubKey), d.params)
		if err != nil {
			return model.NoAddress, fmt.Errorf("%w: %v", ErrMalformedScript, err)
		}
		return addr.EncodeAddress(), nil
	}

	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return model.NoAddress, fmt.Errorf("%w: %v", ErrMalformedScript, err)
	}
	if class == txscript.NonStandardTy {
		if _, err := txscript.DisasmString(script); err != nil {
			return model.NoAddress, fmt.Errorf("%w: %v", ErrMalformedScript, err)
		}
	}
	if len(addrs) != 1 {
		return model.NoAddress, nil
	}
	return addrs[0].EncodeAddress(), nil
}

// payToPubKey matches <33 or 65 byte push> OP_CHECKSIG and returns the pushed key.
func payToPubKey(script []byte) ([]byte, bool) {
	n := len(script)
	if n != 35 && n != 67 {
		return nil, false
	}
	if int(script[0]) != n-2 || script[n-1] != txscript.OP_CHECKSIG {
		return nil, false
	}
	key := script[1 : n-1]
	switch key[0] {
	case 0x02, 0x03:
		return key, len(key) == 33
	case 0x04, 0x06, 0x07:
		return key, len(key) == 65
	default:
		return nil, false
	}
}
