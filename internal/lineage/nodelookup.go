package lineage

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"

	"github.com/neverDefined/go-regtest-lineage/internal/nodelink"
)

// nodeLookup implements Lookup on top of a node link.
type nodeLookup struct {
	link nodelink.Link
}

// Compile-time check to ensure *nodeLookup implements the Lookup interface.
var _ Lookup = (*nodeLookup)(nil)

// NewNodeLookup creates a Lookup that queries link. The node must run with
// -txindex for confirmed transactions to be found.
func NewNodeLookup(link nodelink.Link) *nodeLookup {
	return &nodeLookup{link: link}
}

// Transaction implements Lookup.
func (l *nodeLookup) Transaction(ctx context.Context, txid chainhash.Hash) (*Transaction, error) {
	raw, err := l.link.GetRawTransactionVerbose(&txid)
	if err != nil {
		if nodelink.HasCode(err, nodelink.CodeInvalidAddressOrKey) {
			return nil, fmt.Errorf("%w: transaction %s: %w", ErrNotFound, txid, err)
		}

		return nil, err
	}

	return decodeTransaction(raw, l.link.Params())
}

// Block implements Lookup.
func (l *nodeLookup) Block(ctx context.Context, hash chainhash.Hash) (*Block, error) {
	header, err := l.link.GetBlockHeaderVerbose(&hash)
	if err != nil {
		if nodelink.HasCode(err, nodelink.CodeInvalidAddressOrKey) {
			return nil, fmt.Errorf("%w: block %s: %w", ErrNotFound, hash, err)
		}

		return nil, err
	}

	blockHash, err := chainhash.NewHashFromStr(header.Hash)
	if err != nil {
		return nil, fmt.Errorf("decode block hash %q: %w", header.Hash, err)
	}

	return &Block{
		Hash:   *blockHash,
		Height: int64(header.Height),
	}, nil
}

// decodeTransaction converts a verbose node transaction. Amounts are turned
// into satoshi here, once; coinbase inputs carry no outpoint and are skipped.
func decodeTransaction(raw *btcjson.TxRawResult, params *chaincfg.Params) (*Transaction, error) {
	txid, err := chainhash.NewHashFromStr(raw.Txid)
	if err != nil {
		return nil, fmt.Errorf("decode txid %q: %w", raw.Txid, err)
	}

	tx := &Transaction{
		TxID:    *txid,
		Inputs:  make([]OutPoint, 0, len(raw.Vin)),
		Outputs: make([]Output, 0, len(raw.Vout)),
	}

	for _, vin := range raw.Vin {
		if vin.IsCoinBase() {
			continue
		}

		prev, err := chainhash.NewHashFromStr(vin.Txid)
		if err != nil {
			return nil, fmt.Errorf("decode input txid %q: %w", vin.Txid, err)
		}

		tx.Inputs = append(tx.Inputs, OutPoint{TxID: *prev, Index: vin.Vout})
	}

	for i, vout := range raw.Vout {
		if int(vout.N) != i {
			return nil, fmt.Errorf("output %d reported with index %d", i, vout.N)
		}

		value, err := btcutil.NewAmount(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("decode value of output %d: %w", i, err)
		}

		addr, err := scriptAddress(vout.ScriptPubKey.Hex, params)
		if err != nil {
			return nil, fmt.Errorf("decode script of output %d: %w", i, err)
		}

		tx.Outputs = append(tx.Outputs, Output{Value: value, Address: addr})
	}

	if raw.BlockHash != "" {
		blockHash, err := chainhash.NewHashFromStr(raw.BlockHash)
		if err != nil {
			return nil, fmt.Errorf("decode block hash %q: %w", raw.BlockHash, err)
		}

		tx.BlockHash = blockHash
	}

	return tx, nil
}

// scriptAddress returns the single standard address paid by the script in
// scriptHex, or nil when the script does not pay one.
func scriptAddress(scriptHex string, params *chaincfg.Params) (*Address, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return nil, err
	}

	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, params)
	if err != nil || len(addrs) != 1 {
		return nil, nil
	}

	switch class {
	case txscript.PubKeyHashTy, txscript.ScriptHashTy,
		txscript.WitnessV0PubKeyHashTy, txscript.WitnessV0ScriptHashTy,
		txscript.WitnessV1TaprootTy:
		return &Address{Address: addrs[0]}, nil
	default:
		return nil, nil
	}
}
