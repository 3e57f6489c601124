// Package lineage reconstructs where the money of a confirmed payment came
// from and where it went. Given a transaction id it finds the funding output
// one hop back, splits the two outputs into payment and change by value,
// derives the fee in satoshi and attaches the confirming block.
package lineage

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/neverDefined/go-regtest-lineage/internal/nodelink"
)

// FundingDepth is how many hops backward the resolver walks from the target
// transaction's input. Only the direct parent is inspected.
const FundingDepth = 1

var (
	// ErrNotFound is returned by a Lookup when the node does not know the
	// requested transaction or block.
	ErrNotFound = errors.New("not found")

	// ErrUnconfirmed is returned when the target transaction has no
	// confirming block.
	ErrUnconfirmed = errors.New("transaction is not confirmed")

	// ErrMissingPreviousOutput is returned when the output spent by the
	// target's input cannot be fetched.
	ErrMissingPreviousOutput = errors.New("previous output not found")

	// ErrNoAddress is returned when an output's script has no standard
	// address.
	ErrNoAddress = errors.New("output has no decodable address")

	// ErrAmbiguousOutput is returned when the payment and change outputs
	// cannot be told apart by value.
	ErrAmbiguousOutput = errors.New("cannot classify payment and change outputs")

	// ErrUnsupportedShape is returned for transactions that are not one
	// input paying two outputs.
	ErrUnsupportedShape = errors.New("transaction is not a one-input two-output payment")

	// ErrNegativeFee is returned when the outputs spend more than the
	// funding output holds.
	ErrNegativeFee = errors.New("outputs exceed funding amount")

	// ErrNetworkMismatch is returned when an address belongs to another
	// network than the one being operated on.
	ErrNetworkMismatch = nodelink.ErrNetworkMismatch
)

// Address is a decoded address known to belong to a specific network.
type Address struct {
	btcutil.Address
}

// ParseAddress decodes s and requires it to belong to params.
func ParseAddress(s string, params *chaincfg.Params) (Address, error) {
	addr, err := btcutil.DecodeAddress(s, params)
	if err != nil {
		return Address{}, fmt.Errorf("decode address %q: %w", s, err)
	}

	if !addr.IsForNet(params) {
		return Address{}, fmt.Errorf("%w: %s is not a %s address", ErrNetworkMismatch, s, params.Name)
	}

	return Address{Address: addr}, nil
}

// String returns the encoded address.
func (a Address) String() string {
	if a.Address == nil {
		return ""
	}

	return a.EncodeAddress()
}

// OutPoint identifies one output of one transaction.
type OutPoint struct {
	TxID  chainhash.Hash
	Index uint32
}

// Output is a transaction output. Address is nil when the script carries no
// standard address.
type Output struct {
	Value   btcutil.Amount
	Address *Address
}

// Transaction is the decoded view of a transaction the resolver works on.
// BlockHash is nil while the transaction is unconfirmed.
type Transaction struct {
	TxID      chainhash.Hash
	Inputs    []OutPoint
	Outputs   []Output
	BlockHash *chainhash.Hash
}

// Block is the metadata of a confirming block.
type Block struct {
	Hash   chainhash.Hash
	Height int64
}

// Report is the resolved lineage of a payment. Amounts are in satoshi; Fee
// is negative, the net cost to the payer.
type Report struct {
	TxID           chainhash.Hash
	FundingAddress string
	FundingAmount  btcutil.Amount
	PaymentAddress string
	PaymentAmount  btcutil.Amount
	ChangeAddress  string
	ChangeAmount   btcutil.Amount
	Fee            btcutil.Amount
	BlockHeight    int64
	BlockHash      chainhash.Hash
}

// Lookup fetches chain data by id. Implementations return an error wrapping
// ErrNotFound for unknown ids.
type Lookup interface {
	// Transaction returns the decoded transaction with the given id.
	Transaction(ctx context.Context, txid chainhash.Hash) (*Transaction, error)

	// Block returns the metadata of the block with the given hash.
	Block(ctx context.Context, hash chainhash.Hash) (*Block, error)
}

// Resolver reconstructs the lineage of confirmed payments.
type Resolver interface {
	// Resolve builds the Report of txid. expectedPayment is the amount the
	// payer intended to send and identifies the payment output.
	Resolve(ctx context.Context, txid chainhash.Hash, expectedPayment btcutil.Amount) (Report, error)
}
