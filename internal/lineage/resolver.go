package lineage

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/neverDefined/go-regtest-lineage/internal/pkg/logger"
)

// service is the Lookup-backed Resolver.
type service struct {
	lookup Lookup
}

// Compile-time check to ensure *service implements the Resolver interface.
var _ Resolver = (*service)(nil)

// New creates a Resolver reading chain data from lookup.
func New(lookup Lookup) *service {
	return &service{lookup: lookup}
}

// Resolve fetches txid, walks back to the output its single input spends,
// classifies its two outputs against expectedPayment and computes the fee.
// It either returns a complete Report or an error; nothing is returned
// half-resolved.
func (s *service) Resolve(ctx context.Context, txid chainhash.Hash, expectedPayment btcutil.Amount) (Report, error) {
	tx, err := s.lookup.Transaction(ctx, txid)
	if err != nil {
		return Report{}, fmt.Errorf("fetch transaction %s: %w", txid, err)
	}

	if tx.BlockHash == nil {
		return Report{}, fmt.Errorf("%w: %s", ErrUnconfirmed, txid)
	}

	if len(tx.Inputs) != 1 || len(tx.Outputs) != 2 {
		return Report{}, fmt.Errorf("%w: %s has %d inputs and %d outputs",
			ErrUnsupportedShape, txid, len(tx.Inputs), len(tx.Outputs))
	}

	funding, err := s.fundingOutput(ctx, tx.Inputs[0])
	if err != nil {
		return Report{}, err
	}

	payment, change, err := split(tx.Outputs, expectedPayment)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", txid, err)
	}

	fundingAddr, err := addressOf("funding", funding)
	if err != nil {
		return Report{}, err
	}

	paymentAddr, err := addressOf("payment", payment)
	if err != nil {
		return Report{}, err
	}

	changeAddr, err := addressOf("change", change)
	if err != nil {
		return Report{}, err
	}

	fee := funding.Value - (payment.Value + change.Value)
	if fee < 0 {
		return Report{}, fmt.Errorf("%w: funding %d sat, outputs %d sat",
			ErrNegativeFee, int64(funding.Value), int64(payment.Value+change.Value))
	}

	block, err := s.lookup.Block(ctx, *tx.BlockHash)
	if err != nil {
		return Report{}, fmt.Errorf("fetch block %s: %w", tx.BlockHash, err)
	}

	logger.Info(ctx, "lineage resolved",
		"txid", txid.String(),
		"fee_sat", int64(fee),
		"block_height", block.Height,
	)

	return Report{
		TxID:           txid,
		FundingAddress: fundingAddr,
		FundingAmount:  funding.Value,
		PaymentAddress: paymentAddr,
		PaymentAmount:  payment.Value,
		ChangeAddress:  changeAddr,
		ChangeAmount:   change.Value,
		Fee:            -fee,
		BlockHeight:    block.Height,
		BlockHash:      block.Hash,
	}, nil
}

// fundingOutput returns the output prev points at. It looks FundingDepth
// hop back and no further.
func (s *service) fundingOutput(ctx context.Context, prev OutPoint) (Output, error) {
	logger.Debug(ctx, "fetching funding output",
		"txid", prev.TxID.String(),
		"vout", prev.Index,
		"depth", FundingDepth,
	)

	parent, err := s.lookup.Transaction(ctx, prev.TxID)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %s:%d: %w", ErrMissingPreviousOutput, prev.TxID, prev.Index, err)
	}

	if int(prev.Index) >= len(parent.Outputs) {
		return Output{}, fmt.Errorf("%w: %s has %d outputs, input spends index %d",
			ErrMissingPreviousOutput, prev.TxID, len(parent.Outputs), prev.Index)
	}

	return parent.Outputs[prev.Index], nil
}

// split returns the payment and change outputs according to Classify.
func split(outputs []Output, expected btcutil.Amount) (payment, change Output, err error) {
	roles := Classify(outputs, expected)

	var foundPayment, foundChange bool
	for i, role := range roles {
		switch role {
		case RolePayment:
			payment, foundPayment = outputs[i], true
		case RoleChange:
			change, foundChange = outputs[i], true
		}
	}

	if !foundPayment || !foundChange {
		return Output{}, Output{}, fmt.Errorf("%w: output values %s and %s, expected payment %s",
			ErrAmbiguousOutput, outputs[0].Value, outputs[1].Value, expected)
	}

	return payment, change, nil
}

// addressOf returns the encoded address of out, naming role in the error
// when there is none.
func addressOf(role string, out Output) (string, error) {
	if out.Address == nil || out.Address.Address == nil {
		return "", fmt.Errorf("%w: %s output", ErrNoAddress, role)
	}

	return out.Address.String(), nil
}
