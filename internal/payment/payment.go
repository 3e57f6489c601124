// Package payment sends a payment from a wallet and confirms it with one
// mined block.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/neverDefined/go-regtest-lineage/internal/pkg/logger"
	"github.com/neverDefined/go-regtest-lineage/internal/provision"
)

// Amount is what the workflow pays from Miner to Trader.
const Amount btcutil.Amount = 20 * btcutil.SatoshiPerBitcoin

var (
	// ErrNotInMempool is returned when a sent transaction is not in the
	// node's mempool right after the send.
	ErrNotInMempool = errors.New("payment not found in mempool")

	// ErrInvalidAmount is returned for non-positive payment amounts.
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

// Executor sends and confirms payments.
type Executor interface {
	// Pay sends amount to address from wallet using the node's fee
	// estimation and checks the transaction reached the mempool.
	Pay(ctx context.Context, wallet provision.WalletHandle, address btcutil.Address, amount btcutil.Amount) (chainhash.Hash, error)

	// Confirm mines exactly one block paying its reward to address.
	Confirm(ctx context.Context, wallet provision.WalletHandle, address btcutil.Address) (chainhash.Hash, error)
}

type service struct{}

// Compile-time check to ensure *service implements the Executor interface.
var _ Executor = (*service)(nil)

// New creates an Executor.
func New() *service {
	return &service{}
}

func (s *service) Pay(ctx context.Context, wallet provision.WalletHandle, address btcutil.Address, amount btcutil.Amount) (chainhash.Hash, error) {
	if amount <= 0 {
		return chainhash.Hash{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	txid, err := wallet.Link.SendToAddress(address, amount)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("send %s to %s from %s: %w", amount, address, wallet.Name, err)
	}

	mempool, err := wallet.Link.GetRawMempool()
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("read mempool: %w", err)
	}

	if !contains(mempool, *txid) {
		return chainhash.Hash{}, fmt.Errorf("%w: %s", ErrNotInMempool, txid)
	}

	logger.Info(ctx, "payment sent",
		"wallet", wallet.Name,
		"txid", txid.String(),
		"to", address.EncodeAddress(),
		"amount_sat", int64(amount),
	)

	return *txid, nil
}

func (s *service) Confirm(ctx context.Context, wallet provision.WalletHandle, address btcutil.Address) (chainhash.Hash, error) {
	hashes, err := wallet.Link.GenerateToAddress(1, address)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("mine confirming block: %w", err)
	}

	if len(hashes) != 1 {
		return chainhash.Hash{}, fmt.Errorf("mine confirming block: node mined %d blocks", len(hashes))
	}

	logger.Info(ctx, "payment confirmed", "wallet", wallet.Name, "block", hashes[0].String())

	return *hashes[0], nil
}

func contains(hashes []*chainhash.Hash, txid chainhash.Hash) bool {
	for _, h := range hashes {
		if h != nil && *h == txid {
			return true
		}
	}

	return false
}
