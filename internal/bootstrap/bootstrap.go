// Package bootstrap mines blocks so that a wallet ends up with spendable
// coinbase funds.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/neverDefined/go-regtest-lineage/internal/pkg/logger"
	"github.com/neverDefined/go-regtest-lineage/internal/provision"
)

// MaturityBlocks is the number of blocks mined to make the first coinbase
// spendable: the 100-block maturity depth plus the block that pays it.
const MaturityBlocks = 101

// ErrNoBlocks is returned when asked to mine a non-positive number of blocks.
var ErrNoBlocks = errors.New("block count must be positive")

// Bootstrapper funds wallets by mining.
type Bootstrapper interface {
	// Fund mines blocks with their rewards paid to address and returns the
	// hashes of the new blocks in order.
	Fund(ctx context.Context, wallet provision.WalletHandle, address btcutil.Address, blocks int64) ([]chainhash.Hash, error)
}

type service struct{}

// Compile-time check to ensure *service implements the Bootstrapper interface.
var _ Bootstrapper = (*service)(nil)

// New creates a Bootstrapper. Mining is never retried.
func New() *service {
	return &service{}
}

func (s *service) Fund(ctx context.Context, wallet provision.WalletHandle, address btcutil.Address, blocks int64) ([]chainhash.Hash, error) {
	if blocks <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoBlocks, blocks)
	}

	hashes, err := wallet.Link.GenerateToAddress(blocks, address)
	if err != nil {
		return nil, fmt.Errorf("generate %d blocks to %s: %w", blocks, address, err)
	}

	if int64(len(hashes)) != blocks {
		return nil, fmt.Errorf("generate %d blocks to %s: node mined %d", blocks, address, len(hashes))
	}

	out := make([]chainhash.Hash, 0, len(hashes))
	for _, h := range hashes {
		out = append(out, *h)
	}

	logger.Info(ctx, "blocks mined",
		"wallet", wallet.Name,
		"address", address.EncodeAddress(),
		"blocks", blocks,
		"tip", out[len(out)-1].String(),
	)

	return out, nil
}
