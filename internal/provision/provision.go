// Package provision makes sure a named wallet is loaded on the node and hands
// out a link scoped to it.
package provision

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/neverDefined/go-regtest-lineage/internal/nodelink"
	"github.com/neverDefined/go-regtest-lineage/internal/pkg/logger"
)

// Outcome tells how Ensure satisfied the request.
type Outcome int

const (
	// OutcomeAlreadyLoaded means the wallet was loaded before Ensure ran.
	OutcomeAlreadyLoaded Outcome = iota + 1

	// OutcomeLoaded means the wallet existed on disk and was loaded.
	OutcomeLoaded

	// OutcomeCreated means the wallet did not exist and was created.
	OutcomeCreated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyLoaded:
		return "already_loaded"
	case OutcomeLoaded:
		return "loaded"
	case OutcomeCreated:
		return "created"
	default:
		return "unknown"
	}
}

// ErrEmptyName is returned when Ensure is called without a wallet name.
var ErrEmptyName = errors.New("wallet name is required")

// WalletHandle is a loaded wallet and the link bound to its endpoint.
type WalletHandle struct {
	Name string
	Link nodelink.Link
}

// Provisioner ensures wallets exist and are loaded.
type Provisioner interface {
	// Ensure loads or creates the named wallet. Calling it again with the
	// same name succeeds and returns a handle bound to the same wallet.
	Ensure(ctx context.Context, name string) (WalletHandle, Outcome, error)
}

type service struct {
	link nodelink.Link
}

// Compile-time check to ensure *service implements the Provisioner interface.
var _ Provisioner = (*service)(nil)

// New creates a Provisioner issuing node-level wallet calls on link.
func New(link nodelink.Link) *service {
	return &service{link: link}
}

// Ensure asks the node which wallets are loaded and which exist on disk
// before loading or creating anything. Already-loaded and already-exists
// conditions raised by a concurrent writer are outcomes, not errors.
func (s *service) Ensure(ctx context.Context, name string) (WalletHandle, Outcome, error) {
	if name == "" {
		return WalletHandle{}, 0, ErrEmptyName
	}

	outcome, err := s.ensureLoaded(name)
	if err != nil {
		return WalletHandle{}, 0, fmt.Errorf("ensure wallet %q: %w", name, err)
	}

	scoped, err := s.link.Wallet(name)
	if err != nil {
		return WalletHandle{}, 0, fmt.Errorf("scope link to wallet %q: %w", name, err)
	}

	logger.Info(ctx, "wallet ready", "wallet", name, "outcome", outcome.String())

	return WalletHandle{Name: name, Link: scoped}, outcome, nil
}

func (s *service) ensureLoaded(name string) (Outcome, error) {
	loaded, err := s.link.ListWallets()
	if err != nil {
		return 0, fmt.Errorf("list loaded wallets: %w", err)
	}

	if slices.Contains(loaded, name) {
		return OutcomeAlreadyLoaded, nil
	}

	onDisk, err := s.link.ListWalletDir()
	if err != nil {
		return 0, fmt.Errorf("list wallet directory: %w", err)
	}

	if slices.Contains(onDisk, name) {
		return s.load(name)
	}

	err = s.link.CreateWallet(name)
	switch {
	case err == nil:
		return OutcomeCreated, nil
	case nodelink.HasCode(err, nodelink.CodeWalletAlreadyLoaded):
		return OutcomeAlreadyLoaded, nil
	case nodelink.HasCode(err, nodelink.CodeWalletError):
		// Created on disk between the listing and the call.
		return s.load(name)
	default:
		return 0, fmt.Errorf("create wallet: %w", err)
	}
}

func (s *service) load(name string) (Outcome, error) {
	err := s.link.LoadWallet(name)
	switch {
	case err == nil:
		return OutcomeLoaded, nil
	case nodelink.HasCode(err, nodelink.CodeWalletAlreadyLoaded):
		return OutcomeAlreadyLoaded, nil
	default:
		return 0, fmt.Errorf("load wallet: %w", err)
	}
}
