// Package workflow runs the regtest payment scenario end to end: provision
// the Miner and Trader wallets, mine spendable funds, pay Trader, confirm,
// resolve the payment lineage and write the report.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/neverDefined/go-regtest-lineage/internal/bootstrap"
	"github.com/neverDefined/go-regtest-lineage/internal/lineage"
	"github.com/neverDefined/go-regtest-lineage/internal/nodelink"
	"github.com/neverDefined/go-regtest-lineage/internal/payment"
	"github.com/neverDefined/go-regtest-lineage/internal/pkg/logger"
	"github.com/neverDefined/go-regtest-lineage/internal/provision"
	"github.com/neverDefined/go-regtest-lineage/internal/report"
)

const (
	// MinerWallet funds the payment and receives every block reward.
	MinerWallet = "Miner"

	// TraderWallet receives the payment.
	TraderWallet = "Trader"
)

// config holds the settings of a Workflow.
type config struct {
	reportPath string
	out        io.Writer
}

// Option configures a Workflow.
type Option func(*config)

// WithReportPath sets where the report is written. Defaults to
// report.DefaultPath.
func WithReportPath(path string) Option {
	return func(c *config) {
		c.reportPath = path
	}
}

// WithOutput sets where the node's chain info is printed. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// Service runs the payment scenario and resolves payment lineages.
type Service interface {
	// Run executes the full scenario and returns the report it wrote.
	Run(ctx context.Context) (lineage.Report, error)

	// Resolve builds the lineage report of an already confirmed payment.
	Resolve(ctx context.Context, txid chainhash.Hash, expected btcutil.Amount) (lineage.Report, error)
}

// Workflow wires the pipeline components to one node link. Steps run one
// after another; each depends on the state the previous one left on the node.
type Workflow struct {
	cfg          config
	link         nodelink.Link
	provisioner  provision.Provisioner
	bootstrapper bootstrap.Bootstrapper
	executor     payment.Executor
	resolver     lineage.Resolver
	writer       report.Writer
}

// Compile-time check to ensure *Workflow implements the Service interface.
var _ Service = (*Workflow)(nil)

// New creates a Workflow issuing node-level calls on link.
func New(link nodelink.Link, opts ...Option) *Workflow {
	cfg := config{
		reportPath: report.DefaultPath,
		out:        os.Stdout,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Workflow{
		cfg:          cfg,
		link:         link,
		provisioner:  provision.New(link),
		bootstrapper: bootstrap.New(),
		executor:     payment.New(),
		resolver:     lineage.New(lineage.NewNodeLookup(link)),
		writer:       report.New(),
	}
}

// Run executes the full scenario and returns the report it wrote. Nothing is
// written unless every step succeeded.
func (w *Workflow) Run(ctx context.Context) (lineage.Report, error) {
	if err := w.printChainInfo(); err != nil {
		return lineage.Report{}, err
	}

	miner, _, err := w.provisioner.Ensure(ctx, MinerWallet)
	if err != nil {
		return lineage.Report{}, err
	}

	trader, _, err := w.provisioner.Ensure(ctx, TraderWallet)
	if err != nil {
		return lineage.Report{}, err
	}

	minerAddr, err := newAddress(ctx, miner)
	if err != nil {
		return lineage.Report{}, err
	}

	if _, err := w.bootstrapper.Fund(ctx, miner, minerAddr, bootstrap.MaturityBlocks); err != nil {
		return lineage.Report{}, fmt.Errorf("fund %s: %w", miner.Name, err)
	}

	traderAddr, err := newAddress(ctx, trader)
	if err != nil {
		return lineage.Report{}, err
	}

	txid, err := w.executor.Pay(ctx, miner, traderAddr, payment.Amount)
	if err != nil {
		return lineage.Report{}, fmt.Errorf("pay %s: %w", trader.Name, err)
	}

	if _, err := w.executor.Confirm(ctx, miner, minerAddr); err != nil {
		return lineage.Report{}, fmt.Errorf("confirm %s: %w", txid, err)
	}

	r, err := w.Resolve(ctx, txid, payment.Amount)
	if err != nil {
		return lineage.Report{}, err
	}

	if err := w.writer.Write(ctx, r, w.cfg.reportPath); err != nil {
		return lineage.Report{}, err
	}

	return r, nil
}

// Resolve builds the lineage report of an already confirmed payment.
func (w *Workflow) Resolve(ctx context.Context, txid chainhash.Hash, expected btcutil.Amount) (lineage.Report, error) {
	r, err := w.resolver.Resolve(ctx, txid, expected)
	if err != nil {
		return lineage.Report{}, fmt.Errorf("resolve %s: %w", txid, err)
	}

	return r, nil
}

// printChainInfo dumps getblockchaininfo as indented JSON.
func (w *Workflow) printChainInfo() error {
	raw, err := w.link.Call("getblockchaininfo")
	if err != nil {
		return fmt.Errorf("get blockchain info: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("format blockchain info: %w", err)
	}

	pretty.WriteByte('\n')
	if _, err := pretty.WriteTo(w.cfg.out); err != nil {
		return fmt.Errorf("print blockchain info: %w", err)
	}

	return nil
}

func newAddress(ctx context.Context, wallet provision.WalletHandle) (btcutil.Address, error) {
	addr, err := wallet.Link.GetNewAddress("")
	if err != nil {
		return nil, fmt.Errorf("new %s address: %w", wallet.Name, err)
	}

	logger.Debug(ctx, "address issued", "wallet", wallet.Name, "address", addr.EncodeAddress())

	return addr, nil
}
