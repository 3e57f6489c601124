package cli

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/urfave/cli/v3"

	"github.com/neverDefined/go-regtest-lineage/internal/payment"
	"github.com/neverDefined/go-regtest-lineage/internal/report"
	"github.com/neverDefined/go-regtest-lineage/internal/workflow"
)

// runWorkflowCommand returns a CLI command that provisions the wallets, funds
// Miner, pays Trader, confirms the payment and writes the lineage report.
//
// Usage example:
//
//	regtest-lineage run
func runWorkflowCommand(wf workflow.Service) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Runs the Miner to Trader payment scenario and writes the lineage report.",
		Usage:       "Runs the full scenario against the configured node.",
		Action:      runWorkflowAction(wf),
	}
}

func runWorkflowAction(wf workflow.Service) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		_, err := wf.Run(ctx)
		return err
	}
}

// resolveCommand returns a CLI command that resolves the lineage of an
// already confirmed payment and prints the report lines.
//
// Usage example:
//
//	regtest-lineage resolve --txid 4a5e1e... --amount 20
func resolveCommand(wf workflow.Service) *cli.Command {
	return &cli.Command{
		Name:        "resolve",
		Description: "Resolves the lineage of a confirmed payment and prints the report.",
		Usage:       "Prints the ten report lines of a confirmed one-input two-output payment.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "txid",
				Usage:    "Id of the confirmed payment transaction",
				Required: true,
			},
			&cli.FloatFlag{
				Name:  "amount",
				Usage: "Amount in BTC the payer intended to send",
				Value: payment.Amount.ToBTC(),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			txid, err := chainhash.NewHashFromStr(c.String("txid"))
			if err != nil {
				return fmt.Errorf("invalid txid: %w", err)
			}

			amount, err := btcutil.NewAmount(c.Float("amount"))
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			r, err := wf.Resolve(ctx, *txid, amount)
			if err != nil {
				return err
			}

			_, err = c.Root().Writer.Write(report.Format(r))
			return err
		},
	}
}
