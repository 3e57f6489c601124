package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// nodeCommand returns a CLI command grouping the bitcoind lifecycle
// subcommands.
//
// Usage example:
//
//	regtest-lineage node start
//	regtest-lineage node status
//	regtest-lineage node stop
func nodeCommand(node NodeManager) *cli.Command {
	return &cli.Command{
		Name:        "node",
		Description: "Manages the local bitcoind regtest node.",
		Usage:       "Starts, stops or reports the status of the local node.",
		Commands: []*cli.Command{
			{
				Name:  "start",
				Usage: "Starts bitcoind and waits until it accepts RPC calls.",
				Action: func(ctx context.Context, c *cli.Command) error {
					return node.Start(ctx)
				},
			},
			{
				Name:  "stop",
				Usage: "Stops bitcoind and removes its data directory.",
				Action: func(ctx context.Context, c *cli.Command) error {
					return node.Stop()
				},
			},
			{
				Name:  "status",
				Usage: "Prints whether bitcoind is running.",
				Action: func(ctx context.Context, c *cli.Command) error {
					running, err := node.IsRunning()
					if err != nil {
						return err
					}

					status := "stopped"
					if running {
						status = "running"
					}

					_, err = fmt.Fprintln(c.Root().Writer, status)
					return err
				},
			},
		},
	}
}
