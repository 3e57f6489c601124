package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/neverDefined/go-regtest-lineage/internal/workflow"
)

// NodeManager controls the local bitcoind the workflow runs against.
type NodeManager interface {
	// Start launches the node and waits until it answers RPC calls.
	Start(ctx context.Context) error

	// Stop shuts the node down and removes its data directory.
	Stop() error

	// IsRunning reports whether the node process is up.
	IsRunning() (bool, error)
}

// Run initializes and executes the regtest-lineage CLI application.
//
// It registers all available commands, including:
//
//   - `run`: Runs the full payment scenario and writes the report. Also the
//     default action.
//   - `resolve`: Resolves the lineage of a confirmed payment and prints it.
//   - `node`: Starts, stops or inspects the local bitcoind.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - wf: The workflow service used by run and resolve.
//   - node: The node manager used by the node commands.
func Run(ctx context.Context, wf workflow.Service, node NodeManager) error {
	return newApp(wf, node).Run(ctx, os.Args)
}

func newApp(wf workflow.Service, node NodeManager) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "regtest-lineage",
		Description:           "Runs a Bitcoin regtest payment and reconstructs where its money came from and went.",
		Usage:                 "regtest-lineage [command] [flags]",
		Action:                runWorkflowAction(wf),
		Commands: []*cli.Command{
			runWorkflowCommand(wf),
			resolveCommand(wf),
			nodeCommand(node),
		},
	}
}
