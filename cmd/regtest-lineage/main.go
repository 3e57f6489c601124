package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/rpcclient"

	regtest "github.com/neverDefined/go-regtest-lineage"
	"github.com/neverDefined/go-regtest-lineage/internal/handlers/cli"
	"github.com/neverDefined/go-regtest-lineage/internal/nodelink"
	"github.com/neverDefined/go-regtest-lineage/internal/pkg/logger"
	"github.com/neverDefined/go-regtest-lineage/internal/workflow"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := regtest.LoadConfig()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer logger.Sync()

	rpcclient.UseLogger(logger.Subsystem("RPCC", cfg.LogLevel))

	params, err := cfg.ChainParams()
	if err != nil {
		return err
	}

	link, err := nodelink.Dial(cfg.ConnConfig(), params)
	if err != nil {
		return err
	}
	defer link.Shutdown()

	node, err := regtest.New(&cfg)
	if err != nil {
		return err
	}

	wf := workflow.New(link, workflow.WithReportPath(cfg.ReportPath))

	return cli.Run(ctx, wf, node)
}
