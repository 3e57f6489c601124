/*
Package regtest manages the local Bitcoin Core regtest node the lineage workflow runs
against, and holds the configuration shared by every component.

Regtest mode creates a private blockchain where blocks are mined on demand. The workflow
provisions a "Miner" and a "Trader" wallet, mines 101 blocks to Miner so the first coinbase
matures, pays 20 BTC to Trader, confirms the payment with one block and resolves where the
money came from and went. The result is written as a ten-line report.

Quick Start

	cfg, err := regtest.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	rt, err := regtest.New(&cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer rt.Stop()

	if err := rt.Start(ctx); err != nil {
		log.Fatal(err)
	}

Or from the command line:

	regtest-lineage node start
	regtest-lineage run
	regtest-lineage resolve --txid <txid> --amount 20
	regtest-lineage node stop

# Configuration

Default settings:
  - RPC host: 127.0.0.1:18443
  - RPC user: alice
  - RPC pass: password
  - Network: regtest
  - Data directory: ./bitcoind_regtest
  - Report path: ../out.txt
  - Log level: info

Every setting can be overridden with a REGTEST_ environment variable, e.g. REGTEST_HOST,
REGTEST_DATA_DIR or REGTEST_REPORT_PATH. LoadConfig validates the result; an address
from a network other than the configured one is always an error.

# Node

The node is started with -txindex so that confirmed transactions can be fetched by id,
and with a fallback fee so that sends work on an empty fee estimator. Start blocks until
the node answers RPC calls. Stop removes the data directory, so every start begins at
height 0 and the confirming block of the workflow payment is block 102.

# Thread Safety

Start, Stop and IsRunning are serialized. GetConfig, SetConfig and ResetConfig are safe
for concurrent use. The workflow itself is strictly sequential.

# Prerequisites

Install Bitcoin Core:
  - macOS: brew install bitcoin
  - Ubuntu/Debian: sudo apt-get install bitcoind
  - Arch: sudo pacman -S bitcoin-core

Node-backed tests run with:

	go test -tags integration ./...

# Port Considerations

When running multiple nodes, use widely spaced ports (e.g., 19000, 19100) because Bitcoin
Core uses both RPC and P2P ports. Each node needs its own data directory.
*/
package regtest
