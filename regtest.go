package regtest

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/rpcclient"

	"github.com/neverDefined/go-regtest-lineage/internal/pkg/logger"
	"github.com/neverDefined/go-regtest-lineage/internal/pkg/resilience/retry"
)

// ---------------------------------------------------------------
//  Bitcoin Core Node Management
// ---------------------------------------------------------------

var (
	// bitcoindMutex serializes start/stop/status calls so two goroutines
	// never drive the manager script at the same time.
	bitcoindMutex sync.Mutex

	// scriptPath holds the absolute path to the bitcoind_manager.sh script.
	// It is discovered during package initialization by walking up the
	// directory tree to the project root (go.mod).
	scriptPath string
)

// init discovers the bitcoind manager script. It walks up from the working
// directory until it finds go.mod and expects the script at
// scripts/bitcoind_manager.sh. A missing script is reported when a manager
// command runs, not here.
func init() {
	workDir, _ := os.Getwd()

	for {
		if _, err := os.Stat(filepath.Join(workDir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(workDir)
		if parent == workDir {
			// Reached root, fallback to current directory
			break
		}
		workDir = parent
	}

	scriptPath = filepath.Join(workDir, "scripts", "bitcoind_manager.sh")
}

// DefaultRegtestConfig returns the RPC connection config of the active
// configuration (see GetConfig).
//
// Configuration details:
//   - Host, User, Pass from the active Config
//   - HTTP POST mode enabled for JSON-RPC communication
//   - TLS disabled for local development
func DefaultRegtestConfig() *rpcclient.ConnConfig {
	cfg := GetConfig()
	return cfg.ConnConfig()
}

// Regtest manages a single local bitcoind node through the manager script.
// All methods are safe for concurrent use.
type Regtest struct {
	cfg   Config
	retry retry.Retry
}

// New creates a node manager for cfg. A nil cfg uses GetConfig.
func New(cfg *Config) (*Regtest, error) {
	c := GetConfig()
	if cfg != nil {
		c = *cfg
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid regtest config: %w", err)
	}

	return &Regtest{
		cfg:   c,
		retry: retry.New(),
	}, nil
}

// Config returns the configuration the manager was created with.
func (r *Regtest) Config() Config {
	return r.cfg
}

// Start launches bitcoind and blocks until it answers RPC calls or ctx is
// done. The node runs with -txindex so confirmed transactions can be looked
// up by id.
//
// Example:
//
//	rt, err := regtest.New(nil)
//	if err != nil {
//	    return err
//	}
//	if err := rt.Start(ctx); err != nil {
//	    return err
//	}
//	defer rt.Stop()
func (r *Regtest) Start(ctx context.Context) error {
	if _, err := r.runScript("start"); err != nil {
		return err
	}

	logger.Info(ctx, "bitcoind started, waiting for rpc", "host", r.cfg.Host)

	if err := r.retry.Execute(ctx, r.HealthCheck); err != nil {
		return fmt.Errorf("bitcoind not ready at %s: %w", r.cfg.Host, err)
	}

	return nil
}

// Stop stops the node and cleans up its data directory.
func (r *Regtest) Stop() error {
	_, err := r.runScript("stop")
	return err
}

// IsRunning reports whether the node is running, without changing its state.
func (r *Regtest) IsRunning() (bool, error) {
	output, err := r.runScript("status")
	if err != nil {
		return false, err
	}

	return strings.Contains(output, "is running"), nil
}

// HealthCheck opens a short-lived RPC connection and asks for the block
// count.
func (r *Regtest) HealthCheck() error {
	client, err := rpcclient.New(r.cfg.ConnConfig(), nil)
	if err != nil {
		return fmt.Errorf("create rpc client: %w", err)
	}
	defer client.Shutdown()

	if _, err := client.GetBlockCount(); err != nil {
		return fmt.Errorf("get block count: %w", err)
	}

	return nil
}

// runScript executes the manager script with command and returns its
// combined output. The node settings are handed over as environment
// variables.
func (r *Regtest) runScript(command string) (string, error) {
	bitcoindMutex.Lock()
	defer bitcoindMutex.Unlock()

	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return "", fmt.Errorf("bitcoind manager script not found at: %s", scriptPath)
	}

	cmd := exec.Command("bash", scriptPath, command)
	cmd.Env = append(os.Environ(), r.scriptEnv()...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("bitcoind %s failed (script: %s): %s", command, scriptPath, string(output))
	}

	return string(output), nil
}

// scriptEnv renders the configuration for the manager script.
func (r *Regtest) scriptEnv() []string {
	port := r.cfg.Host
	if i := strings.LastIndex(port, ":"); i >= 0 {
		port = port[i+1:]
	}

	return []string{
		"BITCOIND_DATADIR=" + r.cfg.DataDir,
		"BITCOIND_RPCPORT=" + port,
		"BITCOIND_RPCUSER=" + r.cfg.User,
		"BITCOIND_RPCPASS=" + r.cfg.Pass,
		"BITCOIND_EXTRA_ARGS=" + strings.Join(r.cfg.ExtraArgs, " "),
	}
}
