package regtest

import (
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/kelseyhightower/envconfig"

	"github.com/neverDefined/go-regtest-lineage/internal/pkg/validator"
)

// envPrefix is the prefix of every environment variable read by LoadConfig,
// e.g. REGTEST_HOST or REGTEST_REPORT_PATH.
const envPrefix = "regtest"

// Config holds the settings shared by the node manager and the lineage
// workflow. Every field can be overridden from the environment.
type Config struct {
	// Host is the RPC endpoint of the node, as host:port.
	Host string `default:"127.0.0.1:18443" validate:"required,hostname_port"`

	// User and Pass are the RPC credentials.
	User string `default:"alice" validate:"required"`
	Pass string `default:"password" validate:"required"`

	// Network names the chain the node runs. Addresses from any other
	// network are rejected.
	Network string `default:"regtest" validate:"oneof=regtest testnet3 signet mainnet"`

	// DataDir is the bitcoind data directory used by the manager script.
	DataDir string `split_words:"true" default:"./bitcoind_regtest" validate:"required"`

	// ExtraArgs are appended to the bitcoind command line.
	ExtraArgs []string `split_words:"true"`

	// ReportPath is where the lineage report is written, relative to the
	// working directory.
	ReportPath string `split_words:"true" default:"../out.txt" validate:"required"`

	// LogLevel is the minimum level of the structured logger.
	LogLevel string `split_words:"true" default:"info" validate:"oneof=debug info warn error"`
}

var (
	// configMutex guards customConfig.
	configMutex sync.RWMutex

	// customConfig, when set, replaces DefaultConfig for GetConfig.
	customConfig *Config
)

// DefaultConfig returns the settings of a local regtest node.
//
// Default settings:
//   - Host: 127.0.0.1:18443
//   - User/Pass: alice/password
//   - Network: regtest
//   - DataDir: ./bitcoind_regtest
//   - ReportPath: ../out.txt
//   - LogLevel: info
func DefaultConfig() Config {
	return Config{
		Host:       "127.0.0.1:18443",
		User:       "alice",
		Pass:       "password",
		Network:    chaincfg.RegressionNetParams.Name,
		DataDir:    "./bitcoind_regtest",
		ReportPath: "../out.txt",
		LogLevel:   "info",
	}
}

// LoadConfig reads the configuration from REGTEST_* environment variables,
// falling back to the defaults, and validates the result.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration against its validation tags.
func (c Config) Validate() error {
	return validator.Validate(c)
}

// ChainParams returns the btcd parameters of the configured network.
func (c Config) ChainParams() (*chaincfg.Params, error) {
	switch c.Network {
	case chaincfg.RegressionNetParams.Name:
		return &chaincfg.RegressionNetParams, nil
	case chaincfg.TestNet3Params.Name:
		return &chaincfg.TestNet3Params, nil
	case chaincfg.SigNetParams.Name:
		return &chaincfg.SigNetParams, nil
	case chaincfg.MainNetParams.Name:
		return &chaincfg.MainNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", c.Network)
	}
}

// ConnConfig returns an HTTP POST connection config for the node endpoint.
// The returned value is a fresh copy the caller may modify.
func (c Config) ConnConfig() *rpcclient.ConnConfig {
	return &rpcclient.ConnConfig{
		Host:         c.Host,
		User:         c.User,
		Pass:         c.Pass,
		Params:       c.Network,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
}

// GetConfig returns a copy of the active configuration: the one installed
// with SetConfig, or DefaultConfig when none is set.
func GetConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()

	if customConfig == nil {
		return DefaultConfig()
	}

	cfg := *customConfig
	cfg.ExtraArgs = append([]string(nil), customConfig.ExtraArgs...)

	return cfg
}

// SetConfig installs cfg as the active configuration.
func SetConfig(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if cfg == nil {
		customConfig = nil
		return
	}

	stored := *cfg
	stored.ExtraArgs = append([]string(nil), cfg.ExtraArgs...)
	customConfig = &stored
}

// ResetConfig restores DefaultConfig as the active configuration.
func ResetConfig() {
	SetConfig(nil)
}
