// Package nodelink is the JSON-RPC channel to a Bitcoin Core node. It wraps
// the btcd rpcclient behind the Link interface so the workflow components can
// be exercised against test doubles, and adds the few wallet RPCs rpcclient
// has no typed wrapper for.
package nodelink

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

// Bitcoin Core JSON-RPC error codes the workflow reacts to. They are read
// from *btcjson.RPCError, never parsed out of messages.
const (
	// CodeWalletError is returned by createwallet when the wallet directory
	// already exists on disk.
	CodeWalletError btcjson.RPCErrorCode = -4

	// CodeInvalidAddressOrKey is returned by getrawtransaction for an
	// unknown transaction id.
	CodeInvalidAddressOrKey btcjson.RPCErrorCode = -5

	// CodeWalletNotFound is returned by loadwallet when no wallet with that
	// name exists on disk.
	CodeWalletNotFound btcjson.RPCErrorCode = -18

	// CodeWalletAlreadyLoaded is returned by loadwallet and createwallet when
	// the wallet is already loaded.
	CodeWalletAlreadyLoaded btcjson.RPCErrorCode = -35
)

// ErrNetworkMismatch is returned when the node hands out an address that does
// not belong to the configured network.
var ErrNetworkMismatch = errors.New("address belongs to another network")

// Link is an authenticated command channel to a node. A Link returned by
// Wallet is bound to the /wallet/<name> sub-endpoint; wallet RPCs issued on it
// act on that wallet only.
type Link interface {
	// Params returns the network the link validates addresses against.
	Params() *chaincfg.Params

	// Wallet returns a Link scoped to the named wallet.
	Wallet(name string) (Link, error)

	// ListWallets returns the names of the currently loaded wallets.
	ListWallets() ([]string, error)

	// ListWalletDir returns the names of the wallets present on disk.
	ListWalletDir() ([]string, error)

	// LoadWallet loads a wallet from disk.
	LoadWallet(name string) error

	// CreateWallet creates and loads a new wallet.
	CreateWallet(name string) error

	// GetNewAddress returns a fresh receiving address of the scoped wallet.
	GetNewAddress(label string) (btcutil.Address, error)

	// GenerateToAddress mines blocks paying their rewards to address.
	GenerateToAddress(numBlocks int64, address btcutil.Address) ([]*chainhash.Hash, error)

	// SendToAddress pays amount to address from the scoped wallet with the
	// node's default fee estimation.
	SendToAddress(address btcutil.Address, amount btcutil.Amount) (*chainhash.Hash, error)

	// GetRawMempool returns the ids of all unconfirmed transactions.
	GetRawMempool() ([]*chainhash.Hash, error)

	// GetRawTransactionVerbose returns the decoded transaction.
	GetRawTransactionVerbose(txid *chainhash.Hash) (*btcjson.TxRawResult, error)

	// GetBlockHeaderVerbose returns the decoded header of a block.
	GetBlockHeaderVerbose(hash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)

	// Call invokes any node method by name. Each param is JSON-encoded.
	Call(method string, params ...any) (json.RawMessage, error)

	// Shutdown releases the connection.
	Shutdown()
}

// client is the rpcclient-backed Link.
type client struct {
	rpc    *rpcclient.Client
	config rpcclient.ConnConfig
	params *chaincfg.Params
}

// Compile-time assertion that client implements the Link interface.
var _ Link = (*client)(nil)

// Dial creates a Link to the node described by cfg. The node is not contacted
// until the first call.
func Dial(cfg *rpcclient.ConnConfig, params *chaincfg.Params) (Link, error) {
	if cfg == nil {
		return nil, errors.New("missing rpc config")
	}

	if params == nil {
		return nil, errors.New("missing chain params")
	}

	rpc, err := rpcclient.New(cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("create rpc client: %w", err)
	}

	return &client{
		rpc:    rpc,
		config: *cfg,
		params: params,
	}, nil
}

func (c *client) Params() *chaincfg.Params {
	return c.params
}

func (c *client) Wallet(name string) (Link, error) {
	scoped := c.config
	scoped.Host = c.config.Host + "/wallet/" + url.PathEscape(name)

	return Dial(&scoped, c.params)
}

func (c *client) ListWallets() ([]string, error) {
	raw, err := c.Call("listwallets")
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("decode listwallets: %w", err)
	}

	return names, nil
}

// walletDir is the result of listwalletdir.
type walletDir struct {
	Wallets []struct {
		Name string `json:"name"`
	} `json:"wallets"`
}

func (c *client) ListWalletDir() ([]string, error) {
	raw, err := c.Call("listwalletdir")
	if err != nil {
		return nil, err
	}

	var dir walletDir
	if err := json.Unmarshal(raw, &dir); err != nil {
		return nil, fmt.Errorf("decode listwalletdir: %w", err)
	}

	names := make([]string, 0, len(dir.Wallets))
	for _, w := range dir.Wallets {
		names = append(names, w.Name)
	}

	return names, nil
}

func (c *client) LoadWallet(name string) error {
	_, err := c.Call("loadwallet", name)
	return err
}

func (c *client) CreateWallet(name string) error {
	_, err := c.Call("createwallet", name)
	return err
}

func (c *client) GetNewAddress(label string) (btcutil.Address, error) {
	addr, err := c.rpc.GetNewAddress(label)
	if err != nil {
		return nil, err
	}

	if !addr.IsForNet(c.params) {
		return nil, fmt.Errorf("%w: %s is not a %s address", ErrNetworkMismatch, addr, c.params.Name)
	}

	return addr, nil
}

func (c *client) GenerateToAddress(numBlocks int64, address btcutil.Address) ([]*chainhash.Hash, error) {
	return c.rpc.GenerateToAddress(numBlocks, address, nil)
}

func (c *client) SendToAddress(address btcutil.Address, amount btcutil.Amount) (*chainhash.Hash, error) {
	return c.rpc.SendToAddress(address, amount)
}

func (c *client) GetRawMempool() ([]*chainhash.Hash, error) {
	return c.rpc.GetRawMempool()
}

func (c *client) GetRawTransactionVerbose(txid *chainhash.Hash) (*btcjson.TxRawResult, error) {
	return c.rpc.GetRawTransactionVerbose(txid)
}

func (c *client) GetBlockHeaderVerbose(hash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error) {
	return c.rpc.GetBlockHeaderVerbose(hash)
}

func (c *client) Call(method string, params ...any) (json.RawMessage, error) {
	rawParams := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode %s param: %w", method, err)
		}

		rawParams = append(rawParams, raw)
	}

	return c.rpc.RawRequest(method, rawParams)
}

func (c *client) Shutdown() {
	c.rpc.Shutdown()
}

// HasCode reports whether err carries a JSON-RPC error with the given code.
func HasCode(err error, code btcjson.RPCErrorCode) bool {
	var rpcErr *btcjson.RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}

	return rpcErr.Code == code
}
