//go:build integration

package regtest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neverDefined/go-regtest-lineage/internal/lineage"
	"github.com/neverDefined/go-regtest-lineage/internal/nodelink"
	"github.com/neverDefined/go-regtest-lineage/internal/payment"
	"github.com/neverDefined/go-regtest-lineage/internal/provision"
	"github.com/neverDefined/go-regtest-lineage/internal/workflow"
)

// startNode starts a fresh node and returns a link to it. The node is
// stopped and its data removed when the test ends.
func startNode(t *testing.T) nodelink.Link {
	t.Helper()

	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(t.TempDir(), "bitcoind")

	rt, err := New(&cfg)
	require.NoError(t, err)
	require.NoError(t, rt.Start(t.Context()))
	t.Cleanup(func() {
		if err := rt.Stop(); err != nil {
			t.Logf("stop bitcoind: %v", err)
		}
	})

	params, err := cfg.ChainParams()
	require.NoError(t, err)

	link, err := nodelink.Dial(cfg.ConnConfig(), params)
	require.NoError(t, err)
	t.Cleanup(link.Shutdown)

	return link
}

func TestRPC_Connection(t *testing.T) {
	link := startNode(t)

	raw, err := link.Call("getblockchaininfo")

	require.NoError(t, err)
	assert.Contains(t, string(raw), `"chain":"regtest"`)
}

func TestRPC_WalletProvisioning(t *testing.T) {
	link := startNode(t)
	provisioner := provision.New(link)

	first, outcome, err := provisioner.Ensure(t.Context(), "Miner")
	require.NoError(t, err)
	assert.Equal(t, provision.OutcomeCreated, outcome)

	second, outcome, err := provisioner.Ensure(t.Context(), "Miner")
	require.NoError(t, err)
	assert.Equal(t, provision.OutcomeAlreadyLoaded, outcome)

	firstAddr, err := first.Link.GetNewAddress("")
	require.NoError(t, err)
	secondAddr, err := second.Link.GetNewAddress("")
	require.NoError(t, err)
	assert.NotEqual(t, firstAddr.EncodeAddress(), secondAddr.EncodeAddress())
}

func TestRPC_Workflow(t *testing.T) {
	link := startNode(t)
	path := filepath.Join(t.TempDir(), "out.txt")
	wf := workflow.New(link, workflow.WithReportPath(path), workflow.WithOutput(&bytes.Buffer{}))

	r, err := wf.Run(t.Context())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, 10)

	assert.Equal(t, r.TxID.String(), lines[0])
	assert.Equal(t, "20", lines[4])
	assert.Equal(t, "102", lines[8])
	assert.GreaterOrEqual(t, r.FundingAmount, payment.Amount-r.Fee)
	assert.Equal(t, r.FundingAmount, r.PaymentAmount+r.ChangeAmount-r.Fee)

	again, err := wf.Resolve(t.Context(), r.TxID, payment.Amount)
	require.NoError(t, err)
	assert.Equal(t, r, again)
}

func TestRPC_ResolveUnconfirmed(t *testing.T) {
	link := startNode(t)
	provisioner := provision.New(link)

	miner, _, err := provisioner.Ensure(t.Context(), "Miner")
	require.NoError(t, err)

	addr, err := miner.Link.GetNewAddress("")
	require.NoError(t, err)
	_, err = miner.Link.GenerateToAddress(101, addr)
	require.NoError(t, err)

	txid, err := miner.Link.SendToAddress(addr, payment.Amount)
	require.NoError(t, err)

	_, err = lineage.New(lineage.NewNodeLookup(link)).Resolve(t.Context(), *txid, payment.Amount)

	assert.ErrorIs(t, err, lineage.ErrUnconfirmed)
}
