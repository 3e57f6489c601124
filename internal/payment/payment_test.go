package payment

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neverDefined/go-regtest-lineage/internal/nodelink/mocks"
	"github.com/neverDefined/go-regtest-lineage/internal/provision"
)

func traderAddress(t *testing.T) btcutil.Address {
	t.Helper()

	hash := make([]byte, 20)
	hash[19] = 2

	addr, err := btcutil.NewAddressWitnessPubKeyHash(hash, &chaincfg.RegressionNetParams)
	require.NoError(t, err)

	return addr
}

func TestService_Pay(t *testing.T) {
	txid := chainhash.DoubleHashH([]byte("payment"))
	other := chainhash.DoubleHashH([]byte("other"))

	t.Run("should return the txid once it is in the mempool", func(t *testing.T) {
		// Arrange
		link := mocks.NewLink(t)
		addr := traderAddress(t)

		link.EXPECT().SendToAddress(addr, Amount).Return(&txid, nil).Once()
		link.EXPECT().GetRawMempool().Return([]*chainhash.Hash{&other, &txid}, nil).Once()

		// Act
		got, err := New().Pay(t.Context(), provision.WalletHandle{Name: "Miner", Link: link}, addr, Amount)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, txid, got)
	})

	t.Run("should fail when the payment is missing from the mempool", func(t *testing.T) {
		link := mocks.NewLink(t)
		addr := traderAddress(t)

		link.EXPECT().SendToAddress(addr, Amount).Return(&txid, nil).Once()
		link.EXPECT().GetRawMempool().Return([]*chainhash.Hash{&other}, nil).Once()

		_, err := New().Pay(t.Context(), provision.WalletHandle{Name: "Miner", Link: link}, addr, Amount)

		assert.ErrorIs(t, err, ErrNotInMempool)
	})

	t.Run("should surface send failures", func(t *testing.T) {
		link := mocks.NewLink(t)
		addr := traderAddress(t)

		link.EXPECT().SendToAddress(addr, Amount).Return(nil, assert.AnError).Once()

		_, err := New().Pay(t.Context(), provision.WalletHandle{Name: "Miner", Link: link}, addr, Amount)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should surface mempool failures", func(t *testing.T) {
		link := mocks.NewLink(t)
		addr := traderAddress(t)

		link.EXPECT().SendToAddress(addr, Amount).Return(&txid, nil).Once()
		link.EXPECT().GetRawMempool().Return(nil, assert.AnError).Once()

		_, err := New().Pay(t.Context(), provision.WalletHandle{Name: "Miner", Link: link}, addr, Amount)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should reject a non-positive amount", func(t *testing.T) {
		link := mocks.NewLink(t)

		_, err := New().Pay(t.Context(), provision.WalletHandle{Name: "Miner", Link: link}, traderAddress(t), 0)

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestService_Confirm(t *testing.T) {
	block := chainhash.DoubleHashH([]byte("block 102"))

	t.Run("should mine exactly one block", func(t *testing.T) {
		link := mocks.NewLink(t)
		addr := traderAddress(t)

		link.EXPECT().GenerateToAddress(int64(1), addr).Return([]*chainhash.Hash{&block}, nil).Once()

		got, err := New().Confirm(t.Context(), provision.WalletHandle{Name: "Miner", Link: link}, addr)

		require.NoError(t, err)
		assert.Equal(t, block, got)
	})

	t.Run("should surface mining failures", func(t *testing.T) {
		link := mocks.NewLink(t)
		addr := traderAddress(t)

		link.EXPECT().GenerateToAddress(int64(1), addr).Return(nil, assert.AnError).Once()

		_, err := New().Confirm(t.Context(), provision.WalletHandle{Name: "Miner", Link: link}, addr)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
