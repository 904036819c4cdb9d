package client_test

import (
	"context"
	"io"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/cmd/client"
	"github.com/klaybind/klaybind/internal/testutil"
	"github.com/klaybind/klaybind/internal/testutil/chainsim"
	"github.com/klaybind/klaybind/internal/testutil/simclient"
	"github.com/klaybind/klaybind/internal/ui"
	"github.com/klaybind/klaybind/pkg/bindings/datastorage"
	"github.com/klaybind/klaybind/pkg/contract"
)

func setupDataStorage(t *testing.T) (*client.EthClient, *contract.Contract) {
	t.Helper()
	t.Cleanup(ui.SetOutput(io.Discard))

	chain := chainsim.NewTestChain(t)
	factory := simclient.NewFactory(testutil.NewTestLogger(), chain)
	eth, err := factory.NewEthClient(context.Background(), nil)
	require.NoError(t, err)

	deployment, err := contract.Deploy(chain.TransactOpts(t, chainsim.TestPrivateKey), datastorage.DataStorageDescriptor, eth.Backend)
	require.NoError(t, err)
	c, err := deployment.Wait(context.Background())
	require.NoError(t, err)
	return eth, c
}

func TestTxClientSend(t *testing.T) {
	logger := testutil.NewTestLogger()

	t.Run("regular transaction is mined and its events decoded", func(t *testing.T) {
		eth, c := setupDataStorage(t)
		txClient := client.NewTxClient(logger, eth, client.TxClientConfig{TxType: client.Regular, SkipPrompt: true})

		out, err := txClient.Send(context.Background(), c, nil, "storeData", "planet", "earth")
		require.NoError(t, err)
		require.NotNil(t, out.Receipt)
		assert.Equal(t, types.ReceiptStatusSuccessful, out.Receipt.Status)
		assert.Equal(t, out.Hash, out.Receipt.TxHash)
		assert.Equal(t, "storeData(string,string)", out.RawTx.Function)
		assert.Equal(t, []string{"planet", "earth"}, out.RawTx.Args)

		require.Len(t, out.Events, 1)
		assert.Equal(t, "DataStored", out.Events[0].Event)
		assert.Equal(t, "earth", out.Events[0].Fields["value"])

		value, err := contract.QueryOne[string](c, eth.CallOpts(context.Background()), "readData", eth.From(), "planet")
		require.NoError(t, err)
		assert.Equal(t, "earth", value)
	})

	t.Run("raw mode only encodes calldata", func(t *testing.T) {
		eth, c := setupDataStorage(t)
		txClient := client.NewTxClient(logger, nil, client.TxClientConfig{TxType: client.Raw})

		out, err := txClient.Send(context.Background(), c, nil, "logAccess", "hello")
		require.NoError(t, err)
		assert.Equal(t, client.Raw, out.Type)
		assert.Equal(t, common.Hash{}, out.Hash)
		assert.Nil(t, out.Receipt)

		expected, err := c.EncodeCall("logAccess", "hello")
		require.NoError(t, err)
		assert.Equal(t, expected, out.RawTx.Data)
		assert.Equal(t, c.Address().Hex(), out.RawTx.To)

		nonce, err := eth.Backend.PendingNonceAt(context.Background(), eth.From())
		require.NoError(t, err)
		assert.Equal(t, uint64(1), nonce, "only the deployment was sent")
	})

	t.Run("view functions are rejected", func(t *testing.T) {
		eth, c := setupDataStorage(t)
		txClient := client.NewTxClient(logger, eth, client.TxClientConfig{TxType: client.Regular, SkipPrompt: true})

		_, err := txClient.Send(context.Background(), c, nil, "getValue")
		require.ErrorIs(t, err, contract.ErrReadOnlyFunction)
	})

	t.Run("unknown function", func(t *testing.T) {
		eth, c := setupDataStorage(t)
		txClient := client.NewTxClient(logger, eth, client.TxClientConfig{TxType: client.Regular, SkipPrompt: true})

		_, err := txClient.Send(context.Background(), c, nil, "missing")
		require.ErrorIs(t, err, contract.ErrUnknownFunction)
	})

	t.Run("reverting call is not submitted", func(t *testing.T) {
		eth, c := setupDataStorage(t)
		txClient := client.NewTxClient(logger, eth, client.TxClientConfig{TxType: client.Regular, SkipPrompt: true})

		out, err := txClient.Send(context.Background(), c, nil, "updateData", "absent", "value")
		require.Error(t, err)
		assert.Nil(t, out.Receipt)

		nonce, err := eth.Backend.PendingNonceAt(context.Background(), eth.From())
		require.NoError(t, err)
		assert.Equal(t, uint64(1), nonce)
	})
}

func TestTxTypeString(t *testing.T) {
	assert.Equal(t, "Regular", client.Regular.String())
	assert.Equal(t, "Raw", client.Raw.String())
	assert.Equal(t, "TxType(7)", client.TxType(7).String())
}
