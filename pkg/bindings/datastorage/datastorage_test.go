package datastorage_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/internal/constants"
	"github.com/klaybind/klaybind/internal/testutil/chainsim"
	"github.com/klaybind/klaybind/pkg/bindings/datastorage"
	"github.com/klaybind/klaybind/pkg/contract"
)

func TestDescriptorTables(t *testing.T) {
	desc := datastorage.DataStorageDescriptor
	require.True(t, desc.Deployable())

	selectors := map[string]string{
		"getMultipleReserves": datastorage.GetMultipleReservesSelector,
		"getReserves":         datastorage.GetReservesSelector,
		"getTupleReserves":    datastorage.GetTupleReservesSelector,
		"getValue":            datastorage.GetValueSelector,
		"readData":            datastorage.ReadDataSelector,
		"logAccess":           datastorage.LogAccessSelector,
		"onReport":            datastorage.OnReportSelector,
		"storeData":           datastorage.StoreDataSelector,
		"storeUserData":       datastorage.StoreUserDataSelector,
		"updateData":          datastorage.UpdateDataSelector,
	}
	require.Len(t, desc.Functions, len(selectors))
	for name, selector := range selectors {
		fn, ok := desc.Function(name)
		require.True(t, ok, name)
		assert.Equal(t, selector, fn.SelectorHex(), name)
		assert.Equal(t, crypto.Keccak256([]byte(fn.Signature))[:4], fn.Selector[:], name)
	}

	topics := map[string]string{
		"AccessLogged": datastorage.AccessLoggedTopic,
		"DataStored":   datastorage.DataStoredTopic,
		"DynamicEvent": datastorage.DynamicEventTopic,
		"NoFields":     datastorage.NoFieldsTopic,
	}
	require.Len(t, desc.Events, len(topics))
	for name, topic := range topics {
		ev, ok := desc.Event(name)
		require.True(t, ok, name)
		assert.Equal(t, topic, ev.Topic.Hex(), name)
	}

	require.Len(t, desc.Errors, 2)
	assert.Equal(t, datastorage.DataNotFoundErrorSelector, "0x"+common.Bytes2Hex(desc.Errors[0].Selector[:]))
}

func TestDataStorage(t *testing.T) {
	sim := chainsim.NewTestChain(t)
	ctx := context.Background()

	deployment, err := datastorage.DeployDataStorage(sim.TransactOpts(t, chainsim.TestPrivateKey), sim.Client())
	require.NoError(t, err)
	sim.Commit()
	ds, err := deployment.Wait(ctx)
	require.NoError(t, err)

	// A second handle loaded at the deployed address behaves identically.
	loaded := datastorage.NewDataStorage(deployment.Address, sim.Client())

	t.Run("views", func(t *testing.T) {
		for _, binding := range []*datastorage.DataStorage{ds, loaded} {
			value, err := binding.GetValue(nil)
			require.NoError(t, err)
			assert.Equal(t, "test", value)

			reserves, err := binding.GetReserves(nil)
			require.NoError(t, err)
			assert.Equal(t, datastorage.UpdateReserves{TotalMinted: big.NewInt(100), TotalReserve: big.NewInt(200)}, reserves)

			tuple, err := binding.GetTupleReserves(nil)
			require.NoError(t, err)
			assert.Equal(t, datastorage.GetTupleReservesOutput{TotalMinted: big.NewInt(100), TotalReserve: big.NewInt(200)}, tuple)

			multiple, err := binding.GetMultipleReserves(nil)
			require.NoError(t, err)
			assert.Equal(t, []datastorage.UpdateReserves{
				{TotalMinted: big.NewInt(100), TotalReserve: big.NewInt(200)},
				{TotalMinted: big.NewInt(300), TotalReserve: big.NewInt(400)},
			}, multiple)
		}
	})

	t.Run("store data emits DataStored", func(t *testing.T) {
		pending, err := ds.StoreData(sim.TransactOpts(t, chainsim.TestPrivateKey), "fruit", "apple")
		require.NoError(t, err)
		sim.Commit()
		receipt, err := pending.Wait(ctx)
		require.NoError(t, err)

		events, err := ds.DecodeDataStoredEvents(receipt)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, &datastorage.DataStorageDataStored{
			Sender: common.HexToAddress(chainsim.TestAddress),
			Key:    "fruit",
			Value:  "apple",
		}, events[0])

		accessEvents, err := ds.DecodeAccessLoggedEvents(receipt)
		require.NoError(t, err)
		assert.Empty(t, accessEvents)

		value, err := loaded.ReadData(nil, common.HexToAddress(chainsim.TestAddress), "fruit")
		require.NoError(t, err)
		assert.Equal(t, "apple", value)
	})

	t.Run("store user data tuple", func(t *testing.T) {
		pending, err := ds.StoreUserData(sim.TransactOpts(t, constants.TestPrivateKey2), datastorage.UserData{Key: "tuple", Value: "stored"})
		require.NoError(t, err)
		sim.Commit()
		receipt, err := pending.Wait(ctx)
		require.NoError(t, err)

		events, err := ds.DecodeDataStoredEvents(receipt)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, common.HexToAddress(constants.TestAddress2), events[0].Sender)

		value, err := ds.ReadData(nil, common.HexToAddress(constants.TestAddress2), "tuple")
		require.NoError(t, err)
		assert.Equal(t, "stored", value)
	})

	t.Run("log access emits AccessLogged", func(t *testing.T) {
		pending, err := ds.LogAccess(sim.TransactOpts(t, chainsim.TestPrivateKey), "opened")
		require.NoError(t, err)
		sim.Commit()
		receipt, err := pending.Wait(ctx)
		require.NoError(t, err)

		events, err := ds.DecodeAccessLoggedEvents(receipt)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, common.HexToAddress(chainsim.TestAddress), events[0].Caller)
		assert.Equal(t, "opened", events[0].Message)
	})

	t.Run("read of a missing key reverts with DataNotFound", func(t *testing.T) {
		_, err := ds.ReadData(nil, common.HexToAddress(constants.TestAddress3), "nothing")
		require.Error(t, err)

		revert, ok := contract.RevertAs[datastorage.DataNotFound](err, "DataNotFound")
		require.True(t, ok, "unexpected error %v", err)
		assert.Equal(t, common.HexToAddress(constants.TestAddress3), revert.Requester)
		assert.Equal(t, "nothing", revert.Key)
		assert.Equal(t, "No data associated with this key.", revert.Reason)
	})

	t.Run("update of a missing key fails on chain", func(t *testing.T) {
		opts := sim.TransactOpts(t, chainsim.TestPrivateKey)
		opts.GasLimit = 500_000
		pending, err := ds.UpdateData(opts, "unknown", "value")
		require.NoError(t, err)
		sim.Commit()

		_, err = pending.Wait(ctx)
		require.ErrorIs(t, err, contract.ErrTransactionFailed)
	})
}
