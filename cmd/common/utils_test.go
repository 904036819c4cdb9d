package common

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/klaybind/klaybind/internal/testutil"
	"github.com/klaybind/klaybind/internal/testutil/chainsim"
	"github.com/klaybind/klaybind/pkg/bindings/datastorage"
	"github.com/klaybind/klaybind/pkg/contract"
)

func TestToStringSlice(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	got := ToStringSlice([]any{
		[]byte{0xca, 0xfe},
		[32]byte{1},
		[][]byte{{1}, {2}},
		addr,
		big.NewInt(7),
		"text",
	})
	assert.Equal(t, []string{
		"0xcafe",
		"0x0100000000000000000000000000000000000000000000000000000000000000",
		"[0x01, 0x02]",
		addr.Hex(),
		"7",
		"text",
	}, got)
}

func TestSimTransactOptsDoesNotSend(t *testing.T) {
	opts := SimTransactOpts()
	require.True(t, opts.NoSend)

	tx := types.NewTx(&types.LegacyTx{Nonce: 1})
	signed, err := opts.Signer(opts.From, tx)
	require.NoError(t, err)
	assert.Same(t, tx, signed)
}

func TestDecodeReceiptLogs(t *testing.T) {
	sim := chainsim.NewTestChain(t)
	ctx := context.Background()

	deployment, err := datastorage.DeployDataStorage(sim.TransactOpts(t, chainsim.TestPrivateKey), sim.Client())
	require.NoError(t, err)
	sim.Commit()
	ds, err := deployment.Wait(ctx)
	require.NoError(t, err)

	pending, err := ds.StoreData(sim.TransactOpts(t, chainsim.TestPrivateKey), "k", "v")
	require.NoError(t, err)
	sim.Commit()
	receipt, err := pending.Wait(ctx)
	require.NoError(t, err)

	l, buf := testutil.NewBufferedLogger()
	decoded := DecodeReceiptLogs(l, ds.Contract, receipt)
	require.Len(t, decoded, 1)
	assert.Equal(t, "DataStored", decoded[0].Event)
	assert.Equal(t, "v", decoded[0].Fields["value"])
	assert.Contains(t, buf.String(), "DataStored event emitted")

	other := contract.Load(datastorage.DataStorageDescriptor, common.HexToAddress(chainsim.TestAddress), sim.Client())
	assert.Empty(t, DecodeReceiptLogs(l, other, receipt))
}

func TestWriteYamlToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteYamlToFile(map[string]string{"name": "KIP7"}, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, yaml.Unmarshal(raw, &got))
	assert.Equal(t, "KIP7", got["name"])
}

func TestFormatFields(t *testing.T) {
	got := FormatFields(map[string]any{
		"value":  big.NewInt(10),
		"data":   []byte{0x01},
		"sender": common.HexToAddress(chainsim.TestAddress),
	})
	assert.Equal(t, "data=0x01 sender="+common.HexToAddress(chainsim.TestAddress).Hex()+" value=10", got)
	assert.Empty(t, FormatFields(nil))
}
