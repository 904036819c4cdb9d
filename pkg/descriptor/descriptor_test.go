package descriptor_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/pkg/bindings/datastorage"
	"github.com/klaybind/klaybind/pkg/bindings/kip7"
	"github.com/klaybind/klaybind/pkg/descriptor"
)

const tokenABI = `[
	{"type":"constructor","inputs":[{"name":"supply","type":"uint256"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"deposit","inputs":[],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"legacy","inputs":[],"outputs":[{"name":"","type":"uint8"}],"constant":true},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]},
	{"type":"error","name":"Insufficient","inputs":[{"name":"available","type":"uint256"},{"name":"required","type":"uint256"}]}
]`

func TestParse(t *testing.T) {
	c, err := descriptor.Parse("Token", tokenABI, "6080604052")
	require.NoError(t, err)

	assert.Equal(t, "Token", c.Name)
	assert.Equal(t, []descriptor.Param{{Name: "supply", Type: "uint256"}}, c.Constructor)
	assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40, 0x52}, c.Bytecode())

	type fn struct {
		Name       string
		Signature  string
		Mutability descriptor.Mutability
	}
	var got []fn
	for _, f := range c.Functions {
		got = append(got, fn{f.Name, f.Signature, f.Mutability})
	}
	want := []fn{
		{"transfer", "transfer(address,uint256)", descriptor.NonPayable},
		{"balanceOf", "balanceOf(address)", descriptor.View},
		{"deposit", "deposit()", descriptor.Payable},
		{"legacy", "legacy()", descriptor.View},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("functions mismatch (-want +got):\n%s", diff)
	}

	wantEvents := []descriptor.Event{{
		Name:      "Transfer",
		RawName:   "Transfer",
		Signature: "Transfer(address,address,uint256)",
		Topic:     common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"),
		Fields: []descriptor.Param{
			{Name: "from", Type: "address", Indexed: true},
			{Name: "to", Type: "address", Indexed: true},
			{Name: "value", Type: "uint256"},
		},
	}}
	if diff := cmp.Diff(wantEvents, c.Events, cmpopts.IgnoreUnexported(descriptor.Event{})); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, c.Errors, 1)
	assert.Equal(t, "Insufficient(uint256,uint256)", c.Errors[0].Signature)
}

func TestSelectorsAndTopicsAreSignatureHashes(t *testing.T) {
	for _, c := range []*descriptor.Contract{datastorage.DataStorageDescriptor, kip7.KIP7Descriptor} {
		t.Run(c.Name, func(t *testing.T) {
			for _, fn := range c.Functions {
				assert.Equal(t, crypto.Keccak256([]byte(fn.Signature))[:4], fn.Selector[:], fn.Signature)
				got, ok := c.FunctionBySelector(fn.Selector)
				require.True(t, ok)
				assert.Equal(t, fn.Name, got.Name)
			}
			for _, ev := range c.Events {
				assert.Equal(t, crypto.Keccak256Hash([]byte(ev.Signature)), ev.Topic, ev.Signature)
				got, ok := c.EventByTopic(ev.Topic)
				require.True(t, ok)
				assert.Equal(t, ev.Name, got.Name)
			}
		})
	}
}

func TestOverloadedFunctions(t *testing.T) {
	c := kip7.KIP7Descriptor

	tests := []struct {
		name      string
		signature string
		selector  string
	}{
		{"safeTransfer", "safeTransfer(address,uint256)", "0x423f6cef"},
		{"safeTransfer0", "safeTransfer(address,uint256,bytes)", "0xeb795549"},
		{"safeTransferFrom", "safeTransferFrom(address,address,uint256)", "0x42842e0e"},
		{"safeTransferFrom0", "safeTransferFrom(address,address,uint256,bytes)", "0xb88d4fde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := c.Function(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.signature, fn.Signature)
			assert.Equal(t, tt.selector, fn.SelectorHex())
			assert.Equal(t, strings.TrimRight(tt.name, "0"), fn.RawName)
		})
	}
}

func TestIndexedLimits(t *testing.T) {
	event := func(anonymous bool, indexed int) string {
		var inputs []string
		for i := 0; i < indexed; i++ {
			inputs = append(inputs, `{"name":"f`+string(rune('a'+i))+`","type":"uint256","indexed":true}`)
		}
		anon := "false"
		if anonymous {
			anon = "true"
		}
		return `[{"type":"event","name":"Wide","anonymous":` + anon + `,"inputs":[` + strings.Join(inputs, ",") + `]}]`
	}

	tests := []struct {
		name      string
		anonymous bool
		indexed   int
		wantErr   bool
	}{
		{"three indexed", false, 3, false},
		{"four indexed", false, 4, true},
		{"anonymous four indexed", true, 4, false},
		{"anonymous five indexed", true, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := descriptor.Parse("Wide", event(tt.anonymous, tt.indexed), "")
			if tt.wantErr {
				require.ErrorIs(t, err, descriptor.ErrTooManyIndexed)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSelectorCollision(t *testing.T) {
	colliding := `[
		{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
		{"type":"function","name":"many_msg_babbage","inputs":[{"name":"b","type":"bytes1"}],"outputs":[],"stateMutability":"nonpayable"}
	]`
	_, err := descriptor.Parse("Colliding", colliding, "")
	require.ErrorIs(t, err, descriptor.ErrSelectorCollision)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		abi     string
		bin     string
		wantErr error
	}{
		{name: "malformed json", abi: `[{`},
		{name: "bad bytecode", abi: `[]`, bin: "0xzz", wantErr: descriptor.ErrInvalidBytecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := descriptor.Parse("Broken", tt.abi, tt.bin)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	assert.Panics(t, func() { descriptor.MustParse("Broken", `[{`, "") })
}

func TestBytecodeIsCopied(t *testing.T) {
	c, err := descriptor.Parse("Token", tokenABI, "0x6080")
	require.NoError(t, err)

	code := c.Bytecode()
	code[0] = 0xff
	assert.Equal(t, []byte{0x60, 0x80}, c.Bytecode())

	data, err := c.DeployData(big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0x60, 0x80}, common.LeftPadBytes([]byte{7}, 32)...), data)

	_, err = c.DeployData()
	require.Error(t, err)

	iface, err := descriptor.Parse("Token", tokenABI, "")
	require.NoError(t, err)
	assert.False(t, iface.Deployable())
}

func TestEncodeCall_Transfer(t *testing.T) {
	c, err := descriptor.Parse("Token", tokenABI, "")
	require.NoError(t, err)
	fn, ok := c.Function("transfer")
	require.True(t, ok)

	to := common.HexToAddress("0xabc")
	data, err := fn.EncodeCall(to, big.NewInt(100))
	require.NoError(t, err)

	want := common.FromHex("0xa9059cbb")
	want = append(want, common.LeftPadBytes(to.Bytes(), 32)...)
	want = append(want, common.LeftPadBytes(big.NewInt(100).Bytes(), 32)...)
	assert.Equal(t, want, data)

	args, err := fn.DecodeCall(data)
	require.NoError(t, err)
	assert.Equal(t, []any{to, big.NewInt(100)}, args)

	_, err = fn.DecodeCall(common.FromHex("0x70a08231"))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		value any
	}{
		{"address", "address", common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")},
		{"uint8", "uint8", uint8(255)},
		{"uint64", "uint64", uint64(1 << 40)},
		{"uint256", "uint256", new(big.Int).Lsh(big.NewInt(1), 200)},
		{"int256 negative", "int256", big.NewInt(-42)},
		{"bool", "bool", true},
		{"bytes32", "bytes32", [32]byte{1, 2, 3}},
		{"bytes", "bytes", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"string", "string", "klaytn"},
		{"dynamic array", "uint256[]", []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}},
		{"empty dynamic array", "string[]", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abiJSON := `[{"type":"function","name":"echo","inputs":[{"name":"v","type":"` + tt.typ + `"}],"outputs":[{"name":"","type":"` + tt.typ + `"}],"stateMutability":"pure"}]`
			c, err := descriptor.Parse("Echo", abiJSON, "")
			require.NoError(t, err)
			fn, ok := c.Function("echo")
			require.True(t, ok)

			call, err := fn.EncodeCall(tt.value)
			require.NoError(t, err)
			assert.Zero(t, (len(call)-4)%32, "arguments are packed into 32-byte words")

			inputs, err := fn.DecodeCall(call)
			require.NoError(t, err)
			assert.Equal(t, []any{tt.value}, inputs)

			// The output schema is identical, so the argument encoding is valid return data.
			outputs, err := fn.DecodeOutput(call[4:])
			require.NoError(t, err)
			assert.Equal(t, []any{tt.value}, outputs)
		})
	}
}

func TestDecodeRevert(t *testing.T) {
	c, err := descriptor.Parse("Token", tokenABI, "")
	require.NoError(t, err)

	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	uintType, err := abi.NewType("uint256", "", nil)
	require.NoError(t, err)

	reason, err := abi.Arguments{{Type: stringType}}.Pack("insufficient balance")
	require.NoError(t, err)
	panicCode, err := abi.Arguments{{Type: uintType}}.Pack(big.NewInt(0x11))
	require.NoError(t, err)
	custom, err := abi.Arguments{{Type: uintType}, {Type: uintType}}.Pack(big.NewInt(1), big.NewInt(5))
	require.NoError(t, err)

	t.Run("Error(string)", func(t *testing.T) {
		revert, err := c.DecodeRevert(append(common.FromHex("0x08c379a0"), reason...))
		require.NoError(t, err)
		assert.Equal(t, "Error", revert.Name)
		assert.Equal(t, "insufficient balance", revert.Reason)
		assert.Equal(t, "execution reverted: insufficient balance", revert.Error())

		var out struct{}
		assert.Error(t, revert.Unpack(&out))
	})

	t.Run("Error(string) with an empty reason", func(t *testing.T) {
		empty, err := abi.Arguments{{Type: stringType}}.Pack("")
		require.NoError(t, err)

		revert, err := c.DecodeRevert(append(common.FromHex("0x08c379a0"), empty...))
		require.NoError(t, err)
		assert.Equal(t, "Error", revert.Name)
		assert.Empty(t, revert.Reason)
		assert.Equal(t, "execution reverted", revert.Error())
	})

	t.Run("Panic(uint256)", func(t *testing.T) {
		revert, err := c.DecodeRevert(append(common.FromHex("0x4e487b71"), panicCode...))
		require.NoError(t, err)
		assert.Equal(t, "Panic", revert.Name)
		assert.Contains(t, revert.Reason, "overflow")
	})

	t.Run("custom error", func(t *testing.T) {
		selector := c.Errors[0].Selector
		revert, err := c.DecodeRevert(append(selector[:], custom...))
		require.NoError(t, err)
		assert.Equal(t, "Insufficient", revert.Name)
		assert.Equal(t, []any{big.NewInt(1), big.NewInt(5)}, revert.Args)
		assert.Equal(t, "execution reverted: Insufficient(1, 5)", revert.Error())

		var out struct {
			Available *big.Int
			Required  *big.Int
		}
		require.NoError(t, revert.Unpack(&out))
		assert.Equal(t, big.NewInt(5), out.Required)
	})

	t.Run("unknown selector", func(t *testing.T) {
		_, err := c.DecodeRevert(common.FromHex("0xdeadbeef"))
		require.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := c.DecodeRevert([]byte{0x01})
		require.Error(t, err)
	})
}
