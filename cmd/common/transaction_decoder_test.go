package common

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/internal/constants"
	"github.com/klaybind/klaybind/internal/testutil"
	"github.com/klaybind/klaybind/pkg/bindings/kip7"
)

func TestFormatDecodedTxInputs(t *testing.T) {
	rawInputMap := map[string]interface{}{
		"Digest":        [32]byte{1, 2, 3}, // Partial bytes
		"SampleData":    [3]byte{1, 2},     // Partial bytes
		"Label":         "Sample Label",
		"Owner":         "0x1234567890abcdef1234567890abcdef12345678",

		"Nonce": 12345,
	}
	txInput := NewDecodedTxInputs(rawInputMap)

	result := fmt.Sprint(txInput)

	expected := `map[Digest:0102030000000000000000000000000000000000000000000000000000000000 Label:Sample Label Nonce:12345 Owner:0x1234567890abcdef1234567890abcdef12345678 SampleData:010200]`
	assert.Equal(t, expected, result)
}

func TestFormatDecodedTxInputsArraySlice(t *testing.T) {
	rawInputMap := map[string]interface{}{
		"allowedLabels": [][10]byte{{1, 2, 3}, {1, 2, 4}}, // Partial bytes
	}
	txInput := NewDecodedTxInputs(rawInputMap)

	result := fmt.Sprint(txInput)

	expected := `map[allowedLabels:[01020300000000000000 01020400000000000000]]`
	assert.Equal(t, expected, result)
}

func TestDecodeCalldata(t *testing.T) {
	l := testutil.NewTestLogger()
	desc := kip7.KIP7Descriptor
	recipient := common.HexToAddress(constants.TestAddress2)

	transfer, ok := desc.Function("transfer")
	require.True(t, ok)
	data, err := transfer.EncodeCall(recipient, big.NewInt(42))
	require.NoError(t, err)

	tests := []struct {
		name     string
		data     []byte
		wantFn   string
		wantArgs DecodedTxInputs
		wantErr  string
	}{
		{
			name:     "known selector",
			data:     data,
			wantFn:   "transfer",
			wantArgs: DecodedTxInputs{"recipient": recipient.Hex(), "amount": big.NewInt(42)},
		},
		{
			name:    "short calldata",
			data:    []byte{0xa9, 0x05},
			wantErr: "less than 4 bytes",
		},
		{
			name:    "unknown selector",
			data:    []byte{0xde, 0xad, 0xbe, 0xef},
			wantErr: "selector 0xdeadbeef not found in KIP7",
		},
		{
			name:    "truncated arguments",
			data:    data[:20],
			wantErr: "failed to decode inputs of transfer(address,uint256)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, args, err := DecodeCalldata(l, desc, tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFn, fn.Name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
