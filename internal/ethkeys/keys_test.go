package ethkeys

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/internal/constants"
)

func TestParsePrivateKey(t *testing.T) {
	priv, err := crypto.GenerateKey()
	require.NoError(t, err)
	privHex := hex.EncodeToString(crypto.FromECDSA(priv))

	tests := []struct {
		name    string
		key     string
		want    string
		wantErr string
	}{
		{name: "well known development key", key: constants.TestPrivateKey, want: constants.TestAddress},
		{name: "0x prefix", key: "0x" + constants.TestPrivateKey2, want: constants.TestAddress2},
		{name: "surrounding whitespace", key: " " + constants.TestPrivateKey3 + "\n", want: constants.TestAddress3},
		{name: "generated key", key: privHex, want: crypto.PubkeyToAddress(priv.PublicKey).Hex()},
		{name: "empty", key: "", wantErr: "64 hex characters"},
		{name: "too short", key: "abcd", wantErr: "64 hex characters"},
		{name: "not hex", key: "zz" + constants.TestPrivateKey[2:], wantErr: "64 hex characters"},
		{name: "zero scalar", key: "0000000000000000000000000000000000000000000000000000000000000000", wantErr: "failed to parse private key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParsePrivateKey(tt.key)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, AddressFromPrivateKey(key).Hex())
		})
	}
}
