package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractAndChainNames(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	type input struct {
		Name  string `validate:"contract_name" cli:"--name"`
		Chain string `validate:"chain_name" cli:"--chain"`
	}

	tests := []struct {
		name       string
		in         input
		wantKey    string
		wantDetail string
	}{
		{name: "valid", in: input{Name: "DataStorage", Chain: "kairos"}},
		{name: "underscore and dollar", in: input{Name: "_Token$V2", Chain: "cypress"}},
		{
			name:       "name starting with a digit",
			in:         input{Name: "7Up", Chain: "baobab"},
			wantKey:    "input.Name",
			wantDetail: "--name must be a valid contract identifier: 7Up",
		},
		{
			name:       "name with a dash",
			in:         input{Name: "data-storage", Chain: "baobab"},
			wantKey:    "input.Name",
			wantDetail: "--name must be a valid contract identifier: data-storage",
		},
		{
			name:       "unknown chain",
			in:         input{Name: "KIP7", Chain: "mainnet"},
			wantKey:    "input.Chain",
			wantDetail: "--chain must be one of cypress, kairos, baobab, localhost, simulated: mainnet",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			AssertErrors(t, err, tt.wantKey, tt.wantDetail, v)
		})
	}
}
