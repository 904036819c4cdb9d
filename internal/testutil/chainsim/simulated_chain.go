package chainsim

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/internal/constants"
)

const (
	TestAddress    = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	TestPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

type SimulatedChain struct {
	Backend *simulated.Backend
}

func NewSimulatedChain() *SimulatedChain {
	startBackend := func(fundedAddresses []common.Address) *simulated.Backend {
		toFund := make(map[common.Address]types.Account)

		for _, address := range fundedAddresses {
			toFund[address] = types.Account{
				Balance: new(big.Int).Mul(big.NewInt(100), big.NewInt(1000000000000000000)), // 100 KLAY
			}
		}
		backend := simulated.NewBackend(toFund)
		return backend
	}

	backend := startBackend(
		[]common.Address{
			common.HexToAddress(TestAddress),
			common.HexToAddress(constants.TestAddress2),
			common.HexToAddress(constants.TestAddress3),
		},
	)

	return &SimulatedChain{
		Backend: backend,
	}
}

// NewTestChain starts a simulated chain that is closed when t finishes.
func NewTestChain(t *testing.T) *SimulatedChain {
	t.Helper()
	sc := NewSimulatedChain()
	t.Cleanup(sc.Close)
	return sc
}

func (sc *SimulatedChain) Client() simulated.Client {
	return sc.Backend.Client()
}

// Commit seals the pending block.
func (sc *SimulatedChain) Commit() common.Hash {
	return sc.Backend.Commit()
}

// TransactOpts returns signing options for the funded account behind hexKey.
func (sc *SimulatedChain) TransactOpts(t *testing.T, hexKey string) *bind.TransactOpts {
	t.Helper()
	key, err := crypto.HexToECDSA(hexKey)
	require.NoError(t, err)
	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(constants.TestSimChainID))
	require.NoError(t, err)
	opts.Context = context.Background()
	return opts
}

func (sc *SimulatedChain) Close() {
	sc.Backend.Close()
}
