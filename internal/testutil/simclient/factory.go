// Package simclient serves client.Factory over an in-memory simulated chain
// so that command tests run end to end without an RPC node.
package simclient

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/cmd/client"
	"github.com/klaybind/klaybind/internal/constants"
	"github.com/klaybind/klaybind/internal/runtime"
	"github.com/klaybind/klaybind/internal/settings"
	"github.com/klaybind/klaybind/internal/testutil"
	"github.com/klaybind/klaybind/internal/testutil/chainsim"
)

// autoCommitBackend seals a block after every accepted transaction.
type autoCommitBackend struct {
	simulated.Client
	chain *chainsim.SimulatedChain
}

func (b *autoCommitBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := b.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	b.chain.Commit()
	return nil
}

type Factory struct {
	Chain            *chainsim.SimulatedChain
	TxType           client.TxType
	SkipConfirmation bool

	logger *zerolog.Logger
}

func NewFactory(logger *zerolog.Logger, chain *chainsim.SimulatedChain) *Factory {
	return &Factory{
		Chain:            chain,
		TxType:           client.Regular,
		SkipConfirmation: true,
		logger:           logger,
	}
}

// Backend returns the auto-committing backend handed to every client.
func (f *Factory) Backend() client.Backend {
	return &autoCommitBackend{Client: f.Chain.Client(), chain: f.Chain}
}

func (f *Factory) NewEthClient(_ context.Context, s *settings.Settings) (*client.EthClient, error) {
	key := chainsim.TestPrivateKey
	var tx settings.TxSettings
	if s != nil {
		if s.User.EthPrivateKey != "" {
			key = s.User.EthPrivateKey
		}
		tx = s.Tx
	}
	network := constants.Networks["simulated"]
	return client.NewEthClient(f.logger, f.Backend(), network, new(big.Int).SetUint64(network.ChainID), key, tx)
}

func (f *Factory) GetTxType() client.TxType {
	return f.TxType
}

func (f *Factory) GetSkipConfirmation() bool {
	return f.SkipConfirmation
}

// NewRuntimeContext prepares a test project in a temporary working directory
// and returns a command context whose clients talk to a fresh simulated chain.
func NewRuntimeContext(t *testing.T) (*runtime.Context, *Factory) {
	t.Helper()
	logger := testutil.NewTestLogger()
	v := viper.New()
	s := testutil.NewTestSettings(t, v, logger)

	factory := NewFactory(logger, chainsim.NewTestChain(t))
	return &runtime.Context{
		Logger:        logger,
		Viper:         v,
		ClientFactory: factory,
		Settings:      s,
	}, factory
}
