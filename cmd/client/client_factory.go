package client

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/internal/settings"
)

type Factory interface {
	NewEthClient(ctx context.Context, s *settings.Settings) (*EthClient, error)
	GetTxType() TxType
	GetSkipConfirmation() bool
}

type factoryImpl struct {
	logger *zerolog.Logger
	viper  *viper.Viper
	dial   DialConfig
}

func NewFactory(logger *zerolog.Logger, viper *viper.Viper) Factory {
	return &factoryImpl{
		logger: logger,
		viper:  viper,
		dial:   DefaultDialConfig(),
	}
}

func (f *factoryImpl) NewEthClient(ctx context.Context, s *settings.Settings) (*EthClient, error) {
	network, err := s.GetChain(f.viper)
	if err != nil {
		return nil, err
	}
	url, err := s.GetRpcUrl(f.viper, network.Name)
	if err != nil {
		return nil, err
	}
	f.logger.Debug().Str("chain", network.Name).Str("url", url).Msg("Selected network")

	ec, chainID, err := Dial(ctx, f.logger, url, network, f.dial)
	if err != nil {
		return nil, err
	}

	tx := s.Tx
	if gasLimit := f.viper.GetUint64(settings.Flags.GasLimit.Name); gasLimit > 0 {
		tx.GasLimit = gasLimit
	}

	client, err := NewEthClient(f.logger, ec, network, chainID, s.User.EthPrivateKey, tx)
	if err != nil {
		ec.Close()
		return nil, err
	}
	client.close = ec.Close
	return client, nil
}

func (f *factoryImpl) GetTxType() TxType {
	if f.viper.GetBool(settings.Flags.RawTxFlag.Name) {
		return Raw
	}
	return Regular
}

func (f *factoryImpl) GetSkipConfirmation() bool {
	return f.viper.GetBool(settings.Flags.SkipConfirmation.Name)
}
