package runtime

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/cmd/client"
	"github.com/klaybind/klaybind/internal/settings"
)

type Context struct {
	Logger        *zerolog.Logger
	Viper         *viper.Viper
	ClientFactory client.Factory
	Settings      *settings.Settings
}

func NewContext(logger *zerolog.Logger, viper *viper.Viper) *Context {
	factory := client.NewFactory(logger, viper)

	return &Context{
		Logger:        logger,
		Viper:         viper,
		ClientFactory: factory,
	}
}

func (ctx *Context) AttachSettings() error {
	var err error

	ctx.Settings, err = settings.New(ctx.Logger, ctx.Viper)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	return nil
}

// NewEthClient connects to the chain selected by the loaded settings.
func (ctx *Context) NewEthClient(c context.Context) (*client.EthClient, error) {
	if ctx.Settings == nil {
		return nil, fmt.Errorf("settings are not loaded")
	}
	return ctx.ClientFactory.NewEthClient(c, ctx.Settings)
}

// NewTxClient builds a transaction client honoring --unsigned and --yes.
func (ctx *Context) NewTxClient(eth *client.EthClient) *client.TxClient {
	return client.NewTxClient(ctx.Logger, eth, client.TxClientConfig{
		TxType:     ctx.ClientFactory.GetTxType(),
		SkipPrompt: ctx.ClientFactory.GetSkipConfirmation(),
	})
}
