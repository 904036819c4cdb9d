package deploy

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"

	"github.com/klaybind/klaybind/cmd/client"
	"github.com/klaybind/klaybind/cmd/contract/args"
	"github.com/klaybind/klaybind/internal/artifact"
	"github.com/klaybind/klaybind/pkg/contract"
	"github.com/klaybind/klaybind/pkg/descriptor"
)

// DeploymentResult represents the result of deploying a single contract
type DeploymentResult struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	TxHash  string `yaml:"tx_hash"`
	// DeployData is set instead of Address and TxHash for unsigned deployments.
	DeployData string `yaml:"deploy_data,omitempty"`
}

// ContractDeployer handles the deployment of contracts
type ContractDeployer struct {
	log     *zerolog.Logger
	eth     *client.EthClient
	builder *artifact.Builder
	abiDir  string
}

// NewContractDeployer creates a new contract deployer. eth may be nil when
// only unsigned deploy data is produced.
func NewContractDeployer(log *zerolog.Logger, eth *client.EthClient, abiDir string) *ContractDeployer {
	return &ContractDeployer{
		log:     log,
		eth:     eth,
		builder: artifact.NewBuilder(log),
		abiDir:  abiDir,
	}
}

// Prepare loads the artifact of config and parses its constructor arguments.
func (d *ContractDeployer) Prepare(config ContractConfig) (*descriptor.Contract, []any, *big.Int, error) {
	d.log.Debug().
		Str("contract", config.Name).
		Str("package", config.Package).
		Int("constructor_args", len(config.Constructor)).
		Msg("Preparing contract deployment")

	art, err := d.builder.Build(artifact.InputsFromDir(d.abiDir, config.Name))
	if err != nil {
		return nil, nil, nil, err
	}
	if !art.Descriptor.Deployable() {
		return nil, nil, nil, fmt.Errorf("%s: %w. Compile your Solidity contracts to generate .bin files", config.Name, contract.ErrNoBytecode)
	}

	params, err := d.parseConstructorArgs(config, art.Descriptor)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse constructor arguments: %w", err)
	}

	value := new(big.Int)
	if config.Value != "" {
		if _, ok := value.SetString(config.Value, 0); !ok || value.Sign() < 0 {
			return nil, nil, nil, fmt.Errorf("invalid value %q for %s", config.Value, config.Name)
		}
	}
	return art.Descriptor, params, value, nil
}

// Deploy deploys a single contract and waits for it to be mined.
func (d *ContractDeployer) Deploy(ctx context.Context, config ContractConfig) (*DeploymentResult, error) {
	desc, params, value, err := d.Prepare(config)
	if err != nil {
		return nil, err
	}

	opts, err := d.eth.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}
	opts.Value = value

	deployment, err := contract.Deploy(opts, desc, d.eth.Backend, params...)
	if err != nil {
		return nil, fmt.Errorf("deployment failed: %w", client.DecodeRevert(desc, err))
	}
	d.log.Debug().Str("contract", config.Name).Str("tx", deployment.Tx.Hash().Hex()).Msg("Deployment submitted")

	waitCtx, cancel := d.eth.WaitContext(ctx)
	defer cancel()
	if _, err := deployment.Wait(waitCtx); err != nil {
		return nil, err
	}

	return &DeploymentResult{
		Name:    config.Name,
		Address: deployment.Address.Hex(),
		TxHash:  deployment.Tx.Hash().Hex(),
	}, nil
}

// DeployData returns the creation transaction payload for offline signing.
func (d *ContractDeployer) DeployData(config ContractConfig) (*DeploymentResult, error) {
	desc, params, _, err := d.Prepare(config)
	if err != nil {
		return nil, err
	}
	data, err := desc.DeployData(params...)
	if err != nil {
		return nil, err
	}
	return &DeploymentResult{Name: config.Name, DeployData: hexutil.Encode(data)}, nil
}

// parseConstructorArgs converts constructor arguments from config to Go types
func (d *ContractDeployer) parseConstructorArgs(config ContractConfig, desc *descriptor.Contract) ([]any, error) {
	inputs := desc.ABI().Constructor.Inputs
	if len(inputs) == 0 {
		if len(config.Constructor) > 0 {
			return nil, fmt.Errorf("contract has no constructor arguments but %d were provided", len(config.Constructor))
		}
		return nil, nil
	}

	values := make([]string, len(config.Constructor))
	for i, arg := range config.Constructor {
		if i < len(inputs) && !args.TypesMatch(arg.Type, inputs[i].Type) {
			d.log.Warn().
				Str("config_type", arg.Type).
				Str("abi_type", inputs[i].Type.String()).
				Int("arg_index", i).
				Msg("Type mismatch warning - proceeding with ABI type")
		}
		values[i] = arg.Value
	}

	return args.ParseAll(values, inputs)
}
