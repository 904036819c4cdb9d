// Package target resolves the contract a command operates on: its
// descriptor from the project ABI directory and its deployed address.
package target

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/klaybind/klaybind/cmd/contract/deploy"
	"github.com/klaybind/klaybind/internal/artifact"
	"github.com/klaybind/klaybind/internal/constants"
	"github.com/klaybind/klaybind/internal/settings"
	"github.com/klaybind/klaybind/pkg/descriptor"
)

type Resolver struct {
	log          *zerolog.Logger
	builder      *artifact.Builder
	AbiDir       string
	DeployedPath string
}

// NewResolver locates the contracts directory of the project in the working directory.
func NewResolver(log *zerolog.Logger, s *settings.Settings) (*Resolver, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	contractsDir := constants.DefaultContractsDir
	if s != nil && s.Project.ContractsDir != "" {
		contractsDir = s.Project.ContractsDir
	}
	contractsPath := filepath.Join(root, contractsDir)

	return &Resolver{
		log:          log,
		builder:      artifact.NewBuilder(log),
		AbiDir:       filepath.Join(contractsPath, "evm", "src", "abi"),
		DeployedPath: filepath.Join(contractsPath, constants.DefaultDeployedContractsFileName),
	}, nil
}

// Descriptor loads the descriptor of the contract called name.
func (r *Resolver) Descriptor(name string) (*descriptor.Contract, error) {
	art, err := r.builder.Build(artifact.InputsFromDir(r.AbiDir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("no ABI for %s in %s: %w", name, r.AbiDir, err)
	}
	if err != nil {
		return nil, err
	}
	return art.Descriptor, nil
}

// Address returns override when set, otherwise the address recorded for
// name by the last deployment on network.
func (r *Resolver) Address(name, override string, network constants.Network) (common.Address, error) {
	if override != "" {
		if !common.IsHexAddress(override) {
			return common.Address{}, fmt.Errorf("invalid address: %s", override)
		}
		return common.HexToAddress(override), nil
	}

	deployed, err := deploy.ReadDeployedContracts(r.DeployedPath)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w. Deploy %s first or pass --%s", err, name, settings.Flags.Address.Name)
	}
	if deployed.ChainName != network.Name {
		return common.Address{}, fmt.Errorf("%s records deployments on %s, not %s. Pass --%s to use another address",
			constants.DefaultDeployedContractsFileName, deployed.ChainName, network.Name, settings.Flags.Address.Name)
	}
	addr, err := deployed.GetContractAddress(name)
	if err != nil {
		return common.Address{}, err
	}
	r.log.Debug().Str("contract", name).Str("address", addr.Hex()).Msg("Resolved address from deployed contracts")
	return addr, nil
}
