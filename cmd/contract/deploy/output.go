package deploy

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	cmdCommon "github.com/klaybind/klaybind/cmd/common"
	"github.com/klaybind/klaybind/internal/constants"
)

// DeployedContracts represents the structure of deployed_contracts.yaml
type DeployedContracts struct {
	ChainID   uint64                      `yaml:"chain_id"`
	ChainName string                      `yaml:"chain_name"`
	Timestamp string                      `yaml:"timestamp"`
	Contracts map[string]DeployedContract `yaml:"contracts"`
}

// DeployedContract represents a deployed contract entry
type DeployedContract struct {
	Address string `yaml:"address"`
	TxHash  string `yaml:"tx_hash"`
}

// WriteDeployedContracts writes the deployment results to deployed_contracts.yaml.
// Entries of an existing file for the same chain are kept unless redeployed.
func WriteDeployedContracts(path string, network constants.Network, results []DeploymentResult) error {
	deployed := DeployedContracts{
		ChainID:   network.ChainID,
		ChainName: network.Name,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Contracts: make(map[string]DeployedContract),
	}

	existing, err := ReadDeployedContracts(path)
	switch {
	case err == nil && existing.ChainName == network.Name:
		for name, c := range existing.Contracts {
			deployed.Contracts[name] = c
		}
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return err
	}

	for _, result := range results {
		deployed.Contracts[result.Name] = DeployedContract{
			Address: result.Address,
			TxHash:  result.TxHash,
		}
	}

	if err := cmdCommon.WriteYamlToFile(deployed, path); err != nil {
		return fmt.Errorf("failed to write deployed contracts file: %w", err)
	}

	return nil
}

// ReadDeployedContracts reads the deployed_contracts.yaml file
func ReadDeployedContracts(path string) (*DeployedContracts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployed contracts file: %w", err)
	}

	var deployed DeployedContracts
	if err := yaml.Unmarshal(data, &deployed); err != nil {
		return nil, fmt.Errorf("failed to parse deployed contracts: %w", err)
	}

	return &deployed, nil
}

// GetContractAddress returns the address of a deployed contract by name
func (d *DeployedContracts) GetContractAddress(name string) (common.Address, error) {
	contract, ok := d.Contracts[name]
	if !ok {
		return common.Address{}, fmt.Errorf("contract %s not found in deployed contracts of %s", name, d.ChainName)
	}
	if !common.IsHexAddress(contract.Address) {
		return common.Address{}, fmt.Errorf("contract %s has an invalid address %q", name, contract.Address)
	}
	return common.HexToAddress(contract.Address), nil
}
