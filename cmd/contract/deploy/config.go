package deploy

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"gopkg.in/yaml.v3"

	"github.com/klaybind/klaybind/internal/settings"
	"github.com/klaybind/klaybind/internal/validation"
)

// ContractsConfig represents the structure of contracts.yaml
type ContractsConfig struct {
	Chain     string           `yaml:"chain"`
	Contracts []ContractConfig `yaml:"contracts"`
}

// ContractConfig represents a single contract configuration
type ContractConfig struct {
	Name string `yaml:"name" validate:"required,contract_name"`
	// Package is the Go package of the generated binding, informational only.
	Package     string           `yaml:"package"`
	Deploy      bool             `yaml:"deploy"`
	Value       string           `yaml:"value"`
	Constructor []ConstructorArg `yaml:"constructor"`
}

// ConstructorArg represents a constructor argument
type ConstructorArg struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// ParseContractsConfig reads and parses the contracts.yaml file
func ParseContractsConfig(path string) (*ContractsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ContractsConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &config, nil
}

// Validate validates the contracts configuration
func (c *ContractsConfig) Validate() error {
	if strings.TrimSpace(c.Chain) == "" {
		return fmt.Errorf("chain is required")
	}

	if !settings.IsValidChainName(c.Chain) {
		return fmt.Errorf("invalid chain name %q, expected one of %v", c.Chain, settings.ChainNames())
	}

	if len(c.Contracts) == 0 {
		return fmt.Errorf("at least one contract must be defined")
	}

	validate, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to initialize validator: %w", err)
	}

	seenNames := make(map[string]bool)
	for i, contract := range c.Contracts {
		if err := validate.Struct(contract); err != nil {
			return fmt.Errorf("contract[%d]: %w", i, validate.ParseValidationErrors(err))
		}

		if seenNames[contract.Name] {
			return fmt.Errorf("duplicate contract name: %s", contract.Name)
		}
		seenNames[contract.Name] = true

		for j, arg := range contract.Constructor {
			if strings.TrimSpace(arg.Type) == "" {
				return fmt.Errorf("contract[%d] (%s): constructor[%d]: type is required", i, contract.Name, j)
			}

			if !isValidSolidityType(arg.Type) {
				return fmt.Errorf("contract[%d] (%s): constructor[%d]: invalid type %q", i, contract.Name, j, arg.Type)
			}
		}
	}

	return nil
}

// GetContractsToDeploy returns contracts that have deploy: true
func (c *ContractsConfig) GetContractsToDeploy() []ContractConfig {
	var contracts []ContractConfig
	for _, contract := range c.Contracts {
		if contract.Deploy {
			contracts = append(contracts, contract)
		}
	}
	return contracts
}

// GetContractByName returns a contract by name
func (c *ContractsConfig) GetContractByName(name string) *ContractConfig {
	for i := range c.Contracts {
		if c.Contracts[i].Name == name {
			return &c.Contracts[i]
		}
	}
	return nil
}

// isValidSolidityType accepts any elementary or array type the ABI encoder
// understands. Tuples are declared in the ABI only.
func isValidSolidityType(t string) bool {
	t = strings.TrimSpace(t)
	if strings.HasPrefix(t, "tuple") {
		return false
	}
	_, err := abi.NewType(t, "", nil)
	return err == nil
}
