package settings

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/internal/constants"
)

type Flag struct {
	Name  string
	Short string
}

type flagNames struct {
	ProjectRoot      Flag
	CliEnvFile       Flag
	Verbose          Flag
	Chain            Flag
	RpcURL           Flag
	RawTxFlag        Flag
	SkipConfirmation Flag
	DryRun           Flag
	Value            Flag
	GasLimit         Flag
	Address          Flag
	Format           Flag
	Output           Flag
}

var Flags = flagNames{
	ProjectRoot:      Flag{"project-root", "R"},
	CliEnvFile:       Flag{"env", "e"},
	Verbose:          Flag{"verbose", "v"},
	Chain:            Flag{"chain", "c"},
	RpcURL:           Flag{"rpc-url", ""},
	RawTxFlag:        Flag{"unsigned", ""},
	SkipConfirmation: Flag{"yes", "y"},
	DryRun:           Flag{"dry-run", ""},
	Value:            Flag{"value", ""},
	GasLimit:         Flag{"gas-limit", ""},
	Address:          Flag{"address", "a"},
	Format:           Flag{"format", "f"},
	Output:           Flag{"output", "o"},
}

func AddTxnTypeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(Flags.RawTxFlag.Name, false, "If set, the command prints the unsigned transaction data instead of sending it to the network")
	cmd.Flags().Uint64(Flags.GasLimit.Name, 0, "Gas limit for the transaction (0 estimates it, overrides "+constants.DefaultTxSettingsFileName+")")
}

func AddSkipConfirmation(cmd *cobra.Command) {
	cmd.Flags().BoolP(Flags.SkipConfirmation.Name, Flags.SkipConfirmation.Short, false, "If set, the command will skip the confirmation prompt and send the transaction")
}

func AddChainFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(Flags.Chain.Name, Flags.Chain.Short, "", "Target network (cypress, kairos, baobab, localhost)")
	cmd.Flags().String(Flags.RpcURL.Name, "", "RPC endpoint, overrides "+RpcURLEnvVar+" and the rpcs in "+constants.DefaultProjectSettingsFileName)
}

func AddAddressFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(Flags.Address.Name, Flags.Address.Short, "", "Contract address, overrides "+constants.DefaultDeployedContractsFileName)
}

func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(Flags.Format.Name, Flags.Format.Short, "raw", "Output format (raw, json, yaml)")
	cmd.Flags().StringP(Flags.Output.Name, Flags.Output.Short, "", "Write json or yaml output to this file instead of stdout")
}

func mergeConfigToViper(v *viper.Viper, filePath string) error {
	v.SetConfigFile(filePath)
	err := v.MergeInConfig()
	if err != nil {
		return fmt.Errorf("error loading config file %s: %w", filePath, err)
	}
	return nil
}

// LoadSettingsIntoViper merges klaybind.yaml from the working directory when it exists.
func LoadSettingsIntoViper(v *viper.Viper) (bool, error) {
	path := constants.DefaultProjectSettingsFileName
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to check project settings: %w", err)
	}

	v.SetConfigType("yaml")
	if err := mergeConfigToViper(v, path); err != nil {
		return false, fmt.Errorf("failed to load project settings: %w", err)
	}
	return true, nil
}
