package generatebindings

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/klaybind/klaybind/internal/runtime"
)

// runCommand executes a command in a specified directory
func runCommand(dir string, command string, args ...string) error {
	cmd := exec.Command(command, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", command, err)
	}

	return nil
}

type EvmInputs struct {
	ProjectRoot  string `validate:"required,dir" cli:"--project-root"`
	ChainFamily  string `validate:"required,oneof=evm" cli:"<chain-family>"`
	Language     string `validate:"required,oneof=go" cli:"--language"`
	AbiPath      string `validate:"required_without=CombinedJSON" cli:"--abi"`
	CombinedJSON string `validate:"omitempty,file,json" cli:"--combined-json"`
	TypeName     string `validate:"omitempty,contract_name" cli:"--type"`
	PkgName      string `validate:"omitempty,lowercase" cli:"--pkg"`
	OutPath      string `validate:"required" cli:"--out"`
	SkipDeps     bool   `cli:"--skip-deps"`
}

// abiArtifact is the single-file input of the generator.
type abiArtifact struct {
	Abi string `validate:"abi_file" cli:"--abi"`
	Bin string `validate:"omitempty,bytecode_file" cli:"<name>.bin"`
}

// Runner executes external commands, go get and go mod tidy in practice.
type Runner func(dir string, command string, args ...string) error

type handler struct {
	log    *zerolog.Logger
	inputs EvmInputs
	run    Runner
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	generateBindingsCmd := &cobra.Command{
		Use:   "generate-bindings <chain-family>",
		Short: "Generate bindings from contract ABI",
		Long: `This command generates Go bindings from contract ABI files.
Supports the evm chain family (Klaytn and Kaia networks) and the Go language.
Each contract gets its own package subdirectory to avoid naming conflicts.
For example, IERC20.abi generates bindings in generated/ierc20/ package.
A sibling .bin file adds a Deploy function to the binding.`,
		Example: `  klaybind generate-bindings evm
  klaybind generate-bindings evm --abi contracts/evm/src/abi/KIP7.abi
  klaybind generate-bindings evm --combined-json build/combined.json --type Vault --skip-deps`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"evm"},
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := resolveEvmInputs(args, runtimeContext.Viper)
			if err != nil {
				return err
			}
			if err := validateEvmInputs(inputs); err != nil {
				return err
			}
			h := &handler{log: runtimeContext.Logger, inputs: inputs, run: runCommand}
			return h.executeEvm()
		},
	}

	generateBindingsCmd.Flags().StringP("language", "l", "go", "Target language (go)")
	generateBindingsCmd.Flags().StringP("abi", "a", "", "Path to an ABI file or directory (defaults to contracts/{chain-family}/src/abi/)")
	generateBindingsCmd.Flags().String("combined-json", "", "Path to a solc --combined-json abi,bin output, used instead of --abi")
	generateBindingsCmd.Flags().String("type", "", "Contract to bind from --combined-json and Go type name of the binding")
	generateBindingsCmd.Flags().StringP("pkg", "k", "", "Package name in single-file and --combined-json mode (defaults to the snake_case contract name)")
	generateBindingsCmd.Flags().Bool("skip-deps", false, "Do not run go get and go mod tidy in the project after generation")

	return generateBindingsCmd
}
