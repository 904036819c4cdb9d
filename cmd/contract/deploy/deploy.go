package deploy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/internal/constants"
	"github.com/klaybind/klaybind/internal/runtime"
	"github.com/klaybind/klaybind/internal/settings"
	"github.com/klaybind/klaybind/internal/ui"
	"github.com/klaybind/klaybind/internal/validation"
)

type Inputs struct {
	ProjectRoot      string `validate:"required,dir"`
	ContractsPath    string `validate:"required,dir"`
	ConfigPath       string `validate:"required,file,yaml"`
	AbiPath          string `validate:"required"`
	OutputPath       string `validate:"required"`
	ChainOverride    string `validate:"omitempty,chain_name" cli:"--chain"`
	DryRun           bool
	SkipConfirmation bool
	Unsigned         bool
}

type handler struct {
	log            *zerolog.Logger
	v              *viper.Viper
	settings       *settings.Settings
	inputs         Inputs
	runtimeContext *runtime.Context
	validated      bool
	config         *ContractsConfig
	network        constants.Network
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	var deployCmd = &cobra.Command{
		Use:   "deploy",
		Short: "Deploys smart contracts to the blockchain",
		Long: `Deploys smart contracts defined in contracts/contracts.yaml to the target blockchain.
Artifacts are read from contracts/evm/src/abi/<Name>.abi and <Name>.bin.
The deployed contract addresses are stored in contracts/deployed_contracts.yaml
and are used by the call, send and logs commands.`,
		Example: `  klaybind contract deploy
  klaybind contract deploy --dry-run
  klaybind contract deploy --chain kairos --yes
  klaybind contract deploy --unsigned`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := newHandler(runtimeContext)

			inputs, err := h.ResolveInputs(runtimeContext.Viper)
			if err != nil {
				return err
			}
			h.inputs = inputs

			if err := h.ValidateInputs(); err != nil {
				return err
			}
			return h.Execute(cmd.Context())
		},
	}

	deployCmd.Flags().Bool(settings.Flags.DryRun.Name, false, "Validate configuration without deploying contracts")
	settings.AddSkipConfirmation(deployCmd)
	settings.AddTxnTypeFlags(deployCmd)

	return deployCmd
}

func newHandler(ctx *runtime.Context) *handler {
	return &handler{
		log:            ctx.Logger,
		v:              ctx.Viper,
		settings:       ctx.Settings,
		runtimeContext: ctx,
		validated:      false,
	}
}

func (h *handler) ResolveInputs(v *viper.Viper) (Inputs, error) {
	projectRoot, err := os.Getwd()
	if err != nil {
		return Inputs{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	contractsDir := constants.DefaultContractsDir
	if h.settings != nil && h.settings.Project.ContractsDir != "" {
		contractsDir = h.settings.Project.ContractsDir
	}
	contractsPath := filepath.Join(projectRoot, contractsDir)

	return Inputs{
		ProjectRoot:      projectRoot,
		ContractsPath:    contractsPath,
		ConfigPath:       filepath.Join(contractsPath, constants.DefaultContractsConfigFileName),
		AbiPath:          filepath.Join(contractsPath, "evm", "src", "abi"),
		OutputPath:       filepath.Join(contractsPath, constants.DefaultDeployedContractsFileName),
		ChainOverride:    v.GetString(settings.Flags.Chain.Name),
		DryRun:           v.GetBool(settings.Flags.DryRun.Name),
		SkipConfirmation: v.GetBool(settings.Flags.SkipConfirmation.Name),
		Unsigned:         v.GetBool(settings.Flags.RawTxFlag.Name),
	}, nil
}

func (h *handler) ValidateInputs() error {
	validate, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to initialize validator: %w", err)
	}

	if _, err := os.Stat(h.inputs.ContractsPath); os.IsNotExist(err) {
		return fmt.Errorf("contracts folder not found at %s. Create a %s/ folder in your project root", h.inputs.ContractsPath, filepath.Base(h.inputs.ContractsPath))
	}

	if _, err := os.Stat(h.inputs.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("%s not found at %s", constants.DefaultContractsConfigFileName, h.inputs.ConfigPath)
	}

	if err := validate.Struct(h.inputs); err != nil {
		return validate.ParseValidationErrors(err)
	}

	config, err := ParseContractsConfig(h.inputs.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", constants.DefaultContractsConfigFileName, err)
	}

	if h.inputs.ChainOverride != "" {
		config.Chain = h.inputs.ChainOverride
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", constants.DefaultContractsConfigFileName, err)
	}

	h.config = config
	h.network = constants.Networks[config.Chain]
	h.validated = true
	return nil
}

func (h *handler) Execute(ctx context.Context) error {
	if !h.validated {
		return fmt.Errorf("inputs not validated")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	h.displayDeploymentDetails()

	if h.inputs.DryRun {
		ui.Line()
		ui.Success("[DRY RUN] Configuration validated successfully. No contracts were deployed.")
		return nil
	}

	contractsToDeploy := h.config.GetContractsToDeploy()
	if len(contractsToDeploy) == 0 {
		ui.Line()
		ui.Dim("No contracts marked for deployment.")
		return nil
	}

	if h.inputs.Unsigned {
		return h.printDeployData(contractsToDeploy)
	}

	if !h.inputs.SkipConfirmation {
		confirmed, err := ui.Confirm(
			fmt.Sprintf("Deploy %d contract(s) to %s?", len(contractsToDeploy), h.network.Name),
			ui.WithLabels("Deploy", "Cancel"),
			ui.WithDescription("Addresses are recorded in "+h.inputs.OutputPath),
		)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("deployment cancelled by user")
		}
	}

	results, err := h.deployContracts(ctx, contractsToDeploy)
	if err != nil {
		return fmt.Errorf("failed to deploy contracts: %w", err)
	}

	if err := WriteDeployedContracts(h.inputs.OutputPath, h.network, results); err != nil {
		return fmt.Errorf("failed to write deployed contracts file: %w", err)
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.Name, r.Address, r.TxHash}
	}
	ui.Line()
	ui.Table("Deployed contracts", []string{"Contract", "Address", "Tx Hash"}, rows)
	ui.Success("Contracts deployed successfully")
	ui.Dim("Deployed addresses saved to: " + h.inputs.OutputPath)

	return nil
}

func (h *handler) displayDeploymentDetails() {
	ui.Line()
	ui.Title("Contract Deployment")
	ui.KeyValue(
		[2]string{"Project Root", h.inputs.ProjectRoot},
		[2]string{"Target Chain", ui.RenderBold(h.network.Name)},
		[2]string{"Config File", h.inputs.ConfigPath},
	)
	ui.Print("  Contracts:")

	for _, contract := range h.config.Contracts {
		status := ui.RenderDim("skip")
		if contract.Deploy {
			status = ui.RenderAccent("deploy")
		}
		ui.Printf("    - %s: %s\n", contract.Name, status)
	}
}

func (h *handler) deployContracts(ctx context.Context, contractsToDeploy []ContractConfig) ([]DeploymentResult, error) {
	h.v.Set(settings.Flags.Chain.Name, h.network.Name)
	eth, err := h.runtimeContext.NewEthClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create eth client: %w", err)
	}
	defer eth.Close()

	deployer := NewContractDeployer(h.log, eth, h.inputs.AbiPath)

	var results []DeploymentResult
	for _, contract := range contractsToDeploy {
		result, err := ui.WithSpinnerResult(fmt.Sprintf("Deploying %s...", contract.Name), func() (*DeploymentResult, error) {
			return deployer.Deploy(ctx, contract)
		})
		if err != nil {
			return results, fmt.Errorf("failed to deploy %s: %w", contract.Name, err)
		}
		results = append(results, *result)
		ui.Success(fmt.Sprintf("%s deployed at %s", contract.Name, result.Address))
	}

	return results, nil
}

func (h *handler) printDeployData(contractsToDeploy []ContractConfig) error {
	ui.Warning("--unsigned flag detected: contracts not deployed on-chain.")
	ui.Dim("Deploy data for offline signing and submission in your preferred tool:")

	deployer := NewContractDeployer(h.log, nil, h.inputs.AbiPath)
	for _, contract := range contractsToDeploy {
		result, err := deployer.DeployData(contract)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", contract.Name, err)
		}
		ui.Line()
		ui.Title(contract.Name)
		ui.Code(result.DeployData)
	}
	return nil
}
