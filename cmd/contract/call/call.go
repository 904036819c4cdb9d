package call

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdCommon "github.com/klaybind/klaybind/cmd/common"
	"github.com/klaybind/klaybind/cmd/contract/args"
	"github.com/klaybind/klaybind/cmd/contract/target"
	"github.com/klaybind/klaybind/cmd/utils"
	"github.com/klaybind/klaybind/internal/runtime"
	"github.com/klaybind/klaybind/internal/settings"
	"github.com/klaybind/klaybind/internal/ui"
	"github.com/klaybind/klaybind/internal/validation"
	"github.com/klaybind/klaybind/pkg/contract"
)

type Inputs struct {
	Contract   string   `validate:"required,contract_name" cli:"<contract>"`
	Function   string   `validate:"required" cli:"<function>"`
	Args       []string `validate:"-"`
	Address    string   `validate:"omitempty,eth_addr" cli:"--address"`
	Format     string   `validate:"oneof=raw json yaml" cli:"--format"`
	OutputPath string   `validate:"omitempty,filepath" cli:"--output"`
}

// Output is one decoded return value.
type Output struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

type handler struct {
	log            *zerolog.Logger
	v              *viper.Viper
	runtimeContext *runtime.Context
	inputs         Inputs
	validated      bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	callCmd := &cobra.Command{
		Use:   "call <contract> <function> [args...]",
		Short: "Queries a read-only contract function",
		Long: `Calls a contract function without sending a transaction and prints the decoded outputs.
Scalar arguments are plain text, arrays and tuples are JSON.`,
		Example: `  klaybind contract call KIP7 balanceOf 0x70997970C51812dc3A010C7d01b50e0d17dc79C8
  klaybind contract call DataStorage getReserves --format json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, positional []string) error {
			h := newHandler(runtimeContext)

			inputs, err := h.ResolveInputs(positional, runtimeContext.Viper)
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

	settings.AddChainFlags(callCmd)
	settings.AddAddressFlag(callCmd)
	settings.AddOutputFlags(callCmd)

	return callCmd
}

func newHandler(ctx *runtime.Context) *handler {
	return &handler{
		log:            ctx.Logger,
		v:              ctx.Viper,
		runtimeContext: ctx,
	}
}

func (h *handler) ResolveInputs(positional []string, v *viper.Viper) (Inputs, error) {
	return Inputs{
		Contract:   positional[0],
		Function:   positional[1],
		Args:       positional[2:],
		Address:    v.GetString(settings.Flags.Address.Name),
		Format:     v.GetString(settings.Flags.Format.Name),
		OutputPath: v.GetString(settings.Flags.Output.Name),
	}, nil
}

func (h *handler) ValidateInputs() error {
	validate, err := validation.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to initialize validator: %w", err)
	}

	if err := validate.Struct(h.inputs); err != nil {
		return validate.ParseValidationErrors(err)
	}

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

	resolver, err := target.NewResolver(h.log, h.runtimeContext.Settings)
	if err != nil {
		return err
	}
	desc, err := resolver.Descriptor(h.inputs.Contract)
	if err != nil {
		return err
	}
	fn, ok := desc.Function(h.inputs.Function)
	if !ok {
		return fmt.Errorf("%w: %s has no function %s", contract.ErrUnknownFunction, desc.Name, h.inputs.Function)
	}
	if !fn.ReadOnly() {
		h.log.Warn().Str("function", fn.Signature).Msg("Function changes state, the call result is simulated and nothing is sent")
	}

	params, err := args.ParseAll(h.inputs.Args, fn.Method().Inputs)
	if err != nil {
		return err
	}

	network, err := h.runtimeContext.Settings.GetChain(h.v)
	if err != nil {
		return err
	}
	address, err := resolver.Address(desc.Name, h.inputs.Address, network)
	if err != nil {
		return err
	}

	eth, err := h.runtimeContext.NewEthClient(ctx)
	if err != nil {
		return err
	}
	defer eth.Close()

	c := contract.Load(desc, address, eth.Backend, contract.WithLogger(h.log))
	values, err := c.Query(eth.CallOpts(ctx), fn.Name, params...)
	if err != nil {
		return err
	}

	outputs := make([]Output, len(values))
	rendered := cmdCommon.ToStringSlice(values)
	for i := range values {
		name := fn.Outputs[i].Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		outputs[i] = Output{Name: name, Type: fn.Outputs[i].Type, Value: rendered[i]}
	}

	if h.inputs.Format != utils.RawOutputFormat {
		return utils.HandleJsonOrYamlFormat(h.log, h.inputs.Format, "Call result", outputs, h.inputs.OutputPath)
	}

	ui.Line()
	ui.Title(fmt.Sprintf("%s.%s at %s", desc.Name, fn.Signature, address.Hex()))
	pairs := make([][2]string, len(outputs))
	for i, o := range outputs {
		pairs[i] = [2]string{fmt.Sprintf("%s (%s)", o.Name, o.Type), ui.RenderBold(o.Value)}
	}
	ui.KeyValue(pairs...)
	return nil
}
