package send

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/cmd/client"
	cmdCommon "github.com/klaybind/klaybind/cmd/common"
	"github.com/klaybind/klaybind/cmd/contract/args"
	"github.com/klaybind/klaybind/cmd/contract/target"
	"github.com/klaybind/klaybind/internal/runtime"
	"github.com/klaybind/klaybind/internal/settings"
	"github.com/klaybind/klaybind/internal/ui"
	"github.com/klaybind/klaybind/internal/validation"
	"github.com/klaybind/klaybind/pkg/contract"
)

type Inputs struct {
	Contract string   `validate:"required,contract_name" cli:"<contract>"`
	Function string   `validate:"required" cli:"<function>"`
	Args     []string `validate:"-"`
	Address  string   `validate:"omitempty,eth_addr" cli:"--address"`
	Value    string   `validate:"omitempty,number|hexadecimal" cli:"--value"`
}

type handler struct {
	log            *zerolog.Logger
	v              *viper.Viper
	runtimeContext *runtime.Context
	inputs         Inputs
	validated      bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	sendCmd := &cobra.Command{
		Use:   "send <contract> <function> [args...]",
		Short: "Sends a transaction to a contract function",
		Long: `Signs and sends a transaction calling a state changing contract function, waits for
the receipt and prints the decoded events. With --unsigned only the calldata is printed.`,
		Example: `  klaybind contract send DataStorage storeData color blue
  klaybind contract send KIP7 transfer 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 1000 --yes
  klaybind contract send Vault deposit --value 1000000000000000000`,
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
			_, err = h.Execute(cmd.Context())
			return err
		},
	}

	sendCmd.Flags().String(settings.Flags.Value.Name, "", "Amount of peb to send with a payable function")
	settings.AddChainFlags(sendCmd)
	settings.AddAddressFlag(sendCmd)
	settings.AddSkipConfirmation(sendCmd)
	settings.AddTxnTypeFlags(sendCmd)

	return sendCmd
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
		Contract: positional[0],
		Function: positional[1],
		Args:     positional[2:],
		Address:  v.GetString(settings.Flags.Address.Name),
		Value:    v.GetString(settings.Flags.Value.Name),
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

func (h *handler) Execute(ctx context.Context) (client.TxOutput, error) {
	if !h.validated {
		return client.TxOutput{}, fmt.Errorf("inputs not validated")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	resolver, err := target.NewResolver(h.log, h.runtimeContext.Settings)
	if err != nil {
		return client.TxOutput{}, err
	}
	desc, err := resolver.Descriptor(h.inputs.Contract)
	if err != nil {
		return client.TxOutput{}, err
	}
	fn, ok := desc.Function(h.inputs.Function)
	if !ok {
		return client.TxOutput{}, fmt.Errorf("%w: %s has no function %s", contract.ErrUnknownFunction, desc.Name, h.inputs.Function)
	}

	params, err := args.ParseAll(h.inputs.Args, fn.Method().Inputs)
	if err != nil {
		return client.TxOutput{}, err
	}

	value := new(big.Int)
	if h.inputs.Value != "" {
		if _, ok := value.SetString(h.inputs.Value, 0); !ok || value.Sign() < 0 {
			return client.TxOutput{}, fmt.Errorf("invalid --%s %q", settings.Flags.Value.Name, h.inputs.Value)
		}
	}
	if value.Sign() > 0 && !fn.IsPayable() {
		return client.TxOutput{}, fmt.Errorf("%s is not payable, --%s must be omitted", fn.Signature, settings.Flags.Value.Name)
	}

	network, err := h.runtimeContext.Settings.GetChain(h.v)
	if err != nil {
		return client.TxOutput{}, err
	}
	address, err := resolver.Address(desc.Name, h.inputs.Address, network)
	if err != nil {
		return client.TxOutput{}, err
	}

	var eth *client.EthClient
	if h.runtimeContext.ClientFactory.GetTxType() == client.Regular {
		eth, err = h.runtimeContext.NewEthClient(ctx)
		if err != nil {
			return client.TxOutput{}, err
		}
		defer eth.Close()
	}

	var backend contract.Backend
	if eth != nil {
		backend = eth.Backend
	}
	c := contract.Load(desc, address, backend, contract.WithLogger(h.log))

	out, err := h.runtimeContext.NewTxClient(eth).Send(ctx, c, value, fn.Name, params...)
	if err != nil {
		if out.Receipt != nil {
			printEvents(out)
		}
		return out, err
	}

	switch out.Type {
	case client.Regular:
		ui.Line()
		ui.Success("Transaction confirmed")
		ui.KeyValue(
			[2]string{"Tx Hash", ui.RenderCode(out.Hash.Hex())},
			[2]string{"Block", out.Receipt.BlockNumber.String()},
			[2]string{"Gas Used", fmt.Sprintf("%d", out.Receipt.GasUsed)},
		)
		printEvents(out)
	case client.Raw:
		ui.Line()
		ui.KeyValue(
			[2]string{"To", out.RawTx.To},
			[2]string{"Value", out.RawTx.Value.String()},
			[2]string{"Function", out.RawTx.Function},
		)
		ui.Print("  Data:")
		ui.Code(hexutil.Encode(out.RawTx.Data))
	}
	return out, nil
}

func printEvents(out client.TxOutput) {
	if len(out.Events) == 0 {
		ui.Dim("No events emitted")
		return
	}
	rows := make([][]string, len(out.Events))
	for i, ev := range out.Events {
		rows[i] = []string{fmt.Sprintf("%d", ev.Log.Index), ev.Event, cmdCommon.FormatFields(ev.Fields)}
	}
	ui.Table("Events", []string{"Index", "Event", "Fields"}, rows)
}
