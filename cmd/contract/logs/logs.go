package logs

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdCommon "github.com/klaybind/klaybind/cmd/common"
	"github.com/klaybind/klaybind/cmd/contract/target"
	"github.com/klaybind/klaybind/cmd/utils"
	"github.com/klaybind/klaybind/internal/runtime"
	"github.com/klaybind/klaybind/internal/settings"
	"github.com/klaybind/klaybind/internal/ui"
	"github.com/klaybind/klaybind/internal/validation"
	"github.com/klaybind/klaybind/pkg/contract"
)

type Inputs struct {
	Contract   string `validate:"required,contract_name" cli:"<contract>"`
	TxHash     string `validate:"required,hexadecimal,len=66" cli:"<tx-hash>"`
	Format     string `validate:"oneof=raw json yaml" cli:"--format"`
	OutputPath string `validate:"omitempty,filepath" cli:"--output"`
}

// DecodedEvent is a receipt log decoded against the contract ABI.
type DecodedEvent struct {
	Index   uint           `json:"index" yaml:"index"`
	Address string         `json:"address" yaml:"address"`
	Event   string         `json:"event" yaml:"event"`
	Fields  map[string]any `json:"fields" yaml:"fields"`
}

type Result struct {
	TxHash   string                   `json:"txHash" yaml:"txHash"`
	Status   uint64                   `json:"status" yaml:"status"`
	Block    uint64                   `json:"block" yaml:"block"`
	Function string                   `json:"function,omitempty" yaml:"function,omitempty"`
	Inputs   cmdCommon.DecodedTxInputs `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Events   []DecodedEvent           `json:"events" yaml:"events"`
	Skipped  int                      `json:"skipped" yaml:"skipped"`
}

type handler struct {
	log            *zerolog.Logger
	v              *viper.Viper
	runtimeContext *runtime.Context
	inputs         Inputs
	validated      bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	logsCmd := &cobra.Command{
		Use:   "logs <contract> <tx-hash>",
		Short: "Decodes the events of a mined transaction",
		Long: `Fetches the receipt of a transaction and decodes every log whose topic matches an event
of the contract ABI, whichever address emitted it. The transaction input is decoded too
when its selector belongs to the contract.`,
		Example: `  klaybind contract logs DataStorage 0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060
  klaybind contract logs KIP7 0x5c50...2060 --format yaml --output transfer.yaml`,
		Args: cobra.ExactArgs(2),
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

	settings.AddChainFlags(logsCmd)
	settings.AddOutputFlags(logsCmd)

	return logsCmd
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
		TxHash:     positional[1],
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

func (h *handler) Execute(ctx context.Context) (*Result, error) {
	if !h.validated {
		return nil, fmt.Errorf("inputs not validated")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	resolver, err := target.NewResolver(h.log, h.runtimeContext.Settings)
	if err != nil {
		return nil, err
	}
	desc, err := resolver.Descriptor(h.inputs.Contract)
	if err != nil {
		return nil, err
	}

	eth, err := h.runtimeContext.NewEthClient(ctx)
	if err != nil {
		return nil, err
	}
	defer eth.Close()

	hash := common.HexToHash(h.inputs.TxHash)
	receipt, err := eth.Backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, fmt.Errorf("no receipt for %s on %s, the transaction is unknown or still pending", hash.Hex(), eth.Network.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt of %s: %w", hash.Hex(), err)
	}

	result := &Result{
		TxHash: hash.Hex(),
		Status: receipt.Status,
		Block:  receipt.BlockNumber.Uint64(),
		Events: []DecodedEvent{},
	}

	if tx, _, err := eth.Backend.TransactionByHash(ctx, hash); err == nil {
		if fn, inputs, err := cmdCommon.DecodeCalldata(h.log, desc, tx.Data()); err == nil {
			result.Function = fn.Signature
			result.Inputs = inputs
		} else {
			h.log.Debug().Err(err).Msg("Transaction input does not call the contract")
		}
	} else {
		h.log.Debug().Err(err).Msg("Failed to fetch transaction")
	}

	for _, log := range receipt.Logs {
		emitter := contract.Load(desc, log.Address, eth.Backend)
		ev, fields, err := emitter.DecodeLog(*log)
		if err != nil {
			h.log.Debug().Err(err).Uint("index", log.Index).Msg("Skipping log")
			result.Skipped++
			continue
		}
		result.Events = append(result.Events, DecodedEvent{
			Index:   log.Index,
			Address: log.Address.Hex(),
			Event:   ev.Name,
			Fields:  cmdCommon.NewDecodedTxInputs(fields),
		})
	}

	if h.inputs.Format != utils.RawOutputFormat {
		return result, utils.HandleJsonOrYamlFormat(h.log, h.inputs.Format, "Transaction logs", result, h.inputs.OutputPath)
	}

	h.print(result)
	return result, nil
}

func (h *handler) print(result *Result) {
	status := ui.SuccessStyle.Render("success")
	if result.Status == 0 {
		status = ui.ErrorStyle.Render("failed")
	}

	ui.Line()
	ui.Title("Transaction " + result.TxHash)
	ui.KeyValue(
		[2]string{"Status", status},
		[2]string{"Block", fmt.Sprintf("%d", result.Block)},
	)
	if result.Function != "" {
		ui.KeyValue([2]string{"Function", ui.RenderBold(result.Function)})
		if len(result.Inputs) > 0 {
			ui.KeyValue([2]string{"Inputs", cmdCommon.FormatFields(result.Inputs)})
		}
	}
	ui.Line()

	if len(result.Events) == 0 {
		ui.Dim(fmt.Sprintf("No decodable events (%d logs skipped)", result.Skipped))
		return
	}
	rows := make([][]string, len(result.Events))
	for i, ev := range result.Events {
		rows[i] = []string{fmt.Sprintf("%d", ev.Index), ev.Address, ev.Event, cmdCommon.FormatFields(ev.Fields)}
	}
	ui.Table("Events", []string{"Index", "Address", "Event", "Fields"}, rows)
	if result.Skipped > 0 {
		ui.Dim(fmt.Sprintf("%d logs did not match the %s ABI", result.Skipped, h.inputs.Contract))
	}
}
