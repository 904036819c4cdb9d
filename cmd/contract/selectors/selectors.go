package selectors

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/klaybind/klaybind/cmd/contract/target"
	"github.com/klaybind/klaybind/cmd/utils"
	"github.com/klaybind/klaybind/internal/runtime"
	"github.com/klaybind/klaybind/internal/settings"
	"github.com/klaybind/klaybind/internal/ui"
	"github.com/klaybind/klaybind/internal/validation"
	"github.com/klaybind/klaybind/pkg/descriptor"
)

type Inputs struct {
	Contract   string `validate:"required,contract_name" cli:"<contract>"`
	Format     string `validate:"oneof=raw json yaml" cli:"--format"`
	OutputPath string `validate:"omitempty,filepath" cli:"--output"`
}

type Entry struct {
	Kind       string `json:"kind" yaml:"kind"`
	Name       string `json:"name" yaml:"name"`
	Signature  string `json:"signature" yaml:"signature"`
	Selector   string `json:"selector" yaml:"selector"`
	Mutability string `json:"mutability,omitempty" yaml:"mutability,omitempty"`
}

type handler struct {
	log            *zerolog.Logger
	runtimeContext *runtime.Context
	inputs         Inputs
	validated      bool
}

func New(runtimeContext *runtime.Context) *cobra.Command {
	selectorsCmd := &cobra.Command{
		Use:   "selectors <contract>",
		Short: "Prints the function selectors and event topics of a contract",
		Long: `Prints the binding table of a contract ABI: the 4-byte selector of every function and
custom error and the topic of every event, in declaration order.`,
		Example: `  klaybind contract selectors KIP7
  klaybind contract selectors DataStorage --format json`,
		Args: cobra.ExactArgs(1),
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
			_, err = h.Execute()
			return err
		},
	}

	settings.AddOutputFlags(selectorsCmd)

	return selectorsCmd
}

func newHandler(ctx *runtime.Context) *handler {
	return &handler{
		log:            ctx.Logger,
		runtimeContext: ctx,
	}
}

func (h *handler) ResolveInputs(positional []string, v *viper.Viper) (Inputs, error) {
	return Inputs{
		Contract:   positional[0],
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

func (h *handler) Execute() ([]Entry, error) {
	if !h.validated {
		return nil, fmt.Errorf("inputs not validated")
	}

	resolver, err := target.NewResolver(h.log, h.runtimeContext.Settings)
	if err != nil {
		return nil, err
	}
	desc, err := resolver.Descriptor(h.inputs.Contract)
	if err != nil {
		return nil, err
	}

	entries := Entries(desc)
	if h.inputs.Format != utils.RawOutputFormat {
		return entries, utils.HandleJsonOrYamlFormat(h.log, h.inputs.Format, desc.Name+" selectors", entries, h.inputs.OutputPath)
	}

	var functions, events, errs [][]string
	for _, e := range entries {
		switch e.Kind {
		case "function":
			functions = append(functions, []string{e.Name, e.Signature, e.Selector, e.Mutability})
		case "event":
			events = append(events, []string{e.Name, e.Signature, e.Selector})
		case "error":
			errs = append(errs, []string{e.Name, e.Signature, e.Selector})
		}
	}

	ui.Line()
	ui.Table(desc.Name+" functions", []string{"Name", "Signature", "Selector", "Mutability"}, functions)
	if len(events) > 0 {
		ui.Table(desc.Name+" events", []string{"Name", "Signature", "Topic"}, events)
	}
	if len(errs) > 0 {
		ui.Table(desc.Name+" errors", []string{"Name", "Signature", "Selector"}, errs)
	}
	if !desc.Deployable() {
		ui.Dim("No bytecode found, the contract cannot be deployed from this project.")
	}
	return entries, nil
}

// Entries flattens the descriptor tables in declaration order.
func Entries(desc *descriptor.Contract) []Entry {
	entries := make([]Entry, 0, len(desc.Functions)+len(desc.Events)+len(desc.Errors))
	for _, fn := range desc.Functions {
		entries = append(entries, Entry{
			Kind:       "function",
			Name:       fn.Name,
			Signature:  fn.Signature,
			Selector:   fn.SelectorHex(),
			Mutability: string(fn.Mutability),
		})
	}
	for _, ev := range desc.Events {
		topic := ev.Topic.Hex()
		if ev.Anonymous {
			topic = "anonymous"
		}
		entries = append(entries, Entry{Kind: "event", Name: ev.Name, Signature: ev.Signature, Selector: topic})
	}
	for _, e := range desc.Errors {
		entries = append(entries, Entry{Kind: "error", Name: e.Name, Signature: e.Signature, Selector: hexutil.Encode(e.Selector[:])})
	}
	return entries
}
