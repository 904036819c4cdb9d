package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/rs/zerolog"

	cmdCommon "github.com/klaybind/klaybind/cmd/common"
	"github.com/klaybind/klaybind/internal/logger"
	"github.com/klaybind/klaybind/internal/ui"
	"github.com/klaybind/klaybind/pkg/contract"
)

var ErrCancelled = errors.New("transaction cancelled by user")

type TxType int

const (
	Regular TxType = iota
	Raw
)

func (t TxType) String() string {
	switch t {
	case Regular:
		return "Regular"
	case Raw:
		return "Raw"
	default:
		return fmt.Sprintf("TxType(%d)", int(t))
	}
}

type TxClientConfig struct {
	TxType     TxType
	SkipPrompt bool
}

type TxClient struct {
	Logger *zerolog.Logger
	Eth    *EthClient
	config TxClientConfig
}

// NewTxClient creates a transaction client. eth may be nil in Raw mode.
func NewTxClient(l *zerolog.Logger, eth *EthClient, config TxClientConfig) *TxClient {
	return &TxClient{Logger: l, Eth: eth, config: config}
}

type TxOutput struct {
	Type    TxType
	Hash    common.Hash
	Receipt *types.Receipt
	Events  []logger.DecodedLog
	RawTx   RawTx
}

type RawTx struct {
	To       string
	Data     []byte
	Value    *big.Int
	Function string
	Args     []string
}

// Send calls a state changing function of target. In Regular mode the
// transaction is estimated, confirmed, signed, submitted and awaited. In Raw
// mode only the calldata is produced.
func (c *TxClient) Send(ctx context.Context, target *contract.Contract, value *big.Int, function string, args ...any) (TxOutput, error) {
	fn, ok := target.Descriptor().Function(function)
	if !ok {
		return TxOutput{}, fmt.Errorf("%w: %s on %s", contract.ErrUnknownFunction, function, target.Descriptor().Name)
	}
	if fn.ReadOnly() {
		return TxOutput{}, fmt.Errorf("%w: %s", contract.ErrReadOnlyFunction, fn.Signature)
	}
	data, err := target.EncodeCall(function, args...)
	if err != nil {
		return TxOutput{}, err
	}
	if value == nil {
		value = new(big.Int)
	}
	raw := RawTx{
		To:       target.Address().Hex(),
		Data:     data,
		Value:    value,
		Function: fn.Signature,
		Args:     cmdCommon.ToStringSlice(args),
	}

	switch c.config.TxType {
	case Regular:
		return c.sendRegular(ctx, target, raw, function, args)
	case Raw:
		ui.Warning("--unsigned flag detected: transaction not sent on-chain.")
		ui.Dim("Generating call data for offline signing and submission in your preferred tool:")
		c.Logger.Debug().Msgf("Generated call data:\n%s", func() string {
			b, err := json.MarshalIndent(raw, "", "  ")
			if err != nil {
				return fmt.Sprintf("failed to marshal tx: %v", err)
			}
			return string(b)
		}())
		return TxOutput{Type: Raw, RawTx: raw}, nil
	default:
		return TxOutput{}, fmt.Errorf("unknown output type: %d", c.config.TxType)
	}
}

func (c *TxClient) sendRegular(ctx context.Context, target *contract.Contract, raw RawTx, function string, args []any) (TxOutput, error) {
	out := TxOutput{Type: Regular, RawTx: raw}
	if c.Eth == nil {
		return out, errors.New("no RPC connection for a signed transaction")
	}
	if !c.Eth.HasSigner() {
		_, err := c.Eth.TransactOpts(ctx)
		return out, err
	}

	to := target.Address()
	estimatedGas, gasErr := c.Eth.Backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  c.Eth.From(),
		To:    &to,
		Value: raw.Value,
		Data:  raw.Data,
	})
	if gasErr != nil {
		gasErr = DecodeRevert(target.Descriptor(), gasErr)
		c.Logger.Warn().Err(gasErr).Msg("Failed to estimate gas usage")
	}

	ui.Line()
	ui.Title("Transaction details:")
	ui.KeyValue(
		[2]string{"Chain", ui.RenderBold(c.Eth.Network.Name)},
		[2]string{"From", ui.RenderCode(c.Eth.From().Hex())},
		[2]string{"To", ui.RenderCode(raw.To)},
		[2]string{"Function", ui.RenderBold(raw.Function)},
	)
	if raw.Value.Sign() > 0 {
		ui.KeyValue([2]string{"Value", FormatKLAY(raw.Value)})
	}
	if len(raw.Args) > 0 {
		ui.Print("  Inputs:")
		for i, arg := range raw.Args {
			ui.Printf("    [%d]: %s\n", i, arg)
		}
	}
	ui.Line()
	ui.Print("  Data (for verification):")
	ui.Code(hexutil.Encode(raw.Data))
	ui.Line()

	if gasErr == nil {
		gasPriceWei := c.Eth.tx.GasPrice()
		if gasPriceWei == nil {
			var err error
			gasPriceWei, err = c.Eth.Backend.SuggestGasPrice(ctx)
			if err != nil {
				c.Logger.Warn().Err(err).Msg("Failed to fetch gas price")
			}
		}
		if gasPriceWei != nil {
			gasPriceGwei := new(big.Float).Quo(new(big.Float).SetInt(gasPriceWei), big.NewFloat(params.GWei))
			totalCost := new(big.Int).Mul(new(big.Int).SetUint64(estimatedGas), gasPriceWei)

			ui.Title("Estimated Cost:")
			ui.KeyValue(
				[2]string{"Gas", fmt.Sprintf("%d", estimatedGas)},
				[2]string{"Gas Price", gasPriceGwei.Text('f', 8) + " gwei"},
				[2]string{"Total Cost", ui.RenderBold(FormatKLAY(totalCost))},
			)
		}
	}
	ui.Line()

	if !c.config.SkipPrompt {
		confirmed, err := ui.Confirm("Do you want to execute this transaction?", ui.WithLabels("Send", "Cancel"))
		if err != nil {
			return out, err
		}
		if !confirmed {
			return out, ErrCancelled
		}
	}

	spinner := ui.NewSpinner()
	spinner.Start("Submitting transaction...")
	defer spinner.Stop()

	opts, err := c.Eth.TransactOpts(ctx)
	if err != nil {
		return out, err
	}
	pending, err := target.TransactWithValue(opts, raw.Value, function, args...)
	if err != nil {
		return out, DecodeRevert(target.Descriptor(), err)
	}
	out.Hash = pending.Hash()
	c.Logger.Debug().Str("TxHash", out.Hash.Hex()).Msg("Transaction submitted")

	spinner.Update(fmt.Sprintf("Waiting for transaction %s...", out.Hash.Hex()))
	waitCtx, cancel := c.Eth.WaitContext(ctx)
	defer cancel()

	receipt, err := pending.Wait(waitCtx)
	out.Receipt = receipt
	if receipt != nil {
		out.Events = cmdCommon.DecodeReceiptLogs(c.Logger, target, receipt)
	}
	if err != nil {
		return out, err
	}
	c.Logger.Debug().Uint64("block", receipt.BlockNumber.Uint64()).Uint64("gasUsed", receipt.GasUsed).Msg("Transaction mined successfully")
	return out, nil
}

// FormatKLAY renders a peb amount in KLAY with 8 decimals.
func FormatKLAY(peb *big.Int) string {
	klay := new(big.Float).Quo(new(big.Float).SetInt(peb), big.NewFloat(params.Ether))
	return klay.Text('f', 8) + " KLAY"
}
