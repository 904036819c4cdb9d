// Package contract is the generic proxy behind every generated binding. A
// Contract pairs a static descriptor with an address and a backend and turns
// typed calls into eth_call requests, transactions and decoded logs.
package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"

	"github.com/klaybind/klaybind/pkg/descriptor"
)

var (
	// ErrUnsupportedOperation is returned for ABI entries that have no usable
	// typed form, such as a view function without outputs or an anonymous event.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrUnknownFunction      = errors.New("unknown function")
	ErrUnknownEvent         = errors.New("unknown event")
	ErrReadOnlyFunction     = errors.New("function is read-only")
	ErrNoBytecode           = errors.New("descriptor has no creation bytecode")
	ErrTransactionFailed    = errors.New("transaction failed")
)

// Backend is what the proxy needs from a chain client. Both *ethclient.Client
// and the simulated backend client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Contract is safe for concurrent use. None of its fields change after construction.
type Contract struct {
	desc    *descriptor.Contract
	address common.Address
	backend Backend
	bound   *bind.BoundContract
	logger  *zerolog.Logger
}

type Option func(*Contract)

// WithLogger sets the logger used for debug output. The default discards everything.
func WithLogger(l *zerolog.Logger) Option {
	return func(c *Contract) {
		if l != nil {
			c.logger = l
		}
	}
}

// Load binds desc to an already deployed contract. It does not touch the network.
func Load(desc *descriptor.Contract, address common.Address, backend Backend, opts ...Option) *Contract {
	nop := zerolog.Nop()
	c := &Contract{
		desc:    desc,
		address: address,
		backend: backend,
		bound:   bind.NewBoundContract(address, desc.ABI(), backend, backend, backend),
		logger:  &nop,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadChecked is Load preceded by a code check at the latest block.
func LoadChecked(ctx context.Context, desc *descriptor.Contract, address common.Address, backend Backend, opts ...Option) (*Contract, error) {
	code, err := backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch code of %s at %s: %w", desc.Name, address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%s at %s: %w", desc.Name, address.Hex(), bind.ErrNoCode)
	}
	return Load(desc, address, backend, opts...), nil
}

func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) Descriptor() *descriptor.Contract {
	return c.desc
}

func (c *Contract) Backend() Backend {
	return c.backend
}

// Query issues an eth_call for a view or pure function and returns the
// decoded outputs in declaration order.
func (c *Contract) Query(opts *bind.CallOpts, name string, args ...any) ([]any, error) {
	fn, err := c.function(name)
	if err != nil {
		return nil, err
	}
	if len(fn.Outputs) == 0 {
		return nil, fmt.Errorf("%s.%s has no outputs to query: %w", c.desc.Name, fn.Name, ErrUnsupportedOperation)
	}

	c.logger.Debug().
		Str("contract", c.desc.Name).
		Str("address", c.address.Hex()).
		Str("function", fn.Signature).
		Str("selector", fn.SelectorHex()).
		Msg("Calling contract")

	var out []any
	if err := c.bound.Call(opts, &out, fn.Name, args...); err != nil {
		return nil, c.wrapCallError(fn, err)
	}
	return out, nil
}

// QueryOne queries a function and converts its first output to T. Tuple
// outputs convert into any struct with matching field names and types.
func QueryOne[T any](c *Contract, opts *bind.CallOpts, name string, args ...any) (T, error) {
	var zero T
	out, err := c.Query(opts, name, args...)
	if err != nil {
		return zero, err
	}
	return Convert[T](out[0])
}

// Transact submits a transaction calling a state-mutating function.
func (c *Contract) Transact(opts *bind.TransactOpts, name string, args ...any) (*PendingTx, error) {
	return c.TransactWithValue(opts, nil, name, args...)
}

// TransactWithValue is Transact with an amount of native coin attached. A nil
// value sends nothing; opts.Value is ignored either way.
func (c *Contract) TransactWithValue(opts *bind.TransactOpts, value *big.Int, name string, args ...any) (*PendingTx, error) {
	fn, err := c.function(name)
	if err != nil {
		return nil, err
	}
	if fn.ReadOnly() {
		return nil, fmt.Errorf("%s.%s is %s: %w", c.desc.Name, fn.Name, fn.Mutability, ErrReadOnlyFunction)
	}
	if value != nil && value.Sign() > 0 && !fn.IsPayable() {
		return nil, fmt.Errorf("%s.%s is not payable", c.desc.Name, fn.Name)
	}
	copied := *opts
	copied.Value = value
	opts = &copied

	tx, err := c.bound.Transact(opts, fn.Name, args...)
	if err != nil {
		return nil, c.wrapCallError(fn, err)
	}

	c.logger.Debug().
		Str("contract", c.desc.Name).
		Str("function", fn.Signature).
		Str("tx", tx.Hash().Hex()).
		Msg("Transaction submitted")
	return &PendingTx{tx: tx, backend: c.backend, label: c.desc.Name + "." + fn.Name}, nil
}

// EncodeCall returns the calldata for a function without sending anything.
func (c *Contract) EncodeCall(name string, args ...any) ([]byte, error) {
	fn, err := c.function(name)
	if err != nil {
		return nil, err
	}
	return fn.EncodeCall(args...)
}

func (c *Contract) function(name string) (*descriptor.Function, error) {
	fn, ok := c.desc.Function(name)
	if !ok {
		return nil, fmt.Errorf("%s has no function %q: %w", c.desc.Name, name, ErrUnknownFunction)
	}
	return fn, nil
}

// wrapCallError annotates err with the function signature and, when the node
// returned revert data, with the decoded revert.
func (c *Contract) wrapCallError(fn *descriptor.Function, err error) error {
	var dataErr interface{ ErrorData() interface{} }
	if errors.As(err, &dataErr) {
		if raw, ok := dataErr.ErrorData().(string); ok {
			if data, decodeErr := hexutil.Decode(raw); decodeErr == nil {
				if revert, revertErr := c.desc.DecodeRevert(data); revertErr == nil {
					return fmt.Errorf("%s: %w: %w", fn.Signature, revert, err)
				}
			}
		}
	}
	return fmt.Errorf("%s: %w", fn.Signature, err)
}

// Convert converts a decoded ABI value to T. Anonymous tuple structs returned by
// the decoder convert into named structs with the same field names.
func Convert[T any](v any) (result T, err error) {
	if direct, ok := v.(T); ok {
		return direct, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot convert %T to %T: %v", v, result, r)
		}
	}()
	return *abi.ConvertType(v, new(T)).(*T), nil
}
