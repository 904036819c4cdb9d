package contract

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/klaybind/klaybind/pkg/descriptor"
)

// Deployment is a submitted contract creation. The address is known as soon
// as the transaction is signed; Wait resolves once code exists there.
type Deployment[T any] struct {
	Address common.Address
	Tx      *types.Transaction

	contract *Contract
	wrap     func(*Contract) T
}

// Wait blocks until the creation transaction is mined and the address holds
// code, then returns the bound contract.
func (d *Deployment[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	address, err := bind.WaitDeployed(ctx, d.contract.backend, d.Tx)
	if err != nil {
		return zero, fmt.Errorf("deploying %s (%s): %w", d.contract.desc.Name, d.Tx.Hash().Hex(), err)
	}
	if address != d.Address {
		return zero, fmt.Errorf("deploying %s: contract landed at %s, expected %s", d.contract.desc.Name, address.Hex(), d.Address.Hex())
	}
	return d.wrap(d.contract), nil
}

// Deploy submits a creation transaction for desc with the given constructor arguments.
func Deploy(opts *bind.TransactOpts, desc *descriptor.Contract, backend Backend, params ...any) (*Deployment[*Contract], error) {
	return DeployAs(opts, desc, backend, func(c *Contract) *Contract { return c }, params...)
}

// DeployAs is Deploy for generated bindings: wrap turns the bound proxy into
// the binding type handed out by Wait.
func DeployAs[T any](opts *bind.TransactOpts, desc *descriptor.Contract, backend Backend, wrap func(*Contract) T, params ...any) (*Deployment[T], error) {
	if !desc.Deployable() {
		return nil, fmt.Errorf("%s: %w", desc.Name, ErrNoBytecode)
	}
	// Fail on bad constructor arguments before anything is signed.
	if _, err := desc.DeployData(params...); err != nil {
		return nil, err
	}

	address, tx, _, err := bind.DeployContract(opts, desc.ABI(), desc.Bytecode(), backend, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", desc.Name, err)
	}
	return &Deployment[T]{
		Address:  address,
		Tx:       tx,
		contract: Load(desc, address, backend),
		wrap:     wrap,
	}, nil
}
