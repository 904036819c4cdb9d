package descriptor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	revertSelector = Selector("Error(string)")
	panicSelector  = Selector("Panic(uint256)")
)

// Revert is a decoded revert payload.
type Revert struct {
	// Name is "Error" for require/revert strings, "Panic" for compiler
	// panics, or the custom error name.
	Name   string
	Reason string
	Args   []any

	inputs abi.Arguments
	custom bool
}

func (r *Revert) Error() string {
	switch {
	case r.Reason != "":
		return fmt.Sprintf("execution reverted: %s", r.Reason)
	case !r.custom:
		// revert("") and a bare require carry no reason.
		return "execution reverted"
	case len(r.Args) == 0:
		return fmt.Sprintf("execution reverted: %s()", r.Name)
	}
	args := make([]string, len(r.Args))
	for i, a := range r.Args {
		args[i] = fmt.Sprintf("%v", a)
	}
	return fmt.Sprintf("execution reverted: %s(%s)", r.Name, strings.Join(args, ", "))
}

// DecodeRevert decodes revert data returned by a failed call. It recognizes
// Error(string), Panic(uint256) and every custom error of the contract.
func (c *Contract) DecodeRevert(data []byte) (*Revert, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("revert data too short: %s", hexutil.Encode(data))
	}
	switch {
	case bytes.Equal(data[:4], revertSelector[:]), bytes.Equal(data[:4], panicSelector[:]):
		reason, err := abi.UnpackRevert(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode revert reason: %w", err)
		}
		name := "Error"
		if bytes.Equal(data[:4], panicSelector[:]) {
			name = "Panic"
		}
		return &Revert{Name: name, Reason: reason}, nil
	}

	for _, custom := range c.Errors {
		if !bytes.Equal(custom.Selector[:], data[:4]) {
			continue
		}
		abiErr := c.abi.Errors[custom.Name]
		args, err := abiErr.Inputs.Unpack(data[4:])
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", custom.Signature, err)
		}
		return &Revert{Name: custom.Name, Args: args, inputs: abiErr.Inputs, custom: true}, nil
	}
	return nil, fmt.Errorf("unknown revert selector %s", hexutil.Encode(data[:4]))
}

// Unpack copies the arguments of a custom error into the fields of the
// struct v points to, matched by ABI parameter name.
func (r *Revert) Unpack(v any) error {
	if !r.custom {
		return fmt.Errorf("%s carries no custom error arguments", r.Name)
	}
	return r.inputs.Copy(v, r.Args)
}
