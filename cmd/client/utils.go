package client

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/klaybind/klaybind/pkg/descriptor"
)

// DecodeRevert replaces an RPC error carrying revert data with the decoded
// revert of desc. Other errors are returned unchanged.
func DecodeRevert(desc *descriptor.Contract, err error) error {
	var (
		decoded *descriptor.Revert
		dataErr rpc.DataError
	)
	if err == nil || errors.As(err, &decoded) || !errors.As(err, &dataErr) {
		return err
	}
	data, ok := revertData(dataErr.ErrorData())
	if !ok {
		return err
	}
	revert, decodeErr := desc.DecodeRevert(data)
	if decodeErr != nil {
		return err
	}
	return fmt.Errorf("%w: %w", revert, err)
}

func revertData(v any) ([]byte, bool) {
	switch data := v.(type) {
	case string:
		b, err := hexutil.Decode(data)
		return b, err == nil
	case []byte:
		return data, true
	}
	return nil, false
}
