package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"

	"github.com/klaybind/klaybind/pkg/descriptor"
)

type DecodedTxInputs map[string]interface{}

// NewDecodedTxInputs sanitizes input maps, converting byte arrays to hex strings.
// Addresses and hashes keep their 0x prefixed form.
func NewDecodedTxInputs(inputMap map[string]interface{}) DecodedTxInputs {
	sanitized := make(DecodedTxInputs)

	for key, value := range inputMap {
		switch v := value.(type) {
		case common.Address:
			sanitized[key] = v.Hex()
			continue
		case common.Hash:
			sanitized[key] = v.Hex()
			continue
		}
		val := reflect.ValueOf(value)
		switch val.Kind() {
		case reflect.Array:
			if val.Type().Elem().Kind() == reflect.Uint8 {
				sanitized[key] = hex.EncodeToString(arrayBytes(val))
			} else {
				sanitized[key] = value
			}
		case reflect.Slice:
			if b, ok := value.([]byte); ok {
				sanitized[key] = hex.EncodeToString(b)
			} else if val.Type().Elem().Kind() == reflect.Array && val.Type().Elem().Elem().Kind() == reflect.Uint8 {
				hexStrings := make([]string, 0, val.Len())
				for i := 0; i < val.Len(); i++ {
					hexStrings = append(hexStrings, hex.EncodeToString(arrayBytes(val.Index(i))))
				}
				sanitized[key] = hexStrings
			} else {
				sanitized[key] = value
			}
		default:
			sanitized[key] = value
		}
	}
	return sanitized
}

func arrayBytes(val reflect.Value) []byte {
	b := make([]byte, val.Len())
	for i := range b {
		b[i] = byte(val.Index(i).Uint())
	}
	return b
}

// DecodeCalldata finds the function of desc that data calls and decodes its arguments by name.
func DecodeCalldata(l *zerolog.Logger, desc *descriptor.Contract, data []byte) (*descriptor.Function, DecodedTxInputs, error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("calldata is less than 4 bytes, can't decode: %s", hexutil.Encode(data))
	}
	var selector [4]byte
	copy(selector[:], data[:4])

	fn, ok := desc.FunctionBySelector(selector)
	if !ok {
		return nil, nil, fmt.Errorf("selector %s not found in %s", hexutil.Encode(selector[:]), desc.Name)
	}

	inputs, err := decodeTxInputs(l, data, fn)
	if err != nil {
		return nil, nil, err
	}
	return fn, inputs, nil
}

func decodeTxInputs(l *zerolog.Logger, txData []byte, fn *descriptor.Function) (DecodedTxInputs, error) {
	l.Debug().Str("Transaction data", hexutil.Encode(txData)).Msg("Parsing transaction inputs")
	if len(txData) < 4 {
		return nil, errors.New("tx data is less than 4 bytes, can't decode")
	}

	inputMap := make(map[string]interface{})
	payload := txData[4:]
	method := fn.Method()
	if len(payload) == 0 || len(method.Inputs) == 0 {
		return DecodedTxInputs{}, nil
	}
	if err := method.Inputs.UnpackIntoMap(inputMap, payload); err != nil {
		return nil, fmt.Errorf("failed to decode inputs of %s: %w", fn.Signature, err)
	}

	sanitizedInputs := NewDecodedTxInputs(inputMap)

	l.Debug().Interface("Inputs", sanitizedInputs).Msg("Transaction inputs")
	return sanitizedInputs, nil
}
