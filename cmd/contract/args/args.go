// Package args converts textual command line and contracts.yaml values into
// the Go values the ABI encoder expects.
//
// Scalars are written as plain text: integers in decimal or 0x hex, bytes as
// 0x hex, booleans as true/false. Arrays and tuples are written as JSON, for
// example ["0xabc...", "0xdef..."] or {"key":"k","value":"v"}.
package args

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/spf13/cast"
)

// ParseAll parses one value per parameter.
func ParseAll(values []string, params abi.Arguments) ([]any, error) {
	if len(values) != len(params) {
		return nil, fmt.Errorf("expected %d arguments, got %d", len(params), len(values))
	}
	out := make([]any, len(values))
	for i, value := range values {
		parsed, err := Parse(value, params[i].Type)
		if err != nil {
			name := params[i].Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("argument %d (%s %s): %w", i, params[i].Type.String(), name, err)
		}
		out[i] = parsed
	}
	return out, nil
}

// Parse converts value into the Go representation of typ.
func Parse(value string, typ abi.Type) (any, error) {
	switch typ.T {
	case abi.AddressTy:
		if !common.IsHexAddress(value) {
			return nil, fmt.Errorf("invalid address: %s", value)
		}
		return common.HexToAddress(value), nil

	case abi.UintTy:
		return parseUint(value, typ.Size)

	case abi.IntTy:
		return parseInt(value, typ.Size)

	case abi.BoolTy:
		b, err := cast.ToBoolE(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid boolean: %s", value)
		}
		return b, nil

	case abi.StringTy:
		return value, nil

	case abi.BytesTy:
		return decodeHex(value)

	case abi.FixedBytesTy:
		b, err := decodeHex(value)
		if err != nil {
			return nil, err
		}
		if len(b) != typ.Size {
			return nil, fmt.Errorf("bytes%d requires exactly %d bytes, got %d", typ.Size, typ.Size, len(b))
		}
		arr := reflect.New(typ.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	case abi.SliceTy, abi.ArrayTy:
		return parseList(value, typ)

	case abi.TupleTy:
		return parseTuple(value, typ)

	default:
		return nil, fmt.Errorf("unsupported type: %s", typ.String())
	}
}

func parseUint(value string, size int) (any, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(value), 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer: %s", value)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("value %s is negative for uint%d", value, size)
	}
	u, overflow := uint256.FromBig(n)
	if overflow || u.BitLen() > size {
		return nil, fmt.Errorf("value %s overflows uint%d", value, size)
	}

	switch size {
	case 8:
		return cast.ToUint8E(u.Uint64())
	case 16:
		return cast.ToUint16E(u.Uint64())
	case 32:
		return cast.ToUint32E(u.Uint64())
	case 64:
		return u.Uint64(), nil
	}
	return u.ToBig(), nil
}

func parseInt(value string, size int) (any, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(value), 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer: %s", value)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(size-1))
	minimum := new(big.Int).Neg(limit)
	if n.Cmp(minimum) < 0 || n.Cmp(limit) >= 0 {
		return nil, fmt.Errorf("value %s overflows int%d", value, size)
	}

	switch size {
	case 8:
		return cast.ToInt8E(n.Int64())
	case 16:
		return cast.ToInt16E(n.Int64())
	case 32:
		return cast.ToInt32E(n.Int64())
	case 64:
		return n.Int64(), nil
	}
	return n, nil
}

func decodeHex(value string) ([]byte, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %s", value)
	}
	return b, nil
}

func parseList(value string, typ abi.Type) (any, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, fmt.Errorf("%s expects a JSON array: %w", typ.String(), err)
	}

	var list reflect.Value
	if typ.T == abi.ArrayTy {
		if len(items) != typ.Size {
			return nil, fmt.Errorf("%s expects %d elements, got %d", typ.String(), typ.Size, len(items))
		}
		list = reflect.New(typ.GetType()).Elem()
	} else {
		list = reflect.MakeSlice(typ.GetType(), len(items), len(items))
	}

	for i, item := range items {
		elem, err := Parse(rawText(item), *typ.Elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		list.Index(i).Set(reflect.ValueOf(elem))
	}
	return list.Interface(), nil
}

func parseTuple(value string, typ abi.Type) (any, error) {
	fields := make([]json.RawMessage, len(typ.TupleElems))

	trimmed := bytes.TrimSpace([]byte(value))
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, fmt.Errorf("tuple expects a JSON array or object: %w", err)
		}
		if len(fields) != len(typ.TupleElems) {
			return nil, fmt.Errorf("tuple expects %d fields, got %d", len(typ.TupleElems), len(fields))
		}
	} else {
		var named map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &named); err != nil {
			return nil, fmt.Errorf("tuple expects a JSON array or object: %w", err)
		}
		for i, name := range typ.TupleRawNames {
			raw, ok := named[name]
			if !ok {
				return nil, fmt.Errorf("tuple field %q is missing", name)
			}
			fields[i] = raw
		}
		if len(named) != len(typ.TupleRawNames) {
			return nil, fmt.Errorf("tuple expects fields %v", typ.TupleRawNames)
		}
	}

	tuple := reflect.New(typ.GetType()).Elem()
	for i, elemType := range typ.TupleElems {
		elem, err := Parse(rawText(fields[i]), *elemType)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", typ.TupleRawNames[i], err)
		}
		tuple.Field(i).Set(reflect.ValueOf(elem))
	}
	return tuple.Interface(), nil
}

// rawText unquotes JSON strings and leaves numbers, booleans and nested
// documents as written.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// TypesMatch reports whether a declared type name matches the ABI type,
// treating uint and int as their 256 bit aliases.
func TypesMatch(declared string, abiType abi.Type) bool {
	declared = strings.ToLower(strings.TrimSpace(declared))
	switch declared {
	case "uint":
		declared = "uint256"
	case "int":
		declared = "int256"
	}
	return declared == strings.ToLower(abiType.String())
}
