package evm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var intPattern = regexp.MustCompile(`(u)?int([0-9]*)`)

var capitalise = abi.ToCamelCase

func decapitalise(input string) string {
	if len(input) == 0 {
		return input
	}
	goForm := abi.ToCamelCase(input)
	return strings.ToLower(goForm[:1]) + goForm[1:]
}

func isKeyWord(arg string) bool {
	switch arg {
	case "break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough",
		"for", "func", "go", "goto", "if", "import", "interface", "map", "package", "range",
		"return", "select", "struct", "switch", "type", "var":
		return true
	}
	return false
}

// structRegistry assigns Go type names to ABI tuples in first-seen order.
type structRegistry struct {
	contract string
	byID     map[string]*tmplStruct
	ordered  []*tmplStruct
	names    map[string]bool
}

func newStructRegistry(contract string, reserved map[string]bool) *structRegistry {
	names := make(map[string]bool, len(reserved))
	for name := range reserved {
		names[name] = true
	}
	return &structRegistry{
		contract: contract,
		byID:     make(map[string]*tmplStruct),
		names:    names,
	}
}

func (r *structRegistry) register(kind abi.Type) {
	switch kind.T {
	case abi.TupleTy:
		id := kind.TupleRawName + kind.String()
		if _, exists := r.byID[id]; exists {
			return
		}
		var (
			used   = make(map[string]bool)
			fields []*tmplField
		)
		for i, elem := range kind.TupleElems {
			r.register(*elem)
			name := capitalise(kind.TupleRawNames[i])
			if name == "" {
				name = fmt.Sprintf("Field%d", i)
			}
			name = abi.ResolveNameConflict(name, func(s string) bool { return used[s] })
			used[name] = true
			fields = append(fields, &tmplField{Name: name, Type: r.goType(*elem)})
		}
		name := r.structName(kind.TupleRawName)
		name = abi.ResolveNameConflict(name, func(s string) bool { return r.names[s] })
		r.names[name] = true

		s := &tmplStruct{Name: name, Fields: fields}
		r.byID[id] = s
		r.ordered = append(r.ordered, s)
	case abi.ArrayTy, abi.SliceTy:
		r.register(*kind.Elem)
	}
}

// structName turns "struct DataStorage.UserData" style raw names, already
// flattened by the abi package, into "UserData".
func (r *structRegistry) structName(raw string) string {
	raw = strings.Map(func(c rune) rune {
		if unicode.IsSpace(c) {
			return -1
		}
		return c
	}, raw)
	raw = strings.ReplaceAll(strings.TrimPrefix(raw, "struct"), ".", "")
	if trimmed := strings.TrimPrefix(raw, r.contract); trimmed != raw && trimmed != "" {
		raw = trimmed
	}
	if raw == "" {
		return fmt.Sprintf("Struct%d", len(r.ordered))
	}
	return capitalise(raw)
}

// goType maps an ABI type to the Go type the abi package decodes it into.
func (r *structRegistry) goType(kind abi.Type) string {
	switch kind.T {
	case abi.TupleTy:
		return r.byID[kind.TupleRawName+kind.String()].Name
	case abi.ArrayTy:
		return fmt.Sprintf("[%d]", kind.Size) + r.goType(*kind.Elem)
	case abi.SliceTy:
		return "[]" + r.goType(*kind.Elem)
	default:
		return basicGoType(kind)
	}
}

// topicGoType is goType for indexed event fields. Reference types are stored
// in the topic as their keccak256 hash and cannot be recovered.
func (r *structRegistry) topicGoType(kind abi.Type) string {
	switch kind.T {
	case abi.StringTy, abi.BytesTy, abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		return "common.Hash"
	}
	return r.goType(kind)
}

func basicGoType(kind abi.Type) string {
	switch kind.T {
	case abi.AddressTy:
		return "common.Address"
	case abi.IntTy, abi.UintTy:
		parts := intPattern.FindStringSubmatch(kind.String())
		switch parts[2] {
		case "8", "16", "32", "64":
			return fmt.Sprintf("%sint%s", parts[1], parts[2])
		}
		return "*big.Int"
	case abi.FixedBytesTy:
		return fmt.Sprintf("[%d]byte", kind.Size)
	case abi.BytesTy:
		return "[]byte"
	case abi.FunctionTy:
		return "[24]byte"
	default:
		return kind.String()
	}
}
