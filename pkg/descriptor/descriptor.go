// Package descriptor holds the static binding table of a compiled contract:
// its creation bytecode, the ordered function selectors and the ordered
// event topics, all derived from the contract ABI.
package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// MaxIndexed is the number of indexed fields a non-anonymous event may declare.
	// Topic 0 is taken by the event signature hash.
	MaxIndexed = 3
	// MaxIndexedAnonymous is the number of indexed fields an anonymous event may declare.
	MaxIndexedAnonymous = 4
)

var (
	ErrTooManyIndexed    = errors.New("too many indexed event fields")
	ErrSelectorCollision = errors.New("function selector collision")
	ErrTopicCollision    = errors.New("event topic collision")
	ErrInvalidBytecode   = errors.New("invalid contract bytecode")
)

// Mutability is the declared state mutability of a function.
type Mutability string

const (
	Pure       Mutability = "pure"
	View       Mutability = "view"
	NonPayable Mutability = "nonpayable"
	Payable    Mutability = "payable"
)

// Param is a single typed function input/output or event field.
type Param struct {
	Name    string
	Type    string
	Indexed bool
}

// Function describes one callable contract method.
type Function struct {
	// Name is unique within the contract. Overloads get a numeric suffix.
	Name       string
	RawName    string
	Signature  string
	Selector   [4]byte
	Inputs     []Param
	Outputs    []Param
	Mutability Mutability

	method abi.Method
}

// ReadOnly reports whether the function can only be queried.
func (f *Function) ReadOnly() bool {
	return f.Mutability == View || f.Mutability == Pure
}

func (f *Function) IsPayable() bool {
	return f.Mutability == Payable
}

// SelectorHex returns the 0x-prefixed selector.
func (f *Function) SelectorHex() string {
	return hexutil.Encode(f.Selector[:])
}

// Method exposes the underlying go-ethereum method definition.
func (f *Function) Method() abi.Method {
	return f.method
}

// EncodeCall packs the selector followed by the ABI-encoded arguments.
func (f *Function) EncodeCall(args ...any) ([]byte, error) {
	packed, err := f.method.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode arguments of %s: %w", f.Signature, err)
	}
	return append(f.Selector[:len(f.Selector):len(f.Selector)], packed...), nil
}

// DecodeCall is the inverse of EncodeCall.
func (f *Function) DecodeCall(data []byte) ([]any, error) {
	if len(data) < len(f.Selector) {
		return nil, fmt.Errorf("calldata too short for %s: %d bytes", f.Signature, len(data))
	}
	if !bytes.Equal(data[:4], f.Selector[:]) {
		return nil, fmt.Errorf("calldata selector %s does not match %s (%s)", hexutil.Encode(data[:4]), f.Signature, f.SelectorHex())
	}
	return f.method.Inputs.Unpack(data[4:])
}

// DecodeOutput unpacks return data against the output schema.
func (f *Function) DecodeOutput(data []byte) ([]any, error) {
	return f.method.Outputs.Unpack(data)
}

// Event describes one contract event.
type Event struct {
	Name      string
	RawName   string
	Signature string
	Topic     common.Hash
	Fields    []Param
	Anonymous bool

	event abi.Event
}

// IndexedCount returns the number of fields stored in topics.
func (e *Event) IndexedCount() int {
	n := 0
	for _, field := range e.Fields {
		if field.Indexed {
			n++
		}
	}
	return n
}

// ABIEvent exposes the underlying go-ethereum event definition.
func (e *Event) ABIEvent() abi.Event {
	return e.event
}

// Error describes a custom Solidity error.
type Error struct {
	Name      string
	Signature string
	Selector  [4]byte
	Inputs    []Param
}

// Contract is the binding descriptor of a single contract type.
type Contract struct {
	Name        string
	Constructor []Param
	Functions   []Function
	Events      []Event
	Errors      []Error

	abi      abi.ABI
	bytecode []byte
}

// Parse builds a descriptor from an ABI JSON document and optional hex bytecode.
func Parse(name, abiJSON, bin string) (*Contract, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", name, err)
	}
	order, err := entryOrder(abiJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to read ABI entries of %s: %w", name, err)
	}

	code, err := decodeBytecode(bin)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	c := &Contract{
		Name:        name,
		Constructor: params(parsed.Constructor.Inputs),
		abi:         parsed,
		bytecode:    code,
	}
	for _, key := range order.functions {
		method, ok := parsed.Methods[key]
		if !ok {
			return nil, fmt.Errorf("%s: function %s missing from parsed ABI", name, key)
		}
		c.Functions = append(c.Functions, newFunction(method))
	}
	for _, key := range order.events {
		ev, ok := parsed.Events[key]
		if !ok {
			return nil, fmt.Errorf("%s: event %s missing from parsed ABI", name, key)
		}
		c.Events = append(c.Events, newEvent(ev))
	}
	for _, key := range order.errors {
		abiErr, ok := parsed.Errors[key]
		if !ok {
			return nil, fmt.Errorf("%s: error %s missing from parsed ABI", name, key)
		}
		c.Errors = append(c.Errors, Error{
			Name:      abiErr.Name,
			Signature: abiErr.Sig,
			Selector:  [4]byte(abiErr.ID[:4]),
			Inputs:    params(abiErr.Inputs),
		})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustParse is Parse for package-level descriptor tables of generated bindings.
func MustParse(name, abiJSON, bin string) *Contract {
	c, err := Parse(name, abiJSON, bin)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the selector, topic and indexed-field invariants.
func (c *Contract) Validate() error {
	selectors := make(map[[4]byte]string, len(c.Functions))
	for _, fn := range c.Functions {
		if want := Selector(fn.Signature); want != fn.Selector {
			return fmt.Errorf("%s: selector of %s is %x, expected %x", c.Name, fn.Signature, fn.Selector, want)
		}
		if other, ok := selectors[fn.Selector]; ok {
			return fmt.Errorf("%w: %s and %s share %s", ErrSelectorCollision, other, fn.Signature, fn.SelectorHex())
		}
		selectors[fn.Selector] = fn.Signature
	}

	topics := make(map[common.Hash]string, len(c.Events))
	for _, ev := range c.Events {
		if want := Topic(ev.Signature); want != ev.Topic {
			return fmt.Errorf("%s: topic of %s is %s, expected %s", c.Name, ev.Signature, ev.Topic.Hex(), want.Hex())
		}
		limit := MaxIndexed
		if ev.Anonymous {
			limit = MaxIndexedAnonymous
		}
		if n := ev.IndexedCount(); n > limit {
			return fmt.Errorf("%w: %s.%s declares %d, at most %d allowed", ErrTooManyIndexed, c.Name, ev.Name, n, limit)
		}
		if ev.Anonymous {
			continue
		}
		if other, ok := topics[ev.Topic]; ok {
			return fmt.Errorf("%w: %s and %s share %s", ErrTopicCollision, other, ev.Signature, ev.Topic.Hex())
		}
		topics[ev.Topic] = ev.Signature
	}
	return nil
}

// ABI returns the parsed go-ethereum ABI backing this descriptor.
func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// Bytecode returns a copy of the creation bytecode.
func (c *Contract) Bytecode() []byte {
	return common.CopyBytes(c.bytecode)
}

// Deployable reports whether the descriptor carries creation bytecode.
func (c *Contract) Deployable() bool {
	return len(c.bytecode) > 0
}

// DeployData returns the creation bytecode followed by the ABI-encoded
// constructor arguments.
func (c *Contract) DeployData(params ...any) ([]byte, error) {
	input, err := c.abi.Pack("", params...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments of %s: %w", c.Name, err)
	}
	return append(c.Bytecode(), input...), nil
}

func (c *Contract) Function(name string) (*Function, bool) {
	for i := range c.Functions {
		if c.Functions[i].Name == name {
			return &c.Functions[i], true
		}
	}
	return nil, false
}

func (c *Contract) FunctionBySelector(selector [4]byte) (*Function, bool) {
	for i := range c.Functions {
		if c.Functions[i].Selector == selector {
			return &c.Functions[i], true
		}
	}
	return nil, false
}

func (c *Contract) Event(name string) (*Event, bool) {
	for i := range c.Events {
		if c.Events[i].Name == name {
			return &c.Events[i], true
		}
	}
	return nil, false
}

// EventByTopic looks up a non-anonymous event by its signature hash.
func (c *Contract) EventByTopic(topic common.Hash) (*Event, bool) {
	for i := range c.Events {
		if !c.Events[i].Anonymous && c.Events[i].Topic == topic {
			return &c.Events[i], true
		}
	}
	return nil, false
}

// Selector returns keccak256(signature)[0:4].
func Selector(signature string) [4]byte {
	return [4]byte(crypto.Keccak256([]byte(signature))[:4])
}

// Topic returns keccak256(signature).
func Topic(signature string) common.Hash {
	return crypto.Keccak256Hash([]byte(signature))
}

func newFunction(method abi.Method) Function {
	return Function{
		Name:       method.Name,
		RawName:    method.RawName,
		Signature:  method.Sig,
		Selector:   [4]byte(method.ID[:4]),
		Inputs:     params(method.Inputs),
		Outputs:    params(method.Outputs),
		Mutability: mutability(method),
		method:     method,
	}
}

func newEvent(ev abi.Event) Event {
	return Event{
		Name:      ev.Name,
		RawName:   ev.RawName,
		Signature: ev.Sig,
		Topic:     ev.ID,
		Fields:    params(ev.Inputs),
		Anonymous: ev.Anonymous,
		event:     ev,
	}
}

func params(args abi.Arguments) []Param {
	if len(args) == 0 {
		return nil
	}
	out := make([]Param, len(args))
	for i, arg := range args {
		out[i] = Param{Name: arg.Name, Type: arg.Type.String(), Indexed: arg.Indexed}
	}
	return out
}

// mutability normalizes pre-0.4.16 ABIs that only carry constant/payable flags.
func mutability(method abi.Method) Mutability {
	switch method.StateMutability {
	case "pure":
		return Pure
	case "view":
		return View
	case "payable":
		return Payable
	case "nonpayable":
		return NonPayable
	}
	if method.Constant {
		return View
	}
	if method.Payable {
		return Payable
	}
	return NonPayable
}

func decodeBytecode(bin string) ([]byte, error) {
	bin = strings.TrimSpace(bin)
	if bin == "" || bin == "0x" {
		return nil, nil
	}
	if !strings.HasPrefix(bin, "0x") && !strings.HasPrefix(bin, "0X") {
		bin = "0x" + bin
	}
	code, err := hexutil.Decode(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBytecode, err)
	}
	return code, nil
}

type abiOrder struct {
	functions []string
	events    []string
	errors    []string
}

// entryOrder recovers the declaration order of ABI entries, which the
// go-ethereum ABI maps do not keep. Overloaded names are disambiguated the
// same way abi.JSON does it.
func entryOrder(abiJSON string) (abiOrder, error) {
	var entries []struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(abiJSON), &entries); err != nil {
		return abiOrder{}, err
	}

	var (
		order     abiOrder
		functions = make(map[string]bool)
		events    = make(map[string]bool)
		customs   = make(map[string]bool)
	)
	for _, entry := range entries {
		switch entry.Type {
		case "function", "":
			name := abi.ResolveNameConflict(entry.Name, func(s string) bool { return functions[s] })
			functions[name] = true
			order.functions = append(order.functions, name)
		case "event":
			name := abi.ResolveNameConflict(entry.Name, func(s string) bool { return events[s] })
			events[name] = true
			order.events = append(order.events, name)
		case "error":
			// abi.JSON keeps only the last declaration of a duplicated error name
			if !customs[entry.Name] {
				customs[entry.Name] = true
				order.errors = append(order.errors, entry.Name)
			}
		}
	}
	return order, nil
}
