package evm

// tmplData is the data structure required to fill the binding template.
type tmplData struct {
	Version     string // Generator version recorded in the header
	SolcVersion string // Compiler version, empty when the input was a bare ABI
	Source      string // Base name of the input file
	Package     string
	Type        string // Go type name of the binding
	Contract    string // Contract name as it appears in the ABI artifact
	InputABI    string // Quoted JSON ABI
	InputBin    string // Quoted creation bytecode, empty for interfaces
	Constructor []*tmplArg
	Structs     []*tmplStruct
	Calls       []*tmplMethod
	Transacts   []*tmplMethod
	Events      []*tmplEvent
	Errors      []*tmplError
}

type tmplArg struct {
	Name string
	Type string
}

type tmplField struct {
	Name string
	Type string
}

type tmplStruct struct {
	Name   string
	Fields []*tmplField
}

type tmplMethod struct {
	Name      string // Go method name
	ABIName   string // Disambiguated ABI name the proxy resolves
	Selector  string
	Signature string
	Solidity  string
	Inputs    []*tmplArg
	Outputs   []*tmplField
	Output    string // Name of the output struct when there is more than one output
	Payable   bool
}

type tmplEvent struct {
	Name      string
	ABIName   string
	Struct    string
	Topic     string
	Signature string
	Solidity  string
	Fields    []*tmplField
	Anonymous bool
}

type tmplError struct {
	Name      string
	Selector  string
	Signature string
	Solidity  string
	Fields    []*tmplField
}

const tmplSource = `// Code generated by klaybind {{.Version}}. DO NOT EDIT.
// Source: {{.Source}}{{if .SolcVersion}}, solc {{.SolcVersion}}{{end}}

package {{.Package}}

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/klaybind/klaybind/pkg/contract"
	"github.com/klaybind/klaybind/pkg/descriptor"
)

// {{.Type}}MetaData contains all meta data concerning the {{.Type}} contract.
var {{.Type}}MetaData = &bind.MetaData{
	ABI: {{.InputABI}},
	{{- if .InputBin}}
	Bin: {{.InputBin}},
	{{- end}}
}

// {{.Type}}Descriptor is the static binding table of {{.Type}}.
var {{.Type}}Descriptor = descriptor.MustParse("{{.Contract}}", {{.Type}}MetaData.ABI, {{.Type}}MetaData.Bin)

{{if or .Calls .Transacts}}
// Function selectors of {{.Type}}.
const (
	{{- range .Calls}}
	{{.Name}}Selector = "0x{{.Selector}}" // {{.Signature}}
	{{- end}}
	{{- range .Transacts}}
	{{.Name}}Selector = "0x{{.Selector}}" // {{.Signature}}
	{{- end}}
)
{{end}}

{{if .Events}}
// Event topics of {{.Type}}.
const (
	{{- range .Events}}
	{{.Name}}Topic = "0x{{.Topic}}" // {{.Signature}}
	{{- end}}
)
{{end}}

{{if .Errors}}
// Custom error selectors of {{.Type}}.
const (
	{{- range .Errors}}
	{{.Name}}ErrorSelector = "0x{{.Selector}}" // {{.Signature}}
	{{- end}}
)
{{end}}

{{range .Structs}}
// {{.Name}} is an auto generated low-level Go binding around an user-defined struct.
type {{.Name}} struct {
	{{- range .Fields}}
	{{.Name}} {{.Type}}
	{{- end}}
}
{{end}}

{{range .Calls}}{{if .Output}}
// {{.Output}} holds the return values of {{.ABIName}}.
type {{.Output}} struct {
	{{- range .Outputs}}
	{{.Name}} {{.Type}}
	{{- end}}
}
{{end}}{{end}}

{{range .Errors}}
// {{.Name}} is the custom error {{.Signature}}.
type {{.Name}} struct {
	{{- range .Fields}}
	{{.Name}} {{.Type}}
	{{- end}}
}
{{end}}

{{range .Events}}{{if not .Anonymous}}
// {{.Struct}} represents a {{.Name}} event raised by the {{$.Type}} contract.
type {{.Struct}} struct {
	{{- range .Fields}}
	{{.Name}} {{.Type}}
	{{- end}}
}
{{end}}{{end}}

// {{.Type}} is an auto generated Go binding around a Klaytn contract.
type {{.Type}} struct {
	*contract.Contract
}

// New{{.Type}} creates a new instance of {{.Type}}, bound to a specific deployed contract.
func New{{.Type}}(address common.Address, backend contract.Backend, opts ...contract.Option) *{{.Type}} {
	return &{{.Type}}{Contract: contract.Load({{.Type}}Descriptor, address, backend, opts...)}
}

{{if .InputBin}}
// Deploy{{.Type}} deploys a new Klaytn contract, binding an instance of {{.Type}} to it.
func Deploy{{.Type}}(auth *bind.TransactOpts, backend contract.Backend{{range .Constructor}}, {{.Name}} {{.Type}}{{end}}) (*contract.Deployment[*{{.Type}}], error) {
	return contract.DeployAs(auth, {{.Type}}Descriptor, backend, func(c *contract.Contract) *{{.Type}} {
		return &{{.Type}}{Contract: c}
	}{{range .Constructor}}, {{.Name}}{{end}})
}
{{end}}

{{range .Calls}}
// {{.Name}} is a free data retrieval call binding the contract method 0x{{.Selector}}.
//
// Solidity: {{.Solidity}}
{{- if not .Outputs}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(opts *bind.CallOpts{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) error {
	_, err := _{{$.Type}}.Contract.Query(opts, "{{.ABIName}}"{{range .Inputs}}, {{.Name}}{{end}})
	return err
}
{{- else if .Output}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(opts *bind.CallOpts{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) ({{.Output}}, error) {
	var outstruct {{.Output}}
	out, err := _{{$.Type}}.Contract.Query(opts, "{{.ABIName}}"{{range .Inputs}}, {{.Name}}{{end}})
	if err != nil {
		return outstruct, err
	}
	{{- range $i, $o := .Outputs}}
	if outstruct.{{$o.Name}}, err = contract.Convert[{{$o.Type}}](out[{{$i}}]); err != nil {
		return outstruct, err
	}
	{{- end}}
	return outstruct, nil
}
{{- else}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(opts *bind.CallOpts{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) ({{(index .Outputs 0).Type}}, error) {
	return contract.QueryOne[{{(index .Outputs 0).Type}}](_{{$.Type}}.Contract, opts, "{{.ABIName}}"{{range .Inputs}}, {{.Name}}{{end}})
}
{{- end}}
{{end}}

{{range .Transacts}}
// {{.Name}} is a paid mutator transaction binding the contract method 0x{{.Selector}}.
//
// Solidity: {{.Solidity}}
{{- if .Payable}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(opts *bind.TransactOpts, msgValue *big.Int{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) (*contract.PendingTx, error) {
	return _{{$.Type}}.Contract.TransactWithValue(opts, msgValue, "{{.ABIName}}"{{range .Inputs}}, {{.Name}}{{end}})
}
{{- else}}
func (_{{$.Type}} *{{$.Type}}) {{.Name}}(opts *bind.TransactOpts{{range .Inputs}}, {{.Name}} {{.Type}}{{end}}) (*contract.PendingTx, error) {
	return _{{$.Type}}.Contract.Transact(opts, "{{.ABIName}}"{{range .Inputs}}, {{.Name}}{{end}})
}
{{- end}}
{{end}}

{{range .Events}}{{if not .Anonymous}}
// Decode{{.Name}}Events decodes every {{.Name}} event {{$.Type}} emitted in receipt.
//
// Solidity: {{.Solidity}}
func (_{{$.Type}} *{{$.Type}}) Decode{{.Name}}Events(receipt *types.Receipt) ([]*{{.Struct}}, error) {
	return contract.DecodeEvents[{{.Struct}}](_{{$.Type}}.Contract, receipt, "{{.ABIName}}")
}
{{end}}{{end}}
`
