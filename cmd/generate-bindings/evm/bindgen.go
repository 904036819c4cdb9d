// Package evm generates Go bindings for Klaytn contracts from their ABI and
// creation bytecode. The generated types embed a static descriptor and
// delegate every call to the generic contract proxy.
package evm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/compiler"
	"github.com/pkg/errors"
	"golang.org/x/tools/imports"

	"github.com/klaybind/klaybind/cmd/version"
	"github.com/klaybind/klaybind/pkg/descriptor"
)

// Options describes a single binding to generate.
type Options struct {
	Package     string
	Type        string
	Contract    string // defaults to Type
	ABI         string
	Bin         string
	Source      string
	SolcVersion string
}

// GenerateBindings writes the binding of one contract to outPath. Input is
// either a solc --combined-json abi,bin file or an .abi file with an optional
// sibling .bin file. An empty typeName falls back to the contract name.
func GenerateBindings(combinedJSONPath, abiPath, pkgName, typeName, outPath string) error {
	opts, err := LoadOptions(combinedJSONPath, abiPath, typeName)
	if err != nil {
		return err
	}
	opts.Package = pkgName
	return WriteBindings(opts, outPath)
}

// LoadOptions reads the contract a binding is generated from, without the package name.
func LoadOptions(combinedJSONPath, abiPath, typeName string) (Options, error) {
	if combinedJSONPath != "" {
		return loadCombinedJSON(combinedJSONPath, typeName)
	}
	return loadAbiFile(abiPath, typeName)
}

// WriteBindings renders opts and writes the formatted source to outPath.
func WriteBindings(opts Options, outPath string) error {
	code, err := Bind(opts)
	if err != nil {
		return errors.Wrapf(err, "failed to generate bindings for %s", opts.Type)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory for %s", outPath)
	}
	if err := os.WriteFile(outPath, code, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write bindings to %s", outPath)
	}
	return nil
}

func loadAbiFile(abiPath, typeName string) (Options, error) {
	abiJSON, err := os.ReadFile(abiPath)
	if err != nil {
		return Options{}, errors.Wrapf(err, "failed to read ABI file %s", abiPath)
	}
	name := strings.TrimSuffix(filepath.Base(abiPath), filepath.Ext(abiPath))
	if typeName == "" {
		typeName = name
	}

	var bin []byte
	binPath := strings.TrimSuffix(abiPath, filepath.Ext(abiPath)) + ".bin"
	if _, statErr := os.Stat(binPath); statErr == nil {
		if bin, err = os.ReadFile(binPath); err != nil {
			return Options{}, errors.Wrapf(err, "failed to read bytecode file %s", binPath)
		}
	}

	return Options{
		Type:     typeName,
		Contract: name,
		ABI:      string(abiJSON),
		Bin:      strings.TrimSpace(string(bin)),
		Source:   filepath.Base(abiPath),
	}, nil
}

func loadCombinedJSON(path, typeName string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrapf(err, "failed to read combined-json file %s", path)
	}
	contracts, err := compiler.ParseCombinedJSON(raw, "", "", "", "")
	if err != nil {
		return Options{}, errors.Wrapf(err, "failed to parse combined-json file %s", path)
	}

	selected, name, err := selectContract(contracts, typeName)
	if err != nil {
		return Options{}, errors.Wrap(err, path)
	}

	abiJSON, err := json.Marshal(selected.Info.AbiDefinition)
	if err != nil {
		return Options{}, errors.Wrapf(err, "failed to encode ABI of %s", name)
	}
	if typeName == "" {
		typeName = name
	}
	return Options{
		Type:        typeName,
		Contract:    name,
		ABI:         string(abiJSON),
		Bin:         selected.Code,
		Source:      filepath.Base(path),
		SolcVersion: solcVersion(raw),
	}, nil
}

// selectContract picks the contract named typeName. A file holding a single
// contract needs no name, typeName then only renames the Go type.
func selectContract(contracts map[string]*compiler.Contract, typeName string) (*compiler.Contract, string, error) {
	byName := make(map[string]*compiler.Contract, len(contracts))
	names := make([]string, 0, len(contracts))
	for key, c := range contracts {
		name := key[strings.LastIndex(key, ":")+1:]
		byName[name] = c
		names = append(names, name)
	}
	sort.Strings(names)

	if c, ok := byName[typeName]; ok {
		return c, typeName, nil
	}
	switch {
	case len(names) == 0:
		return nil, "", errors.New("no contracts found")
	case len(names) == 1:
		return byName[names[0]], names[0], nil
	case typeName == "":
		return nil, "", errors.Errorf("several contracts found (%s), pick one with a type name", strings.Join(names, ", "))
	default:
		return nil, "", errors.Errorf("contract %q not found among %s", typeName, strings.Join(names, ", "))
	}
}

// solcVersion extracts the semantic part of the compiler version recorded in
// a combined-json file, such as 0.8.26 out of "0.8.26+commit.8a97fa7a.Linux.g++".
func solcVersion(combinedJSON []byte) string {
	var header struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(combinedJSON, &header); err != nil || header.Version == "" {
		return ""
	}
	raw, _, _ := strings.Cut(header.Version, "+")
	v, err := semver.NewVersion(raw)
	if err != nil {
		return ""
	}
	return v.String()
}

// Bind renders the Go source of one binding.
func Bind(opts Options) ([]byte, error) {
	if opts.Contract == "" {
		opts.Contract = opts.Type
	}
	desc, err := descriptor.Parse(opts.Contract, opts.ABI, opts.Bin)
	if err != nil {
		return nil, err
	}
	data, err := newTmplData(desc, opts)
	if err != nil {
		return nil, err
	}

	buffer := new(bytes.Buffer)
	tmpl := template.Must(template.New("").Parse(tmplSource))
	if err := tmpl.Execute(buffer, data); err != nil {
		return nil, errors.Wrap(err, "failed to render binding template")
	}

	code, err := imports.Process(opts.Package+".go", buffer.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "generated code does not parse\n%s", buffer)
	}
	return code, nil
}

func newTmplData(desc *descriptor.Contract, opts Options) (*tmplData, error) {
	typeName := capitalise(opts.Type)

	var compact bytes.Buffer
	if err := json.Compact(&compact, []byte(opts.ABI)); err != nil {
		return nil, errors.Wrap(err, "failed to compact ABI")
	}

	data := &tmplData{
		Version:     version.Version,
		SolcVersion: opts.SolcVersion,
		Source:      opts.Source,
		Package:     opts.Package,
		Type:        typeName,
		Contract:    desc.Name,
		InputABI:    strconv.Quote(compact.String()),
	}
	if desc.Deployable() {
		data.InputBin = strconv.Quote("0x" + strings.TrimPrefix(strings.TrimSpace(opts.Bin), "0x"))
	}

	parsed := desc.ABI()
	types := map[string]bool{typeName: true}
	registry := newStructRegistry(desc.Name, types)
	for _, input := range parsed.Constructor.Inputs {
		registry.register(input.Type)
	}
	for _, fn := range desc.Functions {
		method := fn.Method()
		for _, arg := range method.Inputs {
			registry.register(arg.Type)
		}
		for _, arg := range method.Outputs {
			registry.register(arg.Type)
		}
	}
	for _, ev := range desc.Events {
		for _, arg := range ev.ABIEvent().Inputs {
			registry.register(arg.Type)
		}
	}
	for _, e := range desc.Errors {
		for _, arg := range parsed.Errors[e.Name].Inputs {
			registry.register(arg.Type)
		}
	}
	data.Structs = registry.ordered
	for _, s := range registry.ordered {
		types[s.Name] = true
	}

	data.Constructor = inputArgs(parsed.Constructor.Inputs, registry)

	methods := make(map[string]bool, len(desc.Functions))
	for _, fn := range desc.Functions {
		method := fn.Method()
		name, err := identifier(fn.Name, "M", methods)
		if err != nil {
			return nil, err
		}
		// The embedded proxy field is named Contract.
		if name == "Contract" {
			delete(methods, name)
			name = abi.ResolveNameConflict(name, func(s string) bool { return s == "Contract" || methods[s] })
			methods[name] = true
		}
		m := &tmplMethod{
			Name:      name,
			ABIName:   fn.Name,
			Selector:  strings.TrimPrefix(fn.SelectorHex(), "0x"),
			Signature: fn.Signature,
			Solidity:  method.String(),
			Inputs:    inputArgs(method.Inputs, registry),
			Payable:   fn.IsPayable(),
		}
		for i, arg := range method.Outputs {
			m.Outputs = append(m.Outputs, &tmplField{Name: fieldName(arg.Name, i, m.Outputs), Type: registry.goType(arg.Type)})
		}
		if fn.ReadOnly() {
			if len(m.Outputs) > 1 {
				m.Output = abi.ResolveNameConflict(name+"Output", func(s string) bool { return types[s] })
				types[m.Output] = true
			}
			data.Calls = append(data.Calls, m)
		} else {
			data.Transacts = append(data.Transacts, m)
		}
	}

	for _, e := range desc.Errors {
		abiErr := parsed.Errors[e.Name]
		name := abi.ResolveNameConflict(capitalise(e.Name), func(s string) bool { return types[s] })
		types[name] = true
		te := &tmplError{
			Name:      name,
			Selector:  fmt.Sprintf("%x", e.Selector),
			Signature: e.Signature,
			Solidity:  abiErr.String(),
		}
		for i, arg := range abiErr.Inputs {
			te.Fields = append(te.Fields, &tmplField{Name: fieldName(arg.Name, i, te.Fields), Type: registry.goType(arg.Type)})
		}
		data.Errors = append(data.Errors, te)
	}

	events := make(map[string]bool)
	for _, ev := range desc.Events {
		abiEvent := ev.ABIEvent()
		name, err := identifier(ev.Name, "E", events)
		if err != nil {
			return nil, err
		}
		if methods["Decode"+name+"Events"] {
			return nil, fmt.Errorf("event %s clashes with function Decode%sEvents", ev.Name, name)
		}
		structName := abi.ResolveNameConflict(typeName+name, func(s string) bool { return types[s] })
		types[structName] = true

		te := &tmplEvent{
			Name:      name,
			ABIName:   ev.Name,
			Struct:    structName,
			Topic:     strings.TrimPrefix(ev.Topic.Hex(), "0x"),
			Signature: ev.Signature,
			Solidity:  abiEvent.String(),
			Anonymous: ev.Anonymous,
		}
		// abi.JSON names unnamed event inputs arg0, arg1 and so on. Log
		// decoding matches fields by their camel-cased name, so two inputs
		// sharing one cannot be decoded.
		fields := make(map[string]string, len(abiEvent.Inputs))
		for _, arg := range abiEvent.Inputs {
			field := capitalise(arg.Name)
			if other, ok := fields[field]; ok {
				return nil, fmt.Errorf("event %s: fields %q and %q both map to %s", ev.Name, other, arg.Name, field)
			}
			fields[field] = arg.Name

			goType := registry.goType(arg.Type)
			if arg.Indexed {
				goType = registry.topicGoType(arg.Type)
			}
			te.Fields = append(te.Fields, &tmplField{Name: field, Type: goType})
		}
		data.Events = append(data.Events, te)
	}
	return data, nil
}

// identifier normalizes an ABI name into an exported Go identifier unique in used.
func identifier(raw, digitPrefix string, used map[string]bool) (string, error) {
	name := capitalise(raw)
	if len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		name = abi.ResolveNameConflict(digitPrefix+name, func(s string) bool { return used[s] })
	}
	if used[name] {
		return "", fmt.Errorf("duplicated identifier %q (normalized %q)", raw, name)
	}
	used[name] = true
	return name, nil
}

// reservedParams are names a generated method body already uses.
var reservedParams = []string{
	"opts", "auth", "backend", "msgValue", "out", "outstruct", "err",
	"big", "bind", "common", "types", "contract", "descriptor",
}

func inputArgs(args abi.Arguments, registry *structRegistry) []*tmplArg {
	out := make([]*tmplArg, 0, len(args))
	used := make(map[string]bool, len(reservedParams)+len(args))
	for _, name := range reservedParams {
		used[name] = true
	}
	for i, arg := range args {
		name := arg.Name
		if name == "" || isKeyWord(name) {
			name = fmt.Sprintf("arg%d", i)
		}
		name = abi.ResolveNameConflict(decapitalise(name), func(s string) bool { return used[s] })
		used[name] = true
		out = append(out, &tmplArg{Name: name, Type: registry.goType(arg.Type)})
	}
	return out
}

func fieldName(raw string, index int, existing []*tmplField) string {
	name := capitalise(raw)
	if name == "" {
		name = fmt.Sprintf("Arg%d", index)
	}
	return abi.ResolveNameConflict(name, func(s string) bool {
		for _, f := range existing {
			if f.Name == s {
				return true
			}
		}
		return false
	})
}
