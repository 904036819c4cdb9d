// Command gen regenerates the bindings committed under pkg/bindings from the
// fixtures next to it. It runs through go generate in pkg/bindings.
package main

import (
	"path/filepath"

	"github.com/klaybind/klaybind/cmd/generate-bindings/evm"
)

const fixtures = "../../cmd/generate-bindings/evm/testdata"

func main() {
	if err := evm.GenerateBindings(
		"",
		filepath.Join(fixtures, "DataStorage.abi"),
		"datastorage",
		"",
		"./datastorage/datastorage.go",
	); err != nil {
		panic(err)
	}

	if err := evm.GenerateBindings(
		"",
		filepath.Join(fixtures, "KIP7.abi"),
		"kip7",
		"",
		"./kip7/kip7.go",
	); err != nil {
		panic(err)
	}
}
