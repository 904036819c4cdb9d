// Package bindings holds generated bindings for a few well-known contracts.
// They double as fixtures for the generator and the contract proxy.
package bindings

//go:generate go run ../../cmd/generate-bindings/evm/testdata/gen
