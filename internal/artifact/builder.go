// Package artifact loads compiled contract artifacts (.abi and .bin files)
// from a project and turns them into binding descriptors.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/klaybind/klaybind/internal/constants"
	"github.com/klaybind/klaybind/pkg/descriptor"
)

type Inputs struct {
	Name    string
	AbiPath string
	// BinPath is optional. Without bytecode the artifact cannot be deployed.
	BinPath string
}

// InputsFromDir names the <name>.abi and <name>.bin files in dir.
func InputsFromDir(dir, name string) Inputs {
	return Inputs{
		Name:    name,
		AbiPath: filepath.Join(dir, name+".abi"),
		BinPath: filepath.Join(dir, name+".bin"),
	}
}

type Artifact struct {
	Name       string
	ABI        []byte
	Bytecode   string
	Descriptor *descriptor.Contract
}

type Builder struct {
	log *zerolog.Logger
}

func NewBuilder(log *zerolog.Logger) *Builder {
	return &Builder{
		log: log,
	}
}

func (b *Builder) Build(inputs Inputs) (art *Artifact, err error) {
	art = &Artifact{Name: inputs.Name}

	if inputs.Name == "" {
		return nil, fmt.Errorf("contract name is required")
	}

	if inputs.AbiPath == "" {
		return nil, fmt.Errorf("abi path is required")
	}

	art.ABI, err = b.prepareAbi(inputs.AbiPath)
	if err != nil {
		return nil, err
	}

	art.Bytecode, err = b.prepareBytecode(inputs.BinPath)
	if err != nil {
		return nil, err
	}

	art.Descriptor, err = descriptor.Parse(inputs.Name, string(art.ABI), art.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", inputs.Name, err)
	}

	return art, nil
}

func (b *Builder) prepareAbi(abiPath string) ([]byte, error) {
	b.log.Debug().Str("ABI Path", abiPath).Msg("Fetching contract ABI")
	info, err := os.Stat(abiPath)
	if err != nil {
		b.log.Error().Err(err).Str("path", abiPath).Msg("Failed to read ABI file")
		return nil, err
	}
	if info.Size() > constants.MaxAbiFileSize {
		return nil, fmt.Errorf("ABI file %s exceeds %d bytes", abiPath, constants.MaxAbiFileSize)
	}
	return os.ReadFile(abiPath)
}

func (b *Builder) prepareBytecode(binPath string) (string, error) {
	if binPath == "" {
		return "", nil
	}
	b.log.Debug().Str("BIN Path", binPath).Msg("Fetching contract bytecode")
	info, err := os.Stat(binPath)
	if errors.Is(err, os.ErrNotExist) {
		b.log.Debug().Str("path", binPath).Msg("No bytecode file, contract is not deployable")
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if info.Size() > constants.MaxBytecodeFileSize {
		return "", fmt.Errorf("bytecode file %s exceeds %d bytes", binPath, constants.MaxBytecodeFileSize)
	}
	data, err := os.ReadFile(binPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
