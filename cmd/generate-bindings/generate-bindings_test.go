package generatebindings

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/internal/testutil"
	"github.com/klaybind/klaybind/internal/ui"
)

func TestContractNameToPackage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"IERC20", "ierc20"},
		{"ReserveManager", "reserve_manager"},
		{"IReserveManager", "ireserve_manager"},
		{"SimpleERC20", "simple_erc20"},
		{"KIP7", "kip7"},
		{"KIP17Token", "kip17_token"},
		{"DataStorage", "data_storage"},
		{"ERC20", "erc20"},
		{"", ""},
		{"A", "a"},
		{"ABC", "abc"},
		{"HTTPClient", "http_client"},
		{"XMLParser", "xml_parser"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result := contractNameToPackage(test.input)
			assert.Equal(t, test.expected, result)
		})
	}
}

// newProject lays out contracts/evm/src/abi with the given fixtures and
// makes the project the working directory.
func newProject(t *testing.T, fixtures ...string) (string, string) {
	t.Helper()
	t.Cleanup(ui.SetOutput(io.Discard))

	root := t.TempDir()
	abiDir := filepath.Join(root, "contracts", "evm", "src", "abi")
	require.NoError(t, os.MkdirAll(abiDir, 0o755))
	for _, fixture := range fixtures {
		data, err := os.ReadFile(filepath.Join("evm", "testdata", fixture))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(abiDir, fixture), data, 0o600))
	}
	t.Chdir(root)
	return root, abiDir
}

type recordingRunner struct {
	commands []string
	err      error
}

func (r *recordingRunner) run(dir string, command string, args ...string) error {
	r.commands = append(r.commands, strings.Join(append([]string{command}, args...), " "))
	return r.err
}

func TestResolveEvmInputs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		root, abiDir := newProject(t)
		v := viper.New()
		v.Set("language", "go")

		inputs, err := resolveEvmInputs([]string{"evm"}, v)
		require.NoError(t, err)
		assert.Equal(t, root, inputs.ProjectRoot)
		assert.Equal(t, "evm", inputs.ChainFamily)
		assert.Equal(t, abiDir, inputs.AbiPath)
		assert.Equal(t, filepath.Join(root, "contracts", "evm", "src", "generated"), inputs.OutPath)
		assert.False(t, inputs.SkipDeps)
	})

	t.Run("combined json leaves the ABI path empty", func(t *testing.T) {
		newProject(t)
		v := viper.New()
		v.Set("combined-json", "build/combined.json")
		v.Set("type", "Vault")

		inputs, err := resolveEvmInputs([]string{"evm"}, v)
		require.NoError(t, err)
		assert.Empty(t, inputs.AbiPath)
		assert.Equal(t, "Vault", inputs.TypeName)
	})

	t.Run("custom project root", func(t *testing.T) {
		root, _ := newProject(t)
		t.Chdir(t.TempDir())
		v := viper.New()
		v.Set("project-root", root)

		inputs, err := resolveEvmInputs([]string{"evm"}, v)
		require.NoError(t, err)
		assert.Equal(t, root, inputs.ProjectRoot)
	})

	t.Run("missing contracts folder", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := resolveEvmInputs([]string{"evm"}, viper.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contracts folder not found")
	})
}

func TestValidateEvmInputs(t *testing.T) {
	root, abiDir := newProject(t, "KIP7.abi")
	valid := EvmInputs{
		ProjectRoot: root,
		ChainFamily: "evm",
		Language:    "go",
		AbiPath:     abiDir,
		OutPath:     filepath.Join(root, "out"),
	}
	emptyDir := t.TempDir()
	brokenAbi := filepath.Join(t.TempDir(), "Broken.abi")
	require.NoError(t, os.WriteFile(brokenAbi, []byte(`{"not":"an abi"`), 0o600))

	tests := []struct {
		name    string
		mutate  func(*EvmInputs)
		wantErr string
	}{
		{name: "valid directory", mutate: func(*EvmInputs) {}},
		{name: "valid single file", mutate: func(in *EvmInputs) {
			in.AbiPath = filepath.Join(abiDir, "KIP7.abi")
			in.PkgName = "token"
			in.TypeName = "Token"
		}},
		{name: "unsupported chain family", mutate: func(in *EvmInputs) { in.ChainFamily = "solana" }, wantErr: "<chain-family>"},
		{name: "unsupported language", mutate: func(in *EvmInputs) { in.Language = "typescript" }, wantErr: "--language"},
		{name: "missing ABI path", mutate: func(in *EvmInputs) { in.AbiPath = filepath.Join(root, "nope") }, wantErr: "ABI path does not exist"},
		{name: "directory without ABI files", mutate: func(in *EvmInputs) { in.AbiPath = emptyDir }, wantErr: "no .abi files found"},
		{name: "unparsable ABI file", mutate: func(in *EvmInputs) { in.AbiPath = brokenAbi }, wantErr: "--abi must be a readable contract ABI"},
		{name: "type in directory mode", mutate: func(in *EvmInputs) { in.TypeName = "Token" }, wantErr: "apply to a single contract"},
		{name: "invalid package name", mutate: func(in *EvmInputs) {
			in.AbiPath = filepath.Join(abiDir, "KIP7.abi")
			in.PkgName = "my-token"
		}, wantErr: "invalid package name"},
		{name: "missing combined json", mutate: func(in *EvmInputs) {
			in.AbiPath = ""
			in.CombinedJSON = filepath.Join(root, "combined.json")
		}, wantErr: "--combined-json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := valid
			tt.mutate(&inputs)
			err := validateEvmInputs(inputs)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func newHandler(t *testing.T, inputs EvmInputs) (*handler, *recordingRunner) {
	t.Helper()
	runner := &recordingRunner{}
	return &handler{log: testutil.NewTestLogger(), inputs: inputs, run: runner.run}, runner
}

func TestExecuteEvm_Directory(t *testing.T) {
	root, abiDir := newProject(t, "DataStorage.abi", "DataStorage.bin", "KIP7.abi")
	outDir := filepath.Join(root, "contracts", "evm", "src", "generated")

	h, runner := newHandler(t, EvmInputs{
		ProjectRoot: root,
		ChainFamily: "evm",
		Language:    "go",
		AbiPath:     abiDir,
		OutPath:     outDir,
	})
	require.NoError(t, h.executeEvm())

	dataStorage, err := os.ReadFile(filepath.Join(outDir, "data_storage", "DataStorage.go"))
	require.NoError(t, err)
	assert.Contains(t, string(dataStorage), "package data_storage")
	assert.Contains(t, string(dataStorage), "func DeployDataStorage(")

	kip7, err := os.ReadFile(filepath.Join(outDir, "kip7", "KIP7.go"))
	require.NoError(t, err)
	assert.Contains(t, string(kip7), "package kip7")
	assert.NotContains(t, string(kip7), "func DeployKIP7(")

	assert.Equal(t, []string{
		"go get github.com/klaybind/klaybind@latest",
		"go mod tidy",
	}, runner.commands)
}

func TestExecuteEvm_SingleFile(t *testing.T) {
	root, abiDir := newProject(t, "KIP7.abi")
	outDir := filepath.Join(root, "generated")

	h, runner := newHandler(t, EvmInputs{
		ProjectRoot: root,
		ChainFamily: "evm",
		Language:    "go",
		AbiPath:     filepath.Join(abiDir, "KIP7.abi"),
		TypeName:    "Token",
		PkgName:     "token",
		OutPath:     outDir,
		SkipDeps:    true,
	})
	require.NoError(t, h.executeEvm())

	code, err := os.ReadFile(filepath.Join(outDir, "token", "Token.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "package token")
	assert.Contains(t, string(code), "func NewToken(")
	assert.Empty(t, runner.commands)
}

func TestExecuteEvm_CombinedJSON(t *testing.T) {
	root, abiDir := newProject(t, "DataStorage_combined.json")
	outDir := filepath.Join(root, "generated")

	h, _ := newHandler(t, EvmInputs{
		ProjectRoot:  root,
		ChainFamily:  "evm",
		Language:     "go",
		CombinedJSON: filepath.Join(abiDir, "DataStorage_combined.json"),
		OutPath:      outDir,
		SkipDeps:     true,
	})
	require.NoError(t, h.executeEvm())

	code, err := os.ReadFile(filepath.Join(outDir, "data_storage", "DataStorage.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "solc 0.8.26")
	assert.Contains(t, string(code), "func DeployDataStorage(")
}

func TestExecuteEvm_PackageNameCollision(t *testing.T) {
	root, abiDir := newProject(t)

	abiContent := `[{"type":"function","name":"test","inputs":[],"outputs":[],"stateMutability":"nonpayable"}]`
	require.NoError(t, os.WriteFile(filepath.Join(abiDir, "TestContract.abi"), []byte(abiContent), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(abiDir, "test_contract.abi"), []byte(abiContent), 0o600))

	h, runner := newHandler(t, EvmInputs{
		ProjectRoot: root,
		ChainFamily: "evm",
		Language:    "go",
		AbiPath:     abiDir,
		OutPath:     filepath.Join(root, "generated"),
	})
	err := h.executeEvm()
	require.Error(t, err)
	assert.Equal(t, "package name collision: TestContract and test_contract would both generate package 'test_contract' (contracts are converted to snake_case for package names). Please rename one of your contract files to avoid this conflict", err.Error())
	assert.NoDirExists(t, filepath.Join(root, "generated", "test_contract"))
	assert.Empty(t, runner.commands)
}

func TestExecuteEvm_RunnerFailure(t *testing.T) {
	root, abiDir := newProject(t, "KIP7.abi")

	h, runner := newHandler(t, EvmInputs{
		ProjectRoot: root,
		ChainFamily: "evm",
		Language:    "go",
		AbiPath:     abiDir,
		OutPath:     filepath.Join(root, "generated"),
	})
	runner.err = assert.AnError
	err := h.executeEvm()
	require.ErrorIs(t, err, assert.AnError)
	assert.Len(t, runner.commands, 1)
}

func TestRuntimeVersion(t *testing.T) {
	tests := []struct {
		cli  string
		want string
	}{
		{"development", "latest"},
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"version v1.0.3-beta0", "v1.0.3-beta0"},
		{"build c8ab91c87c7135aa7c57669bb454e6a3287139d7", "latest"},
	}
	for _, tt := range tests {
		t.Run(tt.cli, func(t *testing.T) {
			assert.Equal(t, tt.want, runtimeVersion(tt.cli))
		})
	}
}
