package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/internal/constants"
)

// WriteArtifact stores name.abi and, when bin is not empty, name.bin in the
// ABI directory of the project rooted at projectDir.
func WriteArtifact(t *testing.T, projectDir, name, abiJSON, bin string) string {
	t.Helper()
	dir := filepath.Join(projectDir, constants.DefaultContractsDir, "evm", "src", "abi")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".abi"), []byte(abiJSON), 0o600))
	if bin != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".bin"), []byte(bin), 0o600))
	}
	return dir
}

// WriteContractsConfig stores contracts.yaml in the project rooted at projectDir.
func WriteContractsConfig(t *testing.T, projectDir, content string) string {
	t.Helper()
	dir := filepath.Join(projectDir, constants.DefaultContractsDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, constants.DefaultContractsConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
