package artifact_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/internal/artifact"
	"github.com/klaybind/klaybind/internal/testutil"
	"github.com/klaybind/klaybind/pkg/bindings/datastorage"
	"github.com/klaybind/klaybind/pkg/bindings/kip7"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	logger := testutil.NewTestLogger()
	artifactBuilder := artifact.NewBuilder(logger)

	t.Run("success with bytecode", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		writeFile(t, filepath.Join(tempDir, "DataStorage.abi"), datastorage.DataStorageMetaData.ABI)
		writeFile(t, filepath.Join(tempDir, "DataStorage.bin"), datastorage.DataStorageMetaData.Bin+"\n")

		art, err := artifactBuilder.Build(artifact.InputsFromDir(tempDir, "DataStorage"))
		require.NoError(t, err)
		assert.Equal(t, "DataStorage", art.Name)
		assert.True(t, art.Descriptor.Deployable())
		assert.Len(t, art.Descriptor.Functions, len(datastorage.DataStorageDescriptor.Functions))
	})

	t.Run("success without bytecode", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		writeFile(t, filepath.Join(tempDir, "KIP7.abi"), kip7.KIP7MetaData.ABI)

		art, err := artifactBuilder.Build(artifact.InputsFromDir(tempDir, "KIP7"))
		require.NoError(t, err)
		assert.False(t, art.Descriptor.Deployable())
		_, ok := art.Descriptor.Function("transfer")
		assert.True(t, ok)
	})

	t.Run("missing abi", func(t *testing.T) {
		t.Parallel()

		_, err := artifactBuilder.Build(artifact.InputsFromDir(t.TempDir(), "Missing"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid abi", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		writeFile(t, filepath.Join(tempDir, "Broken.abi"), `{"not":"an abi array"}`)

		_, err := artifactBuilder.Build(artifact.InputsFromDir(tempDir, "Broken"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load Broken")
	})

	t.Run("invalid bytecode", func(t *testing.T) {
		t.Parallel()

		tempDir := t.TempDir()
		writeFile(t, filepath.Join(tempDir, "DataStorage.abi"), datastorage.DataStorageMetaData.ABI)
		writeFile(t, filepath.Join(tempDir, "DataStorage.bin"), "0xzz")

		_, err := artifactBuilder.Build(artifact.InputsFromDir(tempDir, "DataStorage"))
		require.Error(t, err)
	})

	t.Run("name is required", func(t *testing.T) {
		t.Parallel()

		_, err := artifactBuilder.Build(artifact.Inputs{AbiPath: "x.abi"})
		require.EqualError(t, err, "contract name is required")
	})
}
