package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/klaybind/klaybind/internal/testutil"
	"github.com/klaybind/klaybind/internal/ui"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

func TestHandleJsonOrYamlFormat(t *testing.T) {
	logger := testutil.NewTestLogger()
	v := []sample{{Name: "getValue", Value: "test"}}

	t.Run("json to stdout", func(t *testing.T) {
		var buf bytes.Buffer
		t.Cleanup(ui.SetOutput(&buf))

		require.NoError(t, HandleJsonOrYamlFormat(logger, JsonOutputFormat, "Call result", v, ""))
		assert.Contains(t, buf.String(), "# Call result in JSON format:")
		assert.Contains(t, buf.String(), `"name": "getValue"`)
	})

	t.Run("yaml to file", func(t *testing.T) {
		var buf bytes.Buffer
		t.Cleanup(ui.SetOutput(&buf))
		path := filepath.Join(t.TempDir(), "out.yaml")

		require.NoError(t, HandleJsonOrYamlFormat(logger, YamlOutputFormat, "Call result", v, path))
		raw, err := os.ReadFile(path)
		require.NoError(t, err)

		var got []sample
		require.NoError(t, yaml.Unmarshal(raw, &got))
		assert.Equal(t, v, got)
	})

	t.Run("raw is not serialized", func(t *testing.T) {
		err := HandleJsonOrYamlFormat(logger, RawOutputFormat, "Call result", v, "")
		require.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
