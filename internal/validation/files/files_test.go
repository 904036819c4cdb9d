package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/internal/validation"
)

func TestFileValidators(t *testing.T) {
	v, err := validation.NewValidator()
	require.NoError(t, err)

	type readable struct {
		Path string `validate:"path_read"`
	}
	type jsonFile struct {
		Path string `validate:"json"`
	}
	type yamlFile struct {
		Path string `validate:"yaml"`
	}

	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}
	missing := filepath.Join(dir, "missing")

	combined := write("combined.json", `{"contracts":{"a.sol:A":{"abi":[],"bin":""}}}`)
	contractsYAML := write("contracts.yaml", "chain: kairos\ncontracts:\n  - name: DataStorage\n    deploy: true\n")
	broken := write("broken.txt", "chain: [kairos\n")
	empty := write("empty.yaml", "")

	tests := []struct {
		name  string
		input any
		valid bool
	}{
		{name: "readable file", input: readable{combined}, valid: true},
		{name: "readable directory", input: readable{dir}, valid: true},
		{name: "missing path", input: readable{missing}},
		{name: "json document", input: jsonFile{combined}, valid: true},
		{name: "yaml is not json", input: jsonFile{contractsYAML}},
		{name: "empty file is not json", input: jsonFile{empty}},
		{name: "json directory", input: jsonFile{dir}},
		{name: "yaml document", input: yamlFile{contractsYAML}, valid: true},
		{name: "json is yaml", input: yamlFile{combined}, valid: true},
		{name: "empty yaml", input: yamlFile{empty}, valid: true},
		{name: "broken yaml", input: yamlFile{broken}},
		{name: "missing yaml", input: yamlFile{missing}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	t.Run("non-string field panics", func(t *testing.T) {
		type wrong struct {
			Path int `validate:"json"`
		}
		assert.PanicsWithValue(t, "input field name is not a string: Path", func() {
			_ = v.Struct(wrong{42})
		})
	})
}
