package version_test

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/klaybind/klaybind/cmd/version"
	"github.com/klaybind/klaybind/internal/runtime"
	"github.com/klaybind/klaybind/internal/testutil"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{
			name:     "Release version",
			version:  "version v1.0.3-beta0",
			expected: "klaybind version v1.0.3-beta0",
		},
		{
			name:     "Local build hash",
			version:  "build c8ab91c87c7135aa7c57669bb454e6a3287139d7",
			expected: "klaybind build c8ab91c87c7135aa7c57669bb454e6a3287139d7",
		},
	}

	execute := func(t *testing.T) string {
		t.Helper()
		ctx := runtime.NewContext(testutil.NewTestLogger(), viper.New())
		cmd := version.New(ctx)
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs(nil)

		err := cmd.Execute()
		assert.NoError(t, err)
		return buf.String()
	}

	t.Run("Default development build", func(t *testing.T) {
		assert.Contains(t, execute(t), "development")
	})

	original := version.Version
	t.Cleanup(func() { version.Version = original })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version.Version = tt.version
			assert.Contains(t, execute(t), tt.expected, "Output does not match for %s", tt.name)
		})
	}
}
