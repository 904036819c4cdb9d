package testutil

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/klaybind/klaybind/internal/constants"
	"github.com/klaybind/klaybind/internal/settings"
)

//go:embed testdata/klaybind.yaml
var testProjectSettingsContent string

// NewTestProject creates a temporary project holding the test klaybind.yaml
// and makes it the working directory for the rest of the test.
func NewTestProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.DefaultProjectSettingsFileName), []byte(testProjectSettingsContent), 0600))
	t.Chdir(dir)
	return dir
}

// NewTestSettings loads settings from a fresh test project.
func NewTestSettings(t *testing.T, v *viper.Viper, logger *zerolog.Logger) *settings.Settings {
	t.Helper()
	NewTestProject(t)
	s, err := settings.New(logger, v)
	require.NoError(t, err)
	return s
}
