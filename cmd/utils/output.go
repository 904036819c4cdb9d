package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/klaybind/klaybind/internal/ui"
)

const (
	RawOutputFormat  = "raw"
	JsonOutputFormat = "json"
	YamlOutputFormat = "yaml"
)

var ErrUnsupportedFormat = errors.New("format not supported")

// Serialize renders v as json or yaml.
func Serialize(format string, v any) ([]byte, error) {
	switch format {
	case JsonOutputFormat:
		return json.MarshalIndent(v, "", "  ")
	case YamlOutputFormat:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// HandleJsonOrYamlFormat prints v in format, or writes it to outputPath when set.
func HandleJsonOrYamlFormat(log *zerolog.Logger, format string, label string, v any, outputPath string) error {
	out, err := Serialize(format, v)
	if err != nil {
		return fmt.Errorf("could not serialize %s as %s: %w", label, strings.ToUpper(format), err)
	}

	if outputPath == "" {
		ui.Printf("\n# %s in %s format:\n\n%s\n", label, strings.ToUpper(format), string(out))
		return nil
	}

	log.Debug().
		Str("Output path", outputPath).
		Msgf("Preparing to write %s to an output %s file", label, strings.ToUpper(format))

	if err := os.WriteFile(outputPath, out, 0600); err != nil {
		return fmt.Errorf("could not write %s to %s: %w", label, outputPath, err)
	}

	ui.Success(fmt.Sprintf("%s written to %s", label, outputPath))
	return nil
}
