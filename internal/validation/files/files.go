package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

func stringField(fl validator.FieldLevel) string {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}
	return field.String()
}

// HasReadAccessToPath accepts an existing file or directory that can be opened.
func HasReadAccessToPath(fl validator.FieldLevel) bool {
	f, err := os.Open(stringField(fl))
	if err != nil {
		return false
	}
	return f.Close() == nil
}

func IsValidJSON(fl validator.FieldLevel) bool {
	return decodeFile(stringField(fl), func(r io.Reader) error {
		var content any
		return json.NewDecoder(r).Decode(&content)
	})
}

// IsValidYAML also accepts an empty document.
func IsValidYAML(fl validator.FieldLevel) bool {
	return decodeFile(stringField(fl), func(r io.Reader) error {
		var content any
		if err := yaml.NewDecoder(r).Decode(&content); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	})
}

func decodeFile(path string, decode func(io.Reader) error) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	return decode(f) == nil
}
