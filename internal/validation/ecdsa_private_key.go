package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/klaybind/klaybind/internal/ethkeys"
)

func isECDSAPrivateKey(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}

	_, err := ethkeys.ParsePrivateKey(field.String())
	return err == nil
}
