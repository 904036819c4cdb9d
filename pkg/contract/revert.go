package contract

import (
	"errors"

	"github.com/klaybind/klaybind/pkg/descriptor"
)

// RevertAs extracts the custom error called name from a failed call and
// decodes its arguments into T.
func RevertAs[T any](err error, name string) (*T, bool) {
	var revert *descriptor.Revert
	if !errors.As(err, &revert) || revert.Name != name {
		return nil, false
	}
	out := new(T)
	if err := revert.Unpack(out); err != nil {
		return nil, false
	}
	return out, true
}
