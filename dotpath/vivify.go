package dotpath

import (
	"fmt"

	"json-mapper/value"
)

// SetPath writes v at path inside obj, creating an empty object for every
// missing (undefined or null) intermediate segment. The final write is a
// strict Set. Leading, trailing or consecutive separators fail with
// ErrInvalidArgument.
func SetPath(obj *value.Object, path string, v value.Value) error {
	segments, err := Split(path)
	if err != nil {
		return err
	}

	if obj == nil {
		return fmt.Errorf("%w: cannot set %q on an undefined object", ErrInvalidArgument, path)
	}

	for i := range len(segments) - 1 {
		sub := Join(segments[:i+1]...)

		current, err := Get(obj, sub)
		if err != nil {
			return err
		}

		if !value.IsNone(current) {
			continue
		}

		_, err = Set(obj, sub, value.NewObject(), Fail)
		if err != nil {
			return err
		}
	}

	_, err = Set(obj, path, v, Fail)

	return err
}
