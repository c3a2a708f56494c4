package dotpath

import (
	"fmt"

	"json-mapper/value"
)

// Get returns the value at path inside container.
//
// A path without separators reads a single member and may yield undefined.
// A dotted path is walked segment by segment; a null or undefined node
// before the path is exhausted yields undefined rather than an error, as
// does a segment applied to a scalar. An empty path, an empty segment or an
// undefined container fail with ErrInvalidArgument.
func Get(container value.Value, path string) (value.Value, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: cannot get with an empty path", ErrInvalidArgument)
	}

	if container == nil {
		return nil, fmt.Errorf("%w: cannot get %q on an undefined value", ErrInvalidArgument, path)
	}

	if !IsDotted(path) {
		return member(container, path)
	}

	segments, err := Split(path)
	if err != nil {
		return nil, err
	}

	current := container

	for _, seg := range segments {
		if value.IsNone(current) {
			return nil, nil
		}

		current, err = member(current, seg)
		if err != nil {
			return nil, err
		}
	}

	return current, nil
}

func member(container value.Value, key string) (value.Value, error) {
	switch c := container.(type) {
	case *value.Object:
		v, _ := c.Get(key)
		return v, nil
	case value.Array:
		i, ok := index(key, len(c))
		if !ok {
			return nil, nil
		}

		return c[i], nil
	case value.Null:
		return nil, fmt.Errorf("%w: cannot read %q of null", ErrInvalidArgument, key)
	default:
		return nil, nil
	}
}
