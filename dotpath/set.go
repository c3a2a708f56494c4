package dotpath

import (
	"fmt"
	"strings"

	"json-mapper/value"
)

// OnMissing selects what a write does when the parent of its target is missing.
type OnMissing int

const (
	// Fail returns ErrTargetNotFound.
	Fail OnMissing = iota
	// Skip silently does nothing.
	Skip
)

// String returns the policy name.
func (m OnMissing) String() string {
	switch m {
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("OnMissing(%d)", int(m))
	}
}

// Set writes v at path inside container and returns v.
//
// Without separators the container itself must be truthy. Objects take the
// key, arrays an in-range index; any other truthy value is left unchanged. With separators the parent is
// resolved through Get; if it is falsy the onMissing policy decides between
// ErrTargetNotFound and a silent no-op, in which case Set returns (nil, nil).
// An empty leaf segment fails with ErrMalformedPath.
func Set(container value.Value, path string, v value.Value, onMissing OnMissing) (value.Value, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: cannot set with an empty path", ErrInvalidArgument)
	}

	if IsDotted(path) {
		return setDotted(container, path, v, onMissing)
	}

	return assign(container, path, v)
}

func setDotted(root value.Value, path string, v value.Value, onMissing OnMissing) (value.Value, error) {
	cut := strings.LastIndex(path, Separator)
	parentPath, leaf := path[:cut], path[cut+1:]

	if leaf == "" {
		return nil, fmt.Errorf("%w: cannot set %q: empty leaf segment", ErrMalformedPath, path)
	}

	var parent value.Value

	if root != nil {
		var err error

		parent, err = Get(root, parentPath)
		if err != nil {
			return nil, err
		}
	}

	if !value.Truthy(parent) {
		if onMissing == Skip {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: object in path %q could not be found", ErrTargetNotFound, parentPath)
	}

	return assign(parent, leaf, v)
}

func assign(container value.Value, key string, v value.Value) (value.Value, error) {
	if !value.Truthy(container) {
		return nil, fmt.Errorf("%w: you need to provide an object and key to set %q", ErrInvalidArgument, key)
	}

	switch c := container.(type) {
	case *value.Object:
		c.Set(key, v)
		return v, nil
	case value.Array:
		i, ok := index(key, len(c))
		if !ok {
			return nil, fmt.Errorf("%w: index %q out of range for array of length %d", ErrInvalidArgument, key, len(c))
		}

		c[i] = v

		return v, nil
	default:
		// truthy scalars take no properties
		return v, nil
	}
}
