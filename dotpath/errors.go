package dotpath

import "errors"

var (
	// ErrInvalidArgument is returned for empty paths, empty path segments and
	// unusable containers.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTargetNotFound is returned by a strict write whose parent does not exist.
	ErrTargetNotFound = errors.New("target not found")
	// ErrMalformedPath is returned by a write whose leaf segment is empty.
	ErrMalformedPath = errors.New("malformed path")
)
