package mapper

import (
	"errors"

	"json-mapper/dotpath"
)

var (
	// ErrInvalidArgument is returned when a source or spec is not a plain
	// object, or a path is empty or malformed.
	ErrInvalidArgument = dotpath.ErrInvalidArgument
	// ErrTargetNotFound is returned by strict writes below a missing parent.
	ErrTargetNotFound = dotpath.ErrTargetNotFound
	// ErrMalformedPath is returned by writes whose leaf segment is empty.
	ErrMalformedPath = dotpath.ErrMalformedPath
	// ErrInvalidFieldRule is returned for a rule that supplies none of
	// custom, key or default, or whose fields have the wrong types.
	ErrInvalidFieldRule = errors.New("invalid field rule")
	// ErrMaxDepthExceeded is returned when array recursion goes deeper than
	// Config.MaxDepth.
	ErrMaxDepthExceeded = errors.New("max mapping depth exceeded")
)
