// Package mapper reshapes structured data according to a declarative spec.
//
// A spec maps output paths to field rules. Given the source
//
//	{"id": 7, "name": {"first": "Ada", "last": "Lovelace"}, "tags": [{"label": "x"}]}
//
// and the spec
//
//	id: id
//	person.first: name.first
//	person.title:
//	  key: title
//	  default: unknown
//	person.full:
//	  custom: fullName
//	labels:
//	  key: tags
//	  map:
//	    text: label
//
// Map produces
//
//	{"id": 7, "person": {"first": "Ada", "title": "unknown", "full": "Ada Lovelace"},
//	 "labels": [{"text": "x"}]}
//
// # Field rules
//
//   - Path: read the source at a dotted path. Missing values drop the field.
//   - Rule.Key: same as Path.
//   - Rule.Default: used when Key resolves to undefined, or alone as a constant.
//   - Rule.Custom: a function of the whole source object; overrides Key and Default.
//   - Rule.Map: a sub-spec applied to every element when the value is an array.
//
// Output paths are dotted too; missing intermediate objects are created.
//
// Specs are built in Go with NewSpec and Field, or compiled from a decoded
// document with Compile, in which case "custom" may name a function held in
// a Registry.
//
// # Errors
//
// Any contract violation aborts the whole call, no partial result is
// returned. Use errors.Is with ErrInvalidArgument, ErrInvalidFieldRule,
// ErrTargetNotFound, ErrMalformedPath and ErrMaxDepthExceeded. Errors
// returned by custom functions are passed through untouched.
package mapper
