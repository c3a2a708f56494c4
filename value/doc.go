// Package value defines the in-memory data model the mapper works on.
//
// A Value is one of a closed set of variants:
//
//   - Null, Bool, Number, String
//   - Array (ordered sequence)
//   - *Object (string-keyed mapping that remembers insertion order)
//   - Date, Regexp, Error (opaque leaves carried through untouched)
//   - Func (a value-producing function stored in data)
//
// A Go nil Value means "undefined": the member is absent. Null is a present
// value and is never treated as missing by lookups.
//
// # Documents
//
// ParseJSON, ParseYAML and ParseTOML decode documents into Values while
// keeping the key order of the input, so that specs loaded from files are
// applied in the order they were written. *Object implements both
// json.Marshaler and yaml.Marshaler and encodes in insertion order.
package value
