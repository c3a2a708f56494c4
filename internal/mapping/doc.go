// Package mapping loads mapping specs and source documents, writes mapped
// results, and checks specs for mistakes before they are compiled.
//
// Documents may be JSON, YAML or TOML; the format is chosen by file
// extension. Object key order is kept in every format, so results list
// their fields in spec order.
//
// # Spec files
//
// A spec file is an object whose keys are output paths and whose values
// are field rules:
//
//	id: id                     # copy source "id"
//	person.first: name.first   # dotted paths on both sides
//	person.title:
//	  key: title
//	  default: unknown         # used when "title" is missing
//	count:
//	  custom: keys             # registered function of the whole source
//	labels:
//	  key: tags
//	  map:                     # applied to every element of "tags"
//	    text: label
//
// # Checking
//
// Compile stops at the first problem. Validate walks the whole spec,
// nested "map" specs included, and reports every problem as a diagnostic:
// errors for anything that would make Compile or Map fail, warnings for
// rules that are accepted but likely wrong. Given a sample source it also
// warns about keys the sample does not have, with "did you mean"
// suggestions.
package mapping
