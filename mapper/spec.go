package mapper

import (
	"json-mapper/value"
)

// CustomFunc computes a field value from the whole source object it is
// applied to. Returning a nil Value leaves the field out of the result.
// Errors are returned to the caller of Map unchanged.
type CustomFunc func(source value.Value) (value.Value, error)

// FieldRule describes how one output field is derived. It is either a Path
// or a Rule.
type FieldRule interface {
	isFieldRule() // sealed marker
}

// Path is the shorthand rule: read the source value at this dotted path.
// It is equivalent to Rule{Key: path}.
type Path string

// Rule is the full rule form.
//
// Custom, when set, takes precedence over Key and Default entirely.
// Otherwise Key is read from the source and Default is used when the result
// is undefined; with no Key, Default is used unconditionally. A Rule must
// supply Custom, Key or Default.
//
// Map is a nested spec applied to each element when the resolved value is
// an array. Elements are passed through unchanged when Map is nil.
type Rule struct {
	Key     string
	Default value.Value
	Custom  CustomFunc
	Map     *Spec
}

func (Path) isFieldRule() {}
func (Rule) isFieldRule() {}

// Entry binds an output path to its rule.
type Entry struct {
	// Output is a dotted path into the result; intermediate objects are
	// created as needed.
	Output string
	Rule   FieldRule
}

// Field is shorthand for Entry{Output: output, Rule: rule}.
func Field(output string, rule FieldRule) Entry {
	return Entry{Output: output, Rule: rule}
}

// Spec is an ordered mapping specification. Entries are applied in order.
type Spec struct {
	entries []Entry
	// err is a compile error deferred until the spec is applied.
	err error
}

// NewSpec creates a spec from entries. A repeated output path keeps the
// position of its first occurrence and the rule of its last.
func NewSpec(entries ...Entry) *Spec {
	s := &Spec{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		s.add(e)
	}

	return s
}

func (s *Spec) add(e Entry) {
	for i := range s.entries {
		if s.entries[i].Output == e.Output {
			s.entries[i].Rule = e.Rule
			return
		}
	}

	s.entries = append(s.entries, e)
}

// Entries returns the entries in order.
func (s *Spec) Entries() []Entry {
	if s == nil {
		return nil
	}

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Len returns the number of entries.
func (s *Spec) Len() int {
	if s == nil {
		return 0
	}

	return len(s.entries)
}

// Err returns the error that makes this spec unusable, if any. Nested specs
// compiled from documents carry their compile error here; it is reported
// when the spec is applied.
func (s *Spec) Err() error {
	if s == nil {
		return nil
	}

	return s.err
}
