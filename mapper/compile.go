package mapper

import (
	"fmt"

	"json-mapper/value"
)

// Rule object members understood by Compile.
const (
	RuleKey     = "key"
	RuleDefault = "default"
	RuleCustom  = "custom"
	RuleMap     = "map"
)

// Compile builds a Spec from a plain-object specification, typically one
// decoded from a YAML, JSON or TOML document.
//
// Each member maps an output path to either a string (a source path) or a
// rule object with optional "key", "default", "custom" and "map" members.
// "custom" is either a value.Func or the name of a function in reg. A null
// member counts as absent.
//
// A nested "map" is compiled right away, but its errors are only reported
// when it is applied to an array element; a sub-spec on a field that never
// resolves to an array is never validated by Map.
func Compile(spec value.Value, reg *Registry) (*Spec, error) {
	obj, ok := spec.(*value.Object)
	if !ok || obj == nil {
		return nil, fmt.Errorf("%w: map should be an object, got %s", ErrInvalidArgument, value.TypeOf(spec))
	}

	out := &Spec{entries: make([]Entry, 0, obj.Len())}

	for _, m := range obj.Members() {
		rule, err := compileRule(m.Key, m.Value, reg)
		if err != nil {
			return nil, err
		}

		out.add(Entry{Output: m.Key, Rule: rule})
	}

	return out, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(spec value.Value, reg *Registry) *Spec {
	s, err := Compile(spec, reg)
	if err != nil {
		panic(err)
	}

	return s
}

func compileRule(output string, raw value.Value, reg *Registry) (FieldRule, error) {
	switch r := raw.(type) {
	case value.String:
		return Path(r), nil
	case *value.Object:
		if r != nil {
			return compileRuleObject(output, r, reg)
		}
	}

	return nil, fmt.Errorf("%w: field %q: rule should be a path or an object, got %s",
		ErrInvalidFieldRule, output, value.TypeOf(raw))
}

func compileRuleObject(output string, obj *value.Object, reg *Registry) (FieldRule, error) {
	var rule Rule

	if raw := member(obj, RuleKey); raw != nil {
		key, ok := raw.(value.String)
		if !ok {
			return nil, fmt.Errorf("%w: field %q: key should be a string, got %s",
				ErrInvalidFieldRule, output, value.TypeOf(raw))
		}

		if key == "" {
			return nil, fmt.Errorf("%w: field %q: empty key", ErrInvalidArgument, output)
		}

		rule.Key = string(key)
	}

	rule.Default = member(obj, RuleDefault)

	if raw := member(obj, RuleCustom); raw != nil {
		fn, err := compileCustom(output, raw, reg)
		if err != nil {
			return nil, err
		}

		rule.Custom = fn
	}

	if raw := member(obj, RuleMap); raw != nil {
		rule.Map = compileNested(raw, reg)
	}

	if rule.Custom == nil && rule.Key == "" && rule.Default == nil {
		return nil, fmt.Errorf("%w: field %q: `key` or `default` should be defined", ErrInvalidFieldRule, output)
	}

	return rule, nil
}

func compileCustom(output string, raw value.Value, reg *Registry) (CustomFunc, error) {
	switch c := raw.(type) {
	case value.Func:
		return CustomFunc(c), nil
	case value.String:
		fn := reg.Get(string(c))
		if fn == nil {
			return nil, fmt.Errorf("%w: field %q: unknown custom function %q", ErrInvalidFieldRule, output, string(c))
		}

		return fn, nil
	default:
		return nil, fmt.Errorf("%w: field %q: custom should be a function or a function name, got %s",
			ErrInvalidFieldRule, output, value.TypeOf(raw))
	}
}

func compileNested(raw value.Value, reg *Registry) *Spec {
	s, err := Compile(raw, reg)
	if err != nil {
		return &Spec{err: err}
	}

	return s
}

// member returns obj[key], treating null as absent.
func member(obj *value.Object, key string) value.Value {
	v, _ := obj.Get(key)
	if value.IsNone(v) {
		return nil
	}

	return v
}
