package mapper

import (
	"fmt"

	"json-mapper/dotpath"
	"json-mapper/value"
)

// resolve computes the value of one field. A nil result means undefined.
func resolve(source value.Value, rule FieldRule) (value.Value, error) {
	switch r := rule.(type) {
	case Path:
		return dotpath.Get(source, string(r))
	case Rule:
		return resolveRule(source, r)
	case *Rule:
		if r != nil {
			return resolveRule(source, *r)
		}
	}

	return nil, fmt.Errorf("%w: missing rule", ErrInvalidFieldRule)
}

// resolveRule applies a rule object. Custom wins over key and default; a
// default is used only when the key resolves to undefined, so present null,
// false, 0 and "" values are kept.
func resolveRule(source value.Value, r Rule) (value.Value, error) {
	hasKey := r.Key != ""
	hasDefault := !value.IsNone(r.Default)

	if r.Custom == nil && !hasKey && !hasDefault {
		return nil, fmt.Errorf("%w: `key` or `default` should be defined", ErrInvalidFieldRule)
	}

	switch {
	case r.Custom != nil:
		return r.Custom(source)
	case !hasDefault:
		return dotpath.Get(source, r.Key)
	case !hasKey:
		return r.Default, nil
	}

	v, err := dotpath.Get(source, r.Key)
	if err != nil {
		return nil, err
	}

	if v == nil {
		return r.Default, nil
	}

	return v, nil
}

// subSpec returns the nested spec applied to array elements, if any.
func subSpec(rule FieldRule) *Spec {
	switch r := rule.(type) {
	case Rule:
		return r.Map
	case *Rule:
		if r != nil {
			return r.Map
		}
	}

	return nil
}
