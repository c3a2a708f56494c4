package mapping

import (
	"fmt"
	"sort"
	"strings"

	"json-mapper/dotpath"
	"json-mapper/internal/common"
	"json-mapper/internal/diagnostic"
	"json-mapper/internal/match"
	"json-mapper/mapper"
	"json-mapper/value"
)

// Diagnostic codes reported by Validate.
const (
	CodeSpecNotObject       = "spec_not_object"
	CodeInvalidOutputPath   = "invalid_output_path"
	CodeInvalidRuleType     = "invalid_rule_type"
	CodeInvalidRulePath     = "invalid_rule_path"
	CodeInvalidKeyType      = "invalid_key_type"
	CodeMissingKeyOrDefault = "missing_key_or_default"
	CodeUnknownCustom       = "unknown_custom"
	CodeInvalidCustomType   = "invalid_custom_type"
	CodeMapNotObject        = "map_not_object"

	CodeUnknownRuleField   = "unknown_rule_field"
	CodeNullDefault        = "null_default_ignored"
	CodeCustomIgnoresRule  = "custom_ignores_fields"
	CodeOverlappingOutput  = "overlapping_output"
	CodeKeyNotFound        = "key_not_found"
	CodeMapOnNonArray      = "map_on_non_array"
	CodeRuleCount          = "rule_count"
	CodeSampleNotObject    = "sample_not_object"
	CodeEmptyArraySample   = "empty_array_sample"
	CodeSampleElementShape = "sample_element_not_object"
)

var ruleFields = []string{mapper.RuleKey, mapper.RuleDefault, mapper.RuleCustom, mapper.RuleMap}

// Validate checks spec as Compile would, but reports every problem instead
// of stopping at the first one. reg resolves custom function names; nil
// means no names are known. When sample is a non-nil source object, rule
// paths are also looked up in it and missing ones are reported as warnings.
func Validate(spec value.Value, reg *mapper.Registry, sample value.Value) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if sample != nil && !value.IsPlainObject(sample) {
		res.AddWarning(CodeSampleNotObject,
			fmt.Sprintf("sample source should be an object, got %s; source checks skipped", value.TypeOf(sample)),
			"", "")

		sample = nil
	}

	v := &validator{res: res, reg: reg}
	v.spec("", spec, sample)

	return res
}

type validator struct {
	res   *diagnostic.Diagnostics
	reg   *mapper.Registry
	rules int
}

func (v *validator) spec(scope string, spec, sample value.Value) {
	obj, ok := spec.(*value.Object)
	if !ok || obj == nil {
		v.res.AddError(CodeSpecNotObject,
			fmt.Sprintf("spec should be an object, got %s", value.TypeOf(spec)), scope, "")

		return
	}

	var outputs []string

	obj.Range(func(output string, rule value.Value) bool {
		outputs = append(outputs, output)

		if _, err := dotpath.Split(output); err != nil {
			v.res.AddError(CodeInvalidOutputPath, err.Error(), scope, output)
		}

		v.rule(scope, output, rule, sample)

		return true
	})

	v.overlaps(scope, outputs)

	if scope == "" {
		v.res.AddInfo(CodeRuleCount, fmt.Sprintf("%d field rules checked", v.rules), "", "")
	}
}

func (v *validator) rule(scope, output string, rule, sample value.Value) {
	v.rules++

	switch r := rule.(type) {
	case value.String:
		if v.path(scope, output, CodeInvalidRulePath, string(r)) {
			v.lookup(scope, output, string(r), sample)
		}

		return
	case *value.Object:
		if r != nil {
			v.ruleObject(scope, output, r, sample)
			return
		}
	}

	v.res.AddError(CodeInvalidRuleType,
		fmt.Sprintf("rule should be a path or an object, got %s", value.TypeOf(rule)), scope, output)
}

func (v *validator) ruleObject(scope, output string, rule *value.Object, sample value.Value) {
	for _, k := range rule.Keys() {
		if !isRuleField(k) {
			v.res.AddWarning(CodeUnknownRuleField,
				fmt.Sprintf("unknown rule field %q is ignored", k), scope, output,
				match.Suggest(k, ruleFields)...)
		}
	}

	key := field(rule, mapper.RuleKey)
	hasKey := false

	if key != nil {
		s, ok := key.(value.String)
		if !ok {
			v.res.AddError(CodeInvalidKeyType,
				fmt.Sprintf("key should be a string, got %s", value.TypeOf(key)), scope, output)
		} else if v.path(scope, output, CodeInvalidRulePath, string(s)) {
			hasKey = true
		}
	}

	if raw, ok := rule.Get(mapper.RuleDefault); ok && value.TypeOf(raw) == value.KindNull {
		v.res.AddWarning(CodeNullDefault, "a null default counts as no default", scope, output)
	}

	hasDefault := field(rule, mapper.RuleDefault) != nil
	hasCustom := v.custom(scope, output, field(rule, mapper.RuleCustom))

	switch {
	case hasCustom && (key != nil || hasDefault):
		v.res.AddWarning(CodeCustomIgnoresRule, "key and default are ignored when custom is set", scope, output)
	case !hasCustom && key == nil && !hasDefault && field(rule, mapper.RuleCustom) == nil:
		v.res.AddError(CodeMissingKeyOrDefault, "`key` or `default` should be defined", scope, output)
	}

	var resolved value.Value

	if hasKey && !hasCustom {
		resolved = v.lookup(scope, output, string(key.(value.String)), sample)
	}

	if sub := field(rule, mapper.RuleMap); sub != nil {
		v.nested(common.Prefixed(scope, output), sub, resolved)
	}
}

// custom reports whether raw names a usable custom function.
func (v *validator) custom(scope, output string, raw value.Value) bool {
	switch c := raw.(type) {
	case nil:
		return false
	case value.Func:
		return c != nil
	case value.String:
		if v.reg.Has(string(c)) {
			return true
		}

		v.res.AddError(CodeUnknownCustom,
			fmt.Sprintf("unknown custom function %q", string(c)), scope, output,
			match.Suggest(string(c), v.reg.Names())...)
	default:
		v.res.AddError(CodeInvalidCustomType,
			fmt.Sprintf("custom should be a function or a function name, got %s", value.TypeOf(raw)), scope, output)
	}

	return false
}

// nested checks a "map" sub-spec with its own diagnostics, merged into the
// parent's. The sample for it is the first element of the array the key
// resolved to.
func (v *validator) nested(scope string, sub, resolved value.Value) {
	if _, ok := sub.(*value.Object); !ok {
		v.res.AddError(CodeMapNotObject,
			fmt.Sprintf("map should be an object, got %s", value.TypeOf(sub)), scope, "")

		return
	}

	var sample value.Value

	switch r := resolved.(type) {
	case nil:
		// no sample
	case value.Array:
		first, ok := common.First(r)
		switch {
		case !ok:
			v.res.AddInfo(CodeEmptyArraySample, "sample array is empty, elements not checked", scope, "")
		case !value.IsPlainObject(first):
			v.res.AddWarning(CodeSampleElementShape,
				fmt.Sprintf("sample element should be an object, got %s", value.TypeOf(first)), scope, "")
		default:
			sample = first
		}
	default:
		v.res.AddWarning(CodeMapOnNonArray,
			fmt.Sprintf("map is only applied to arrays, sample value is %s", value.TypeOf(resolved)), scope, "")
	}

	child := &validator{res: &diagnostic.Diagnostics{}, reg: v.reg}
	child.spec(scope, sub, sample)

	v.rules += child.rules
	v.res.Merge(*child.res)
}

// path reports whether p is a well-formed rule path, adding an error if not.
func (v *validator) path(scope, output, code, p string) bool {
	_, err := dotpath.Split(p)
	if err != nil {
		v.res.AddError(code, err.Error(), scope, output)
		return false
	}

	return true
}

// lookup resolves p in sample and warns when it is missing. Returns the
// resolved value, nil without a sample.
func (v *validator) lookup(scope, output, p string, sample value.Value) value.Value {
	if sample == nil {
		return nil
	}

	got, err := dotpath.Get(sample, p)
	if err != nil {
		v.res.AddWarning(CodeKeyNotFound, fmt.Sprintf("reading %q from the sample failed: %v", p, err), scope, output)
		return nil
	}

	if got == nil {
		v.res.AddWarning(CodeKeyNotFound,
			fmt.Sprintf("%q not found in the sample source", p), scope, output,
			match.Suggest(p, Paths(sample))...)
	}

	return got
}

// overlaps warns about outputs where one is a prefix path of another: the
// later write replaces, ignores or fails on the earlier one.
func (v *validator) overlaps(scope string, outputs []string) {
	sorted := append([]string(nil), outputs...)
	sort.Strings(sorted)

	for i, a := range sorted {
		for _, b := range sorted[i+1:] {
			if !strings.HasPrefix(b, a) {
				break
			}

			if strings.HasPrefix(b, a+dotpath.Separator) {
				v.res.AddWarning(CodeOverlappingOutput,
					fmt.Sprintf("output %q is nested in output %q", b, a), scope, b)
			}
		}
	}
}

// Paths lists the dotted paths of every member reachable in v through
// objects, in document order. Arrays are not descended into.
func Paths(v value.Value) []string {
	var out []string

	var walk func(prefix string, o *value.Object)
	walk = func(prefix string, o *value.Object) {
		o.Range(func(k string, item value.Value) bool {
			p := common.Prefixed(prefix, k)
			out = append(out, p)

			if child, ok := item.(*value.Object); ok {
				walk(p, child)
			}

			return true
		})
	}

	if o, ok := v.(*value.Object); ok {
		walk("", o)
	}

	return out
}

func isRuleField(k string) bool {
	for _, f := range ruleFields {
		if f == k {
			return true
		}
	}

	return false
}

// field returns rule[name], treating null as absent like Compile does.
func field(rule *value.Object, name string) value.Value {
	raw, _ := rule.Get(name)
	if value.IsNone(raw) {
		return nil
	}

	return raw
}
