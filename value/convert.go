package value

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"
)

// ErrUnsupported is returned when a Go value has no Value representation.
var ErrUnsupported = errors.New("unsupported value")

// floater is implemented by json.Number of both encoding/json and go-json.
type floater interface {
	Float64() (float64, error)
}

// FromGo converts a plain Go value into a Value. Maps become objects with
// their keys sorted, since Go maps carry no order.
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Number(x), nil
	case int8:
		return Number(x), nil
	case int16:
		return Number(x), nil
	case int32:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint:
		return Number(x), nil
	case uint8:
		return Number(x), nil
	case uint16:
		return Number(x), nil
	case uint32:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case float64:
		return Number(x), nil
	case string:
		return String(x), nil
	case time.Time:
		return NewDate(x), nil
	case *regexp.Regexp:
		return Regexp{Regexp: x}, nil
	case func(Value) (Value, error):
		return Func(x), nil
	case floater:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %v: %w", x, err)
		}

		return Number(f), nil
	case error:
		return Error{Err: x}, nil
	case []Value:
		return Array(x), nil
	case []any:
		return arrayFromGo(x)
	case []map[string]any:
		items := make([]any, len(x))
		for i := range x {
			items[i] = x[i]
		}

		return arrayFromGo(items)
	case map[string]Value:
		o := NewObject()
		for _, k := range sortedKeys(x) {
			o.Set(k, x[k])
		}

		return o, nil
	case map[string]any:
		o := NewObject()

		for _, k := range sortedKeys(x) {
			item, err := FromGo(x[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}

			o.Set(k, item)
		}

		return o, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// MustFromGo is like FromGo but panics on error. It is meant for literals.
func MustFromGo(v any) Value {
	out, err := FromGo(v)
	if err != nil {
		panic(err)
	}

	return out
}

// ToGo converts v into plain Go values: objects become map[string]any,
// arrays []any, numbers float64. Undefined and Null both become nil.
func ToGo(v Value) any {
	switch x := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(x)
	case Number:
		return float64(x)
	case String:
		return string(x)
	case Array:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = ToGo(item)
		}

		return out
	case *Object:
		if x == nil {
			return nil
		}

		out := make(map[string]any, x.Len())
		x.Range(func(k string, item Value) bool {
			out[k] = ToGo(item)
			return true
		})

		return out
	case Date:
		return x.Time
	case Regexp:
		return x.Regexp
	case Error:
		return x.Err
	case Func:
		return (func(Value) (Value, error))(x)
	default:
		return nil
	}
}

func arrayFromGo(items []any) (Array, error) {
	out := make(Array, len(items))

	for i, item := range items {
		v, err := FromGo(item)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}

		out[i] = v
	}

	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
