package value

import (
	"math"
	"regexp"
	"time"
)

// Value is a node of a structured data tree. The set of implementations is
// closed; see the package documentation for the variants.
type Value interface {
	isValue() // sealed marker, only types in this package implement Value
}

// Null is the explicit null value.
type Null struct{}

// Bool is a boolean value.
type Bool bool

// Number is a numeric value. All numbers are float64, as in JSON.
type Number float64

// String is a string value.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Date is a point in time.
type Date struct {
	time.Time
}

// Regexp is a compiled regular expression carried as data.
type Regexp struct {
	*regexp.Regexp
}

// Error is an error carried as data.
type Error struct {
	Err error
}

// Func is a function stored in data. Mapping rules use it as a custom
// value extractor.
type Func func(Value) (Value, error)

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Number) isValue()  {}
func (String) isValue()  {}
func (Array) isValue()   {}
func (Date) isValue()    {}
func (Regexp) isValue()  {}
func (Error) isValue()   {}
func (Func) isValue()    {}
func (*Object) isValue() {}

// NewDate wraps t as a Date.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// IsNone reports whether v is undefined or Null.
func IsNone(v Value) bool {
	k := TypeOf(v)

	return k == KindUndefined || k == KindNull
}

// IsPlainObject reports whether v is a non-nil *Object.
func IsPlainObject(v Value) bool {
	return TypeOf(v) == KindObject
}

// Truthy reports whether v is truthy. Undefined, Null, false, 0, NaN and the
// empty string are falsy; everything else, including empty objects and
// arrays, is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case nil, Null:
		return false
	case Bool:
		return bool(x)
	case Number:
		return x != 0 && !math.IsNaN(float64(x))
	case String:
		return x != ""
	default:
		return TypeOf(v) != KindUndefined
	}
}
