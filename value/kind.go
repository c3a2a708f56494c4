package value

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the runtime type tag of a Value.
type Kind int

const (
	KindUndefined Kind = iota // undefined
	KindNull                  // null
	KindBool                  // boolean
	KindNumber                // number
	KindString                // string
	KindFunction              // function
	KindArray                 // array
	KindDate                  // date
	KindRegexp                // regexp
	KindError                 // error
	KindObject                // object

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// TypeOf classifies v. A nil Value (or a nil *Object) is KindUndefined.
func TypeOf(v Value) Kind {
	switch x := v.(type) {
	case nil:
		return KindUndefined
	case Null:
		return KindNull
	case Bool:
		return KindBool
	case Number:
		return KindNumber
	case String:
		return KindString
	case Func:
		if x == nil {
			return KindUndefined
		}

		return KindFunction
	case Array:
		return KindArray
	case Date:
		return KindDate
	case Regexp:
		return KindRegexp
	case Error:
		return KindError
	case *Object:
		if x == nil {
			return KindUndefined
		}

		return KindObject
	default:
		return KindObject
	}
}

// IsContainer reports whether values of this kind have addressable members.
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray
}
