package mapper

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"json-mapper/dotpath"
	"json-mapper/value"
)

// Config holds configuration for a Mapper.
type Config struct {
	// MaxDepth limits how many levels of array sub-specs may be entered
	// (0 = unlimited).
	MaxDepth int
	// Logger receives debug output about skipped fields and array recursion.
	// Nil discards it.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the default mapper configuration: no depth limit,
// no logging.
func DefaultConfig() Config {
	return Config{
		MaxDepth: 0,
		Logger:   nil,
	}
}

// Mapper applies specs to sources. It holds no state besides its
// configuration and is safe for concurrent use.
type Mapper struct {
	config Config
	log    logrus.FieldLogger
}

var discardLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// New creates a new Mapper.
func New(config Config) *Mapper {
	log := config.Logger
	if log == nil {
		log = discardLogger
	}

	return &Mapper{config: config, log: log}
}

// Map applies spec to source with the default configuration.
func Map(source value.Value, spec *Spec) (*value.Object, error) {
	return New(DefaultConfig()).Map(source, spec)
}

// MapValue compiles a plain-object spec with reg and applies it to source
// with the default configuration.
func MapValue(source, spec value.Value, reg *Registry) (*value.Object, error) {
	return New(DefaultConfig()).MapValue(source, spec, reg)
}

// Map builds a new object from source according to spec.
//
// Both arguments must be plain objects. Fields whose value resolves to
// undefined are left out. Array values are copied; when the field's rule
// carries a sub-spec each element is mapped with it, recursively. The first
// error aborts the whole mapping; errors returned by custom functions are
// passed through unchanged.
func (m *Mapper) Map(source value.Value, spec *Spec) (*value.Object, error) {
	return m.mapObject(source, spec, 0)
}

// MapValue compiles spec with reg and applies it to source. The whole
// top-level spec is compiled first, so a malformed rule is reported before
// any custom function runs.
func (m *Mapper) MapValue(source, spec value.Value, reg *Registry) (*value.Object, error) {
	if !value.IsPlainObject(source) {
		return nil, fmt.Errorf("%w: source should be an object, got %s", ErrInvalidArgument, value.TypeOf(source))
	}

	compiled, err := Compile(spec, reg)
	if err != nil {
		return nil, err
	}

	return m.Map(source, compiled)
}

func (m *Mapper) mapObject(source value.Value, spec *Spec, depth int) (*value.Object, error) {
	if m.config.MaxDepth > 0 && depth > m.config.MaxDepth {
		return nil, fmt.Errorf("%w: depth %d, limit %d", ErrMaxDepthExceeded, depth, m.config.MaxDepth)
	}

	if !value.IsPlainObject(source) {
		return nil, fmt.Errorf("%w: source should be an object, got %s", ErrInvalidArgument, value.TypeOf(source))
	}

	if spec == nil {
		return nil, fmt.Errorf("%w: map should be an object, got undefined", ErrInvalidArgument)
	}

	if spec.err != nil {
		return nil, spec.err
	}

	mapped := value.NewObject()

	for _, e := range spec.entries {
		v, err := resolve(source, e.Rule)
		if err != nil {
			return nil, err
		}

		if v == nil {
			m.log.WithField("output", e.Output).Debug("value is undefined, field skipped")
			continue
		}

		if arr, ok := v.(value.Array); ok {
			v, err = m.mapArray(e.Output, arr, subSpec(e.Rule), depth)
			if err != nil {
				return nil, err
			}
		}

		err = dotpath.SetPath(mapped, e.Output, v)
		if err != nil {
			return nil, err
		}
	}

	return mapped, nil
}

func (m *Mapper) mapArray(output string, arr value.Array, sub *Spec, depth int) (value.Array, error) {
	out := make(value.Array, len(arr))

	if sub == nil {
		copy(out, arr)
		return out, nil
	}

	m.log.WithFields(logrus.Fields{
		"output":   output,
		"elements": len(arr),
		"depth":    depth + 1,
	}).Debug("mapping array elements")

	for i, item := range arr {
		mapped, err := m.mapObject(item, sub, depth+1)
		if err != nil {
			return nil, err
		}

		out[i] = mapped
	}

	return out, nil
}
