package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-mapper/value"
)

func TestResolveRule(t *testing.T) {
	source := value.ObjectOf(
		value.Member{Key: "a", Value: value.Number(1)},
		value.Member{Key: "empty", Value: value.String("")},
		value.Member{Key: "nested", Value: value.ObjectOf(
			value.Member{Key: "null", Value: value.Null{}},
		)},
	)

	custom := func(src value.Value) (value.Value, error) {
		return value.String("custom"), nil
	}

	tests := []struct {
		name     string
		rule     Rule
		expected value.Value
	}{
		{"key only", Rule{Key: "a"}, value.Number(1)},
		{"key only missing", Rule{Key: "missing"}, nil},
		{"default only", Rule{Default: value.Bool(true)}, value.Bool(true)},
		{"key and default missing", Rule{Key: "missing", Default: value.Number(5)}, value.Number(5)},
		{"empty string is present", Rule{Key: "empty", Default: value.Number(5)}, value.String("")},
		{"null is present", Rule{Key: "nested.null", Default: value.Number(5)}, value.Null{}},
		{"custom wins", Rule{Key: "a", Default: value.Number(5), Custom: custom}, value.String("custom")},
		{"null default is absent", Rule{Key: "missing", Default: value.Null{}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveRule(source, tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveRule_Invalid(t *testing.T) {
	_, err := resolveRule(value.NewObject(), Rule{})
	require.ErrorIs(t, err, ErrInvalidFieldRule)

	_, err = resolveRule(value.NewObject(), Rule{Default: value.Null{}})
	require.ErrorIs(t, err, ErrInvalidFieldRule)

	_, err = resolve(value.NewObject(), nil)
	require.ErrorIs(t, err, ErrInvalidFieldRule)
}

func TestResolve_PointerRule(t *testing.T) {
	source := value.ObjectOf(value.Member{Key: "a", Value: value.Number(1)})

	got, err := resolve(source, &Rule{Key: "a"})
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), got)

	sub := NewSpec()
	assert.Same(t, sub, subSpec(&Rule{Key: "a", Map: sub}))
	assert.Nil(t, subSpec(Path("a")))
}

func TestNewSpec_DuplicateOutputs(t *testing.T) {
	spec := NewSpec(
		Field("a", Path("x")),
		Field("b", Path("y")),
		Field("a", Path("z")),
	)

	entries := spec.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Output: "a", Rule: Path("z")}, entries[0])
	assert.Equal(t, Entry{Output: "b", Rule: Path("y")}, entries[1])
}
