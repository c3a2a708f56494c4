package dotpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-mapper/dotpath"
	"json-mapper/value"
)

func testTree(t *testing.T) value.Value {
	t.Helper()

	v, err := value.ParseJSON([]byte(`{
		"a": 1,
		"b": {"c": {"d": "deep"}, "n": null, "f": false, "z": 0},
		"items": [{"id": "first"}, {"id": "second"}],
		"s": "text"
	}`))
	require.NoError(t, err)

	return v
}

func TestGet(t *testing.T) {
	tree := testTree(t)

	tests := []struct {
		path     string
		expected value.Value
	}{
		{"a", value.Number(1)},
		{"missing", nil},
		{"b.c.d", value.String("deep")},
		{"b.n", value.Null{}},
		{"b.f", value.Bool(false)},
		{"b.z", value.Number(0)},
		{"b.n.x", nil},
		{"b.missing.x", nil},
		{"a.x", nil},
		{"s.length", nil},
		{"items.1.id", value.String("second")},
		{"items.2.id", nil},
		{"items.x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := dotpath.Get(tree, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGet_Errors(t *testing.T) {
	tree := testTree(t)

	_, err := dotpath.Get(tree, "")
	require.ErrorIs(t, err, dotpath.ErrInvalidArgument)

	_, err = dotpath.Get(nil, "a")
	require.ErrorIs(t, err, dotpath.ErrInvalidArgument)

	_, err = dotpath.Get(value.Null{}, "a")
	require.ErrorIs(t, err, dotpath.ErrInvalidArgument)

	_, err = dotpath.Get(tree, "b..c")
	require.ErrorIs(t, err, dotpath.ErrInvalidArgument)

	// malformed paths fail even when the walk would stop early
	_, err = dotpath.Get(tree, "missing...x")
	require.ErrorIs(t, err, dotpath.ErrInvalidArgument)
}

func TestGet_ScalarContainer(t *testing.T) {
	got, err := dotpath.Get(value.Number(3), "a")
	require.NoError(t, err)
	assert.Nil(t, got)
}
