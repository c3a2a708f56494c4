package dotpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-mapper/dotpath"
	"json-mapper/value"
)

func TestSet(t *testing.T) {
	tree := testTree(t)

	got, err := dotpath.Set(tree, "a", value.Number(2), dotpath.Fail)
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), got)

	_, err = dotpath.Set(tree, "b.c.e", value.String("new"), dotpath.Fail)
	require.NoError(t, err)

	_, err = dotpath.Set(tree, "items.0.id", value.String("changed"), dotpath.Fail)
	require.NoError(t, err)

	_, err = dotpath.Set(tree, "items.1", value.Null{}, dotpath.Fail)
	require.NoError(t, err)

	v, _ := dotpath.Get(tree, "a")
	assert.Equal(t, value.Number(2), v)
	v, _ = dotpath.Get(tree, "b.c.e")
	assert.Equal(t, value.String("new"), v)
	v, _ = dotpath.Get(tree, "items.0.id")
	assert.Equal(t, value.String("changed"), v)
	v, _ = dotpath.Get(tree, "items.1")
	assert.Equal(t, value.Null{}, v)
}

func TestSet_MissingParent(t *testing.T) {
	tree := testTree(t)

	tests := []struct {
		name string
		path string
	}{
		{"undefined parent", "missing.x"},
		{"null parent", "b.n.x"},
		{"false parent", "b.f.x"},
		{"zero parent", "b.z.x"},
		{"deep missing parent", "b.missing.deeper.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dotpath.Set(tree, tt.path, value.Number(1), dotpath.Fail)
			require.ErrorIs(t, err, dotpath.ErrTargetNotFound)

			got, err := dotpath.Set(tree, tt.path, value.Number(1), dotpath.Skip)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestSet_Errors(t *testing.T) {
	tree := testTree(t)

	tests := []struct {
		name   string
		target value.Value
		path   string
		want   error
	}{
		{"empty path", tree, "", dotpath.ErrInvalidArgument},
		{"empty leaf", tree, "b.", dotpath.ErrMalformedPath},
		{"empty parent segment", tree, "b..c", dotpath.ErrInvalidArgument},
		{"undefined container", nil, "a", dotpath.ErrInvalidArgument},
		{"null container", value.Null{}, "a", dotpath.ErrInvalidArgument},
		{"index out of range", tree, "items.5", dotpath.ErrInvalidArgument},
		{"undefined root with dotted path", nil, "a.b", dotpath.ErrTargetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dotpath.Set(tt.target, tt.path, value.Number(1), dotpath.Fail)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOnMissing_String(t *testing.T) {
	assert.Equal(t, "fail", dotpath.Fail.String())
	assert.Equal(t, "skip", dotpath.Skip.String())
	assert.Equal(t, "OnMissing(7)", dotpath.OnMissing(7).String())
}

func TestSet_TruthyScalarIsUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		target value.Value
		path   string
	}{
		{"number container", value.Number(1), "a"},
		{"string container", value.String("text"), "a"},
		{"number parent", nil, "a.x"},
		{"string parent", nil, "s.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := testTree(t)
			before := value.ToGo(tree)

			target := tt.target
			if target == nil {
				target = tree
			}

			got, err := dotpath.Set(target, tt.path, value.Number(2), dotpath.Fail)
			require.NoError(t, err)
			assert.Equal(t, value.Number(2), got)
			assert.Equal(t, before, value.ToGo(tree))
		})
	}
}
