package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTOML(t *testing.T) {
	o, err := ParseTOML([]byte(`
zeta = "z"
alpha = 1

[table]
second = true
first = 2.5

[[list]]
name = "a"

[[list]]
name = "b"
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "table", "list"}, o.Keys())

	table, _ := o.Get("table")
	assert.Equal(t, ObjectOf(
		Member{Key: "second", Value: Bool(true)},
		Member{Key: "first", Value: Number(2.5)},
	), table)

	list, _ := o.Get("list")
	assert.Equal(t, Array{
		ObjectOf(Member{Key: "name", Value: String("a")}),
		ObjectOf(Member{Key: "name", Value: String("b")}),
	}, list)
}

func TestParseTOML_Error(t *testing.T) {
	_, err := ParseTOML([]byte(`a = `))
	require.Error(t, err)
}
