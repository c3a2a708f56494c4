package value

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_KeepsOrder(t *testing.T) {
	v, err := ParseJSON([]byte(`{"z": 1, "a": {"y": [1, "two", null, false], "b": 2.5}, "m": {}}`))
	require.NoError(t, err)

	o, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, o.Keys())

	inner, _ := o.Get("a")
	assert.Equal(t, []string{"y", "b"}, inner.(*Object).Keys())

	list, _ := inner.(*Object).Get("y")
	assert.Equal(t, Array{Number(1), String("two"), Null{}, Bool(false)}, list)
}

func TestParseJSON_Scalars(t *testing.T) {
	tests := map[string]Value{
		`"s"`:   String("s"),
		`12`:    Number(12),
		`-0.5`:  Number(-0.5),
		`true`:  Bool(true),
		`null`:  Null{},
		`[]`:    Array{},
		` [1] `: Array{Number(1)},
	}

	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := ParseJSON([]byte(in))
			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestParseJSON_Errors(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a": }`, `{} {}`, `1 2`} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseJSON([]byte(in))
			require.Error(t, err)
		})
	}
}

func TestReadJSON(t *testing.T) {
	v, err := ReadJSON(strings.NewReader(`{"a": {"b": 1}}`))
	require.NoError(t, err)
	assert.True(t, IsPlainObject(v))
}

func TestMarshalJSON(t *testing.T) {
	o := ObjectOf(
		Member{Key: "z", Value: Number(1)},
		Member{Key: "skip", Value: nil},
		Member{Key: "a", Value: Array{String("x"), nil, Null{}}},
		Member{Key: "err", Value: Error{Err: errors.New("boom")}},
		Member{Key: "re", Value: Regexp{regexp.MustCompile(`a+`)}},
		Member{Key: "fn", Value: Func(func(Value) (Value, error) { return nil, nil })},
		Member{Key: "nested", Value: ObjectOf(Member{Key: "k", Value: Bool(true)})},
	)

	data, err := json.Marshal(o)
	require.NoError(t, err)

	assert.Equal(t,
		`{"z":1,"a":["x",null,null],"err":"boom","re":"a+","fn":null,"nested":{"k":true}}`,
		string(data),
	)
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	in := `{"b":[{"c":1},{"c":2}],"a":"x"}`

	v, err := ParseJSON([]byte(in))
	require.NoError(t, err)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(data))
	assert.Equal(t, in, string(data))
}
