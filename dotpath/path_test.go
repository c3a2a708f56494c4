package dotpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
		wantErr  bool
	}{
		{"a", []string{"a"}, false},
		{"a.b", []string{"a", "b"}, false},
		{"items.0.id", []string{"items", "0", "id"}, false},
		{"", nil, true},
		{".", nil, true},
		{".a", nil, true},
		{"a.", nil, true},
		{"d...e", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Split(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestJoinAndLeaf(t *testing.T) {
	assert.Equal(t, "a.b.c", Join("a", "b", "c"))
	assert.Equal(t, "c", Leaf("a.b.c"))
	assert.Equal(t, "a", Leaf("a"))
	assert.True(t, IsDotted("a.b"))
	assert.False(t, IsDotted("a"))
}

func TestIndex(t *testing.T) {
	tests := []struct {
		seg string
		n   int
		idx int
		ok  bool
	}{
		{"0", 2, 0, true},
		{"1", 2, 1, true},
		{"2", 2, 0, false},
		{"-1", 2, 0, false},
		{"01", 2, 0, false},
		{"+1", 2, 0, false},
		{"x", 2, 0, false},
	}

	for _, tt := range tests {
		idx, ok := index(tt.seg, tt.n)
		assert.Equal(t, tt.ok, ok, tt.seg)
		assert.Equal(t, tt.idx, idx, tt.seg)
	}
}
