package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAbsolute(t *testing.T) {
	assert.True(t, IsAbsolute("::a"))
	assert.True(t, IsAbsolute("::"))
	assert.False(t, IsAbsolute("a::b"))
	assert.False(t, IsAbsolute(":a"))
	assert.False(t, IsAbsolute(""))
}

func TestSegments(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"a", []string{"a"}},
		{"a::b", []string{"a", "b"}},
		{"::a::b", []string{"a", "b"}},
		{"::::a", []string{"a"}},
		{"::a::::b::", []string{"a", "b"}},
		{"a::::b::::c::", []string{"a", "b", "c"}},
		{"my ns:", []string{"my ns:"}},
		{"my ns:::", []string{"my ns", ":"}},
		{"", nil},
		{"::", nil},
		{"::::", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Segments(tt.path))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a::b", "a::b"},
		{"a::b::", "a::b"},
		{"::a::::b::", "::a::b"},
		{"::::my ns::::", "::my ns"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Normalize(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, p := range []string{"a", "::a::::b::", "x::y::z::", "::::q"} {
		once, err := Normalize(p)
		require.NoError(t, err)
		twice, err := Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, p)
		assert.Equal(t, Segments(p), Segments(once), p)
	}
}

func TestNormalize_Empty(t *testing.T) {
	for _, p := range []string{"", "::", "::::", "::::::"} {
		_, err := Normalize(p)
		assert.ErrorIs(t, err, ErrEmptyPath, p)
	}
}

func TestSplitLeaf(t *testing.T) {
	tests := []struct {
		path   string
		dir    string
		leaf   string
		hasDir bool
	}{
		{"e", "", "e", false},
		{"::e", "", "e", true},
		{"a::e", "a", "e", true},
		{"a::b::e", "a::b", "e", true},
		{"::a::b::e", "::a::b", "e", true},
		{"a::", "a", "", true},
		{"a::::e", "a::", "e", true},
		{":::e", ":", "e", true},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			dir, leaf, hasDir := SplitLeaf(tt.path)
			assert.Equal(t, tt.dir, dir)
			assert.Equal(t, tt.leaf, leaf)
			assert.Equal(t, tt.hasDir, hasDir)
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "::a::b", Join("a", "b"))
	assert.Equal(t, "::a", Join("a"))
	assert.Equal(t, "", Join())
	assert.Equal(t, "::a", Child("", "a"))
	assert.Equal(t, "::a::b", Child("::a", "b"))
}
