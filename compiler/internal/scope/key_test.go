package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushDoesNotMutate(t *testing.T) {
	base := Of(0, 1)
	child := base.Push(2)

	assert.Equal(t, []int{0, 1}, base.Indices())
	assert.Equal(t, []int{0, 1, 2}, child.Indices())
	assert.Equal(t, 2, base.Size())
	assert.Equal(t, 3, child.Size())
}

func TestPopAndParent(t *testing.T) {
	k := Of(3, 300, 7)
	assert.Equal(t, Of(3, 300), k.Pop())
	assert.Equal(t, Of(3), k.Pop().Pop())
	assert.Equal(t, Global(), k.Pop().Pop().Pop())

	_, ok := Global().Parent()
	assert.False(t, ok)
	p, ok := Of(1).Parent()
	assert.True(t, ok)
	assert.True(t, p.IsGlobal())
}

func TestPopGlobalPanics(t *testing.T) {
	assert.PanicsWithValue(t, "scope: pop of global key", func() { Global().Pop() })
}

func TestNegativeIndexPanics(t *testing.T) {
	assert.Panics(t, func() { Global().Push(-1) })
}

func TestStructuralEquality(t *testing.T) {
	a := Global().Push(0).Push(1)
	b := Of(0, 1)
	assert.True(t, a == b)

	m := map[Key]string{a: "x"}
	assert.Equal(t, "x", m[b])
	assert.NotEqual(t, Of(0, 1), Of(1, 0))
}

func TestLargeIndicesRoundTrip(t *testing.T) {
	k := Of(0, 127, 128, 255, 256, 1<<20)
	assert.Equal(t, []int{0, 127, 128, 255, 256, 1 << 20}, k.Indices())
	assert.Equal(t, 6, k.Size())
	assert.Equal(t, Of(0, 127, 128, 255, 256), k.Pop())
}

func TestIsAncestorOf(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want bool
	}{
		{"global sees everything", Global(), Of(4, 2), true},
		{"self", Of(0, 1), Of(0, 1), true},
		{"parent", Of(0), Of(0, 1, 0), true},
		{"sibling", Of(0, 1), Of(0, 2), false},
		{"child is not ancestor", Of(0, 1, 0), Of(0, 1), false},
		{"different function", Of(0), Of(1, 0), false},
		{"multi-byte index not confused", Of(1), Of(129), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.IsAncestorOf(tt.b))
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Global().Compare(Of(0)))
	assert.Equal(t, -1, Of(0).Compare(Of(0, 0)))
	assert.Equal(t, -1, Of(0, 9).Compare(Of(1)))
	assert.Equal(t, 1, Of(2).Compare(Of(1, 5)))
	assert.Equal(t, 0, Of(1, 5).Compare(Of(1, 5)))
}

func TestStringAndParse(t *testing.T) {
	assert.Equal(t, "global", Global().String())
	assert.Equal(t, "0.1.0", Of(0, 1, 0).String())

	for _, in := range []string{"0.1.0", "[0 1 0]", "0,1,0", " 0.1.0 "} {
		k, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, Of(0, 1, 0), k, in)
	}
	for _, in := range []string{"", "global", "[]"} {
		k, err := Parse(in)
		require.NoError(t, err)
		assert.True(t, k.IsGlobal())
	}

	_, err := Parse("0.x")
	assert.Error(t, err)
	_, err = Parse("0.-1")
	assert.Error(t, err)
}
