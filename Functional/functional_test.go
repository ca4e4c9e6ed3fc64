package Functional

import (
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/require"
)

func TestOrders(t *testing.T) {
	require.True(t, Less(1, 2))
	require.False(t, Less(2, 2))
	require.True(t, Greater("b", "a"))
	require.False(t, Greater("a", "a"))

	m := Modular(10)
	require.True(t, m(21, 13))
	require.False(t, m(13, 23))
	require.False(t, m(23, 13))
}

func TestFromComparator(t *testing.T) {
	less := FromComparator[string](utils.StringComparator)
	require.True(t, less("a", "b"))
	require.False(t, less("b", "a"))
	require.False(t, less("a", "a"))
}

func TestKeyOrder(t *testing.T) {
	o := ByFirst[string, int](Less[string])
	p, q := MakePair("x", 2), MakePair("y", 1)
	require.Equal(t, "x", o.KeyOf(p))
	require.True(t, o.Less(o.KeyOf(p), o.KeyOf(q)))

	n := Natural[int]()
	require.Equal(t, 5, n.KeyOf(5))
	require.True(t, n.Less(4, 5))

	require.Panics(t, func() { By[int, int](nil, Less[int]) })
}
