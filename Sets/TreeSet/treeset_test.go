package TreeSet

import (
	"cmp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeSet_All(t *testing.T) {
	S := New[int]()
	for i := 0; i < 10; i++ {
		require.True(t, S.Put(i), "wrong put 1")
		require.False(t, S.Put(i), "wrong put 2")
	}
	for i := 0; i < 10; i++ {
		require.True(t, S.Has(i), "wrong has 1")
	}
	for i := 0; i < 5; i++ {
		require.True(t, S.Remove(i), "wrong remove 1")
		require.False(t, S.Remove(i), "wrong remove 2")
	}
	for i := 0; i < 5; i++ {
		require.False(t, S.Has(i), "wrong has 2")
	}
	require.Equal(t, uint(5), S.Size())
	require.Equal(t, 5, S.Take())
	require.Equal(t, []int{5, 6, 7, 8, 9}, slices.Collect(S.All()))
}

func TestTreeSet_Order(t *testing.T) {
	S := Of(40, 10, 30, 20)
	var got []int
	S.Range(func(e int) bool {
		got = append(got, e)
		return e < 20
	})
	require.Equal(t, []int{10, 20}, got)

	lo, ok := S.Min()
	require.True(t, ok)
	require.Equal(t, 10, lo)
	hi, _ := S.Max()
	require.Equal(t, 40, hi)

	b, ok := S.Below(25)
	require.True(t, ok)
	require.Equal(t, 20, b)
	_, ok = S.Below(10)
	require.False(t, ok)
	a, ok := S.Above(30)
	require.True(t, ok)
	require.Equal(t, 40, a)
	_, ok = S.Above(40)
	require.False(t, ok)

	require.Zero(t, New[int]().Take())
}

func TestTreeSet_Func(t *testing.T) {
	S := NewFunc(func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	require.True(t, S.Put("Go"))
	require.False(t, S.Put("GO"))
	require.True(t, S.Has("go"))
	require.Equal(t, "Go", S.Take(), "the first spelling should be kept")
}

func TestTreeSet_Bulk(t *testing.T) {
	a, b := Of(1, 2, 3, 4, 5), Of(4, 5, 6, 7)
	require.Equal(t, uint(2), a.PutAll(b))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(a.All()))
	require.True(t, a.Eq(Of(7, 6, 5, 4, 3, 2, 1)))
	require.False(t, a.Eq(b))

	a.Intersect(Of(2, 4, 6, 8))
	require.Equal(t, []int{2, 4, 6}, slices.Collect(a.All()))
	require.Equal(t, uint(2), a.RemoveAll(b))
	require.Equal(t, []int{2}, slices.Collect(a.All()))
}
