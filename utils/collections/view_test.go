package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewsShareOneRelation(t *testing.T) {
	m := New[string, int]()
	fwd := m.Forward()
	bwd := m.Backward()
	m.Set("a", 1)
	m.Set("b", 2)
	require.Equal(t, 2, fwd.Size())
	require.Equal(t, 2, bwd.Size())
	require.Equal(t, []string{"a", "b"}, fwd.Keys())
	require.Equal(t, []int{1, 2}, fwd.Values())
	require.Equal(t, []int{1, 2}, bwd.Keys())
	require.Equal(t, []string{"a", "b"}, bwd.Values())
	require.Equal(t, []Pair[int, string]{{Key: 1, Value: "a"}, {Key: 2, Value: "b"}}, bwd.Pairs())

	k, err := bwd.Get(2)
	require.Nil(t, err)
	require.Equal(t, "b", k)

	require.Nil(t, m.DeleteByValue(1))
	require.Equal(t, false, fwd.Contains("a"))
	require.Equal(t, false, bwd.Contains(1))
	_, err = bwd.Get(1)
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, ValueSide, nf.Side)
}

func TestViewRange(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}})
	keys := make([]string, 0)
	m.Forward().Range(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []string{"a", "b", "c"}, keys)

	values := make([]int, 0)
	m.Backward().Range(func(v int, k string) bool {
		values = append(values, v)
		return len(values) < 2
	})
	require.Equal(t, []int{1, 2}, values)
}

func TestSortedHelpers(t *testing.T) {
	m := FromPairs([]Pair[string, int]{{Key: "c", Value: 1}, {Key: "a", Value: 3}, {Key: "b", Value: 2}})
	require.Equal(t, []string{"a", "b", "c"}, SortedKeys(m.Forward()))
	require.Equal(t, []int{1, 2, 3}, SortedValues(m.Forward()))
	require.Equal(t, []int{1, 2, 3}, SortedKeys(m.Backward()))
	require.Equal(t, []string{"c", "a", "b"}, m.Keys())
}

func TestSideString(t *testing.T) {
	require.Equal(t, "key", KeySide.String())
	require.Equal(t, "value", ValueSide.String())
	require.Equal(t, "side(5)", Side(5).String())
}
