package collections

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortedKeys returns the keys of a view in ascending order.
func SortedKeys[K interface {
	comparable
	constraints.Ordered
}, V comparable](view View[K, V]) []K {
	arr := view.Keys()
	slices.Sort(arr)
	return arr
}

// SortedValues returns the values of a view in ascending order.
func SortedValues[K comparable, V interface {
	comparable
	constraints.Ordered
}](view View[K, V]) []V {
	arr := view.Values()
	slices.Sort(arr)
	return arr
}
