package collections

// View is a read-only window over one direction of a BiMap.
// Mutations only go through the BiMap that handed out the view.
type View[K comparable, V comparable] interface {
	Contains(k K) bool
	Get(k K) (V, error)
	Size() int
	Keys() []K
	Values() []V
	Pairs() []Pair[K, V]
	// Range calls fn for each pair of a snapshot, in iteration order, until fn returns false.
	Range(fn func(k K, v V) bool)
}

type forwardView[K comparable, V comparable] struct {
	m *BiMap[K, V]
}

type backwardView[K comparable, V comparable] struct {
	m *BiMap[K, V]
}

func (f forwardView[K, V]) Contains(k K) bool {
	return f.m.ContainsKey(k)
}

func (f forwardView[K, V]) Get(k K) (V, error) {
	return f.m.GetByKey(k)
}

func (f forwardView[K, V]) Size() int {
	return f.m.Len()
}

func (f forwardView[K, V]) Keys() []K {
	return f.m.Keys()
}

func (f forwardView[K, V]) Values() []V {
	return f.m.Values()
}

func (f forwardView[K, V]) Pairs() []Pair[K, V] {
	return f.m.Pairs()
}

func (f forwardView[K, V]) Range(fn func(k K, v V) bool) {
	f.m.Range(fn)
}

func (b backwardView[K, V]) Contains(v V) bool {
	return b.m.ContainsValue(v)
}

func (b backwardView[K, V]) Get(v V) (K, error) {
	return b.m.GetByValue(v)
}

func (b backwardView[K, V]) Size() int {
	return b.m.Len()
}

func (b backwardView[K, V]) Keys() []V {
	return b.m.Values()
}

func (b backwardView[K, V]) Values() []K {
	return b.m.Keys()
}

func (b backwardView[K, V]) Pairs() []Pair[V, K] {
	pairs := b.m.Pairs()
	arr := make([]Pair[V, K], 0, len(pairs))
	for _, p := range pairs {
		arr = append(arr, p.Swap())
	}
	return arr
}

func (b backwardView[K, V]) Range(fn func(v V, k K) bool) {
	for _, p := range b.m.Pairs() {
		if !fn(p.Value, p.Key) {
			return
		}
	}
}
