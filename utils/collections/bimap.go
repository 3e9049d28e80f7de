package collections

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// BiMap is a one-to-one map between keys and values with lookup in both directions.
//
// Setting a pair silently evicts any pair that already holds its key and any pair that
// already holds its value, so a single Set may remove two pairs. Keys, values and pairs
// are iterated in the order they were last set, oldest first; both views share that order.
//
// A BiMap is safe for concurrent use. It must be created with New or one of the
// From constructors and must not be copied after first use.
type BiMap[K comparable, V comparable] struct {
	mu       sync.RWMutex
	rel      *relation[K, V]
	capacity int
	log      *log.Entry
}

func New[K comparable, V comparable](opts ...Option) *BiMap[K, V] {
	o := buildOptions(opts)
	return &BiMap[K, V]{
		rel:      newRelation[K, V](o.capacity),
		capacity: o.capacity,
		log:      o.logger,
	}
}

// FromPairs sets every pair in slice order; later pairs win over earlier conflicting ones.
func FromPairs[K comparable, V comparable](pairs []Pair[K, V], opts ...Option) *BiMap[K, V] {
	if len(pairs) > 0 {
		opts = append([]Option{WithCapacity(len(pairs))}, opts...)
	}
	m := New[K, V](opts...)
	for _, p := range pairs {
		m.set(p.Key, p.Value)
	}
	return m
}

// FromMap sets every entry of src. Map iteration order is random, so if src maps two keys
// to the same value which key survives is unspecified; use FromPairs when that matters.
func FromMap[K comparable, V comparable](src map[K]V, opts ...Option) *BiMap[K, V] {
	if len(src) > 0 {
		opts = append([]Option{WithCapacity(len(src))}, opts...)
	}
	m := New[K, V](opts...)
	for k, v := range src {
		m.set(k, v)
	}
	return m
}

// NewFrom builds a BiMap from an initializer whose type is only known at runtime.
// Accepted: nil, map[K]V, []Pair[K, V], *BiMap[K, V] and View[K, V].
func NewFrom[K comparable, V comparable](init interface{}, opts ...Option) (*BiMap[K, V], error) {
	switch src := init.(type) {
	case nil:
		return New[K, V](opts...), nil
	case map[K]V:
		return FromMap(src, opts...), nil
	case []Pair[K, V]:
		return FromPairs(src, opts...), nil
	case *BiMap[K, V]:
		if src == nil {
			return New[K, V](opts...), nil
		}
		return FromPairs(src.Pairs(), opts...), nil
	case View[K, V]:
		return FromPairs(src.Pairs(), opts...), nil
	default:
		return nil, &InvalidArgumentError{
			Reason: fmt.Sprintf("initializer of type %T is not a map, pair slice or view", init),
		}
	}
}

// Forward returns a read-only view from keys to values.
func (m *BiMap[K, V]) Forward() View[K, V] {
	return forwardView[K, V]{m: m}
}

// Backward returns a read-only view from values to keys.
func (m *BiMap[K, V]) Backward() View[V, K] {
	return backwardView[K, V]{m: m}
}

func (m *BiMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rel.size()
}

func (m *BiMap[K, V]) ContainsKey(k K) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rel.lookupKey(k)
	return ok
}

func (m *BiMap[K, V]) ContainsValue(v V) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rel.lookupValue(v)
	return ok
}

func (m *BiMap[K, V]) GetByKey(k K) (v V, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.rel.lookupKey(k)
	if !ok {
		return v, &NotFoundError{Side: KeySide, Item: k}
	}
	return e.value, nil
}

func (m *BiMap[K, V]) GetByValue(v V) (k K, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.rel.lookupValue(v)
	if !ok {
		return k, &NotFoundError{Side: ValueSide, Item: v}
	}
	return e.key, nil
}

// Set maps k to v and returns the pairs it evicted: the one previously holding k and the
// one previously holding v, when those differ from (k, v). Re-setting an existing pair
// evicts nothing but moves the pair to the end of the iteration order.
func (m *BiMap[K, V]) Set(k K, v V) []Pair[K, V] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set(k, v)
}

func (m *BiMap[K, V]) set(k K, v V) []Pair[K, V] {
	var evicted []Pair[K, V]
	if e, ok := m.rel.lookupKey(k); ok {
		m.rel.remove(e)
		if e.value != v {
			evicted = append(evicted, Pair[K, V]{Key: e.key, Value: e.value})
		}
	}
	if e, ok := m.rel.lookupValue(v); ok {
		m.rel.remove(e)
		evicted = append(evicted, Pair[K, V]{Key: e.key, Value: e.value})
	}
	m.rel.insert(k, v)
	if len(evicted) > 0 && m.log.Logger.IsLevelEnabled(log.DebugLevel) {
		for _, p := range evicted {
			m.log.WithFields(log.Fields{
				"key":     p.Key,
				"value":   p.Value,
				"new_key": k,
				"new_val": v,
			}).Debug("evicted conflicting pair")
		}
	}
	return evicted
}

func (m *BiMap[K, V]) DeleteByKey(k K) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rel.lookupKey(k)
	if !ok {
		return &NotFoundError{Side: KeySide, Item: k}
	}
	m.rel.remove(e)
	return nil
}

func (m *BiMap[K, V]) DeleteByValue(v V) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rel.lookupValue(v)
	if !ok {
		return &NotFoundError{Side: ValueSide, Item: v}
	}
	m.rel.remove(e)
	return nil
}

// PopByKey removes k and returns the value it held. If k is absent the single optional
// default is returned instead; without one the error is a *NotFoundError.
func (m *BiMap[K, V]) PopByKey(k K, def ...V) (v V, err error) {
	if len(def) > 1 {
		return v, &InvalidArgumentError{
			Reason: fmt.Sprintf("PopByKey takes at most 1 default, got %d", len(def)),
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rel.lookupKey(k)
	if !ok {
		if len(def) == 1 {
			return def[0], nil
		}
		return v, &NotFoundError{Side: KeySide, Item: k}
	}
	m.rel.remove(e)
	return e.value, nil
}

func (m *BiMap[K, V]) PopByValue(v V, def ...K) (k K, err error) {
	if len(def) > 1 {
		return k, &InvalidArgumentError{
			Reason: fmt.Sprintf("PopByValue takes at most 1 default, got %d", len(def)),
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rel.lookupValue(v)
	if !ok {
		if len(def) == 1 {
			return def[0], nil
		}
		return k, &NotFoundError{Side: ValueSide, Item: v}
	}
	m.rel.remove(e)
	return e.key, nil
}

// PopAny removes and returns the most recently set pair.
func (m *BiMap[K, V]) PopAny() (p Pair[K, V], err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.rel.last()
	if e == nil {
		return p, &NotFoundError{Side: KeySide}
	}
	m.rel.remove(e)
	return Pair[K, V]{Key: e.key, Value: e.value}, nil
}

func (m *BiMap[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.rel.size()
	m.rel.reset(m.capacity)
	m.log.WithField("pairs", n).Debug("cleared")
}

// SetDefault always fails: a default key cannot determine a safe counterpart value.
func (m *BiMap[K, V]) SetDefault(k K, v V) (V, error) {
	var zero V
	return zero, &UnsupportedOperationError{Op: "SetDefault"}
}

func (m *BiMap[K, V]) SetDefaultByValue(v V, k K) (K, error) {
	var zero K
	return zero, &UnsupportedOperationError{Op: "SetDefaultByValue"}
}

func (m *BiMap[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rel.keys()
}

func (m *BiMap[K, V]) Values() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rel.values()
}

func (m *BiMap[K, V]) Pairs() []Pair[K, V] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rel.pairs()
}

// Range calls fn on a snapshot of the pairs, so fn may mutate the map.
func (m *BiMap[K, V]) Range(fn func(k K, v V) bool) {
	for _, p := range m.Pairs() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

func (m *BiMap[K, V]) String() string {
	return fmt.Sprint(m.Pairs())
}
