package collections

import "fmt"

type Pair[K any, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) Swap() Pair[V, K] {
	return Pair[V, K]{Key: p.Value, Value: p.Key}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v:%v", p.Key, p.Value)
}

type entry[K comparable, V comparable] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// relation stores each pair once, linked in set order and indexed from both ends.
// It is not safe for concurrent use; BiMap guards it.
type relation[K comparable, V comparable] struct {
	byKey   map[K]*entry[K, V]
	byValue map[V]*entry[K, V]
	head    *entry[K, V]
	tail    *entry[K, V]
}

func newRelation[K comparable, V comparable](capacity int) *relation[K, V] {
	return &relation[K, V]{
		byKey:   make(map[K]*entry[K, V], capacity),
		byValue: make(map[V]*entry[K, V], capacity),
	}
}

func (r *relation[K, V]) size() int {
	return len(r.byKey)
}

func (r *relation[K, V]) lookupKey(k K) (*entry[K, V], bool) {
	e, ok := r.byKey[k]
	return e, ok
}

func (r *relation[K, V]) lookupValue(v V) (*entry[K, V], bool) {
	e, ok := r.byValue[v]
	return e, ok
}

// insert assumes neither k nor v is present.
func (r *relation[K, V]) insert(k K, v V) {
	e := &entry[K, V]{key: k, value: v, prev: r.tail}
	if r.tail != nil {
		r.tail.next = e
	} else {
		r.head = e
	}
	r.tail = e
	r.byKey[k] = e
	r.byValue[v] = e
}

func (r *relation[K, V]) remove(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		r.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		r.tail = e.prev
	}
	e.prev, e.next = nil, nil
	delete(r.byKey, e.key)
	delete(r.byValue, e.value)
}

func (r *relation[K, V]) last() *entry[K, V] {
	return r.tail
}

func (r *relation[K, V]) reset(capacity int) {
	r.byKey = make(map[K]*entry[K, V], capacity)
	r.byValue = make(map[V]*entry[K, V], capacity)
	r.head, r.tail = nil, nil
}

func (r *relation[K, V]) pairs() []Pair[K, V] {
	arr := make([]Pair[K, V], 0, r.size())
	for e := r.head; e != nil; e = e.next {
		arr = append(arr, Pair[K, V]{Key: e.key, Value: e.value})
	}
	return arr
}

func (r *relation[K, V]) keys() []K {
	arr := make([]K, 0, r.size())
	for e := r.head; e != nil; e = e.next {
		arr = append(arr, e.key)
	}
	return arr
}

func (r *relation[K, V]) values() []V {
	arr := make([]V, 0, r.size())
	for e := r.head; e != nil; e = e.next {
		arr = append(arr, e.value)
	}
	return arr
}
