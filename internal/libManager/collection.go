package libmanager

import (
	"maps"
	"slices"
)

// collection is one entity kind keyed by id, together with its id counter.
type collection[T any] struct {
	items map[int]T
	next  int
}

// newCollection takes ownership of seed. The counter continues after the
// highest seeded id.
func newCollection[T any](seed map[int]T) *collection[T] {
	if seed == nil {
		seed = make(map[int]T)
	}
	next := 1
	for id := range seed {
		if id >= next {
			next = id + 1
		}
	}
	return &collection[T]{items: seed, next: next}
}

func (c *collection[T]) allocate() int {
	id := c.next
	c.next++
	return id
}

func (c *collection[T]) get(id int) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) put(id int, v T) {
	c.items[id] = v
}

func (c *collection[T]) remove(id int) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// list returns the entities accepted by keep in ascending id order. A nil
// keep accepts everything.
func (c *collection[T]) list(keep func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, id := range slices.Sorted(maps.Keys(c.items)) {
		v := c.items[id]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}
