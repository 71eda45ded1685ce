package xim

import "sort"

// Slab is an append-mostly container handing out dense, stable,
// 1-based 16-bit ids (§4.2). Id 0 is reserved to mean "absent" and is
// never issued. The teacher has no equivalent of its own (OpenFlow has
// no per-connection small-object table); this is built directly from
// spec.md's stated invariants since the Rust original's im_vec.rs was
// filtered out of the retrieval pack.
type Slab[T any] struct {
	items []*T     // items[i] backs id i+1; nil marks a free, reusable slot.
	free  []uint16 // kept sorted ascending so NewItem always pops the smallest.
}

// NewSlab creates an empty slab.
func NewSlab[T any]() *Slab[T] {
	return &Slab[T]{}
}

// NewItem inserts v, returning the smallest free id >= 1 and a pointer
// to the stored value. The returned pointer lives in the slab until
// RemoveItem is called for its id.
func (s *Slab[T]) NewItem(v T) (uint16, *T) {
	p := new(T)
	*p = v

	if len(s.free) > 0 {
		id := s.free[0]
		s.free = s.free[1:]
		s.items[id-1] = p
		return id, p
	}

	s.items = append(s.items, p)
	id := uint16(len(s.items))
	return id, p
}

// GetItem returns a pointer to the live item for id, or nil if id is 0,
// out of range, or has been removed.
func (s *Slab[T]) GetItem(id uint16) *T {
	if id == 0 || int(id) > len(s.items) {
		return nil
	}
	return s.items[id-1]
}

// RemoveItem removes and returns the item for id, freeing the slot for
// reuse. Returns the zero value of T and false if id was not live.
func (s *Slab[T]) RemoveItem(id uint16) (T, bool) {
	var zero T
	if id == 0 || int(id) > len(s.items) || s.items[id-1] == nil {
		return zero, false
	}

	v := *s.items[id-1]
	s.items[id-1] = nil

	i := sort.Search(len(s.free), func(i int) bool { return s.free[i] >= id })
	s.free = append(s.free, 0)
	copy(s.free[i+1:], s.free[i:])
	s.free[i] = id

	return v, true
}

// Len reports the number of currently live items.
func (s *Slab[T]) Len() int {
	return len(s.items) - len(s.free)
}

// Drain removes and returns every remaining live item, leaving the
// slab empty. Iteration order is unspecified (§4.2).
func (s *Slab[T]) Drain() []DrainedItem[T] {
	out := make([]DrainedItem[T], 0, s.Len())
	for i, p := range s.items {
		if p != nil {
			out = append(out, DrainedItem[T]{ID: uint16(i + 1), Value: *p})
		}
	}
	s.items = nil
	s.free = nil
	return out
}

// DrainedItem pairs an id with the value that was stored under it,
// returned by Drain.
type DrainedItem[T any] struct {
	ID    uint16
	Value T
}
