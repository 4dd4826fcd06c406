package typedslab

import (
	"fmt"
	"iter"

	"github.com/hupe1980/typedslab/slab"
)

// Key is the constraint for typed slab keys: any integer type, including
// named types such as `type NodeID uint32`. Distinct named types give each
// slab its own key space, so the compiler rejects a key from one slab being
// used on another.
//
// Keys convert to and from the slab's dense int index by plain conversion.
// Pick a key type wide enough for the number of live values you expect; a
// key type narrower than the slab's occupancy wraps on conversion and two
// slots become indistinguishable.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// TypedSlab wraps a slab with keys of a dedicated integer type K instead of
// bare ints. It forwards every operation to the underlying slab, converting
// keys at the boundary, and adds nothing else: performance and semantics are
// those of [slab.Slab], including the absence of thread-safety.
//
// The zero value is an empty slab ready for use.
type TypedSlab[K Key, V any] struct {
	slab slab.Slab[V]
}

// New creates a new, empty typed slab.
func New[K Key, V any]() *TypedSlab[K, V] {
	return &TypedSlab[K, V]{}
}

// NewWithCapacity creates an empty typed slab with room for capacity values
// before the backing array grows.
func NewWithCapacity[K Key, V any](capacity int) *TypedSlab[K, V] {
	s := &TypedSlab[K, V]{}
	s.slab.Reserve(capacity)
	return s
}

// Insert stores a value and returns the key under which it is reachable.
func (s *TypedSlab[K, V]) Insert(value V) K {
	return K(s.slab.Insert(value))
}

// InsertEntry stores a value and returns its key together with a pointer to
// the stored copy, for filling in fields that need the key itself.
//
// The pointer is valid until the slab's backing array grows or the slot is
// removed.
func (s *TypedSlab[K, V]) InsertEntry(value V) (K, *V) {
	key, ref := s.slab.InsertEntry(value)
	return K(key), ref
}

// Remove deletes the value under key and returns it. It reports false, and
// changes nothing, when the key is not occupied.
func (s *TypedSlab[K, V]) Remove(key K) (V, bool) {
	return s.slab.Remove(int(key))
}

// Get returns a copy of the value under key.
func (s *TypedSlab[K, V]) Get(key K) (V, bool) {
	return s.slab.Get(int(key))
}

// Entry returns a pointer to the value under key, for in-place mutation.
//
// The pointer is valid until the slab's backing array grows or the slot is
// removed.
func (s *TypedSlab[K, V]) Entry(key K) (*V, bool) {
	return s.slab.Entry(int(key))
}

// Contains reports whether key addresses a live value.
func (s *TypedSlab[K, V]) Contains(key K) bool {
	return s.slab.Contains(int(key))
}

// Len returns the number of stored values.
func (s *TypedSlab[K, V]) Len() int {
	return s.slab.Len()
}

// IsEmpty reports whether the slab holds no values.
func (s *TypedSlab[K, V]) IsEmpty() bool {
	return s.slab.IsEmpty()
}

// Capacity returns the number of values the slab can hold before the backing
// array grows.
func (s *TypedSlab[K, V]) Capacity() int {
	return s.slab.Capacity()
}

// Reserve ensures room for n further values without growth.
func (s *TypedSlab[K, V]) Reserve(n int) {
	s.slab.Reserve(n)
}

// VacantKey returns the key the next Insert will use.
func (s *TypedSlab[K, V]) VacantKey() K {
	return K(s.slab.VacantKey())
}

// Clear removes all values. Allocated capacity is retained.
func (s *TypedSlab[K, V]) Clear() {
	s.slab.Clear()
}

// All returns an iterator over all key/value pairs in ascending key order.
func (s *TypedSlab[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, value := range s.slab.All() {
			if !yield(K(key), value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all key/value pairs in descending key
// order.
func (s *TypedSlab[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, value := range s.slab.Backward() {
			if !yield(K(key), value) {
				return
			}
		}
	}
}

// Entries returns an iterator over keys and pointers to the stored values,
// in ascending key order, for in-place mutation.
func (s *TypedSlab[K, V]) Entries() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for key, ref := range s.slab.Entries() {
			if !yield(K(key), ref) {
				return
			}
		}
	}
}

// BackwardEntries returns an iterator over keys and pointers to the stored
// values, in descending key order.
func (s *TypedSlab[K, V]) BackwardEntries() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for key, ref := range s.slab.BackwardEntries() {
			if !yield(K(key), ref) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored values in ascending key order.
func (s *TypedSlab[K, V]) Values() iter.Seq[V] {
	return s.slab.Values()
}

// Drain returns an iterator that removes and yields every value in ascending
// key order. Stopping early leaves the remaining values in place; consuming
// it fully leaves the slab as if freshly created, with capacity retained.
func (s *TypedSlab[K, V]) Drain() iter.Seq[V] {
	return s.slab.Drain()
}

// Retain removes every value for which keep returns false. The callback may
// mutate the values it keeps.
func (s *TypedSlab[K, V]) Retain(keep func(key K, value *V) bool) {
	s.slab.Retain(func(key int, value *V) bool {
		return keep(K(key), value)
	})
}

// Stats returns occupancy counters for monitoring.
func (s *TypedSlab[K, V]) Stats() slab.Stats {
	return s.slab.Stats()
}

// String returns a string representation of the slab.
func (s *TypedSlab[K, V]) String() string {
	return fmt.Sprintf("TypedSlab{len: %d, cap: %d}", s.Len(), s.Capacity())
}
