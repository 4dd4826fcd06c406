package slab

import (
	"fmt"
	"iter"
	"slices"
)

// slot is a single storage cell. A slot is either occupied and holds a
// value, or vacant and links to the next vacant slot.
type slot[V any] struct {
	value    V
	next     int // next vacant index; meaningful only while vacant
	occupied bool
}

// Slab is a pre-allocated storage for values of a uniform type, addressed
// by small integer keys. Removed slots are threaded onto a singly-linked
// free list and reused by later inserts before the backing array grows,
// so keys stay dense over time.
//
// The zero value is an empty slab ready to use; no memory is allocated
// until the first insert.
//
// A Slab is not safe for concurrent use. Mutating operations (Insert,
// Remove, Entries, Drain, Retain, ...) need exclusive access; read-only
// operations may share.
//
// Keys are plain slot indices without generation counters: a key kept
// across a Remove may alias a later value stored in the recycled slot.
// Callers that need to rule this out must not reuse keys after removal.
type Slab[V any] struct {
	slots []slot[V]
	// next is the head of the vacant chain. next == len(slots) means the
	// chain is empty and the next insert appends. len(slots) cannot change
	// while the chain is non-empty, so links stored in vacant slots never
	// go stale.
	next int
	len  int
}

// Stats is a point-in-time snapshot of slot occupancy.
type Stats struct {
	Len      int // occupied slots
	Vacant   int // vacant slots available for reuse
	Capacity int // allocated slot capacity
}

// New creates a new, empty slab.
func New[V any]() *Slab[V] {
	return &Slab[V]{}
}

// NewWithCapacity creates an empty slab with room for capacity values
// before the backing array needs to grow. A capacity <= 0 is treated
// as zero.
func NewWithCapacity[V any](capacity int) *Slab[V] {
	s := &Slab[V]{}
	s.Reserve(capacity)
	return s
}

// Insert stores a value and returns the key assigned to it. The head of
// the vacant chain is reused when one exists; otherwise the value is
// appended in a new slot.
func (s *Slab[V]) Insert(value V) int {
	key := s.next
	if key == len(s.slots) {
		s.slots = append(s.slots, slot[V]{value: value, occupied: true})
		s.next = key + 1
	} else {
		s.next = s.slots[key].next
		s.slots[key] = slot[V]{value: value, occupied: true}
	}
	s.len++
	return key
}

// InsertEntry stores a value and returns the assigned key together with a
// pointer to the stored value, so the caller can finish populating it
// without a second lookup. The pointer is valid only until the next
// mutating operation on the slab (growth may move the backing array).
func (s *Slab[V]) InsertEntry(value V) (int, *V) {
	key := s.Insert(value)
	return key, &s.slots[key].value
}

// Remove takes the value stored under key out of the slab and releases
// the slot for reuse. It reports false if key is out of range or the
// slot is vacant.
func (s *Slab[V]) Remove(key int) (V, bool) {
	if !s.Contains(key) {
		var zero V
		return zero, false
	}
	return s.removeAt(key), true
}

// removeAt vacates an occupied slot, pushing it onto the vacant chain.
// The stored value is zeroed so the slab does not pin it for the GC.
func (s *Slab[V]) removeAt(key int) V {
	value := s.slots[key].value
	s.slots[key] = slot[V]{next: s.next}
	s.next = key
	s.len--
	return value
}

// Get returns the value stored under key. It reports false if key is out
// of range or the slot is vacant.
func (s *Slab[V]) Get(key int) (V, bool) {
	if !s.Contains(key) {
		var zero V
		return zero, false
	}
	return s.slots[key].value, true
}

// Entry returns a pointer to the value stored under key for in-place
// mutation. It reports false if key is out of range or the slot is
// vacant. The pointer is valid only until the next mutating operation.
func (s *Slab[V]) Entry(key int) (*V, bool) {
	if !s.Contains(key) {
		return nil, false
	}
	return &s.slots[key].value, true
}

// Contains reports whether key addresses an occupied slot.
func (s *Slab[V]) Contains(key int) bool {
	return key >= 0 && key < len(s.slots) && s.slots[key].occupied
}

// Len returns the number of stored values. Vacant slots do not count.
func (s *Slab[V]) Len() int {
	return s.len
}

// IsEmpty reports whether the slab holds no values.
func (s *Slab[V]) IsEmpty() bool {
	return s.len == 0
}

// Capacity returns the number of slots the slab can hold without growing
// the backing array.
func (s *Slab[V]) Capacity() int {
	return cap(s.slots)
}

// Reserve grows the backing array so that at least n more slots can be
// appended without reallocation. Vacant slots are reused before any
// append, so n is an upper bound on the extra room actually needed.
func (s *Slab[V]) Reserve(n int) {
	if n > 0 {
		s.slots = slices.Grow(s.slots, n)
	}
}

// VacantKey returns the key the next Insert will use, without inserting.
func (s *Slab[V]) VacantKey() int {
	return s.next
}

// Clear drops every stored value and resets the slab to empty. The
// allocated capacity is retained for reuse.
func (s *Slab[V]) Clear() {
	clear(s.slots)
	s.slots = s.slots[:0]
	s.next = 0
	s.len = 0
}

// All returns an iterator over key/value pairs for every occupied slot,
// in ascending key order. Each call starts a fresh pass over the slab's
// current state; mutating the slab mid-iteration is the caller's hazard.
func (s *Slab[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := range s.slots {
			if s.slots[i].occupied && !yield(i, s.slots[i].value) {
				return
			}
		}
	}
}

// Backward returns an iterator like All in descending key order.
func (s *Slab[V]) Backward() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := len(s.slots) - 1; i >= 0; i-- {
			if s.slots[i].occupied && !yield(i, s.slots[i].value) {
				return
			}
		}
	}
}

// Entries returns an iterator over key/pointer pairs for every occupied
// slot, in ascending key order, for in-place mutation. Yielded pointers
// are valid only until the next mutating operation on the slab.
func (s *Slab[V]) Entries() iter.Seq2[int, *V] {
	return func(yield func(int, *V) bool) {
		for i := range s.slots {
			if s.slots[i].occupied && !yield(i, &s.slots[i].value) {
				return
			}
		}
	}
}

// BackwardEntries returns an iterator like Entries in descending key
// order.
func (s *Slab[V]) BackwardEntries() iter.Seq2[int, *V] {
	return func(yield func(int, *V) bool) {
		for i := len(s.slots) - 1; i >= 0; i-- {
			if s.slots[i].occupied && !yield(i, &s.slots[i].value) {
				return
			}
		}
	}
}

// Values returns an iterator over stored values in ascending key order.
func (s *Slab[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range s.slots {
			if s.slots[i].occupied && !yield(s.slots[i].value) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes and yields every stored value
// in ascending key order. Stopping early removes only the values already
// yielded and leaves the slab consistent. Running the iterator to the
// end resets the slab like Clear, so subsequent inserts behave as on a
// freshly emptied slab; capacity is retained either way.
func (s *Slab[V]) Drain() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range s.slots {
			if s.slots[i].occupied && !yield(s.removeAt(i)) {
				return
			}
		}
		s.Clear()
	}
}

// Retain removes every value for which keep returns false, visiting
// occupied slots in ascending key order. The callback may mutate kept
// values through the pointer.
func (s *Slab[V]) Retain(keep func(key int, value *V) bool) {
	for i := range s.slots {
		if s.slots[i].occupied && !keep(i, &s.slots[i].value) {
			s.removeAt(i)
		}
	}
}

// Stats returns a snapshot of the slab's occupancy.
func (s *Slab[V]) Stats() Stats {
	return Stats{
		Len:      s.len,
		Vacant:   len(s.slots) - s.len,
		Capacity: cap(s.slots),
	}
}

func (s *Slab[V]) String() string {
	return fmt.Sprintf("Slab{len: %d, cap: %d}", s.len, cap(s.slots))
}
