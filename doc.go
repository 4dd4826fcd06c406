// Package typedslab provides a slab allocator whose keys are a dedicated
// integer type per store.
//
// A slab hands out dense int keys and reuses freed slots, which makes raw
// keys easy to mix up when a program runs several slabs side by side: a node
// key indexes an edge table without a compile error. TypedSlab closes that
// hole by parameterizing the key type, so each table gets its own key space:
//
//	type NodeID uint32
//	type EdgeID uint32
//
//	nodes := typedslab.New[NodeID, Node]()
//	edges := typedslab.New[EdgeID, Edge]()
//
//	n := nodes.Insert(Node{Name: "a"})
//	edges.Get(n) // compile error: NodeID is not an EdgeID
//
// # Quick Start
//
//	s := typedslab.New[NodeID, string]()
//
//	k := s.Insert("hello")
//	v, ok := s.Get(k)      // "hello", true
//	s.Remove(k)            // slot is reused by the next Insert
//
// The zero value works too:
//
//	var s typedslab.TypedSlab[NodeID, string]
//	k := s.Insert("hello")
//
// # Key Reuse
//
// Removing a value frees its slot for the next Insert, most recently freed
// first. A key held across a Remove can therefore alias a newer value later.
// Keys carry no generation counter; callers that hold keys across removals
// must clear them. VacantKey previews the key the next Insert will return.
//
// # Iteration
//
// All, Backward, Entries, and Values iterate in key order and skip free
// slots. Drain empties the slab lazily:
//
//	for v := range s.Drain() {
//	    release(v)
//	}
//
// # Raw Slabs
//
// The underlying int-keyed implementation is exported as the slab
// subpackage, for code that does not need per-store key types.
//
// # Concurrency
//
// A TypedSlab is NOT thread-safe. It is intended to be owned by a
// single goroutine; wrap it in a mutex to share it.
//
// # Key Features
//
//   - O(1) insert, lookup, and remove on a dense backing array
//   - Freed slots reused LIFO, no per-operation allocation
//   - Typed keys with zero runtime cost over raw ints
//   - Lazy iterators compatible with range-over-func
package typedslab
