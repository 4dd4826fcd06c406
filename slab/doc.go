// Package slab provides a densely packed store for values of a single
// type, addressed by small integer keys.
//
// A slab hands out the lowest reusable slot on every insert: removed
// slots are threaded onto an intrusive free list and recycled before the
// backing array grows. This keeps keys small and storage dense under
// insert/remove churn, which is what distinguishes a slab from a plain
// append-only slice.
//
// # Basic Usage
//
//	s := slab.New[string]()
//	a := s.Insert("alpha") // 0
//	b := s.Insert("beta")  // 1
//	s.Remove(a)
//	c := s.Insert("gamma") // 0 again: slot reused
//	_ = b
//	_ = c
//
// # Keys
//
// Keys are raw slot indices. They carry no generation counter: a key
// held across a Remove may address a different value once the slot is
// recycled. The typedslab package wraps this store behind distinct
// per-arena key types; use it when raw ints are too easy to mix up.
//
// # Concurrency
//
// A Slab is a single-owner structure. It performs no locking and is not
// safe for concurrent use.
package slab
