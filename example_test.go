package typedslab_test

import (
	"fmt"

	"github.com/hupe1980/typedslab"
)

type NodeID uint32

type EdgeID uint32

type Node struct {
	Name string
}

type Edge struct {
	From, To NodeID
}

// Example demonstrates the basic insert/get/remove cycle.
func Example() {
	type UserID uint32

	users := typedslab.New[UserID, string]()

	id := users.Insert("alice")
	name, ok := users.Get(id)
	fmt.Println(name, ok)

	users.Remove(id)
	_, ok = users.Get(id)
	fmt.Println(ok)
	// Output:
	// alice true
	// false
}

// Example_typedKeys demonstrates two stores with separate key spaces.
func Example_typedKeys() {
	nodes := typedslab.New[NodeID, Node]()
	edges := typedslab.New[EdgeID, Edge]()

	a := nodes.Insert(Node{Name: "a"})
	b := nodes.Insert(Node{Name: "b"})

	// nodes.Get(e) would not compile: an EdgeID is not a NodeID.
	e := edges.Insert(Edge{From: a, To: b})

	edge, _ := edges.Get(e)
	from, _ := nodes.Get(edge.From)
	to, _ := nodes.Get(edge.To)
	fmt.Printf("%s -> %s\n", from.Name, to.Name)
	// Output: a -> b
}

// Example_reuse demonstrates slot reuse after removal.
func Example_reuse() {
	type ConnID int

	conns := typedslab.New[ConnID, string]()

	conns.Insert("conn-0")
	k1 := conns.Insert("conn-1")
	conns.Insert("conn-2")

	// Freeing a slot makes its key the next one handed out.
	conns.Remove(k1)
	fmt.Println(conns.VacantKey() == k1)
	fmt.Println(conns.Insert("conn-3") == k1)
	// Output:
	// true
	// true
}

// Example_iterate demonstrates iteration in key order, skipping free slots.
func Example_iterate() {
	type ItemID uint16

	items := typedslab.New[ItemID, string]()
	items.Insert("first")
	mid := items.Insert("second")
	items.Insert("third")
	items.Remove(mid)

	for key, value := range items.All() {
		fmt.Printf("%d: %s\n", key, value)
	}
	// Output:
	// 0: first
	// 2: third
}

// Example_drain demonstrates emptying a store lazily.
func Example_drain() {
	type JobID int

	jobs := typedslab.New[JobID, string]()
	jobs.Insert("compile")
	jobs.Insert("test")
	jobs.Insert("deploy")

	for job := range jobs.Drain() {
		fmt.Println("running:", job)
	}
	fmt.Println("left:", jobs.Len())
	// Output:
	// running: compile
	// running: test
	// running: deploy
	// left: 0
}

// Example_entries demonstrates in-place mutation through entry pointers.
func Example_entries() {
	type CounterID int

	counters := typedslab.New[CounterID, int]()
	counters.Insert(1)
	counters.Insert(2)

	for _, count := range counters.Entries() {
		*count *= 10
	}

	for _, count := range counters.All() {
		fmt.Println(count)
	}
	// Output:
	// 10
	// 20
}
