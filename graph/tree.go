package graph

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// TreeError reports why an undirected graph failed tree validation.
type TreeError int

const (
	// ErrNotConnected means the graph has an unreachable vertex.
	ErrNotConnected TreeError = iota + 1

	// ErrHasCycle means the graph contains a closed loop.
	ErrHasCycle

	// ErrNotConnectedHasCycle means both defects are present.
	ErrNotConnectedHasCycle
)

func (e TreeError) Error() string {
	switch e {
	case ErrNotConnected:
		return "graph is not connected"
	case ErrHasCycle:
		return "graph has a cycle"
	case ErrNotConnectedHasCycle:
		return "graph is not connected and has a cycle"
	default:
		return "unknown tree error"
	}
}

// IsConnected reports whether every vertex is reachable from vertex 0.
// Panics on a graph with no vertices.
func IsConnected[C comparable](g AdjacencyProvider[C]) bool {
	visited := bitset.New(uint(g.Size()))

	stack := arraystack.New()
	stack.Push(0)
	for !stack.Empty() {
		top, _ := stack.Pop()
		v := top.(int)
		if visited.Test(uint(v)) {
			continue
		}
		visited.Set(uint(v))

		adj, ok := g.Adjacencies(v)
		if !ok {
			panic("vertex index out of bounds")
		}
		for _, e := range adj {
			if !visited.Test(uint(e.To)) {
				stack.Push(e.To)
			}
		}
	}

	return visited.Count() == uint(g.Size())
}

// HasCycle reports whether the undirected graph g contains a closed loop.
// The DFS restarts from every unvisited vertex, so disconnected graphs are
// fully covered.
//
// When a vertex is first visited, each incident edge leading to an already
// visited vertex is counted; a single such edge is the one we arrived by
// (edges are stored in both directions), but two or more close a loop.
// Counting per edge makes parallel edges and self-loops register as cycles.
func HasCycle[C comparable](g AdjacencyProvider[C]) bool {
	visited := bitset.New(uint(g.Size()))
	for v := 0; v < g.Size(); v++ {
		if visited.Test(uint(v)) {
			continue
		}
		if cycleFrom(g, v, visited) {
			return true
		}
	}
	return false
}

func cycleFrom[C comparable](g AdjacencyProvider[C], start int, visited *bitset.BitSet) bool {
	stack := arraystack.New()
	stack.Push(start)
	for !stack.Empty() {
		top, _ := stack.Pop()
		v := top.(int)
		if visited.Test(uint(v)) {
			continue
		}
		visited.Set(uint(v))

		adj, ok := g.Adjacencies(v)
		if !ok {
			panic("vertex index out of bounds")
		}

		seen := 0
		for _, e := range adj {
			if visited.Test(uint(e.To)) {
				seen++
			} else {
				stack.Push(e.To)
			}
		}
		if seen >= 2 {
			return true
		}
	}
	return false
}

// IsTree checks that the undirected graph g is connected and acyclic.
// Returns nil on success and a TreeError naming the defect otherwise.
func IsTree[C comparable](g AdjacencyProvider[C]) error {
	connected := IsConnected(g)
	cyclic := HasCycle(g)

	switch {
	case connected && !cyclic:
		return nil
	case !connected && !cyclic:
		return ErrNotConnected
	case connected && cyclic:
		return ErrHasCycle
	default:
		return ErrNotConnectedHasCycle
	}
}

// Tree is an undirected graph certified connected and acyclic.
// It is read-only: edges cannot be added or removed once constructed.
type Tree[C comparable] struct {
	inner *UndirectedAdjacencyList[C]
}

// NewTree validates g and wraps it into a Tree.
// Returns a TreeError when g is not connected, has a cycle, or both.
func NewTree[C comparable](g *UndirectedAdjacencyList[C]) (*Tree[C], error) {
	if err := IsTree[C](g); err != nil {
		return nil, err
	}
	return &Tree[C]{inner: g}, nil
}

// NewTreeUnchecked wraps g into a Tree without validating it. The caller
// must have established through other means that g is connected and
// acyclic; everything built on the result is undefined otherwise.
func NewTreeUnchecked[C comparable](g *UndirectedAdjacencyList[C]) *Tree[C] {
	return &Tree[C]{inner: g}
}

// Size returns the number of vertices.
func (t *Tree[C]) Size() int {
	return t.inner.Size()
}

// Adjacencies returns the edges incident to v, or false when v is not a
// vertex of the tree.
func (t *Tree[C]) Adjacencies(v int) ([]Edge[C], bool) {
	return t.inner.Adjacencies(v)
}
