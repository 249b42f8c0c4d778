package graph

import (
	"slices"
)

// Graph is a mutable edge store over a fixed vertex count.
type Graph[C comparable] interface {
	// Size returns the number of vertices.
	Size() int

	// AddEdge adds one edge.
	AddEdge(e Edge[C])

	// AddEdges adds every edge of edges.
	AddEdges(edges []Edge[C])

	// RemoveEdge removes every edge from one vertex to another,
	// regardless of cost.
	RemoveEdge(from, to int)

	// RemoveEdgeExact removes every edge equal to e in all fields.
	RemoveEdgeExact(e Edge[C])
}

// AdjacencyProvider exposes the edges incident to each vertex.
type AdjacencyProvider[C comparable] interface {
	// Size returns the number of vertices.
	Size() int

	// Adjacencies returns the edges leaving v, or false when v is not a
	// vertex of the graph.
	Adjacencies(v int) ([]Edge[C], bool)
}

// EdgeList is a graph held as a flat list of edges.
type EdgeList[C comparable] struct {
	size  int
	edges []Edge[C]
}

// NewEdgeList returns an edgeless graph with n vertices.
func NewEdgeList[C comparable](n int) *EdgeList[C] {
	return &EdgeList[C]{size: n}
}

// Size returns the number of vertices.
func (g *EdgeList[C]) Size() int {
	return g.size
}

// Edges returns all edges of the graph.
func (g *EdgeList[C]) Edges() []Edge[C] {
	return g.edges
}

// AddEdge adds one edge.
func (g *EdgeList[C]) AddEdge(e Edge[C]) {
	g.edges = append(g.edges, e)
}

// AddEdges adds every edge of edges.
func (g *EdgeList[C]) AddEdges(edges []Edge[C]) {
	for _, e := range edges {
		g.AddEdge(e)
	}
}

// RemoveEdge removes every edge from one vertex to another, regardless of cost.
func (g *EdgeList[C]) RemoveEdge(from, to int) {
	g.edges = slices.DeleteFunc(g.edges, func(e Edge[C]) bool {
		return e.From == from && e.To == to
	})
}

// RemoveEdgeExact removes every edge equal to e in all fields.
func (g *EdgeList[C]) RemoveEdgeExact(e Edge[C]) {
	g.edges = slices.DeleteFunc(g.edges, func(f Edge[C]) bool {
		return f == e
	})
}

// AdjacencyList is a graph held as per-vertex edge lists.
type AdjacencyList[C comparable] struct {
	adjacencies [][]Edge[C]
}

// NewAdjacencyList returns an edgeless graph with n vertices.
func NewAdjacencyList[C comparable](n int) *AdjacencyList[C] {
	return &AdjacencyList[C]{adjacencies: make([][]Edge[C], n)}
}

// NewAdjacencyListFromEdgeList converts an EdgeList into adjacency form.
func NewAdjacencyListFromEdgeList[C comparable](el *EdgeList[C]) *AdjacencyList[C] {
	g := NewAdjacencyList[C](el.Size())
	g.AddEdges(el.Edges())
	return g
}

// Size returns the number of vertices.
func (g *AdjacencyList[C]) Size() int {
	return len(g.adjacencies)
}

// Adjacencies returns the edges leaving v, or false when v is not a vertex
// of the graph.
func (g *AdjacencyList[C]) Adjacencies(v int) ([]Edge[C], bool) {
	if v < 0 || v >= len(g.adjacencies) {
		return nil, false
	}
	return g.adjacencies[v], true
}

// AddEdge adds one edge.
// Panics if the edge's From vertex is out of range.
func (g *AdjacencyList[C]) AddEdge(e Edge[C]) {
	g.adjacencies[e.From] = append(g.adjacencies[e.From], e)
}

// AddEdges adds every edge of edges.
func (g *AdjacencyList[C]) AddEdges(edges []Edge[C]) {
	for _, e := range edges {
		g.AddEdge(e)
	}
}

// RemoveEdge removes every edge from one vertex to another, regardless of cost.
func (g *AdjacencyList[C]) RemoveEdge(from, to int) {
	g.adjacencies[from] = slices.DeleteFunc(g.adjacencies[from], func(e Edge[C]) bool {
		return e.To == to
	})
}

// RemoveEdgeExact removes every edge equal to e in all fields.
func (g *AdjacencyList[C]) RemoveEdgeExact(e Edge[C]) {
	g.adjacencies[e.From] = slices.DeleteFunc(g.adjacencies[e.From], func(f Edge[C]) bool {
		return f == e
	})
}

// UndirectedAdjacencyList is an adjacency-list graph where every added edge
// is mirrored in both directions, and removals act symmetrically.
type UndirectedAdjacencyList[C comparable] struct {
	inner AdjacencyList[C]
}

// NewUndirectedAdjacencyList returns an edgeless undirected graph with n
// vertices.
func NewUndirectedAdjacencyList[C comparable](n int) *UndirectedAdjacencyList[C] {
	return &UndirectedAdjacencyList[C]{inner: *NewAdjacencyList[C](n)}
}

// Size returns the number of vertices.
func (g *UndirectedAdjacencyList[C]) Size() int {
	return g.inner.Size()
}

// Adjacencies returns the edges incident to v, or false when v is not a
// vertex of the graph.
func (g *UndirectedAdjacencyList[C]) Adjacencies(v int) ([]Edge[C], bool) {
	return g.inner.Adjacencies(v)
}

// AddEdge adds e together with its reversed counterpart.
// Panics if either endpoint is out of range.
func (g *UndirectedAdjacencyList[C]) AddEdge(e Edge[C]) {
	g.inner.AddEdge(e)
	g.inner.AddEdge(e.Reversed())
}

// AddEdges adds every edge of edges, mirrored.
func (g *UndirectedAdjacencyList[C]) AddEdges(edges []Edge[C]) {
	for _, e := range edges {
		g.AddEdge(e)
	}
}

// RemoveEdge removes every edge between the two vertices, in both
// directions, regardless of cost.
func (g *UndirectedAdjacencyList[C]) RemoveEdge(from, to int) {
	g.inner.RemoveEdge(from, to)
	g.inner.RemoveEdge(to, from)
}

// RemoveEdgeExact removes every edge equal to e or its reverse in all fields.
func (g *UndirectedAdjacencyList[C]) RemoveEdgeExact(e Edge[C]) {
	g.inner.RemoveEdgeExact(e)
	g.inner.RemoveEdgeExact(e.Reversed())
}
