// Package graph implements light graph representations and a tree
// validation algorithm based on DFS connectivity and cycle checks.
//
// Graphs identify vertices by index 0..n and carry a comparable cost on
// every edge. The Tree type certifies that an undirected graph is connected
// and acyclic; it can only be obtained through the validating constructor,
// or through an explicitly trusted one.
package graph

import (
	"golang.org/x/exp/constraints"
)

// Number is a numeric cost type with a usable one value.
type Number interface {
	constraints.Integer | constraints.Float
}

// Edge is a directed edge from one vertex index to another, with a cost.
type Edge[C comparable] struct {
	From int
	To   int
	Cost C
}

// NewEdge returns the edge from one vertex to another with the given cost.
func NewEdge[C comparable](from, to int, cost C) Edge[C] {
	return Edge[C]{From: from, To: to, Cost: cost}
}

// Unit returns the edge from one vertex to another with cost one.
func Unit[C Number](from, to int) Edge[C] {
	return Edge[C]{From: from, To: to, Cost: 1}
}

// Reversed returns the edge with From and To swapped, keeping the cost.
func (e Edge[C]) Reversed() Edge[C] {
	return Edge[C]{From: e.To, To: e.From, Cost: e.Cost}
}
