/*
 * graph.go, part of colloids
 *
 * Copyright 2024 the colloids authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 */

// Package cluster identifies the topological cluster motifs of a bond
// network: 1551 and 2331 pairs, SP5c clusters, second-shell bonds, and
// the common-neighbor ring test they all build on.
package cluster

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// subgraph builds an undirected gonum graph over exactly the particle
// indices in members, with an edge between any two members that are
// also neighbors in ngb. This is the adapter a Honeycutt-Andersen-style
// ring test needs: the ring property is connectivity, not just degree,
// and gonum/graph/traverse already implements breadth-first reachability
// correctly rather than reimplementing it by hand.
func subgraph(members []int, ngb [][]int, neighborSet map[int]map[int]bool) graph.Undirected {
	g := simple.NewUndirectedGraph()
	for _, m := range members {
		g.AddNode(simple.Node(m))
	}
	for _, a := range members {
		for _, b := range members {
			if b <= a {
				continue
			}
			if neighborSet[a][b] {
				g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
			}
		}
	}
	return g
}

// connected reports whether every node of g is reachable by breadth-first
// traversal from its first node; an empty graph is trivially connected.
func connected(g graph.Undirected) bool {
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return true
	}
	visited := 0
	bf := traverse.BreadthFirst{}
	bf.Walk(g, nodes[0], func(graph.Node, int) bool {
		visited++
		return false
	})
	return visited == len(nodes)
}
