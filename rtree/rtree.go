/*
 * rtree.go, part of colloids
 *
 * Copyright 2024 the colloids authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 */

// Package rtree implements the R*-tree spatial index used to look up
// particles and 2D detections by bounding-box overlap. It maps leaf ids
// (particle or detection indices) to axis-aligned boxes and answers
// overlap queries, translation, and whole-tree bounds in time
// logarithmic in the number of leaves rather than linear, which is what
// makeNgbList and the reconstructor's linker need to stay practical on
// large particle sets.
//
// The node-splitting heuristic is the quadratic split from Guttman's
// original R-tree paper rather than the full
// R*-tree forced-reinsertion algorithm; it is grounded on the same
// bulk/insert/split/query shape as a generics bounding-volume hierarchy,
// simplified to the box type and leaf-id payload this package needs.
package rtree

import (
	"math"

	"github.com/yusrishaharin/colloids"
	"github.com/yusrishaharin/colloids/geom"
)

// MinChildren and MaxChildren give the reconstructor's 2D index
// (dimension 2, min 4, max 32) its fan-out; any Tree can be built with
// different values via New.
const (
	MinChildren = 4
	MaxChildren = 32
)

type entry struct {
	box   geom.BoundingBox
	id    int       // valid on leaves only
	child *treeNode // valid on internal nodes only
}

type treeNode struct {
	box      geom.BoundingBox
	leaf     bool
	entries  []entry
	parent   *treeNode
	parentAt int
}

// Tree is an R*-tree over axis-aligned boxes. The zero value is not
// usable; construct one with New.
type Tree struct {
	root        *treeNode
	minChildren int
	maxChildren int
	size        int
}

// New builds an empty tree with the given fan-out bounds.
func New(minChildren, maxChildren int) *Tree {
	if minChildren < 1 || maxChildren < 2*minChildren {
		panic("rtree.New: need 1 <= minChildren and maxChildren >= 2*minChildren")
	}
	return &Tree{
		root:        &treeNode{leaf: true},
		minChildren: minChildren,
		maxChildren: maxChildren,
	}
}

// NewDefault builds a tree with the dimension-2, min-4, max-32 parameters
// the reconstructor's linker uses.
func NewDefault() *Tree { return New(MinChildren, MaxChildren) }

// Len returns the number of leaves stored in the tree.
func (t *Tree) Len() int { return t.size }

// Insert adds a leaf mapping id to box. Insert is not idempotent: calling
// it twice with the same (id, box) stores the leaf twice, and both copies
// will be returned by overlapping queries. Deduplication, if wanted, is
// the caller's responsibility.
func (t *Tree) Insert(id int, box geom.BoundingBox) {
	leaf := t.chooseLeaf(t.root, box)
	leaf.entries = append(leaf.entries, entry{box: box, id: id})
	t.size++
	t.adjustBox(leaf)
	if len(leaf.entries) > t.maxChildren {
		t.split(leaf)
	}
}

func (t *Tree) chooseLeaf(n *treeNode, box geom.BoundingBox) *treeNode {
	if n.leaf {
		return n
	}
	best := -1
	bestGrowth := math.Inf(1)
	bestArea := math.Inf(1)
	for i, e := range n.entries {
		union := geom.Union(e.box, box)
		growth := union.Area() - e.box.Area()
		if growth < bestGrowth || (growth == bestGrowth && union.Area() < bestArea) {
			best = i
			bestGrowth = growth
			bestArea = union.Area()
		}
	}
	return t.chooseLeaf(n.entries[best].child, box)
}

func (t *Tree) adjustBox(n *treeNode) {
	for n != nil {
		n.box = unionAll(n.entries)
		if n.parent != nil {
			n.parent.entries[n.parentAt].box = n.box
		}
		n = n.parent
	}
}

func unionAll(entries []entry) geom.BoundingBox {
	if len(entries) == 0 {
		return geom.BoundingBox{}
	}
	box := entries[0].box
	for _, e := range entries[1:] {
		box = geom.Union(box, e.box)
	}
	return box
}

// split performs Guttman's quadratic split of an overfull node and
// propagates the new sibling upward, growing the tree by one level at the
// root if necessary.
func (t *Tree) split(n *treeNode) {
	entries := n.entries
	seed1, seed2 := pickSeeds(entries)
	group1 := []entry{entries[seed1]}
	group2 := []entry{entries[seed2]}
	box1 := entries[seed1].box
	box2 := entries[seed2].box
	remaining := make([]entry, 0, len(entries)-2)
	for i, e := range entries {
		if i != seed1 && i != seed2 {
			remaining = append(remaining, e)
		}
	}
	for len(remaining) > 0 {
		if len(group1)+len(remaining) <= t.minChildren {
			group1 = append(group1, remaining...)
			remaining = nil
			break
		}
		if len(group2)+len(remaining) <= t.minChildren {
			group2 = append(group2, remaining...)
			remaining = nil
			break
		}
		pick := 0
		growth1 := geom.Union(box1, remaining[0].box).Area() - box1.Area()
		growth2 := geom.Union(box2, remaining[0].box).Area() - box2.Area()
		bestDiff := math.Abs(growth1 - growth2)
		for i := 1; i < len(remaining); i++ {
			g1 := geom.Union(box1, remaining[i].box).Area() - box1.Area()
			g2 := geom.Union(box2, remaining[i].box).Area() - box2.Area()
			diff := math.Abs(g1 - g2)
			if diff > bestDiff {
				bestDiff = diff
				pick = i
				growth1, growth2 = g1, g2
			}
		}
		e := remaining[pick]
		remaining = append(remaining[:pick], remaining[pick+1:]...)
		if growth1 < growth2 || (growth1 == growth2 && len(group1) <= len(group2)) {
			group1 = append(group1, e)
			box1 = geom.Union(box1, e.box)
		} else {
			group2 = append(group2, e)
			box2 = geom.Union(box2, e.box)
		}
	}

	n.entries = group1
	n.box = unionAll(group1)
	sibling := &treeNode{leaf: n.leaf, entries: group2, box: unionAll(group2)}
	if !n.leaf {
		for i := range n.entries {
			n.entries[i].child.parent = n
			n.entries[i].child.parentAt = i
		}
		for i := range sibling.entries {
			sibling.entries[i].child.parent = sibling
			sibling.entries[i].child.parentAt = i
		}
	}

	if n.parent == nil {
		newRoot := &treeNode{
			entries: []entry{
				{box: n.box, child: n},
				{box: sibling.box, child: sibling},
			},
		}
		n.parent, n.parentAt = newRoot, 0
		sibling.parent, sibling.parentAt = newRoot, 1
		t.root = newRoot
		return
	}

	parent := n.parent
	parent.entries[n.parentAt].box = n.box
	sibling.parent = parent
	sibling.parentAt = len(parent.entries)
	parent.entries = append(parent.entries, entry{box: sibling.box, child: sibling})
	t.adjustBox(parent)
	if len(parent.entries) > t.maxChildren {
		t.split(parent)
	}
}

// pickSeeds implements Guttman's quadratic PickSeeds: the pair whose
// combined box wastes the most area is chosen to anchor the two groups.
func pickSeeds(entries []entry) (int, int) {
	best1, best2 := 0, 1
	worst := math.Inf(-1)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			union := geom.Union(entries[i].box, entries[j].box)
			waste := union.Area() - entries[i].box.Area() - entries[j].box.Area()
			if waste > worst {
				worst = waste
				best1, best2 = i, j
			}
		}
	}
	return best1, best2
}

// QueryOverlap returns, in unspecified order and without duplicates, the
// ids of every leaf whose stored box intersects box.
func (t *Tree) QueryOverlap(box geom.BoundingBox) []int {
	var out []int
	t.queryOverlap(t.root, box, &out)
	return out
}

func (t *Tree) queryOverlap(n *treeNode, box geom.BoundingBox, out *[]int) {
	for _, e := range n.entries {
		if !e.box.Overlaps(box) {
			continue
		}
		if n.leaf {
			*out = append(*out, e.id)
		} else {
			t.queryOverlap(e.child, box, out)
		}
	}
}

// Translate shifts every stored box by v. Query semantics are preserved
// because overlap is translation invariant.
func (t *Tree) Translate(v geom.Vec3) {
	translate(t.root, v)
}

func translate(n *treeNode, v geom.Vec3) {
	n.box = n.box.Translate(v)
	for i := range n.entries {
		n.entries[i].box = n.entries[i].box.Translate(v)
		if !n.leaf {
			translate(n.entries[i].child, v)
		}
	}
}

// OverallBox returns the minimal axis-aligned box containing every leaf.
// Querying an empty tree panics, since the caller asked for the bounds
// of a set that does not exist.
func (t *Tree) OverallBox() geom.BoundingBox {
	if t.size == 0 {
		panic(colloids.ErrNoSpatialIndex)
	}
	return t.root.box
}

// Inside returns the ids of every leaf whose stored box is fully
// contained in the overall box shrunk by margin on each side.
func (t *Tree) Inside(margin float64) []int {
	shrunk := t.OverallBox().Shrink(margin)
	var out []int
	t.inside(t.root, shrunk, &out)
	return out
}

func (t *Tree) inside(n *treeNode, shrunk geom.BoundingBox, out *[]int) {
	for _, e := range n.entries {
		if !shrunk.Overlaps(e.box) {
			continue
		}
		if n.leaf {
			if shrunk.ContainsBox(e.box) {
				*out = append(*out, e.id)
			}
		} else {
			t.inside(e.child, shrunk, out)
		}
	}
}
