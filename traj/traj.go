/*
 * traj.go, part of colloids
 *
 * Copyright 2024 the colloids authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 */

// Package traj links particle detections across consecutive frames into
// trajectories by greedy shortest-distance bipartite matching.
package traj

import (
	"sort"

	"github.com/yusrishaharin/colloids"
)

// Traj is a single trajectory: a starting frame index and the ascending
// sequence of position indices it holds, one per frame, with no gaps.
type Traj struct {
	Start     int
	Positions []int
}

func newTraj(start, pos int) Traj {
	return Traj{Start: start, Positions: []int{pos}}
}

func (t *Traj) pushBack(pos int) {
	t.Positions = append(t.Positions, pos)
}

// Finish returns the frame index one past the trajectory's last position.
func (t Traj) Finish() int {
	return t.Start + len(t.Positions)
}

// Link is a candidate bond between a position of the previous frame and
// a position of the new frame, carrying the distance that greedy
// matching sorts on.
type Link struct {
	From, To int
	Distance float64
}

// TrajIndex maintains a dual mapping: Tr2Pos maps a trajectory id to its
// sequence of positions, Pos2Tr maps a frame index to the trajectory id
// holding each of that frame's positions.
type TrajIndex struct {
	Tr2Pos []Traj
	Pos2Tr [][]int
}

// New builds a TrajIndex seeded with nbInitial singleton trajectories,
// one per position of frame 0.
func New(nbInitial int) *TrajIndex {
	idx := &TrajIndex{
		Tr2Pos: make([]Traj, nbInitial),
		Pos2Tr: make([][]int, 1),
	}
	idx.Pos2Tr[0] = make([]int, nbInitial)
	for p := 0; p < nbInitial; p++ {
		idx.Tr2Pos[p] = newTraj(0, p)
		idx.Pos2Tr[0][p] = p
	}
	return idx
}

// AddFrame links a new frame of frameSize positions onto the index using
// the candidate bonds in links. Links are sorted by ascending distance
// and accepted greedily: a link is taken only if neither its From nor
// its To position has already been claimed by an earlier, shorter link.
// Every previous-frame position left unlinked terminates its trajectory
// by construction; every new-frame position left unlinked starts a new
// singleton trajectory.
func (idx *TrajIndex) AddFrame(frameSize int, links []Link) error {
	for _, l := range links {
		if l.To >= frameSize || l.To < 0 {
			return colloids.NewError("traj: AddFrame: a link's To index is out of range for the new frame size", true)
		}
	}
	prev := idx.Pos2Tr[len(idx.Pos2Tr)-1]
	for _, l := range links {
		if l.From >= len(prev) || l.From < 0 {
			return colloids.NewError("traj: AddFrame: a link's From index is out of range for the previous frame", true)
		}
	}

	sorted := make([]Link, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Distance < sorted[j].Distance })

	fromUsed := make([]bool, len(prev))
	toUsed := make([]bool, frameSize)
	newFrame := make([]int, frameSize)

	for _, l := range sorted {
		if fromUsed[l.From] || toUsed[l.To] {
			continue
		}
		fromUsed[l.From] = true
		toUsed[l.To] = true
		tr := prev[l.From]
		newFrame[l.To] = tr
		idx.Tr2Pos[tr].pushBack(l.To)
	}

	for p := 0; p < frameSize; p++ {
		if toUsed[p] {
			continue
		}
		tr := len(idx.Tr2Pos)
		newFrame[p] = tr
		idx.Tr2Pos = append(idx.Tr2Pos, newTraj(len(idx.Pos2Tr), p))
	}

	idx.Pos2Tr = append(idx.Pos2Tr, newFrame)
	return nil
}

// NumTrajectories returns the number of trajectories known to the index.
func (idx *TrajIndex) NumTrajectories() int {
	return len(idx.Tr2Pos)
}

// NumFrames returns the number of frames the index has absorbed.
func (idx *TrajIndex) NumFrames() int {
	return len(idx.Pos2Tr)
}
