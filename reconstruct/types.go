/*
 * types.go, part of colloids
 *
 * Copyright 2024 the colloids authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 */

// Package reconstruct assembles 2D detections stacked over a z-axis into
// 3D particles: it clusters overlapping 2D blobs across frames using the
// same R*-tree and greedy-link machinery as the trajectory linker, then
// splits each resulting cluster at discontinuities in radius or
// intensity using a 1-D multiscale blob finder.
package reconstruct

// Center2D is a 2D detection: a planar position, a scale/radius, and an
// intensity, the unit a Frame is built from.
type Center2D struct {
	X, Y      float64
	R         float64
	Intensity float64
}

// Frame is an ordered sequence of 2D detections belonging to one z-slice.
type Frame []Center2D

// Center3D is one element of a reconstructed 3D particle's track: a
// planar position, the frame index carried as Z, a radius and an
// intensity.
type Center3D struct {
	X, Y, Z   float64
	R         float64
	Intensity float64
}

// Cluster is a sequence of Center3D sorted by frame index (Z), with
// strictly increasing frame indices.
type Cluster []Center3D
