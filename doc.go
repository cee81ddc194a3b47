/*
 * doc.go, part of colloids
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package colloids carries the error type and panic-message constants
// shared by the geom, rtree, particles, boo, cluster, traj, reconstruct
// and fileio packages that together analyze colloidal particle
// configurations: neighborhoods, bond-orientational-order descriptors,
// topological cluster motifs, trajectories, and 2D-to-3D reconstruction.
package colloids
