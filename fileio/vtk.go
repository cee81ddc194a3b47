/*
 * vtk.go, part of colloids
 *
 * Copyright 2024 the colloids authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 */

package fileio

import (
	"fmt"
	"os"

	"github.com/yusrishaharin/colloids"
	"github.com/yusrishaharin/colloids/geom"
	"github.com/yusrishaharin/colloids/particles"
)

// ScalarField names one POINT_DATA SCALARS array; Values must have one
// entry per particle.
type ScalarField struct {
	Name   string
	Values []float64
}

// VectorField names one POINT_DATA VECTORS array; Values must have one
// entry per particle.
type VectorField struct {
	Name   string
	Values []geom.Vec3
}

// WriteVTK writes p as an ASCII VTK 3.0 PolyData dataset: a POINTS
// section, an optional LINES section listing bonds, and a POINT_DATA
// block carrying every given scalar and vector field in order. bonds
// may be nil to omit the LINES section.
func WriteVTK(name string, p *particles.Particles, bonds particles.BondSet, scalars []ScalarField, vectors []VectorField) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteVTK: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteVTK: %v", err), true)
	}
	defer wc.Close()

	n := p.Len()
	if _, err := fmt.Fprint(wc, "# vtk DataFile Version 3.0\ncolloids export\nASCII\nDATASET POLYDATA\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(wc, "POINTS %d double\n", n); err != nil {
		return err
	}
	for _, x := range p.Pos {
		if _, err := fmt.Fprintf(wc, "%g %g %g\n", x.X, x.Y, x.Z); err != nil {
			return err
		}
	}

	if len(bonds) > 0 {
		if _, err := fmt.Fprintf(wc, "LINES %d %d\n", len(bonds), 3*len(bonds)); err != nil {
			return err
		}
		for _, b := range bonds {
			if _, err := fmt.Fprintf(wc, "2 %d %d\n", b.Low, b.High); err != nil {
				return err
			}
		}
	}

	if len(scalars) == 0 && len(vectors) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(wc, "POINT_DATA %d\n", n); err != nil {
		return err
	}
	for _, s := range scalars {
		if len(s.Values) != n {
			return colloids.NewError(fmt.Sprintf("fileio: WriteVTK: scalar field %q has %d values, want %d", s.Name, len(s.Values), n), true)
		}
		if _, err := fmt.Fprintf(wc, "SCALARS %s double 1\nLOOKUP_TABLE default\n", s.Name); err != nil {
			return err
		}
		for _, v := range s.Values {
			if _, err := fmt.Fprintf(wc, "%g\n", v); err != nil {
				return err
			}
		}
	}
	for _, v := range vectors {
		if len(v.Values) != n {
			return colloids.NewError(fmt.Sprintf("fileio: WriteVTK: vector field %q has %d values, want %d", v.Name, len(v.Values), n), true)
		}
		if _, err := fmt.Fprintf(wc, "VECTORS %s double\n", v.Name); err != nil {
			return err
		}
		for _, x := range v.Values {
			if _, err := fmt.Fprintf(wc, "%g %g %g\n", x.X, x.Y, x.Z); err != nil {
				return err
			}
		}
	}
	return nil
}
