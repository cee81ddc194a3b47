/*
 * positions.go, part of colloids
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yusrishaharin/colloids"
	"github.com/yusrishaharin/colloids/geom"
	"github.com/yusrishaharin/colloids/particles"
)

// ReadDat loads a DAT-format position file: a header line "1\tN\t1",
// a line of three box bounds, and N whitespace-separated xyz lines.
// The compression is selected from name's extension.
func ReadDat(name string, radius float64) (*particles.Particles, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadDat: %v", err), true)
	}
	defer f.Close()
	rc, err := wrapReader(name, f)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadDat: %v", err), true)
	}
	defer rc.Close()
	return readDat(bufio.NewReader(rc), radius)
}

func readDat(r *bufio.Reader, radius float64) (*particles.Particles, error) {
	header, err := r.ReadString('\n')
	if err != nil && header == "" {
		return nil, colloids.NewError("fileio: ReadDat: empty file", true)
	}
	var one, n, two int
	if _, err := fmt.Sscan(strings.TrimSpace(header), &one, &n, &two); err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadDat: malformed header %q: %v", header, err), true)
	}

	boxLine, err := r.ReadString('\n')
	if err != nil && boxLine == "" {
		return nil, colloids.NewError("fileio: ReadDat: missing box line", true)
	}
	var bx, by, bz float64
	if _, err := fmt.Sscan(strings.TrimSpace(boxLine), &bx, &by, &bz); err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadDat: malformed box line %q: %v", boxLine, err), true)
	}
	bb := geom.BoundingBox{Lo: geom.New(0, 0, 0), Hi: geom.New(bx, by, bz)}

	return particles.NewFromBox(r, n, radius, bb)
}

// WriteDat writes p in DAT format: header "1\tN\t1", the box's high
// corner as the box line (the low corner is implicitly zero), then one
// "x\ty\tz" line per position.
func WriteDat(name string, p *particles.Particles) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteDat: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteDat: %v", err), true)
	}
	defer wc.Close()
	return writeDat(wc, p)
}

func writeDat(w io.Writer, p *particles.Particles) error {
	bb := p.BoundingBox()
	if _, err := fmt.Fprintf(w, "1\t%d\t1\n", p.Len()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%g\t%g\t%g\n", bb.Hi.X, bb.Hi.Y, bb.Hi.Z); err != nil {
		return err
	}
	return writePositions(w, p)
}

func writePositions(w io.Writer, p *particles.Particles) error {
	for _, x := range p.Pos {
		if _, err := fmt.Fprintf(w, "%g\t%g\t%g\n", x.X, x.Y, x.Z); err != nil {
			return err
		}
	}
	return nil
}

// WriteGrv writes p in GRV format: a bare sequence of "x\ty\tz" lines,
// with the box recorded nowhere in the file itself.
func WriteGrv(name string, p *particles.Particles) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteGrv: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteGrv: %v", err), true)
	}
	defer wc.Close()
	return writePositions(wc, p)
}

// ReadGrv loads a GRV-format position file of n bare "x y z" lines with
// the given radius, delegating the body parsing to particles.Load and
// only handling the compressed-file plumbing here. The GRV format
// carries no box of its own; particles.Load recomputes one from the
// positions it reads, unlike ReadDat's header-supplied box.
func ReadGrv(name string, n int, radius float64) (*particles.Particles, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadGrv: %v", err), true)
	}
	defer f.Close()
	rc, err := wrapReader(name, f)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadGrv: %v", err), true)
	}
	defer rc.Close()
	return particles.Load(bufio.NewReader(rc), n, radius)
}
