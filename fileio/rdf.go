/*
 * rdf.go, part of colloids
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
	"os"
	"strings"

	"github.com/yusrishaharin/colloids"
	"github.com/yusrishaharin/colloids/particles"
)

// WriteRdf writes a header line "#r\tg(r)" followed by one "r\tg(r)"
// line per bin of rdf.
func WriteRdf(name string, rdf *particles.Rdf) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteRdf: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteRdf: %v", err), true)
	}
	defer wc.Close()

	if _, err := fmt.Fprint(wc, "#r\tg(r)\n"); err != nil {
		return err
	}
	for i, r := range rdf.R {
		if _, err := fmt.Fprintf(wc, "%g\t%g\n", r, rdf.G[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadRdf parses the format written by WriteRdf back into parallel r
// and g(r) slices, skipping the leading "#"-prefixed header line.
func ReadRdf(name string) (r, g []float64, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, colloids.NewError(fmt.Sprintf("fileio: ReadRdf: %v", err), true)
	}
	defer f.Close()
	rc, err := wrapReader(name, f)
	if err != nil {
		return nil, nil, colloids.NewError(fmt.Sprintf("fileio: ReadRdf: %v", err), true)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var ri, gi float64
		if _, err := fmt.Sscan(line, &ri, &gi); err != nil {
			return nil, nil, colloids.NewError(fmt.Sprintf("fileio: ReadRdf: malformed line %q: %v", line, err), true)
		}
		r = append(r, ri)
		g = append(g, gi)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, colloids.NewError(fmt.Sprintf("fileio: ReadRdf: %v", err), true)
	}
	return r, g, nil
}

// WriteGl writes the bond-orientational correlation function g_l(r) in
// the same "#r\tg(r)" layout as WriteRdf, since the two are binned
// identically and differ only in what each bin accumulates.
func WriteGl(name string, gl *particles.Gl) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteGl: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteGl: %v", err), true)
	}
	defer wc.Close()

	if _, err := fmt.Fprint(wc, "#r\tg(r)\n"); err != nil {
		return err
	}
	for i, r := range gl.R {
		if _, err := fmt.Fprintf(wc, "%g\t%g\n", r, gl.G[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadGl parses the format written by WriteGl; it is ReadRdf under
// another name, kept distinct so callers reading a g_l(r) file don't
// have to reach into the rdf API to do it.
func ReadGl(name string) (r, g []float64, err error) {
	return ReadRdf(name)
}
