/*
 * bonds.go, part of colloids
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

// WriteBonds writes one "high\tlow" line per bond, high first, the same
// order ReadBonds expects back.
func WriteBonds(name string, bonds particles.BondSet) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteBonds: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteBonds: %v", err), true)
	}
	defer wc.Close()
	for _, b := range bonds {
		if _, err := fmt.Fprintf(wc, "%d\t%d\n", b.High, b.Low); err != nil {
			return err
		}
	}
	return nil
}

// ReadBonds parses a bonds file of "high low" integer pairs, one per
// line, sorting and deduplicating the result through NewBondSet.
func ReadBonds(name string) (particles.BondSet, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadBonds: %v", err), true)
	}
	defer f.Close()
	rc, err := wrapReader(name, f)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadBonds: %v", err), true)
	}
	defer rc.Close()

	var bonds []particles.Bond
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var high, low int
		if _, err := fmt.Sscan(line, &high, &low); err != nil {
			return nil, colloids.NewError(fmt.Sprintf("fileio: ReadBonds: malformed line %q: %v", line, err), true)
		}
		bonds = append(bonds, particles.NewBond(high, low))
	}
	if err := scanner.Err(); err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadBonds: %v", err), true)
	}
	return particles.NewBondSet(bonds), nil
}
