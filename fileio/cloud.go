/*
 * cloud.go, part of colloids
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
	"github.com/yusrishaharin/colloids/boo"
)

// WriteCloud writes the per-particle rotational-invariant summary: a
// header line naming Q4, Q6, W4 and W6, then one line per particle with
// Q4, Q6, Q8, Q10, W4, W6, W8, W10, tab-separated.
func WriteCloud(name string, data []boo.BooData) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteCloud: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteCloud: %v", err), true)
	}
	defer wc.Close()

	if _, err := fmt.Fprint(wc, "#Q4\tQ6\tW4\tW6\n"); err != nil {
		return err
	}
	for _, b := range data {
		q4, w4 := b.Invariants(4)
		q6, w6 := b.Invariants(6)
		q8, w8 := b.Invariants(8)
		q10, w10 := b.Invariants(10)
		if _, err := fmt.Fprintf(wc, "%g\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n",
			q4, q6, q8, q10, w4, w6, w8, w10); err != nil {
			return err
		}
	}
	return nil
}
