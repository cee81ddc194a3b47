/*
 * qlm.go, part of colloids
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
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/yusrishaharin/colloids"
	"github.com/yusrishaharin/colloids/boo"
)

// WriteQlmBinary writes one 72-float64 little-endian record per particle:
// for each l in boo.Degrees, for m in [0,l], the real part followed by
// the imaginary part of q_{l,m}.
func WriteQlmBinary(name string, data []boo.BooData) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteQlmBinary: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteQlmBinary: %v", err), true)
	}
	defer wc.Close()

	buf := make([]byte, 8)
	for _, b := range data {
		for _, l := range boo.Degrees {
			for m := 0; m <= l; m++ {
				v := b.Get(l, m)
				binary.LittleEndian.PutUint64(buf, math.Float64bits(real(v)))
				if _, err := wc.Write(buf); err != nil {
					return err
				}
				binary.LittleEndian.PutUint64(buf, math.Float64bits(imag(v)))
				if _, err := wc.Write(buf); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ReadQlmBinary reads n 72-float64 records written by WriteQlmBinary.
func ReadQlmBinary(name string, n int) ([]boo.BooData, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmBinary: %v", err), true)
	}
	defer f.Close()
	rc, err := wrapReader(name, f)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmBinary: %v", err), true)
	}
	defer rc.Close()

	out := make([]boo.BooData, n)
	buf := make([]byte, 8)
	for i := 0; i < n; i++ {
		var b boo.BooData
		for _, l := range boo.Degrees {
			for m := 0; m <= l; m++ {
				re, err := readFloat64(rc, buf)
				if err != nil {
					return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmBinary: particle %d: %v", i, err), true)
				}
				im, err := readFloat64(rc, buf)
				if err != nil {
					return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmBinary: particle %d: %v", i, err), true)
				}
				b.Set(l, m, complex(re, im))
			}
		}
		out[i] = b
	}
	return out, nil
}

func readFloat64(r io.Reader, buf []byte) (float64, error) {
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}

// WriteQlmAscii writes one line per particle, tab-separated real and
// imaginary parts in the same (l,m) order as WriteQlmBinary.
func WriteQlmAscii(name string, data []boo.BooData) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteQlmAscii: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteQlmAscii: %v", err), true)
	}
	defer wc.Close()

	for _, b := range data {
		fields := make([]string, 0, 72)
		for _, l := range boo.Degrees {
			for m := 0; m <= l; m++ {
				v := b.Get(l, m)
				fields = append(fields, fmt.Sprintf("%g\t%g", real(v), imag(v)))
			}
		}
		if _, err := fmt.Fprintln(wc, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// ReadQlmAscii reads the format written by WriteQlmAscii.
func ReadQlmAscii(name string) ([]boo.BooData, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmAscii: %v", err), true)
	}
	defer f.Close()
	rc, err := wrapReader(name, f)
	if err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmAscii: %v", err), true)
	}
	defer rc.Close()

	var out []boo.BooData
	scanner := bufio.NewScanner(rc)
	for lineNo := 0; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		var b boo.BooData
		idx := 0
		for _, l := range boo.Degrees {
			for m := 0; m <= l; m++ {
				if idx+1 >= len(fields) {
					return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmAscii: line %d: too few fields", lineNo), true)
				}
				var re, im float64
				if _, err := fmt.Sscan(fields[idx], &re); err != nil {
					return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmAscii: line %d: %v", lineNo, err), true)
				}
				if _, err := fmt.Sscan(fields[idx+1], &im); err != nil {
					return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmAscii: line %d: %v", lineNo, err), true)
				}
				b.Set(l, m, complex(re, im))
				idx += 2
			}
		}
		out = append(out, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, colloids.NewError(fmt.Sprintf("fileio: ReadQlmAscii: %v", err), true)
	}
	return out, nil
}

// WriteQ6m writes only the l=6 coefficients, one line per particle,
// tab-separated real/imaginary pairs for m in [0,6] -- the restricted
// variant named alongside the full qlm ASCII format.
func WriteQ6m(name string, data []boo.BooData) error {
	f, err := os.Create(name)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteQ6m: %v", err), true)
	}
	defer f.Close()
	wc, err := wrapWriter(name, f)
	if err != nil {
		return colloids.NewError(fmt.Sprintf("fileio: WriteQ6m: %v", err), true)
	}
	defer wc.Close()

	for _, b := range data {
		fields := make([]string, 0, 14)
		for m := 0; m <= 6; m++ {
			v := b.Get(6, m)
			fields = append(fields, fmt.Sprintf("%g\t%g", real(v), imag(v)))
		}
		if _, err := fmt.Fprintln(wc, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}
