/*
 * compress.go, part of colloids
 *
 * Copyright 2024 the colloids authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 */

// Package fileio implements thin serializers for particle positions
// (DAT/GRV), bond sets, BOO coefficients (qlm/q6m), the cloud summary
// format, VTK PolyData export, and rdf/g_l(r) files. Every writer
// and reader here is a pure formatting layer over the types exposed by
// particles and boo; none of them touch a spatial index or recompute a
// descriptor.
package fileio

import (
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// compressionOf infers the compression scheme from a filename's last
// character: 'l' is lzw, 'z' is gzip, 'r' is flate, 'f' and 's' are
// zstd, and anything else is treated as uncompressed.
type compression byte

const (
	none compression = 0
	lzwC compression = 'l'
	gzipC compression = 'z'
	flateC compression = 'r'
	zstdC compression = 's'
)

func compressionOf(name string) compression {
	if name == "" {
		return none
	}
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		return lzwC
	case 'z':
		return gzipC
	case 'r':
		return flateC
	case 'f', 's':
		return zstdC
	default:
		return none
	}
}

// wrapWriter wraps w in the compressing io.WriteCloser that name's
// extension selects; a plain nopCloser is returned for uncompressed
// formats so every caller can defer Close unconditionally.
func wrapWriter(name string, w io.Writer) (io.WriteCloser, error) {
	switch compressionOf(name) {
	case lzwC:
		return lzw.NewWriter(w, lzw.MSB, 8), nil
	case gzipC:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case flateC:
		return flate.NewWriter(w, flate.BestCompression)
	case zstdC:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return nopCloser{w}, nil
	}
}

// wrapReader wraps r in the decompressing io.ReadCloser that name's
// extension selects.
func wrapReader(name string, r io.Reader) (io.ReadCloser, error) {
	switch compressionOf(name) {
	case lzwC:
		return lzw.NewReader(r, lzw.MSB, 8), nil
	case gzipC:
		return gzip.NewReader(r)
	case flateC:
		return flate.NewReader(r), nil
	case zstdC:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdCloser{dec}, nil
	default:
		return nopReadCloser{r}, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type nopReadCloser struct{ io.Reader }

func (nopReadCloser) Close() error { return nil }

// zstdCloser adapts *zstd.Decoder, whose Close takes no error, to
// io.ReadCloser.
type zstdCloser struct{ *zstd.Decoder }

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}
