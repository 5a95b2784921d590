// Package pgz reads and writes PGZ, the compact archival container for
// forecast grids.
//
// Layout (bit-exact):
//
//	PGZ <width> <height> <maxValue>\n
//	zlib( int32be(sample[0,0]) int32be(sample[1,0]) ... int32be(sample[w-1,h-1]) )
//
// The header is a single newline-terminated ASCII line; everything after the
// newline is the zlib stream (compression level 9, default window) of
// width*height big-endian two's-complement samples in row-major order, row 0
// first. maxValue is declared but not enforced; writers emit 2^32-1.
//
// Round trip: Decode(Encode(g)) reproduces g exactly for every grid.
//
// Errors:
//
//   - grid.ErrInvalidDimensions: Encode of a nil grid.
//   - grid.ErrFormat:            header missing or not matching the PGZ pattern.
//   - ErrDecompression:          payload corrupt, or not inflating to exactly
//     4*width*height bytes.
package pgz
