// Package raspdata decodes the row-oriented ASCII grids published by RASP
// (Regional Atmospheric Soaring Prediction) sites.
//
// A grid file starts with a fixed number of header lines (the title and two
// lines of metadata) followed by one line per grid row, each holding width
// space-separated signed integers. Width is taken from the first data row
// and height is the number of data rows. Files served by a RASP site carry
// an extra leading separator line; decode those with WithProviderHeader.
// There is no encoder: the format is only ever read from the provider, and
// archived copies are written as PGZ instead (see package pgz).
//
// Parse sniffs the input and accepts either format, which lets archive
// directories hold a mix of raw and compressed files.
//
// Errors:
//
//   - grid.ErrFormat: missing header, no data rows, a row whose column count
//     differs from the first row, or a token that is not a 32-bit integer.
//     The wrapped message names the 1-based data row and column.
package raspdata
