// SPDX-License-Identifier: MIT

// Package gridfile reads and writes the LHAPDF text grid format.
//
// A file holds two free-text header lines, a "---" separator and a sequence
// of subgrid blocks. Each block is an x axis line, a q axis line, a flavor id
// line and one row of values per (x, q) node, closed by "---":
//
//	PdfType: central
//	Format: lhagrid1
//	---
//	1.000000E-01 5.000000E-01
//	1.000000E+01 1.000000E+02
//	1 2
//	 1.00000000E+00  2.00000000E+00
//	 3.00000000E+00  4.00000000E+00
//	---
//
// Parse accepts any whitespace between tokens and either line ending.
// Write always emits the canonical layout shown by Write's documentation, so
// Parse(Write(g)) reproduces g to 7 significant digits on the axes and 9 on
// the values.
//
// Failures are reported through ErrFileNotFound, ErrMalformedGrid (as a
// *ParseError carrying the line number) and ErrIO.
package gridfile
