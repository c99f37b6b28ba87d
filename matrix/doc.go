// Package matrix offers the dense row-major float64 table used to hold
// subgrid values.
//
// The matrix package provides:
//
//   - Dense, an M×N table stored as one flat slice where element (r, c)
//     lives at offset r*N + c. The flat slice is the exact order in which
//     values appear in a grid file.
//   - Shape validators (ValidateNotNil, ValidateSameShape, ...) that return
//     sentinel errors for errors.Is matching.
//   - Element-wise kernels: Fold reduces N same-shape tables into one, and
//     AllClose compares two tables within a tolerance.
//
// No function panics on user input; every failure is a wrapped sentinel.
package matrix
