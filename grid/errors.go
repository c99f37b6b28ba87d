// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ..."; callers match with errors.Is.

package grid

import "errors"

var (
	// ErrNilGrid indicates that a nil *Grid or *Subgrid was supplied.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrMalformedHeader indicates a header line containing a line break.
	ErrMalformedHeader = errors.New("grid: malformed header")

	// ErrMalformedSubgrid indicates a subgrid with an empty x or q axis, no
	// flavors, or a value count that is not a multiple of its flavor count.
	ErrMalformedSubgrid = errors.New("grid: malformed subgrid")

	// ErrOutOfRange indicates a subgrid or row index outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrInsufficientInputs indicates that fewer than two grids were offered
	// for a compatibility check or a combination.
	ErrInsufficientInputs = errors.New("grid: need at least two grids")

	// ErrStructuralMismatch indicates that two grids differ in anything but
	// their pdf values. The concrete error is a *MismatchError.
	ErrStructuralMismatch = errors.New("grid: structural mismatch")
)
