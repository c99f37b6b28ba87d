// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Decide whether N grids may be combined element by element.
//  - Fail fast: the first disagreement is returned and nothing after it is checked.
//
// Check order (per non-reference grid, grids[0] is the reference):
//  1. subgrid count
//  2. header lines
//  3. x values, per subgrid
//  4. q values, per subgrid
//  5. flavor ids, per subgrid
//  6. number of pdf values, per subgrid
//
// All comparisons are exact; there is no tolerance on axes.

package grid

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lhagrid/matrix"
)

// Field names the part of a grid that failed a compatibility check.
type Field int

const (
	// FieldSubgridCount is the number of subgrids.
	FieldSubgridCount Field = iota
	// FieldHeaders is the pair of header lines.
	FieldHeaders
	// FieldXValues is a subgrid's x axis.
	FieldXValues
	// FieldQValues is a subgrid's q axis.
	FieldQValues
	// FieldFlavors is a subgrid's flavor id list.
	FieldFlavors
	// FieldValueCount is a subgrid's number of pdf values.
	FieldValueCount
)

// String returns a human-readable field name.
func (f Field) String() string {
	switch f {
	case FieldSubgridCount:
		return "number of subgrids"
	case FieldHeaders:
		return "headers"
	case FieldXValues:
		return "x values"
	case FieldQValues:
		return "q values"
	case FieldFlavors:
		return "flavor indices"
	case FieldValueCount:
		return "number of pdf values"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// MismatchError reports the first compatibility check that failed.
// It matches ErrStructuralMismatch under errors.Is.
type MismatchError struct {
	// Input is the zero-based position of the offending grid; the reference is input 0.
	Input int
	// Subgrid is the zero-based subgrid index, or -1 for grid-level fields.
	Subgrid int
	// Field is the part that disagreed.
	Field Field
}

// Error implements error.
func (e *MismatchError) Error() string {
	if e.Subgrid < 0 {
		return fmt.Sprintf("grid: input %d: %s do not match input 0: %v", e.Input, e.Field, ErrStructuralMismatch)
	}

	return fmt.Sprintf("grid: input %d subgrid %d: %s do not match input 0: %v", e.Input, e.Subgrid, e.Field, ErrStructuralMismatch)
}

// Unwrap lets errors.Is match ErrStructuralMismatch.
func (e *MismatchError) Unwrap() error { return ErrStructuralMismatch }

// ValidateCompatible checks that all grids share everything except pdf values.
//
// Errors:
//   - ErrInsufficientInputs when len(grids) < 2.
//   - ErrNilGrid when any grid is nil.
//   - *MismatchError (ErrStructuralMismatch) on the first failing check.
//
// Complexity: O(total axis and flavor length).
func ValidateCompatible(grids []*Grid) error {
	if len(grids) < 2 {
		return fmt.Errorf("ValidateCompatible: got %d: %w", len(grids), ErrInsufficientInputs)
	}
	ref := grids[0]
	if ref == nil {
		return fmt.Errorf("ValidateCompatible: input 0: %w", ErrNilGrid)
	}
	for i := 1; i < len(grids); i++ {
		if grids[i] == nil {
			return fmt.Errorf("ValidateCompatible: input %d: %w", i, ErrNilGrid)
		}
		if err := compareTo(ref, grids[i], i); err != nil {
			return err
		}
	}

	return nil
}

// compareTo runs the six checks of g against ref in the documented order.
func compareTo(ref, g *Grid, input int) error {
	mismatch := func(sub int, f Field) error {
		return &MismatchError{Input: input, Subgrid: sub, Field: f}
	}

	if len(g.subgrids) != len(ref.subgrids) {
		return mismatch(-1, FieldSubgridCount)
	}
	if g.headers != ref.headers {
		return mismatch(-1, FieldHeaders)
	}
	for j := range ref.subgrids {
		if !floats.Equal(g.subgrids[j].xValues, ref.subgrids[j].xValues) {
			return mismatch(j, FieldXValues)
		}
	}
	for j := range ref.subgrids {
		if !floats.Equal(g.subgrids[j].qValues, ref.subgrids[j].qValues) {
			return mismatch(j, FieldQValues)
		}
	}
	for j := range ref.subgrids {
		if !slices.Equal(g.subgrids[j].flavors, ref.subgrids[j].flavors) {
			return mismatch(j, FieldFlavors)
		}
	}
	for j := range ref.subgrids {
		// Flavors already agree, so equal shape means equal value count.
		if err := matrix.ValidateSameShape(g.subgrids[j].values, ref.subgrids[j].values); err != nil {
			return mismatch(j, FieldValueCount)
		}
	}

	return nil
}
