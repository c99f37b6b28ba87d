// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lhagrid/matrix"
)

// HeaderLines is the number of free-text lines at the top of a grid file.
const HeaderLines = 2

// Grid is an ordered sequence of subgrids plus the two header lines of the
// file it was read from (or will be written to).
//
// A Grid is immutable once constructed: every accessor returns copies, so a
// Grid can be shared freely between the validator, the combiner and the writer.
type Grid struct {
	headers  [HeaderLines]string
	subgrids []*Subgrid
}

// Subgrid is one (x axis, q axis, flavor list, value table) block.
//
// The value table has one column per flavor; its flat row-major buffer is
// the pdf value sequence, so row r, column c is PDFValues()[r*N + c] where
// N is the number of flavors.
type Subgrid struct {
	xValues []float64
	qValues []float64
	flavors []int
	values  *matrix.Dense
}

// New builds a Grid from two header lines and an ordered list of subgrids.
// The subgrid pointers are retained; subgrids are immutable so sharing is safe.
//
// Errors:
//   - ErrMalformedHeader if a header line contains '\n' or '\r'.
//   - ErrNilGrid if any subgrid is nil or was not built by NewSubgrid/NewSubgridTable.
func New(headers [HeaderLines]string, subgrids []*Subgrid) (*Grid, error) {
	for i, h := range headers {
		if strings.ContainsAny(h, "\r\n") {
			return nil, fmt.Errorf("grid.New: header line %d contains a line break: %w", i+1, ErrMalformedHeader)
		}
	}
	list := make([]*Subgrid, len(subgrids))
	for i, s := range subgrids {
		if s == nil || s.values == nil {
			return nil, fmt.Errorf("grid.New: subgrid %d: %w", i, ErrNilGrid)
		}
		list[i] = s
	}

	return &Grid{headers: headers, subgrids: list}, nil
}

// NewSubgrid builds a subgrid from its axes, flavors and flat pdf values.
// All slices are copied.
//
// Errors:
//   - ErrMalformedSubgrid if an axis or flavors is empty, or
//     len(pdfValues) % len(flavors) != 0.
func NewSubgrid(xValues, qValues []float64, flavors []int, pdfValues []float64) (*Subgrid, error) {
	if err := validateAxes(xValues, qValues); err != nil {
		return nil, fmt.Errorf("grid.NewSubgrid: %w", err)
	}
	if len(flavors) == 0 {
		return nil, fmt.Errorf("grid.NewSubgrid: no flavors: %w", ErrMalformedSubgrid)
	}
	if len(pdfValues)%len(flavors) != 0 {
		return nil, fmt.Errorf("grid.NewSubgrid: %d values for %d flavors: %w",
			len(pdfValues), len(flavors), ErrMalformedSubgrid)
	}
	table, err := matrix.FromFlat(len(flavors), pdfValues)
	if err != nil {
		return nil, fmt.Errorf("grid.NewSubgrid: %w: %w", ErrMalformedSubgrid, err)
	}

	return &Subgrid{
		xValues: cloneFloats(xValues),
		qValues: cloneFloats(qValues),
		flavors: cloneInts(flavors),
		values:  table,
	}, nil
}

// NewSubgridTable builds a subgrid around an existing value table.
// Axes and flavors are copied; ownership of table passes to the subgrid and
// the caller must not mutate it afterwards.
//
// Errors:
//   - ErrNilGrid if table is nil.
//   - ErrMalformedSubgrid if an axis is empty or the table column count
//     differs from len(flavors).
func NewSubgridTable(xValues, qValues []float64, flavors []int, table *matrix.Dense) (*Subgrid, error) {
	if table == nil {
		return nil, fmt.Errorf("grid.NewSubgridTable: %w", ErrNilGrid)
	}
	if err := validateAxes(xValues, qValues); err != nil {
		return nil, fmt.Errorf("grid.NewSubgridTable: %w", err)
	}
	if len(flavors) == 0 || table.Cols() != len(flavors) {
		return nil, fmt.Errorf("grid.NewSubgridTable: %d columns for %d flavors: %w",
			table.Cols(), len(flavors), ErrMalformedSubgrid)
	}

	return &Subgrid{
		xValues: cloneFloats(xValues),
		qValues: cloneFloats(qValues),
		flavors: cloneInts(flavors),
		values:  table,
	}, nil
}

// validateAxes rejects empty axes; an empty axis line ends a grid file.
func validateAxes(xValues, qValues []float64) error {
	if len(xValues) == 0 {
		return fmt.Errorf("empty x axis: %w", ErrMalformedSubgrid)
	}
	if len(qValues) == 0 {
		return fmt.Errorf("empty q axis: %w", ErrMalformedSubgrid)
	}

	return nil
}

func cloneFloats(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
