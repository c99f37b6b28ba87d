// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold one subgrid value table as a flat buffer with the explicit index
//     formula i*cols + j, so the flat slice is exactly the file's value order.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep loops deterministic (fixed row-major order, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; FromRowMajor: O(1); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Zero rows are legal (a table header without value rows); zero columns are not,
// because the column count is what rows are split by.
type Dense struct {
	r, c int       // row and column counts (r >= 0, c > 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows < 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRowMajor wraps data as a rows×cols matrix WITHOUT copying.
// The caller hands ownership of data to the returned Dense and must not
// mutate it afterwards.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0, cols <= 0 or len(data) != rows*cols.
//
// Complexity:
//   - Time O(1), Space O(1).
func FromRowMajor(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("FromRowMajor(%d,%d) with %d values: %w", rows, cols, len(data), ErrInvalidDimensions)
	}
	if data == nil {
		data = []float64{}
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromFlat copies values into a new matrix with cols columns; the row count
// is inferred as len(values)/cols.
//
// Errors:
//   - ErrInvalidDimensions when cols <= 0 or len(values) is not a multiple of cols.
func FromFlat(cols int, values []float64) (*Dense, error) {
	if cols <= 0 || len(values)%cols != 0 {
		return nil, fmt.Errorf("FromFlat(%d) with %d values: %w", cols, len(values), ErrInvalidDimensions)
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Dense{r: len(values) / cols, c: cols, data: buf}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols, the length of the flat buffer.
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Values returns a copy of the flat row-major buffer.
// Complexity: O(r*c).
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// RawRowMajor exposes the backing buffer for read-only hot loops.
// Callers MUST NOT write through the returned slice.
func (m *Dense) RawRowMajor() []float64 { return m.data }

// Clone returns a deep copy of the matrix. Returned dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with the concrete return type.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders matrix rows as lines with comma-separated values.
// Intended for logs and debugging, not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Apply replaces each element with f(i,j,v) in place, row-major.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
