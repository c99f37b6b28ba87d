// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lhagrid/matrix"
)

// ---------- Grid accessors ----------

// Headers returns the two header lines.
func (g *Grid) Headers() [HeaderLines]string { return g.headers }

// NumSubgrids returns the number of subgrids.
func (g *Grid) NumSubgrids() int { return len(g.subgrids) }

// Subgrid returns subgrid i.
func (g *Grid) Subgrid(i int) (*Subgrid, error) {
	if i < 0 || i >= len(g.subgrids) {
		return nil, fmt.Errorf("Grid.Subgrid(%d) of %d: %w", i, len(g.subgrids), ErrOutOfRange)
	}

	return g.subgrids[i], nil
}

// Subgrids returns the subgrids in file order.
func (g *Grid) Subgrids() []*Subgrid {
	out := make([]*Subgrid, len(g.subgrids))
	copy(out, g.subgrids)

	return out
}

// XValuesList returns the x axis of every subgrid.
func (g *Grid) XValuesList() [][]float64 {
	out := make([][]float64, len(g.subgrids))
	for i, s := range g.subgrids {
		out[i] = s.XValues()
	}

	return out
}

// QValuesList returns the q axis of every subgrid.
func (g *Grid) QValuesList() [][]float64 {
	out := make([][]float64, len(g.subgrids))
	for i, s := range g.subgrids {
		out[i] = s.QValues()
	}

	return out
}

// FlavorsList returns the flavor ids of every subgrid.
func (g *Grid) FlavorsList() [][]int {
	out := make([][]int, len(g.subgrids))
	for i, s := range g.subgrids {
		out[i] = s.Flavors()
	}

	return out
}

// PDFValuesList returns the flat pdf values of every subgrid.
func (g *Grid) PDFValuesList() [][]float64 {
	out := make([][]float64, len(g.subgrids))
	for i, s := range g.subgrids {
		out[i] = s.PDFValues()
	}

	return out
}

// Clone returns a deep copy of g.
// Complexity: O(total values).
func (g *Grid) Clone() *Grid {
	out := &Grid{headers: g.headers, subgrids: make([]*Subgrid, len(g.subgrids))}
	for i, s := range g.subgrids {
		out.subgrids[i] = s.Clone()
	}

	return out
}

// Equal reports whether g and other are identical: same headers, same
// subgrid count and, per subgrid, element-wise equal axes, flavors and values.
// NaN values never compare equal.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.headers != other.headers || len(g.subgrids) != len(other.subgrids) {
		return false
	}
	for i := range g.subgrids {
		if !g.subgrids[i].Equal(other.subgrids[i]) {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether g and other have the same headers, subgrid
// count and flavors, and axes and values that agree within
// |a-b| ≤ atol or |a-b| ≤ rtol*max(|a|,|b|).
//
// It is the natural comparison after a write/parse round trip, where axes
// keep 7 and values 9 significant digits.
func (g *Grid) ApproxEqual(other *Grid, rtol, atol float64) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.headers != other.headers || len(g.subgrids) != len(other.subgrids) {
		return false
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	near := func(a, b float64) bool { return scalar.EqualWithinAbsOrRel(a, b, atol, rtol) }
	for i, a := range g.subgrids {
		b := other.subgrids[i]
		if !slices.Equal(a.flavors, b.flavors) ||
			!floats.EqualFunc(a.xValues, b.xValues, near) ||
			!floats.EqualFunc(a.qValues, b.qValues, near) {
			return false
		}
		ok, err := matrix.AllClose(a.values, b.values, rtol, atol)
		if err != nil || !ok {
			return false
		}
	}

	return true
}

// ---------- Subgrid accessors ----------

// XValues returns a copy of the x axis.
func (s *Subgrid) XValues() []float64 { return cloneFloats(s.xValues) }

// QValues returns a copy of the q axis.
func (s *Subgrid) QValues() []float64 { return cloneFloats(s.qValues) }

// Flavors returns a copy of the flavor ids.
func (s *Subgrid) Flavors() []int { return cloneInts(s.flavors) }

// PDFValues returns a copy of the flat row-major value sequence.
func (s *Subgrid) PDFValues() []float64 { return s.values.Values() }

// Table returns a deep copy of the value table (rows × flavors).
func (s *Subgrid) Table() *matrix.Dense { return s.values.CloneDense() }

// Rows returns the number of value rows (M).
func (s *Subgrid) Rows() int { return s.values.Rows() }

// Cols returns the number of flavors (N).
func (s *Subgrid) Cols() int { return s.values.Cols() }

// Len returns the number of pdf values (M*N).
func (s *Subgrid) Len() int { return s.values.Len() }

// Row returns a copy of value row r.
func (s *Subgrid) Row(r int) ([]float64, error) {
	row, err := s.values.Row(r)
	if err != nil {
		return nil, fmt.Errorf("Subgrid.Row: %w: %w", ErrOutOfRange, err)
	}

	return row, nil
}

// Clone returns a deep copy of s.
func (s *Subgrid) Clone() *Subgrid {
	return &Subgrid{
		xValues: cloneFloats(s.xValues),
		qValues: cloneFloats(s.qValues),
		flavors: cloneInts(s.flavors),
		values:  s.values.CloneDense(),
	}
}

// Equal reports whether s and other hold element-wise equal axes, flavors and values.
func (s *Subgrid) Equal(other *Subgrid) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.values.Rows() != other.values.Rows() {
		return false
	}

	return floats.Equal(s.xValues, other.xValues) &&
		floats.Equal(s.qValues, other.qValues) &&
		slices.Equal(s.flavors, other.flavors) &&
		floats.Equal(s.values.RawRowMajor(), other.values.RawRowMajor())
}
