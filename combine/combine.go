// SPDX-License-Identifier: MIT

package combine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lhagrid/grid"
	"github.com/katalvlaran/lhagrid/matrix"
)

// Combine merges grids element by element into a new Grid.
//
// Stages:
//  1. grid.ValidateCompatible(grids): at least two grids, identical structure.
//  2. Resolve weights (default DefaultWeight each) and bind op to a reducer.
//  3. Per subgrid, fold the value tables of all inputs with matrix.Fold.
//  4. Build the output from deep copies of grids[0]'s headers, axes and flavors.
//
// Inputs are never modified and the output shares no memory with them.
//
// Errors:
//   - grid.ErrInsufficientInputs, grid.ErrNilGrid, grid.ErrStructuralMismatch from validation.
//   - ErrWeightCount, ErrInvalidWeight for bad weights.
//   - ErrUnknownOperation for an op outside Operations().
//
// Complexity: O(len(grids) · total values).
func Combine(op Operation, grids []*grid.Grid, opts ...Option) (*grid.Grid, error) {
	if err := grid.ValidateCompatible(grids); err != nil {
		return nil, fmt.Errorf("combine %s: %w", op, err)
	}
	o := gatherOptions(opts)

	weights, err := resolveWeights(o.weights, len(grids))
	if err != nil {
		return nil, fmt.Errorf("combine %s: %w", op, err)
	}
	red, err := newReducer(op, weights, o.eps)
	if err != nil {
		return nil, fmt.Errorf("combine %s: %w", op, err)
	}

	ref := grids[0]
	out := make([]*grid.Subgrid, ref.NumSubgrids())
	tables := make([]*matrix.Dense, len(grids))
	for i := range out {
		refSub, err := ref.Subgrid(i)
		if err != nil {
			return nil, fmt.Errorf("combine %s: %w", op, err)
		}
		for k, g := range grids {
			s, err := g.Subgrid(i)
			if err != nil {
				return nil, fmt.Errorf("combine %s: input %d: %w", op, k, err)
			}
			tables[k] = s.Table()
		}

		table, err := matrix.Fold(tables, red.init, red.step)
		if err != nil {
			return nil, fmt.Errorf("combine %s: subgrid %d: %w", op, i, err)
		}
		if red.finish != nil {
			table.Apply(func(_, _ int, v float64) float64 { return red.finish(v) })
		}

		out[i], err = grid.NewSubgridTable(refSub.XValues(), refSub.QValues(), refSub.Flavors(), table)
		if err != nil {
			return nil, fmt.Errorf("combine %s: subgrid %d: %w", op, i, err)
		}
	}

	return grid.New(ref.Headers(), out)
}

// resolveWeights returns one weight per input.
func resolveWeights(w []float64, n int) ([]float64, error) {
	if w == nil {
		out := make([]float64, n)
		for i := range out {
			out[i] = DefaultWeight
		}

		return out, nil
	}
	if len(w) != n {
		return nil, fmt.Errorf("%d weights for %d inputs: %w", len(w), n, ErrWeightCount)
	}
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("weight %d is %v: %w", i, v, ErrInvalidWeight)
		}
	}

	return w, nil
}
