// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels over same-shape Dense operands: a fold across N
//     operands (the building block of grid combination) and a tolerance
//     comparison.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1 over the row-major buffer.
//   - No hidden allocations beyond the output Dense.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Call-site tags.
const (
	opFold     = "Fold"
	opAllClose = "AllClose"
)

// FoldStep folds one operand value into the accumulator. k is the operand
// position in the srcs slice given to Fold.
type FoldStep func(acc, v float64, k int) float64

// Fold computes out[idx] = step(...step(step(init, srcs[0][idx], 0), srcs[1][idx], 1)..., srcs[n-1][idx], n-1)
// for every flat index idx. All operands must be non-nil and share one shape.
//
// Errors:
//   - ErrNilMatrix when srcs is empty, contains nil, or step is nil.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity: Time O(n*r*c), Space O(r*c) for the output.
func Fold(srcs []*Dense, init float64, step FoldStep) (*Dense, error) {
	if len(srcs) == 0 || step == nil {
		return nil, matrixErrorf(opFold, ErrNilMatrix)
	}
	for _, s := range srcs {
		if err := ValidateBinarySameShape(srcs[0], s); err != nil {
			return nil, matrixErrorf(opFold, err)
		}
	}

	out, err := NewDense(srcs[0].r, srcs[0].c)
	if err != nil {
		return nil, matrixErrorf(opFold, err)
	}

	var acc float64
	for idx := range out.data {
		acc = init
		for k, s := range srcs {
			acc = step(acc, s.data[idx], k)
		}
		out.data[idx] = acc
	}

	return out, nil
}

// AllClose reports whether every pair satisfies |a-b| ≤ atol or |a-b| ≤ rtol*max(|a|,|b|).
// Shapes must match. Negative tolerances are taken by absolute value.
//
// Errors:
//   - ErrNaNInf for a non-finite tolerance.
//   - ErrNilMatrix / ErrDimensionMismatch from the shape validators.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	return floats.EqualFunc(a.data, b.data, func(x, y float64) bool {
		return scalar.EqualWithinAbsOrRel(x, y, atol, rtol)
	}), nil
}

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}
