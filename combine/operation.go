// SPDX-License-Identifier: MIT

package combine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lhagrid/matrix"
)

// Operation names an element-wise combination.
type Operation string

// Supported operations.
const (
	// Add is the weighted sum Σ w_f·v_f.
	Add Operation = "add"
	// Multiply is the weighted product Π clamp(v_f)^w_f.
	Multiply Operation = "multiply"
	// Average is the unweighted mean Σ v_f / n.
	Average Operation = "average"
)

// Operations returns the supported operations in a stable order.
func Operations() []Operation {
	return []Operation{Add, Multiply, Average}
}

// ParseOperation maps a name to an Operation. Names are matched exactly.
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}

	return op, nil
}

// Valid reports whether op is one of Operations().
func (op Operation) Valid() bool {
	switch op {
	case Add, Multiply, Average:
		return true
	}

	return false
}

// String implements fmt.Stringer.
func (op Operation) String() string { return string(op) }

// reducer folds the n operand values at one flat index into an output value:
// out = finish(step(...step(init, v_0, 0)..., v_{n-1}, n-1)).
type reducer struct {
	init   float64
	step   matrix.FoldStep
	finish func(acc float64) float64 // nil means identity
}

// newReducer binds op to the per-input weights and the clamp threshold.
func newReducer(op Operation, weights []float64, eps float64) (reducer, error) {
	switch op {
	case Add:
		return reducer{
			init: 0,
			step: func(acc, v float64, k int) float64 { return acc + weights[k]*v },
		}, nil
	case Multiply:
		return reducer{
			init: 1,
			step: func(acc, v float64, k int) float64 { return acc * math.Pow(clamp(v, eps), weights[k]) },
		}, nil
	case Average:
		n := float64(len(weights))
		return reducer{
			init:   0,
			step:   func(acc, v float64, _ int) float64 { return acc + v },
			finish: func(acc float64) float64 { return acc / n },
		}, nil
	default:
		return reducer{}, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
}

// clamp keeps v away from zero: values with |v| < eps become ±eps with v's sign.
func clamp(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return math.Copysign(eps, v)
	}

	return v
}
