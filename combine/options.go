// SPDX-License-Identifier: MIT

package combine

import "math"

// DefaultEpsilon is the magnitude below which multiply replaces an operand by
// ±DefaultEpsilon (sign preserved) before exponentiation.
const DefaultEpsilon = 1e-10

// DefaultWeight is the weight of every input when WithWeights is not given.
const DefaultWeight = 1.0

const panicEpsilonInvalid = "combine: WithEpsilon: eps must be finite, non-negative"

// Option configures a Combine call.
type Option func(*options)

type options struct {
	weights []float64 // nil until WithWeights; expanded to DefaultWeight per input
	eps     float64
}

func gatherOptions(opts []Option) options {
	o := options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithWeights sets one weight per input grid, in input order. The slice is copied.
// Combine fails with ErrWeightCount if the length differs from the number of
// grids and with ErrInvalidWeight if a weight is NaN or infinite.
// Average accepts weights and ignores them.
func WithWeights(w ...float64) Option {
	cp := make([]float64, len(w))
	copy(cp, w)

	return func(o *options) { o.weights = cp }
}

// WithEpsilon sets the multiply clamp threshold. Zero disables clamping.
// It panics when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}
