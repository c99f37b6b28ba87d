// SPDX-License-Identifier: MIT
// Package combine: sentinel error set.

package combine

import "errors"

var (
	// ErrUnknownOperation indicates an operation name or value outside Operations().
	ErrUnknownOperation = errors.New("combine: unknown operation")

	// ErrWeightCount indicates that the number of weights differs from the number of grids.
	ErrWeightCount = errors.New("combine: weight count does not match input count")

	// ErrInvalidWeight indicates a NaN or infinite weight.
	ErrInvalidWeight = errors.New("combine: weight must be finite")
)
