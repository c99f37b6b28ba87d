// SPDX-License-Identifier: MIT

// Package combine merges structurally identical grids into one grid by
// element-wise arithmetic on their pdf values.
//
// Three operations are supported, all expressed as one reduction over the
// inputs at each flat value index i:
//
//	add       out[i] = Σ_f w_f · v_f[i]
//	multiply  out[i] = Π_f clamp(v_f[i]) ^ w_f
//	average   out[i] = (Σ_f v_f[i]) / n
//
// clamp(v) is ±eps (keeping the sign of v) when |v| < eps and v otherwise;
// eps defaults to DefaultEpsilon and is set with WithEpsilon. Weights default
// to 1 and are set with WithWeights; average ignores them.
//
// Combine validates its inputs with grid.ValidateCompatible before any
// arithmetic, so a structural mismatch never yields a partial result.
// Headers, axes and flavor lists of the output are copied from the first input.
package combine
