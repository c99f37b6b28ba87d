// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lhagrid/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
type hide struct{ matrix.Matrix }

// NewFilledDense builds a rows×cols Dense from row-major values, failing the test on error.
func NewFilledDense(t *testing.T, rows, cols int, values []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromFlat(cols, values)
	if err != nil {
		t.Fatalf("FromFlat(%d, %v): %v", cols, values, err)
	}
	if m.Rows() != rows {
		t.Fatalf("FromFlat: got %d rows, want %d", m.Rows(), rows)
	}

	return m
}

// MustAt returns m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
