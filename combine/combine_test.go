// SPDX-License-Identifier: MIT

package combine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lhagrid/combine"
	"github.com/katalvlaran/lhagrid/grid"
)

var testHeaders = [2]string{"PdfType: central", "Format: lhagrid1"}

// makeGrid builds a one-subgrid grid on x=[0.1,0.5], q=[10,100], flavors=[1,2].
func makeGrid(t *testing.T, values ...float64) *grid.Grid {
	t.Helper()
	s, err := grid.NewSubgrid([]float64{0.1, 0.5}, []float64{10, 100}, []int{1, 2}, values)
	require.NoError(t, err)
	g, err := grid.New(testHeaders, []*grid.Subgrid{s})
	require.NoError(t, err)

	return g
}

func values(t *testing.T, g *grid.Grid) []float64 {
	t.Helper()
	s, err := g.Subgrid(0)
	require.NoError(t, err)

	return s.PDFValues()
}

// TestCombine_WeightedAdd is the two-file weighted sum scenario.
func TestCombine_WeightedAdd(t *testing.T) {
	t.Parallel()

	a := makeGrid(t, 1, 2, 3, 4)
	b := makeGrid(t, 1, 2, 3, 4)

	out, err := combine.Combine(combine.Add, []*grid.Grid{a, b}, combine.WithWeights(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6, 9, 12}, values(t, out))
	assert.Equal(t, a.Headers(), out.Headers())
	assert.Equal(t, a.XValuesList(), out.XValuesList())
	assert.Equal(t, a.QValuesList(), out.QValuesList())
	assert.Equal(t, a.FlavorsList(), out.FlavorsList())
}

// TestCombine_Add covers default weights and the linearity of the sum.
func TestCombine_Add(t *testing.T) {
	t.Parallel()

	g := makeGrid(t, 0.5, -1, 2e-3, 7)
	h := makeGrid(t, 1, 1, 1, 1)

	doubled, err := combine.Combine(combine.Add, []*grid.Grid{g, g})
	require.NoError(t, err)
	want := values(t, g)
	floats.Scale(2, want)
	assert.Equal(t, want, values(t, doubled))

	mixed, err := combine.Combine(combine.Add, []*grid.Grid{g, h, g}, combine.WithWeights(0.5, -3, 1.5))
	require.NoError(t, err)
	got := values(t, mixed)
	assert.InDelta(t, 2*floats.Sum(values(t, g))-3*floats.Sum(values(t, h)), floats.Sum(got), 1e-12)
	assert.InDeltaSlice(t, []float64{-2, -5, -2.996, 11}, got, 1e-12)
}

// TestCombine_Multiply covers identities, fractional weights and the clamp.
func TestCombine_Multiply(t *testing.T) {
	t.Parallel()

	g := makeGrid(t, 0.25, 2, 3, 4)
	ones := makeGrid(t, 1, 1, 1, 1)

	t.Run("unit weight reproduces values", func(t *testing.T) {
		t.Parallel()
		out, err := combine.Combine(combine.Multiply, []*grid.Grid{g, ones})
		require.NoError(t, err)
		assert.Equal(t, values(t, g), values(t, out))
	})

	t.Run("zero weight drops an input", func(t *testing.T) {
		t.Parallel()
		out, err := combine.Combine(combine.Multiply, []*grid.Grid{g, g}, combine.WithWeights(1, 0))
		require.NoError(t, err)
		assert.Equal(t, values(t, g), values(t, out))
	})

	t.Run("square root", func(t *testing.T) {
		t.Parallel()
		out, err := combine.Combine(combine.Multiply, []*grid.Grid{g, g}, combine.WithWeights(0.5, 0.5))
		require.NoError(t, err)
		assert.InDeltaSlice(t, values(t, g), values(t, out), 1e-12)
	})

	t.Run("clamped value is exponentiated", func(t *testing.T) {
		t.Parallel()
		tiny := makeGrid(t, 0, 1e-12, -1e-12, 5e-11)
		out, err := combine.Combine(combine.Multiply, []*grid.Grid{tiny, ones}, combine.WithWeights(2, 1))
		require.NoError(t, err)
		got := values(t, out)
		// Every operand is below the threshold, so each becomes (±1e-10)^2.
		assert.InDeltaSlice(t, []float64{1e-20, 1e-20, 1e-20, 1e-20}, got, 1e-30)
	})

	t.Run("clamp keeps sign", func(t *testing.T) {
		t.Parallel()
		tiny := makeGrid(t, -1e-12, 1e-12, -0.5, 0.5)
		out, err := combine.Combine(combine.Multiply, []*grid.Grid{tiny, ones})
		require.NoError(t, err)
		assert.Equal(t, []float64{-1e-10, 1e-10, -0.5, 0.5}, values(t, out))
	})

	t.Run("custom epsilon", func(t *testing.T) {
		t.Parallel()
		out, err := combine.Combine(combine.Multiply, []*grid.Grid{g, ones}, combine.WithEpsilon(1))
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3, 4}, values(t, out))

		out, err = combine.Combine(combine.Multiply, []*grid.Grid{makeGrid(t, 0, 1, 1, 1), ones}, combine.WithEpsilon(0))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 1, 1}, values(t, out))
	})
}

// TestCombine_Average checks the mean and that weights are ignored.
func TestCombine_Average(t *testing.T) {
	t.Parallel()

	g := makeGrid(t, 1, 2, 3, 4)

	same, err := combine.Combine(combine.Average, []*grid.Grid{g, g, g})
	require.NoError(t, err)
	assert.InDeltaSlice(t, values(t, g), values(t, same), 1e-15)

	h := makeGrid(t, 3, 4, 5, 6)
	weighted, err := combine.Combine(combine.Average, []*grid.Grid{g, h}, combine.WithWeights(10, -7))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4, 5}, values(t, weighted))
}

// TestCombine_Errors covers every failure path and its sentinel.
func TestCombine_Errors(t *testing.T) {
	t.Parallel()

	g := makeGrid(t, 1, 2, 3, 4)
	s, err := grid.NewSubgrid([]float64{0.1, 0.5}, []float64{10, 100}, []int{1, 3}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	otherFlavors, err := grid.New(testHeaders, []*grid.Subgrid{s})
	require.NoError(t, err)

	tests := []struct {
		name  string
		op    combine.Operation
		grids []*grid.Grid
		opts  []combine.Option
		want  error
	}{
		{"no inputs", combine.Add, nil, nil, grid.ErrInsufficientInputs},
		{"one input", combine.Add, []*grid.Grid{g}, nil, grid.ErrInsufficientInputs},
		{"nil input", combine.Add, []*grid.Grid{g, nil}, nil, grid.ErrNilGrid},
		{"flavor mismatch", combine.Multiply, []*grid.Grid{g, otherFlavors}, nil, grid.ErrStructuralMismatch},
		{"unknown operation", combine.Operation("subtract"), []*grid.Grid{g, g}, nil, combine.ErrUnknownOperation},
		{"too few weights", combine.Add, []*grid.Grid{g, g}, []combine.Option{combine.WithWeights(1)}, combine.ErrWeightCount},
		{"empty weights", combine.Add, []*grid.Grid{g, g}, []combine.Option{combine.WithWeights()}, combine.ErrWeightCount},
		{"nan weight", combine.Add, []*grid.Grid{g, g}, []combine.Option{combine.WithWeights(1, math.NaN())}, combine.ErrInvalidWeight},
		{"inf weight", combine.Multiply, []*grid.Grid{g, g}, []combine.Option{combine.WithWeights(math.Inf(1), 1)}, combine.ErrInvalidWeight},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := combine.Combine(tc.op, tc.grids, tc.opts...)
			require.Nil(t, out)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}

	_, err = combine.Combine(combine.Operation("subtract"), []*grid.Grid{g, g})
	assert.Contains(t, err.Error(), `combine subtract: `)

	_, err = combine.Combine(combine.Add, []*grid.Grid{g, g, otherFlavors})
	var me *grid.MismatchError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 2, me.Input)
	assert.Equal(t, 0, me.Subgrid)
	assert.Equal(t, grid.FieldFlavors, me.Field)
}

// TestCombine_InputsUntouched verifies that inputs survive a combination unchanged.
func TestCombine_InputsUntouched(t *testing.T) {
	t.Parallel()

	a := makeGrid(t, 1, 2, 3, 4)
	b := makeGrid(t, 5, 6, 7, 8)
	aBefore, bBefore := a.Clone(), b.Clone()

	for _, op := range combine.Operations() {
		_, err := combine.Combine(op, []*grid.Grid{a, b}, combine.WithWeights(2, 3))
		require.NoError(t, err)
	}
	assert.True(t, a.Equal(aBefore))
	assert.True(t, b.Equal(bBefore))
}

// TestCombine_MultipleSubgrids checks that subgrid order is preserved.
func TestCombine_MultipleSubgrids(t *testing.T) {
	t.Parallel()

	build := func(scale float64) *grid.Grid {
		s0, err := grid.NewSubgrid([]float64{0.1}, []float64{1}, []int{21}, []float64{scale})
		require.NoError(t, err)
		s1, err := grid.NewSubgrid([]float64{0.2, 0.3}, []float64{2}, []int{1, 2, 3}, []float64{scale, 2 * scale, 3 * scale, 4 * scale, 5 * scale, 6 * scale})
		require.NoError(t, err)
		g, err := grid.New(testHeaders, []*grid.Subgrid{s0, s1})
		require.NoError(t, err)

		return g
	}

	out, err := combine.Combine(combine.Add, []*grid.Grid{build(1), build(10)})
	require.NoError(t, err)
	require.Equal(t, 2, out.NumSubgrids())
	assert.Equal(t, [][]float64{{11}, {11, 22, 33, 44, 55, 66}}, out.PDFValuesList())
	assert.Equal(t, [][]int{{21}, {1, 2, 3}}, out.FlavorsList())
}

// TestWithEpsilon_Panics rejects nonsensical thresholds at construction.
func TestWithEpsilon_Panics(t *testing.T) {
	t.Parallel()

	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { combine.WithEpsilon(eps) })
	}
	assert.NotPanics(t, func() { combine.WithEpsilon(0) })
}

// TestParseOperation covers every supported name and a few rejects.
func TestParseOperation(t *testing.T) {
	t.Parallel()

	for _, op := range combine.Operations() {
		got, err := combine.ParseOperation(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
		assert.True(t, got.Valid())
	}
	for _, name := range []string{"", "Add", "sum", " add"} {
		_, err := combine.ParseOperation(name)
		require.ErrorIs(t, err, combine.ErrUnknownOperation)
	}
	assert.Equal(t, []combine.Operation{combine.Add, combine.Multiply, combine.Average}, combine.Operations())
}
