// SPDX-License-Identifier: MIT

package gridfile_test

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lhagrid/grid"
	"github.com/katalvlaran/lhagrid/gridfile"
)

// mustGrid builds a grid with the given headers and subgrids, failing the test on error.
func mustGrid(t *testing.T, headers [2]string, subs ...*grid.Subgrid) *grid.Grid {
	t.Helper()
	g, err := grid.New(headers, subs)
	require.NoError(t, err)

	return g
}

func mustSubgrid(t *testing.T, x, q []float64, flavors []int, values []float64) *grid.Subgrid {
	t.Helper()
	s, err := grid.NewSubgrid(x, q, flavors, values)
	require.NoError(t, err)

	return s
}

// TestWrite_Golden pins the exact byte layout of a two-subgrid file.
func TestWrite_Golden(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, [2]string{"PdfType: central", "Format: lhagrid1"},
		mustSubgrid(t, []float64{0.1, 0.5}, []float64{10, 100}, []int{1, 2}, []float64{1, 2, 3, 4}),
		mustSubgrid(t, []float64{0.25}, []float64{1e4}, []int{-1, 21, 1}, []float64{-1.5, 0, 1e-12}),
	)

	var buf bytes.Buffer
	require.NoError(t, gridfile.Write(&buf, g))

	want := "PdfType: central\n" +
		"Format: lhagrid1\n" +
		"---\n" +
		"   1.000000E-01    5.000000E-01\n" +
		"   1.000000E+01    1.000000E+02\n" +
		"1 2\n" +
		" 1.00000000E+00  2.00000000E+00\n" +
		" 3.00000000E+00  4.00000000E+00\n" +
		"---\n" +
		"   2.500000E-01\n" +
		"   1.000000E+04\n" +
		"-1 21 1\n" +
		" -1.50000000E+00  0.00000000E+00  1.00000000E-12\n" +
		"---"
	assert.Equal(t, want, buf.String())
}

// TestWrite_NoSubgrids emits headers and the separator only.
func TestWrite_NoSubgrids(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, gridfile.Write(&buf, mustGrid(t, [2]string{"a", "b"})))
	assert.Equal(t, "a\nb\n---\n", buf.String())
}

// TestWrite_NonFinite checks the NAN/INF tokens and that they parse back.
func TestWrite_NonFinite(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, [2]string{"h1", "h2"},
		mustSubgrid(t, []float64{math.Inf(1)}, []float64{1}, []int{1, 2},
			[]float64{math.NaN(), math.Inf(-1)}),
	)

	var buf bytes.Buffer
	require.NoError(t, gridfile.Write(&buf, g))
	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "            INF", lines[3])
	assert.Equal(t, " NAN            -INF", lines[6])

	back, err := gridfile.Parse(&buf)
	require.NoError(t, err)
	s, err := back.Subgrid(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(s.XValues()[0], 1))
	vals := s.PDFValues()
	assert.True(t, math.IsNaN(vals[0]))
	assert.True(t, math.IsInf(vals[1], -1))
}

// TestWrite_NilGrid rejects a nil grid before touching the writer.
func TestWrite_NilGrid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := gridfile.Write(&buf, nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
	assert.Zero(t, buf.Len())
}

// TestWrite_UnwritableGridsRejected checks that grids whose text would not parse
// back cannot be built, and that the edge cases that are accepted round-trip.
func TestWrite_UnwritableGridsRejected(t *testing.T) {
	t.Parallel()

	_, err := grid.New([2]string{"a\nb", "c"}, nil)
	require.ErrorIs(t, err, grid.ErrMalformedHeader)
	_, err = grid.New([2]string{"a", "b\r"}, nil)
	require.ErrorIs(t, err, grid.ErrMalformedHeader)

	_, err = grid.NewSubgrid(nil, []float64{1}, []int{1}, nil)
	require.ErrorIs(t, err, grid.ErrMalformedSubgrid)
	_, err = grid.NewSubgrid([]float64{1}, []float64{}, []int{1}, nil)
	require.ErrorIs(t, err, grid.ErrMalformedSubgrid)

	_, err = grid.New([2]string{"a", "b"}, []*grid.Subgrid{{}})
	require.ErrorIs(t, err, grid.ErrNilGrid)

	g := mustGrid(t, [2]string{"", "  padded  "},
		mustSubgrid(t, []float64{1}, []float64{2}, []int{1}, []float64{3}))
	var buf bytes.Buffer
	require.NoError(t, gridfile.Write(&buf, g))
	back, err := gridfile.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Headers(), back.Headers())
	assert.True(t, g.Equal(back))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWrite_WriterFailure surfaces a failing sink as ErrIO.
func TestWrite_WriterFailure(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, [2]string{"h1", "h2"},
		mustSubgrid(t, []float64{1}, []float64{1}, []int{1}, []float64{1}))
	err := gridfile.Write(failingWriter{}, g)
	require.ErrorIs(t, err, gridfile.ErrIO)
	assert.Contains(t, err.Error(), "disk full")
}

// TestWriteFile_ParseFile round-trips through the filesystem.
func TestWriteFile_ParseFile(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, [2]string{"PdfType: central", "Format: lhagrid1"},
		mustSubgrid(t, []float64{1e-9, 0.123456789, 1}, []float64{1.65, 4.92}, []int{-3, 0, 3},
			[]float64{
				0.1234567891, -2.5e-5, 3,
				4, 5, 6,
				7, 8, 9,
				1, 2, 3,
				4, 5, 6,
				7, 8, 9.87654321012,
			}),
		mustSubgrid(t, []float64{0.5}, []float64{100}, []int{21}, []float64{42}),
	)

	path := filepath.Join(t.TempDir(), "out.dat")
	require.NoError(t, gridfile.WriteFile(g, path))

	back, err := gridfile.ParseFile(path)
	require.NoError(t, err)
	assert.False(t, g.Equal(back), "axes lose digits beyond the seventh")
	assert.True(t, g.ApproxEqual(back, 1e-6, 0))
	assert.Equal(t, g.FlavorsList(), back.FlavorsList())
	assert.Equal(t, g.Headers(), back.Headers())
}

// TestWriteFile_BadPath reports an uncreatable output as ErrIO.
func TestWriteFile_BadPath(t *testing.T) {
	t.Parallel()

	g := mustGrid(t, [2]string{"h1", "h2"})
	err := gridfile.WriteFile(g, filepath.Join(t.TempDir(), "missing", "out.dat"))
	require.ErrorIs(t, err, gridfile.ErrIO)

	require.ErrorIs(t, gridfile.WriteFile(nil, "unused"), grid.ErrNilGrid)
}
