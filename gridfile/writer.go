// SPDX-License-Identifier: MIT

package gridfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lhagrid/grid"
)

// Numeric layout of a written grid.
const (
	axisWidth      = 15 // x and q values: %15.6E
	axisPrecision  = 6
	valueWidth     = 16 // value columns after the first: %16.8E
	valuePrecision = 8
)

// WriteFile writes g to path, creating or truncating the file.
//
// Errors:
//   - grid.ErrNilGrid if g is nil.
//   - ErrIO if the file cannot be created, written or closed.
func WriteFile(g *grid.Grid, path string) (err error) {
	if g == nil {
		return fmt.Errorf("gridfile.WriteFile: %w", grid.ErrNilGrid)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrIO, path, cerr)
		}
	}()

	if err = Write(f, g); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// Write serializes g to w:
//
//   - both header lines verbatim, then "---";
//   - per subgrid: x values and q values as %15.6E joined by single spaces,
//     flavor ids as integers joined by single spaces, then one line per value
//     row whose first column is " %.8E" and remaining columns %16.8E;
//   - "---" after every subgrid, with no newline after the last one.
//
// Non-finite values are written as NAN, INF and -INF right-aligned to the
// column width, which Parse reads back.
func Write(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("gridfile.Write: %w", grid.ErrNilGrid)
	}
	bw := bufio.NewWriter(w)

	headers := g.Headers()
	for _, h := range headers {
		bw.WriteString(h)
		bw.WriteByte('\n')
	}
	bw.WriteString(Separator)
	bw.WriteByte('\n')

	subgrids := g.Subgrids()
	for i, s := range subgrids {
		writeAxis(bw, s.XValues())
		writeAxis(bw, s.QValues())
		writeFlavors(bw, s.Flavors())

		n := s.Cols()
		values := s.PDFValues()
		for r := 0; r < s.Rows(); r++ {
			row := values[r*n : (r+1)*n]
			bw.WriteByte(' ')
			bw.WriteString(formatE(row[0], 0, valuePrecision))
			for _, v := range row[1:] {
				bw.WriteString(formatE(v, valueWidth, valuePrecision))
			}
			bw.WriteByte('\n')
		}

		bw.WriteString(Separator)
		if i+1 < len(subgrids) {
			bw.WriteByte('\n')
		}
	}

	// bufio.Writer latches the first error, so checking Flush is enough.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}

func writeAxis(bw *bufio.Writer, values []float64) {
	for i, v := range values {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(formatE(v, axisWidth, axisPrecision))
	}
	bw.WriteByte('\n')
}

func writeFlavors(bw *bufio.Writer, flavors []int) {
	for i, f := range flavors {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(f))
	}
	bw.WriteByte('\n')
}

// formatE renders v in upper-case scientific notation, right-aligned to width.
func formatE(v float64, width, prec int) string {
	var tok string
	switch {
	case math.IsNaN(v):
		tok = "NAN"
	case math.IsInf(v, 1):
		tok = "INF"
	case math.IsInf(v, -1):
		tok = "-INF"
	default:
		return fmt.Sprintf("%*.*E", width, prec, v)
	}
	if pad := width - len(tok); pad > 0 {
		return strings.Repeat(" ", pad) + tok
	}

	return tok
}
