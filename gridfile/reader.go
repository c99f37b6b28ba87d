// SPDX-License-Identifier: MIT

package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lhagrid/grid"
	"github.com/katalvlaran/lhagrid/matrix"
)

// Separator is the line that closes the header block and every subgrid.
const Separator = "---"

// maxLineBytes bounds a single line; x axes of a few hundred points fit easily.
const maxLineBytes = 16 << 20

// ParseFile opens path and parses it as a grid file.
// The file is closed before ParseFile returns.
//
// Errors:
//   - ErrFileNotFound if path cannot be opened.
//   - ErrMalformedGrid (as *ParseError) on a grammar violation.
//   - ErrIO on a read failure.
func ParseFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse reads one grid from r.
//
// Layout:
//
//	header line 1
//	header line 2
//	---
//	x1 x2 ... xK
//	q1 q2 ... qL
//	f1 f2 ... fN
//	v11 ... v1N
//	...
//	---
//	(more subgrids)
//
// Parsing stops at end of input or at a blank line where a new subgrid
// would start. The last subgrid may end at end of input without a separator.
func Parse(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	p := &lineReader{sc: sc}

	var headers [grid.HeaderLines]string
	for i := range headers {
		line, ok := p.next()
		if !ok {
			return nil, p.fail(fmt.Sprintf("missing header line %d", i+1))
		}
		if strings.ContainsRune(line, '\r') {
			return nil, p.fail(fmt.Sprintf("header line %d contains a carriage return", i+1))
		}
		headers[i] = line
	}
	line, ok := p.next()
	if !ok || strings.TrimSpace(line) != Separator {
		return nil, p.fail(fmt.Sprintf("expected %q after the header lines", Separator))
	}

	var subgrids []*grid.Subgrid
	for {
		line, ok := p.next()
		if !ok || strings.TrimSpace(line) == "" {
			break
		}
		sub, err := p.subgrid(line)
		if err != nil {
			return nil, err
		}
		subgrids = append(subgrids, sub)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrIO, p.line, err)
	}

	return grid.New(headers, subgrids)
}

// lineReader tracks the current line number for error reporting.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next line without its terminator; bufio.ScanLines drops
// the \r of a \r\n ending.
func (p *lineReader) next() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	p.line++

	return p.sc.Text(), true
}

func (p *lineReader) fail(msg string) error {
	if err := p.sc.Err(); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrIO, p.line, err)
	}

	return &ParseError{Line: p.line, Msg: msg}
}

// subgrid parses one block whose x line has already been read.
func (p *lineReader) subgrid(xLine string) (*grid.Subgrid, error) {
	xValues, err := p.floats(xLine, "x value")
	if err != nil {
		return nil, err
	}

	qLine, ok := p.next()
	if !ok {
		return nil, p.fail("subgrid ends before its q values")
	}
	qValues, err := p.floats(qLine, "q value")
	if err != nil {
		return nil, err
	}
	if len(qValues) == 0 {
		return nil, p.fail("empty q value line")
	}

	fLine, ok := p.next()
	if !ok {
		return nil, p.fail("subgrid ends before its flavor indices")
	}
	flavors, err := p.ints(fLine)
	if err != nil {
		return nil, err
	}
	if len(flavors) == 0 {
		return nil, p.fail("empty flavor index line")
	}

	n := len(flavors)
	var values []float64
	for {
		line, ok := p.next()
		if !ok || strings.TrimSpace(line) == Separator {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != n {
			return nil, &ParseError{
				Line:     p.line,
				Msg:      "number of flavor indices does not match number of pdf values",
				Expected: n,
				Got:      len(fields),
			}
		}
		for _, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, p.badToken("pdf value", tok, err)
			}
			values = append(values, v)
		}
	}

	table, err := matrix.FromRowMajor(len(values)/n, n, values)
	if err != nil {
		return nil, p.fail(err.Error())
	}
	sub, err := grid.NewSubgridTable(xValues, qValues, flavors, table)
	if err != nil {
		return nil, p.fail(err.Error())
	}

	return sub, nil
}

func (p *lineReader) floats(line, what string) ([]float64, error) {
	fields := strings.Fields(line)
	out := make([]float64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, p.badToken(what, tok, err)
		}
		out[i] = v
	}

	return out, nil
}

func (p *lineReader) ints(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, p.badToken("flavor index", tok, err)
		}
		out[i] = v
	}

	return out, nil
}

func (p *lineReader) badToken(what, tok string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return &ParseError{Line: p.line, Msg: fmt.Sprintf("%s %q out of range", what, tok)}
	}

	return &ParseError{Line: p.line, Msg: fmt.Sprintf("invalid %s %q", what, tok)}
}
