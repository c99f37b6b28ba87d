// SPDX-License-Identifier: MIT
// Package gridfile: sentinel error set and the positioned parse error.

package gridfile

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates that an input path could not be opened.
	ErrFileNotFound = errors.New("gridfile: file not found")

	// ErrMalformedGrid indicates a violation of the grid file grammar, most
	// commonly a value row whose token count differs from the flavor count.
	// The concrete error is a *ParseError.
	ErrMalformedGrid = errors.New("gridfile: malformed grid")

	// ErrIO indicates a read or write failure on an already opened stream,
	// or an output file that cannot be created.
	ErrIO = errors.New("gridfile: i/o error")
)

// ParseError locates a grammar violation. It matches ErrMalformedGrid under errors.Is.
type ParseError struct {
	// Line is the 1-based line number where the problem was detected.
	Line int
	// Msg describes the problem.
	Msg string
	// Expected and Got are the flavor count and the token count of a bad
	// value row; both are zero for other problems.
	Expected, Got int
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Expected != 0 || e.Got != 0 {
		return fmt.Sprintf("gridfile: line %d: %s (flavor indices: %d, pdf values: %d)", e.Line, e.Msg, e.Expected, e.Got)
	}

	return fmt.Sprintf("gridfile: line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is match ErrMalformedGrid.
func (e *ParseError) Unwrap() error { return ErrMalformedGrid }
