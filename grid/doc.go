// Package grid is the in-memory model of a PDF grid file: an ordered list of
// subgrids, each holding an x axis, a q axis, a flavor id list and a value
// table, plus the two header lines of the file.
//
// A Grid is built once (by gridfile.Parse or combine.Combine) and never
// changes afterwards; accessors hand out copies.
//
// ValidateCompatible decides whether several grids can be combined: they
// must agree exactly on everything except their pdf values.
//
//	if err := grid.ValidateCompatible([]*grid.Grid{a, b}); err != nil {
//		var mm *grid.MismatchError
//		if errors.As(err, &mm) {
//			fmt.Println(mm.Input, mm.Subgrid, mm.Field)
//		}
//	}
package grid
