// Package lhagrid combines LHAPDF parton distribution grid files.
//
// An LHAPDF grid file tabulates pdf values on (x, q) nodes for a list of
// flavors, split into subgrids. lhagrid reads two or more such files with
// identical structure and writes one file whose values are the weighted sum,
// the weighted product or the average of the inputs.
//
// Packages, leaves first:
//
//	matrix/          Dense row-major float64 tables, shape validators, Fold and AllClose kernels
//	grid/            Grid and Subgrid model, ValidateCompatible
//	gridfile/        Parse/ParseFile and Write/WriteFile for the text format
//	combine/         Combine with add, multiply and average
//	job/             YAML job files, zap logging, the parse → validate → combine → write pipeline
//	cmd/lhacombine/  cobra command line
//
// Quick start:
//
//	a, _ := gridfile.ParseFile("a.dat")
//	b, _ := gridfile.ParseFile("b.dat")
//	out, err := combine.Combine(combine.Add, []*grid.Grid{a, b}, combine.WithWeights(1, 2))
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = gridfile.WriteFile(out, "sum.dat")
//
// or from the shell:
//
//	lhacombine add -o sum.dat -w 1,2 a.dat b.dat
package lhagrid
