// SPDX-License-Identifier: MIT

package job

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lhagrid/combine"
	"github.com/katalvlaran/lhagrid/grid"
	"github.com/katalvlaran/lhagrid/gridfile"
)

// Run executes the job: parse every input, check they are compatible,
// combine them and write the result. All inputs are loaded before any
// arithmetic. ctx is checked between files; a cancelled job writes nothing.
//
// A nil logger discards all output.
func (j *Job) Run(ctx context.Context, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := j.Validate(); err != nil {
		return err
	}
	op, err := combine.ParseOperation(j.Operation)
	if err != nil {
		return err
	}
	log := logger.With(zap.Stringer("operation", op))
	log.Debug("starting job",
		zap.Strings("inputs", j.Inputs),
		zap.Float64s("weights", j.Weights),
		zap.String("output", j.Output),
		zap.Float64("epsilon", j.Epsilon))

	grids := make([]*grid.Grid, 0, len(j.Inputs))
	for i, path := range j.Inputs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("job cancelled before input %d: %w", i, err)
		}
		g, err := gridfile.ParseFile(path)
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		log.Info("parsed input",
			zap.Int("input", i),
			zap.String("path", path),
			zap.Int("subgrids", g.NumSubgrids()))
		grids = append(grids, g)
	}

	if err := grid.ValidateCompatible(grids); err != nil {
		return err
	}
	log.Info("inputs compatible", zap.Int("inputs", len(grids)))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("job cancelled before combining: %w", err)
	}
	opts := []combine.Option{combine.WithEpsilon(j.Epsilon)}
	if len(j.Weights) > 0 {
		opts = append(opts, combine.WithWeights(j.Weights...))
	}
	out, err := combine.Combine(op, grids, opts...)
	if err != nil {
		return err
	}
	log.Info("combined",
		zap.Float64s("weights", j.Weights),
		zap.Int("subgrids", out.NumSubgrids()))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("job cancelled before writing: %w", err)
	}
	if err := gridfile.WriteFile(out, j.Output); err != nil {
		return err
	}
	log.Info("wrote output", zap.String("path", j.Output))

	return nil
}
