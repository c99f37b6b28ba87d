// SPDX-License-Identifier: MIT

package job

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lhagrid/combine"
)

// ErrInvalidJob wraps every problem reported by Job.Validate.
var ErrInvalidJob = errors.New("job: invalid job")

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging.format values.
var ValidLogFormats = []string{"console", "json"}

// Job describes one combination: which files, how, and where the result goes.
type Job struct {
	Operation string        `yaml:"operation"`
	Inputs    []string      `yaml:"inputs"`
	Weights   []float64     `yaml:"weights,omitempty"` // one per input; empty means 1 each
	Output    string        `yaml:"output"`
	Epsilon   float64       `yaml:"epsilon"` // multiply clamp threshold
	Logging   LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the logger built by NewLogger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultJob returns a Job with every optional field at its default.
// Operation, Inputs and Output have no default.
func DefaultJob() *Job {
	return &Job{
		Epsilon: combine.DefaultEpsilon,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML job file. Fields absent from the file keep their DefaultJob values.
// Load does not validate; call Validate before Run.
func Load(path string) (*Job, error) {
	j := DefaultJob()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job: %w", err)
	}
	if err := yaml.Unmarshal(data, j); err != nil {
		return nil, fmt.Errorf("failed to parse job %s: %w", path, err)
	}

	return j, nil
}

// Save writes the job as YAML, creating parent directories as needed.
func (j *Job) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create job directory: %w", err)
	}

	data, err := yaml.Marshal(j)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write job: %w", err)
	}

	return nil
}

// Validate reports every problem with j at once, wrapped in ErrInvalidJob.
func (j *Job) Validate() error {
	var errs error

	if _, err := combine.ParseOperation(j.Operation); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("operation: %w (valid: %v)", err, combine.Operations()))
	}
	if len(j.Inputs) < 2 {
		errs = multierr.Append(errs, fmt.Errorf("inputs: need at least 2, got %d", len(j.Inputs)))
	}
	for i, in := range j.Inputs {
		if in == "" {
			errs = multierr.Append(errs, fmt.Errorf("inputs[%d]: empty path", i))
		}
	}
	if len(j.Weights) > 0 && len(j.Weights) != len(j.Inputs) {
		errs = multierr.Append(errs, fmt.Errorf("weights: %d weights for %d inputs", len(j.Weights), len(j.Inputs)))
	}
	for i, w := range j.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			errs = multierr.Append(errs, fmt.Errorf("weights[%d]: %v is not finite", i, w))
		}
	}
	if j.Output == "" {
		errs = multierr.Append(errs, errors.New("output: empty path"))
	}
	if math.IsNaN(j.Epsilon) || math.IsInf(j.Epsilon, 0) || j.Epsilon < 0 {
		errs = multierr.Append(errs, fmt.Errorf("epsilon: %v must be finite and non-negative", j.Epsilon))
	}
	if !slices.Contains(ValidLogLevels, j.Logging.Level) {
		errs = multierr.Append(errs, fmt.Errorf("logging.level: %q (valid: %v)", j.Logging.Level, ValidLogLevels))
	}
	if !slices.Contains(ValidLogFormats, j.Logging.Format) {
		errs = multierr.Append(errs, fmt.Errorf("logging.format: %q (valid: %v)", j.Logging.Format, ValidLogFormats))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJob, errs)
	}

	return nil
}
