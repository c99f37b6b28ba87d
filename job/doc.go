// SPDX-License-Identifier: MIT

// Package job runs a grid combination described by a YAML job file:
//
//	operation: add
//	inputs: [a.dat, b.dat]
//	weights: [1.0, 2.0]   # optional
//	output: out.dat
//	epsilon: 1e-10        # optional
//	logging:
//	  level: info         # debug|info|warn|error
//	  format: console     # console|json
//
// Load applies DefaultJob before reading the file, Validate collects every
// problem into one ErrInvalidJob, and Run performs parse, validate, combine
// and write, logging each phase through zap.
package job
