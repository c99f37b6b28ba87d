// SPDX-License-Identifier: MIT

// Command lhacombine combines LHAPDF grid files by element-wise add,
// multiply or average.
//
// Usage:
//
//	lhacombine add      -o OUT [-w W1,W2,...] IN1 IN2 [IN...]
//	lhacombine multiply -o OUT [-w W1,W2,...] [--epsilon E] IN1 IN2 [IN...]
//	lhacombine average  -o OUT IN1 IN2 [IN...]
//	lhacombine run JOB.yaml
//	lhacombine ops
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lhacombine:", err)
		os.Exit(1)
	}
}

// run executes the command line in args, writing user-facing output to outW.
func run(ctx context.Context, outW io.Writer, args []string) error {
	root := newRootCmd(outW, nil)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
