// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"miner/internal/writers"
)

// Common holds the output, performance and misc flags of miner tools.
type Common struct {
	// Output
	Output          string // text|json|jsonl
	Breakdown       bool
	Sort            bool
	Header          bool
	FailureExitCode int

	// Performance
	Threads   int
	ChunkSize int

	// Misc
	Quiet    bool
	Verbose  bool
	Version  bool
	Examples bool
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Output
	fs.StringVar(&c.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.BoolVar(&c.Breakdown, "breakdown", false, "emit per-row damage breakdown [false]")
	fs.BoolVar(&c.Breakdown, "b", false, "alias of --breakdown")
	fs.BoolVar(&c.Sort, "sort", false, "order breakdown by damage fraction, largest first [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress breakdown header line [false]")
	fs.IntVar(&c.FailureExitCode, "failure-exit-code", 1, "exit code when failure is predicted (D >= 1) [1]")

	// Performance
	fs.IntVar(&c.Threads, "threads", 1, "worker goroutines (0=all CPUs) [1]")
	fs.IntVar(&c.Threads, "t", 1, "alias of --threads")
	fs.IntVar(&c.ChunkSize, "chunk-size", 0, "rows per parallel work unit (0=auto) [0]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug log on stderr [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print quickstart examples and exit [false]")

	return &noHeader
}

// Validate applies shared CLI invariants.
func Validate(c *Common) error {
	if !writers.Known(c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(writers.Formats(), " | "))
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.ChunkSize < 0 {
		return errors.New("--chunk-size must be ≥ 0")
	}
	if c.FailureExitCode < 0 || c.FailureExitCode > 255 {
		return errors.New("--failure-exit-code must be between 0 and 255")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}
