package fatigueapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mattn/go-isatty"

	"miner-core/damage"

	"miner/internal/clibase"
	"miner/internal/cmdutil"
	"miner/internal/fatiguecli"
	"miner/internal/material"
	"miner/internal/output"
	"miner/internal/pipeline"
	"miner/internal/report"
	"miner/internal/spectrum"
	"miner/internal/version"
	"miner/internal/writers"
)

const name = "miner"

// Exit codes besides 0 and --failure-exit-code.
const (
	exitUsage       = 2
	exitWrite       = 3
	exitInterrupted = 130
)

// flushed maps a final flush to an exit code; broken pipes count as success.
func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWrite
	}
	return code
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := fatiguecli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, 0)
	}

	opts, err := fatiguecli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, 0)
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		fatiguecli.PrintExamples(outw, name)
		return flushed(outw, stderr, 0)
	case err != nil:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprintf(stderr, "run '%s --help' for usage\n", name)
		return exitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushed(outw, stderr, 0)
	}

	log := cmdutil.NewLogger(stderr, opts.Verbose)

	// Spectrum
	var (
		cases  []damage.LoadCase
		source string
	)
	if opts.Demo {
		cases, source = spectrum.Demo(), "demo"
	} else {
		source = opts.Input
		if source == "-" {
			source = "<stdin>"
		}
		cases, err = spectrum.Load(opts.Input, opts.Spectrum())
		if err != nil {
			return fail(stderr, err)
		}
	}
	log.Debug("spectrum.loaded", "source", source, "rows", len(cases))

	// Material
	curve, err := material.Resolve(opts.MaterialFile, opts.Slope, opts.Intercept)
	if err != nil {
		return fail(stderr, err)
	}
	log.Debug("material.resolved", "name", curve.Name, "slope", curve.Slope, "intercept", curve.Intercept, "file", opts.MaterialFile)

	// Damage
	pcfg := pipeline.Config{Threads: opts.Threads, ChunkSize: opts.ChunkSize}
	threads, chunkSize, chunks := pcfg.Plan(len(cases))
	if opts.Threads > 1 && threads <= 1 && len(cases) > 0 {
		cmdutil.Warnf(stderr, opts.Quiet,
			"--threads=%d has no effect: %d rows fit in one chunk of %d", opts.Threads, len(cases), chunkSize)
	}
	log.Debug("pipeline.plan", "threads", threads, "chunk_size", chunkSize, "chunks", chunks)

	res, err := pipeline.Accumulate(ctx, cases, curve, pcfg)
	if err != nil {
		return fail(stderr, err)
	}
	if math.IsInf(res.Damage, 1) {
		cmdutil.Warnf(stderr, opts.Quiet, "predicted life underflows to 0 cycles for at least one row; damage is infinite")
	}
	if opts.Sort && !opts.Breakdown {
		cmdutil.Warnf(stderr, opts.Quiet, "--sort only affects --breakdown output")
	}

	rep := report.Build(source, curve, res, opts.Sort)
	log.Debug("damage.computed", "damage", rep.Damage, "failed", rep.Verdict.Failed)

	oopt := output.Options{
		Breakdown: opts.Breakdown,
		Header:    opts.Header,
		Glyphs:    isTerminal(stdout),
	}
	if err := writers.Write(opts.Output, outw, rep, oopt); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWrite
	}

	code := 0
	if rep.Verdict.Failed {
		code = opts.FailureExitCode
	}
	return flushed(outw, stderr, code)
}

// fail reports a load/compute error and maps it to an exit code.
func fail(stderr io.Writer, err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return exitInterrupted
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	return exitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
