package fatiguecli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"miner/internal/clibase"
	"miner/internal/cliutil"
	"miner/internal/spectrum"
)

// Constants of the illustrative demo material (Al 7075-T6 approximation).
const (
	DemoSlope     = 9.0
	DemoIntercept = 25.0
)

// floatValue records whether a float flag was given at all.
type floatValue struct{ dst **float64 }

func (f floatValue) String() string {
	if f.dst == nil || *f.dst == nil {
		return ""
	}
	return strconv.FormatFloat(**f.dst, 'g', -1, 64)
}

func (f floatValue) Set(v string) error {
	x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", v)
	}
	*f.dst = &x
	return nil
}

type Options struct {
	clibase.Common

	// Input
	Input         string
	StressColumn  string
	CyclesColumn  string
	DelimiterSpec string
	Delimiter     rune
	Demo          bool

	// Material; nil pointers mean "not given"
	MaterialFile string
	Slope        *float64
	Intercept    *float64
}

// Spectrum returns the loader options implied by the flags.
func (o Options) Spectrum() spectrum.Options {
	return spectrum.Options{StressColumn: o.StressColumn, CyclesColumn: o.CyclesColumn, Delimiter: o.Delimiter}
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --slope B --intercept C spectrum.csv\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --material al7075.yaml spectrum.tsv.gz\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --demo\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -i, --input file              Spectrum table (CSV/TSV, .gz ok) or '-' for STDIN")
		_, _ = fmt.Fprintf(out, "      --stress-col string       Stress amplitude column [%s]\n", def("stress-col"))
		_, _ = fmt.Fprintf(out, "      --cycles-col string       Cycle count column [%s]\n", def("cycles-col"))
		_, _ = fmt.Fprintf(out, "      --delimiter string        auto | tab | comma | semicolon | pipe | <char> [%s]\n", def("delimiter"))
		_, _ = fmt.Fprintln(out, "      --demo                    Use the built-in five-bin spectrum")

		_, _ = fmt.Fprintln(out, "\nMaterial (Basquin, log10 N = intercept − slope·log10 S):")
		_, _ = fmt.Fprintln(out, "      --slope float             S-N slope b (non-zero) [*]")
		_, _ = fmt.Fprintln(out, "      --intercept float         log10 cycles at unit stress [*]")
		_, _ = fmt.Fprintln(out, "  -M, --material file           YAML with name/slope/intercept; flags override")
		_, _ = fmt.Fprintf(out, "      [*] required without --material; --demo defaults to %g / %g\n", DemoSlope, DemoIntercept)
	})
	return fs
}

// PrintExamples writes the quickstart shown by --examples.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  # Illustrative spectrum and material\n  %s --demo --breakdown\n\n", name)
		_, _ = fmt.Fprintf(w, "  # Your own table, constants on the command line\n  %s --slope 9 --intercept 25 loads.csv\n\n", name)
		_, _ = fmt.Fprintf(w, "  # Material file, TSV from a pipe, JSON out\n  zcat loads.tsv.gz | %s -M al7075.yaml --delimiter tab -o json -\n", name)
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common)

	fs.StringVar(&o.Input, "input", "", "spectrum table or '-'")
	fs.StringVar(&o.Input, "i", "", "alias of --input")
	fs.StringVar(&o.StressColumn, "stress-col", spectrum.DefaultStressColumn, "stress amplitude column")
	fs.StringVar(&o.CyclesColumn, "cycles-col", spectrum.DefaultCyclesColumn, "cycle count column")
	fs.StringVar(&o.DelimiterSpec, "delimiter", "auto", "field separator")
	fs.BoolVar(&o.Demo, "demo", false, "use the built-in spectrum [false]")

	fs.Var(floatValue{&o.Slope}, "slope", "S-N slope b")
	fs.Var(floatValue{&o.Intercept}, "intercept", "S-N intercept (log10 cycles)")
	fs.StringVar(&o.MaterialFile, "material", "", "material YAML")
	fs.StringVar(&o.MaterialFile, "M", "", "alias of --material")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if o.Version {
		return o, nil
	}
	o.Header = !*noHeader

	if o.Demo {
		if o.Input != "" || len(posArgs) > 0 {
			return o, errors.New("--demo conflicts with a spectrum file")
		}
		if o.MaterialFile == "" {
			if o.Slope == nil {
				s := DemoSlope
				o.Slope = &s
			}
			if o.Intercept == nil {
				c := DemoIntercept
				o.Intercept = &c
			}
		}
	} else {
		in, err := cliutil.InputPath(o.Input, posArgs)
		if err != nil {
			return o, err
		}
		o.Input = in
	}

	d, err := spectrum.ParseDelimiter(o.DelimiterSpec)
	if err != nil {
		return o, fmt.Errorf("--delimiter: %w", err)
	}
	o.Delimiter = d

	if o.MaterialFile == "" && (o.Slope == nil || o.Intercept == nil) {
		return o, errors.New("provide --slope and --intercept, or --material")
	}
	if strings.TrimSpace(o.StressColumn) == "" || strings.TrimSpace(o.CyclesColumn) == "" {
		return o, errors.New("--stress-col and --cycles-col must not be empty")
	}
	return o, clibase.Validate(&o.Common)
}
