// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"miner/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage lines, input and material blocks).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – Palmgren-Miner cumulative fatigue damage\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string           Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "  -b, --breakdown               Emit per-row damage breakdown [%s]\n", def("breakdown"))
		fmt.Fprintf(out, "      --sort                    Order breakdown by damage fraction [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header               Suppress breakdown header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --failure-exit-code int   Exit code when D >= 1 [%s]\n", def("failure-exit-code"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int             Worker goroutines (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --chunk-size int          Rows per parallel work unit (0=auto) [%s]\n", def("chunk-size"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                   Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose                 Debug log on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples                Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version                 Print version and exit")
		fmt.Fprintln(out, "  -h, --help                    Show this help and exit")
	}
}
