// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"miner/internal/output"
	"miner/internal/report"
)

// ReportWriter renders one report in one format.
type ReportWriter func(w io.Writer, r report.Report, opt output.Options) error

// Registry of format → handler. Register in init() blocks of format files.
var reportWriters = map[string]ReportWriter{}

// Register installs fn for format (idempotent last-wins).
func Register(format string, fn ReportWriter) { reportWriters[format] = fn }

// Formats lists registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a writer.
func Known(format string) bool {
	_, ok := reportWriters[format]
	return ok
}

// Write dispatches to the registered writer.
func Write(format string, w io.Writer, r report.Report, opt output.Options) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r, opt)
}
