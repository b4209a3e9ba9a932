// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"miner-core/sn"

	"miner/internal/report"
)

const (
	glyphSafe = " ✅"
	glyphFail = " ❌"
)

// WriteText prints the human summary, with the TSV breakdown when asked.
func WriteText(w io.Writer, r report.Report, opt Options) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "--- Processing Data: %d load cases loaded ---\n", len(r.Cases))
	fmt.Fprintf(bw, "Source:   %s\n", r.Source)
	fmt.Fprintf(bw, "Material: %s\n", materialLine(r.Material))

	if opt.Breakdown && len(r.Cases) > 0 {
		fmt.Fprintln(bw)
		if opt.Header {
			fmt.Fprintln(bw, TSVHeader)
		}
		for _, cd := range r.Cases {
			fmt.Fprintf(bw, "%d\t%s\t%s\t%.6g\t%.6g\t%.2f\n",
				cd.Row, num(cd.StressAmplitude), num(cd.Cycles),
				cd.Life, cd.Fraction, r.SharePct(cd))
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Calculated Cumulative Damage Index: %.5f\n", r.Damage)
	if r.Verdict.Failed {
		fmt.Fprint(bw, "RESULT: CRITICAL FAILURE PREDICTED")
		if opt.Glyphs {
			fmt.Fprint(bw, glyphFail)
		}
	} else {
		fmt.Fprintf(bw, "RESULT: Design Safe (Margin of Safety: %.2f%%)", r.Verdict.MarginPct)
		if opt.Glyphs {
			fmt.Fprint(bw, glyphSafe)
		}
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}

func materialLine(c sn.Curve) string {
	consts := fmt.Sprintf("slope=%s, intercept=%s", num(c.Slope), num(c.Intercept))
	if c.Name == "" {
		return consts
	}
	return c.Name + " (" + consts + ")"
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
