// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"miner/internal/jsonlutil"
	"miner/internal/output"
	"miner/internal/report"
	"miner/pkg/api"
)

// StartCaseJSONLWriter streams each breakdown row as one JSON line (v1).
func StartCaseJSONLWriter(out io.Writer, bufSize int) (chan<- any, <-chan error) {
	return jsonlutil.Start[any](out, bufSize,
		func(enc *json.Encoder, v any) error { return enc.Encode(v) },
		IsBrokenPipe,
	)
}

// WriteJSONL emits one CaseV1 per row (when breakdown is set) followed by a
// single {"type":"summary",...} line.
func WriteJSONL(w io.Writer, r report.Report, opt output.Options) error {
	in, done := StartCaseJSONLWriter(w, 64)
	if opt.Breakdown {
		for _, cd := range r.Cases {
			in <- output.ToAPICase(r, cd)
		}
	}
	in <- api.SummaryLineV1{Type: "summary", SummaryV1: output.ToAPISummary(r)}
	close(in)
	return <-done
}
