// internal/output/json.go
package output

import (
	"io"

	"miner-core/damage"

	"miner/internal/jsonutil"
	"miner/internal/report"
	"miner/pkg/api"
)

// ToAPISummary converts the report header to the stable wire schema (v1).
func ToAPISummary(r report.Report) api.SummaryV1 {
	s := api.SummaryV1{
		Source: r.Source,
		Material: api.MaterialV1{
			Name:      r.Material.Name,
			Slope:     r.Material.Slope,
			Intercept: r.Material.Intercept,
		},
		LoadCases:   len(r.Cases),
		DamageIndex: api.Float(r.Damage),
		Failed:      r.Verdict.Failed,
	}
	if !r.Verdict.Failed {
		m := r.Verdict.MarginPct
		s.MarginPct = &m
	}
	return s
}

// ToAPICase converts one breakdown row.
func ToAPICase(r report.Report, cd damage.CaseDamage) api.CaseV1 {
	return api.CaseV1{
		Row:             cd.Row,
		StressAmplitude: cd.StressAmplitude,
		CycleCount:      cd.Cycles,
		FatigueLife:     api.Float(cd.Life),
		DamageFraction:  api.Float(cd.Fraction),
		SharePct:        r.SharePct(cd),
	}
}

// ToAPIReport converts the whole report; cases are included when breakdown is set.
func ToAPIReport(r report.Report, breakdown bool) api.ReportV1 {
	v := api.ReportV1{SummaryV1: ToAPISummary(r)}
	if breakdown {
		v.Cases = make([]api.CaseV1, 0, len(r.Cases))
		for _, cd := range r.Cases {
			v.Cases = append(v.Cases, ToAPICase(r, cd))
		}
	}
	return v
}

// WriteJSON writes one pretty-indented v1 report object.
func WriteJSON(w io.Writer, r report.Report, opt Options) error {
	return jsonutil.EncodePretty(w, ToAPIReport(r, opt.Breakdown))
}
