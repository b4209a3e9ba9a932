// pkg/api/report_v1.go
package api

// CaseV1 is the stable JSON/JSONL schema for one spectrum row.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CaseV1 struct {
	Row             int     `json:"row"`
	StressAmplitude float64 `json:"stress_amplitude"`
	CycleCount      float64 `json:"cycle_count"`
	FatigueLife     Float   `json:"fatigue_life"`
	DamageFraction  Float   `json:"damage_fraction"`
	SharePct        float64 `json:"share_pct"`
}

// MaterialV1 echoes the S-N constants used.
type MaterialV1 struct {
	Name      string  `json:"name,omitempty"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// SummaryV1 is the damage index and its pass/fail reading.
type SummaryV1 struct {
	Source      string     `json:"source"`
	Material    MaterialV1 `json:"material"`
	LoadCases   int        `json:"load_cases"`
	DamageIndex Float      `json:"damage_index"`
	Failed      bool       `json:"failed"`
	MarginPct   *float64   `json:"margin_of_safety_pct,omitempty"` // only when not failed
}

// ReportV1 is the stable JSON schema for a full report.
type ReportV1 struct {
	SummaryV1
	Cases []CaseV1 `json:"cases,omitempty"`
}

// SummaryLineV1 is the trailing JSONL record.
type SummaryLineV1 struct {
	Type string `json:"type"` // always "summary"
	SummaryV1
}
