package output

// TSVHeader is the canonical header row for the text breakdown.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "row\tstress_amplitude\tcycle_count\tfatigue_life\tdamage_fraction\tshare_pct"

// Options controls presentation only; no option changes the numbers.
type Options struct {
	Breakdown bool // include per-row lines/records
	Header    bool // TSV header line (text)
	Glyphs    bool // status marks after the RESULT line (text, terminals)
}
