// Package report builds the caller-facing view of a damage result: the
// verdict, the margin of safety, and the per-row share of the total.
package report

import (
	"math"
	"sort"

	"miner-core/damage"
	"miner-core/sn"
)

// Report is everything a writer needs; it holds no formatting.
type Report struct {
	Source   string
	Material sn.Curve
	Damage   float64
	Verdict  damage.Verdict
	Cases    []damage.CaseDamage
}

// Build assembles a Report. With byDamage the breakdown is ordered by
// descending fraction (ties by row); the index itself is unaffected.
func Build(source string, curve sn.Curve, res damage.Result, byDamage bool) Report {
	cases := append([]damage.CaseDamage(nil), res.Cases...)
	if byDamage {
		SortByDamage(cases)
	}
	return Report{
		Source:   source,
		Material: curve,
		Damage:   res.Damage,
		Verdict:  damage.Classify(res.Damage),
		Cases:    cases,
	}
}

// SortByDamage orders rows by descending fraction, then ascending row.
func SortByDamage(cs []damage.CaseDamage) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Fraction != cs[j].Fraction {
			return cs[i].Fraction > cs[j].Fraction
		}
		return cs[i].Row < cs[j].Row
	})
}

// SharePct is the row's percentage of the total damage; 0 when the total is
// zero or not finite.
func (r Report) SharePct(cd damage.CaseDamage) float64 {
	if r.Damage == 0 || math.IsInf(r.Damage, 0) || math.IsNaN(r.Damage) {
		return 0
	}
	return cd.Fraction / r.Damage * 100
}
