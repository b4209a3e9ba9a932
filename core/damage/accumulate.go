// core/damage/accumulate.go
// Palmgren–Miner linear damage accumulation:
//
//   D = Σ n_i / N_i,   N_i = 10^(Intercept − Slope·log10(S_i))
//
// D >= 1 predicts failure.

package damage

import (
	"math"

	"miner-core/sn"
)

// FailureThreshold is Miner's critical damage sum.
const FailureThreshold = 1.0

// CaseDamage is the contribution of one row.
type CaseDamage struct {
	Row int // 1-based
	LoadCase
	Life     float64
	Fraction float64
}

// Result holds the damage index and the per-row breakdown in input order.
type Result struct {
	Damage float64
	Cases  []CaseDamage
}

// Life returns cycles-to-failure for an already validated row.
func Life(c LoadCase, curve sn.Curve) float64 {
	return math.Pow(10, curve.LogLife(c.StressAmplitude))
}

// Fraction returns n/N for an already validated row. A zero cycle count
// contributes exactly 0 regardless of the predicted life.
func Fraction(c LoadCase, curve sn.Curve) float64 {
	if c.Cycles == 0 {
		return 0
	}
	return c.Cycles / Life(c, curve)
}

// Evaluate computes the breakdown entry for row (1-based) of validated input.
func Evaluate(row int, c LoadCase, curve sn.Curve) CaseDamage {
	cd := CaseDamage{Row: row, LoadCase: c, Life: Life(c, curve)}
	if c.Cycles != 0 {
		cd.Fraction = c.Cycles / cd.Life
	}
	return cd
}

// Accumulate validates the input and folds every row into one damage index.
// An empty spectrum yields 0. Nothing is returned on error.
func Accumulate(cases []LoadCase, curve sn.Curve) (Result, error) {
	if err := Validate(cases, curve); err != nil {
		return Result{}, err
	}
	out := Result{Cases: make([]CaseDamage, len(cases))}
	var sum Sum
	for i, c := range cases {
		cd := Evaluate(i+1, c, curve)
		out.Cases[i] = cd
		sum.Add(cd.Fraction)
	}
	out.Damage = sum.Value()
	return out, nil
}

// Damage is Accumulate without the breakdown.
func Damage(cases []LoadCase, curve sn.Curve) (float64, error) {
	if err := Validate(cases, curve); err != nil {
		return 0, err
	}
	var sum Sum
	for _, c := range cases {
		sum.Add(Fraction(c, curve))
	}
	return sum.Value(), nil
}
