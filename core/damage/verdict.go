// core/damage/verdict.go
package damage

// Verdict is the pass/fail reading of a damage index.
type Verdict struct {
	Failed    bool
	MarginPct float64 // (1 − D)·100 when safe, else 0
}

// Classify applies FailureThreshold. NaN is treated as failure.
func Classify(d float64) Verdict {
	if !(d < FailureThreshold) {
		return Verdict{Failed: true}
	}
	return Verdict{MarginPct: (1 - d) * 100}
}
