// core/damage/sum.go
package damage

import "math"

// Sum is a Neumaier compensated accumulator. The zero value is ready to use.
type Sum struct {
	s, c float64
}

// Add accumulates x.
func (k *Sum) Add(x float64) {
	t := k.s + x
	if math.IsInf(t, 0) || math.IsNaN(t) {
		k.s, k.c = t, 0
		return
	}
	if math.Abs(k.s) >= math.Abs(x) {
		k.c += (k.s - t) + x
	} else {
		k.c += (x - t) + k.s
	}
	k.s = t
}

// Merge folds another partial sum into k.
func (k *Sum) Merge(o Sum) {
	k.Add(o.s)
	k.Add(o.c)
}

// Value returns the compensated total.
func (k Sum) Value() float64 {
	if math.IsInf(k.s, 0) || math.IsNaN(k.s) {
		return k.s
	}
	return k.s + k.c
}
