// core/damage/case.go
package damage

import (
	"errors"
	"fmt"
	"math"

	"miner-core/sn"
)

// ErrInvalidInput is matched by every *InputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrNegativeCycles is the cause attached to a negative cycle count.
var ErrNegativeCycles = errors.New("cycle count must be >= 0")

// Field names used in InputError.Field.
const (
	FieldStress    = "stress_amplitude"
	FieldCycles    = "cycle_count"
	FieldSlope     = "slope"
	FieldIntercept = "intercept"
)

// LoadCase is one binned row of the spectrum.
type LoadCase struct {
	StressAmplitude float64
	Cycles          float64
}

// InputError reports which row and field rejected the computation.
// Row is the 1-based position in the load-case sequence; 0 means the material.
type InputError struct {
	Row   int
	Field string
	Value float64
	Err   error
}

func (e *InputError) Error() string {
	where := "material"
	if e.Row > 0 {
		where = fmt.Sprintf("row %d", e.Row)
	}
	return fmt.Sprintf("invalid input: %s: %s=%g: %v", where, e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// Validate checks the curve, then each row in order, and returns the first
// violation as an *InputError.
func Validate(cases []LoadCase, curve sn.Curve) error {
	if err := curve.Validate(); err != nil {
		var fe *sn.FieldError
		if errors.As(err, &fe) {
			return &InputError{Field: fe.Field, Value: fe.Value, Err: fe.Err}
		}
		return &InputError{Field: FieldSlope, Value: curve.Slope, Err: err}
	}
	for i, c := range cases {
		if err := checkCase(c); err != nil {
			err.Row = i + 1
			return err
		}
	}
	return nil
}

func checkCase(c LoadCase) *InputError {
	if err := sn.CheckStress(c.StressAmplitude); err != nil {
		return &InputError{Field: FieldStress, Value: c.StressAmplitude, Err: err}
	}
	switch {
	case math.IsNaN(c.Cycles) || math.IsInf(c.Cycles, 0):
		return &InputError{Field: FieldCycles, Value: c.Cycles, Err: sn.ErrNonFinite}
	case c.Cycles < 0:
		return &InputError{Field: FieldCycles, Value: c.Cycles, Err: ErrNegativeCycles}
	}
	return nil
}
