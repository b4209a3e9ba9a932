// core/sn/curve.go
// Basquin S-N curve in log-linear form.
//
//   S = A·N^b   =>   log10(N) = Intercept − Slope·log10(S)
//
// Units: stress in whatever the spectrum uses (MPa in the shipped data);
// Intercept is log10 cycles at unit stress. The package has no app deps.

package sn

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrZeroSlope = errors.New("slope must be non-zero")
	ErrNonFinite = errors.New("value must be finite")
	ErrStress    = errors.New("stress amplitude must be > 0")
)

// Curve holds the two material constants of one computation.
type Curve struct {
	Name      string  // optional label, reports only
	Slope     float64 // b
	Intercept float64 // log10 cycles at S = 1
}

// FieldError names the curve field that failed validation.
type FieldError struct {
	Field string
	Value float64
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Validate rejects a degenerate curve. A zero slope would make life
// independent of stress, so it is an error rather than a constant-life model.
func (c Curve) Validate() error {
	if !finite(c.Slope) {
		return &FieldError{Field: "slope", Value: c.Slope, Err: ErrNonFinite}
	}
	if c.Slope == 0 {
		return &FieldError{Field: "slope", Value: c.Slope, Err: ErrZeroSlope}
	}
	if !finite(c.Intercept) {
		return &FieldError{Field: "intercept", Value: c.Intercept, Err: ErrNonFinite}
	}
	return nil
}

// LogLife returns log10 of cycles-to-failure at stress s. No validation.
func (c Curve) LogLife(s float64) float64 {
	return c.Intercept - c.Slope*math.Log10(s)
}

// Life returns predicted cycles-to-failure at stress amplitude s.
func (c Curve) Life(s float64) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if err := CheckStress(s); err != nil {
		return 0, err
	}
	return math.Pow(10, c.LogLife(s)), nil
}

// CheckStress reports whether s is usable as a stress amplitude.
func CheckStress(s float64) error {
	if !finite(s) {
		return ErrNonFinite
	}
	if s <= 0 {
		return ErrStress
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
