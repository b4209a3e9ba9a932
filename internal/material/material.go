// Package material turns S-N constants from flags or a YAML file into an
// sn.Curve. It does not keep a material database.
package material

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"miner-core/damage"
	"miner-core/sn"
)

var ErrMissing = errors.New("value is required")

// Error reports a bad material source; it matches damage.ErrInvalidInput
// unless it wraps a read failure.
type Error struct {
	Path  string
	Field string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("material")
	if e.Path != "" {
		b.WriteString(" " + e.Path)
	}
	if e.Field != "" {
		b.WriteString(": " + e.Field)
	}
	b.WriteString(": " + e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target == damage.ErrInvalidInput && e.Field != ""
}

// File is the on-disk schema.
type File struct {
	Name      string   `yaml:"name" validate:"max=128"`
	Slope     *float64 `yaml:"slope" validate:"required,ne=0"`
	Intercept *float64 `yaml:"intercept" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a material YAML file.
func Load(path string) (sn.Curve, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return sn.Curve{}, &Error{Path: path, Err: err}
	}
	return Parse(b, path)
}

// Parse decodes and validates a material document. Unknown keys are rejected.
func Parse(b []byte, path string) (sn.Curve, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return sn.Curve{}, &Error{Path: path, Field: "slope", Err: ErrMissing}
		}
		return sn.Curve{}, &Error{Path: path, Field: "document", Err: err}
	}
	if err := validate.Struct(f); err != nil {
		return sn.Curve{}, fieldError(path, err)
	}
	c := sn.Curve{Name: strings.TrimSpace(f.Name), Slope: *f.Slope, Intercept: *f.Intercept}
	if err := c.Validate(); err != nil {
		var fe *sn.FieldError
		if errors.As(err, &fe) {
			return sn.Curve{}, &Error{Path: path, Field: fe.Field, Err: fe.Err}
		}
		return sn.Curve{}, &Error{Path: path, Field: "document", Err: err}
	}
	return c, nil
}

func fieldError(path string, err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &Error{Path: path, Field: "document", Err: err}
	}
	fe := ves[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return &Error{Path: path, Field: field, Err: ErrMissing}
	case "ne":
		if field == "slope" {
			return &Error{Path: path, Field: field, Err: sn.ErrZeroSlope}
		}
	}
	return &Error{Path: path, Field: field, Err: fmt.Errorf("failed %q check", fe.Tag())}
}

// Resolve builds the curve for one run. Flag values (non-nil) override the
// file; without a file both flags must be given. Degenerate values are left
// for the accumulator to reject.
func Resolve(path string, slope, intercept *float64) (sn.Curve, error) {
	var c sn.Curve
	if path != "" {
		var err error
		if c, err = Load(path); err != nil {
			return sn.Curve{}, err
		}
	} else {
		switch {
		case slope == nil:
			return sn.Curve{}, &Error{Field: "slope", Err: fmt.Errorf("%w: pass --slope or --material", ErrMissing)}
		case intercept == nil:
			return sn.Curve{}, &Error{Field: "intercept", Err: fmt.Errorf("%w: pass --intercept or --material", ErrMissing)}
		}
	}
	if slope != nil {
		c.Slope = *slope
	}
	if intercept != nil {
		c.Intercept = *intercept
	}
	return c, nil
}
