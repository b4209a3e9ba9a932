package material

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miner-core/damage"
	"miner-core/sn"
)

func ptr(v float64) *float64 { return &v }

func TestLoad(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "al7075.yaml"))
	require.NoError(t, err)
	assert.Equal(t, sn.Curve{Name: "Al 7075-T6", Slope: 9, Intercept: 25}, c)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, errors.Is(err, damage.ErrInvalidInput))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		cause error
	}{
		{"empty", "", "slope", ErrMissing},
		{"no slope", "intercept: 25\n", "slope", ErrMissing},
		{"no intercept", "slope: 9\n", "intercept", ErrMissing},
		{"zero slope", "slope: 0\nintercept: 25\n", "slope", sn.ErrZeroSlope},
		{"nan intercept", "slope: 9\nintercept: .nan\n", "intercept", sn.ErrNonFinite},
		{"inf slope", "slope: .inf\nintercept: 1\n", "slope", sn.ErrNonFinite},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc), "m.yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.cause)
			assert.ErrorIs(t, err, damage.ErrInvalidInput)

			var me *Error
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tc.field, me.Field)
			assert.Equal(t, "m.yaml", me.Path)
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("slope: 9\nintercept: 25\nendurance: 90\n"), "m.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endurance")
}

func TestParse_ZeroInterceptAllowed(t *testing.T) {
	c, err := Parse([]byte("slope: -0.1\nintercept: 0\n"), "m.yaml")
	require.NoError(t, err)
	assert.Equal(t, -0.1, c.Slope)
	assert.Equal(t, 0.0, c.Intercept)
}

func TestResolve(t *testing.T) {
	file := filepath.Join("testdata", "al7075.yaml")

	c, err := Resolve("", ptr(3), ptr(12))
	require.NoError(t, err)
	assert.Equal(t, sn.Curve{Slope: 3, Intercept: 12}, c)

	c, err = Resolve(file, nil, ptr(24))
	require.NoError(t, err)
	assert.Equal(t, sn.Curve{Name: "Al 7075-T6", Slope: 9, Intercept: 24}, c)

	_, err = Resolve("", ptr(9), nil)
	assert.ErrorIs(t, err, ErrMissing)
	_, err = Resolve("", nil, ptr(25))
	assert.ErrorIs(t, err, ErrMissing)

	// Zero slope from flags is passed through; damage.Accumulate rejects it.
	c, err = Resolve("", ptr(0), ptr(25))
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Slope)
}
