package fatiguecli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miner/internal/clibase"
	"miner/internal/cliutil"
	"miner/internal/spectrum"
)

func parse(argv ...string) (Options, error) {
	fs := NewFlagSet("miner")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgs_Basic(t *testing.T) {
	o, err := parse("loads.csv", "--slope", "9", "--intercept=25", "-o", "json", "--breakdown")
	require.NoError(t, err)
	assert.Equal(t, "loads.csv", o.Input)
	require.NotNil(t, o.Slope)
	require.NotNil(t, o.Intercept)
	assert.Equal(t, 9.0, *o.Slope)
	assert.Equal(t, 25.0, *o.Intercept)
	assert.Equal(t, "json", o.Output)
	assert.True(t, o.Breakdown)
	assert.True(t, o.Header)
	assert.Equal(t, rune(0), o.Delimiter)
	assert.Equal(t, spectrum.Options{StressColumn: spectrum.DefaultStressColumn, CyclesColumn: spectrum.DefaultCyclesColumn}, o.Spectrum())
}

func TestParseArgs_ZeroSlopeIsAccepted(t *testing.T) {
	// Degenerate constants are rejected by the accumulator, not the flag layer.
	o, err := parse("-i", "x.csv", "--slope", "0", "--intercept", "25")
	require.NoError(t, err)
	assert.Equal(t, 0.0, *o.Slope)
}

func TestParseArgs_Demo(t *testing.T) {
	o, err := parse("--demo")
	require.NoError(t, err)
	assert.True(t, o.Demo)
	assert.Equal(t, DemoSlope, *o.Slope)
	assert.Equal(t, DemoIntercept, *o.Intercept)

	o, err = parse("--demo", "--slope", "7")
	require.NoError(t, err)
	assert.Equal(t, 7.0, *o.Slope)

	_, err = parse("--demo", "x.csv")
	assert.Error(t, err)
}

func TestParseArgs_MaterialFile(t *testing.T) {
	o, err := parse("-M", "m.yaml", "x.tsv", "--delimiter", "tab")
	require.NoError(t, err)
	assert.Equal(t, "m.yaml", o.MaterialFile)
	assert.Nil(t, o.Slope)
	assert.Equal(t, '\t', o.Delimiter)
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"no input", []string{"--slope", "9", "--intercept", "25"}},
		{"two inputs", []string{"a.csv", "b.csv", "--slope", "9", "--intercept", "25"}},
		{"missing intercept", []string{"a.csv", "--slope", "9"}},
		{"bad slope", []string{"a.csv", "--slope", "nine", "--intercept", "25"}},
		{"bad delimiter", []string{"a.csv", "--slope", "9", "--intercept", "25", "--delimiter", "ab"}},
		{"bad output", []string{"a.csv", "--slope", "9", "--intercept", "25", "-o", "fasta"}},
		{"empty column", []string{"a.csv", "--slope", "9", "--intercept", "25", "--stress-col", " "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(tc.argv...)
			assert.Error(t, err)
		})
	}
	_, err := parse("--slope", "9", "--intercept", "25")
	assert.True(t, errors.Is(err, cliutil.ErrNoInput))
}

func TestParseArgs_HelpVersionExamples(t *testing.T) {
	_, err := parse("-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
	_, err = parse("--examples")
	assert.ErrorIs(t, err, clibase.ErrPrintedAndExitOK)
	o, err := parse("--version")
	require.NoError(t, err)
	assert.True(t, o.Version)
}
