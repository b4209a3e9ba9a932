package spectrum

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miner-core/damage"
)

func TestLoad_CSVWithCommentsAndExtraColumns(t *testing.T) {
	cases, err := Load(filepath.Join("testdata", "aluminium.csv"), Options{})
	require.NoError(t, err)
	assert.Equal(t, Demo(), cases)
}

func TestLoad_TSVInferredAndColumnOrder(t *testing.T) {
	cases, err := Load(filepath.Join("testdata", "swapped.tsv"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []damage.LoadCase{{StressAmplitude: 150, Cycles: 1e5}, {StressAmplitude: 200, Cycles: 5000}}, cases)
}

func TestLoad_Gzip(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "aluminium.csv"))
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	// No .gz suffix: detection is by magic number.
	path := filepath.Join(t.TempDir(), "spectrum.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	cases, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Len(t, cases, 5)
}

func TestLoad_SourceUnavailable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
	assert.True(t, errors.Is(err, os.ErrNotExist), "underlying error must be kept: %v", err)
	assert.False(t, errors.Is(err, damage.ErrInvalidInput))
}

func TestParse_CustomColumnsAndDelimiter(t *testing.T) {
	in := "S ; N\n 100 ; 10\n200;20\n"
	cases, err := Parse(strings.NewReader(in), "x.txt", Options{StressColumn: "s", CyclesColumn: "n", Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []damage.LoadCase{{StressAmplitude: 100, Cycles: 10}, {StressAmplitude: 200, Cycles: 20}}, cases)
}

func TestParse_HeaderOnlyIsEmpty(t *testing.T) {
	cases, err := Parse(strings.NewReader("Stress_Amplitude_MPa,Cycle_Count\n"), "h.csv", Options{})
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		line   int
		row    int
		column string
		cause  error
	}{
		{"empty", "", 1, 0, "", ErrNoHeader},
		{"comments only", "# nothing\n", 1, 0, "", ErrNoHeader},
		{"missing stress", "Stress,Cycle_Count\n1,2\n", 1, 0, DefaultStressColumn, ErrMissingColumn},
		{"missing cycles", "# c\nStress_Amplitude_MPa,Cycles\n1,2\n", 2, 0, DefaultCyclesColumn, ErrMissingColumn},
		{"bad number", "Stress_Amplitude_MPa,Cycle_Count\n100,10\n1O0,5\n", 3, 2, DefaultStressColumn, ErrBadNumber},
		{"blank cell", "Stress_Amplitude_MPa,Cycle_Count\n100,\n", 2, 1, DefaultCyclesColumn, ErrBadNumber},
		{"short row", "Stress_Amplitude_MPa,Cycle_Count\n100\n", 2, 1, "", ErrShortRow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in), "in.csv", Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.cause)
			assert.ErrorIs(t, err, damage.ErrInvalidInput)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "in.csv", fe.Source)
			assert.Equal(t, tc.line, fe.Line)
			assert.Equal(t, tc.row, fe.Row)
			assert.Equal(t, tc.column, fe.Column)
		})
	}
}

func TestParse_NegativeValuesPassThrough(t *testing.T) {
	// Range checks are the accumulator's job.
	cases, err := Parse(strings.NewReader("Stress_Amplitude_MPa,Cycle_Count\n-5,-1\n"), "n.csv", Options{})
	require.NoError(t, err)
	assert.Equal(t, []damage.LoadCase{{StressAmplitude: -5, Cycles: -1}}, cases)
}

func TestParseDelimiter(t *testing.T) {
	tests := map[string]rune{"": 0, "auto": 0, "tab": '\t', `\t`: '\t', "comma": ',', ";": ';', "PIPE": '|', ":": ':'}
	for in, want := range tests {
		got, err := ParseDelimiter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"ab", `"`, "#", "\n"} {
		_, err := ParseDelimiter(bad)
		assert.Error(t, err, bad)
	}
}

func TestInferDelimiter(t *testing.T) {
	assert.Equal(t, '\t', inferDelimiter("a.TSV"))
	assert.Equal(t, '\t', inferDelimiter("a.tab.gz"))
	assert.Equal(t, ',', inferDelimiter("a.csv.gz"))
	assert.Equal(t, ',', inferDelimiter("-"))
}
