package spectrum

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"miner-core/damage"
)

const (
	DefaultStressColumn = "Stress_Amplitude_MPa"
	DefaultCyclesColumn = "Cycle_Count"
)

// Options selects columns and the field separator.
type Options struct {
	StressColumn string
	CyclesColumn string
	Delimiter    rune // 0 = infer from file name
}

func (o Options) withDefaults(name string) Options {
	if strings.TrimSpace(o.StressColumn) == "" {
		o.StressColumn = DefaultStressColumn
	}
	if strings.TrimSpace(o.CyclesColumn) == "" {
		o.CyclesColumn = DefaultCyclesColumn
	}
	if o.Delimiter == 0 {
		o.Delimiter = inferDelimiter(name)
	}
	return o
}

func inferDelimiter(name string) rune {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(name, ".gz")))
	switch ext {
	case ".tsv", ".tab":
		return '\t'
	}
	return ','
}

// ParseDelimiter maps a --delimiter value to a rune. "" and "auto" give 0.
func ParseDelimiter(spec string) (rune, error) {
	switch strings.ToLower(spec) {
	case "", "auto":
		return 0, nil
	case "tab", `\t`, "\t":
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}
	r, size := utf8.DecodeRuneInString(spec)
	if size != len(spec) || r == utf8.RuneError || r == '"' || r == '#' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("bad delimiter %q (want auto, tab, comma, semicolon, pipe, or one character)", spec)
	}
	return r, nil
}

// Load reads the whole table at path ("-" for stdin) and closes it.
func Load(path string, opts Options) ([]damage.LoadCase, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, &SourceError{Path: displayName(path), Err: err}
	}
	cases, err := Parse(rc, path, opts)
	if cerr := rc.Close(); cerr != nil && err == nil {
		err = &SourceError{Path: displayName(path), Err: cerr}
	}
	if err != nil {
		return nil, err
	}
	return cases, nil
}

// Parse reads a table from r. name is used for delimiter inference and errors.
func Parse(r io.Reader, name string, opts Options) ([]damage.LoadCase, error) {
	opts = opts.withDefaults(name)
	src := displayName(name)

	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = opts.Delimiter != '\t'
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &FormatError{Source: src, Line: 1, Err: ErrNoHeader}
	}
	if err != nil {
		return nil, readError(src, err)
	}
	line, _ := cr.FieldPos(0)
	si, ci, err := columns(header, opts)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Source, fe.Line = src, line
		}
		return nil, err
	}
	need := max(si, ci) + 1

	var cases []damage.LoadCase
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(src, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < need {
			return nil, &FormatError{Source: src, Line: line, Row: row, Err: fmt.Errorf("%w: have %d, need %d", ErrShortRow, len(rec), need)}
		}
		stress, err := parseNumber(rec[si])
		if err != nil {
			return nil, &FormatError{Source: src, Line: line, Row: row, Column: opts.StressColumn, Text: rec[si], Err: err}
		}
		cycles, err := parseNumber(rec[ci])
		if err != nil {
			return nil, &FormatError{Source: src, Line: line, Row: row, Column: opts.CyclesColumn, Text: rec[ci], Err: err}
		}
		cases = append(cases, damage.LoadCase{StressAmplitude: stress, Cycles: cycles})
	}
	return cases, nil
}

func columns(header []string, opts Options) (stress, cycles int, err error) {
	stress, cycles = -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch {
		case stress < 0 && strings.EqualFold(h, strings.TrimSpace(opts.StressColumn)):
			stress = i
		case cycles < 0 && strings.EqualFold(h, strings.TrimSpace(opts.CyclesColumn)):
			cycles = i
		}
	}
	if stress < 0 {
		return 0, 0, &FormatError{Column: opts.StressColumn, Err: ErrMissingColumn}
	}
	if cycles < 0 {
		return 0, 0, &FormatError{Column: opts.CyclesColumn, Err: ErrMissingColumn}
	}
	return stress, cycles, nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrBadNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrBadNumber
	}
	return v, nil
}

func readError(src string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &FormatError{Source: src, Line: pe.Line, Err: pe.Err}
	}
	return &SourceError{Path: src, Err: err}
}
