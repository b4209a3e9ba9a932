package spectrum

import (
	"errors"
	"fmt"

	"miner-core/damage"
)

// ErrSourceUnavailable is matched by *SourceError.
var ErrSourceUnavailable = errors.New("source unavailable")

var (
	ErrNoHeader      = errors.New("missing header row")
	ErrMissingColumn = errors.New("column not found in header")
	ErrShortRow      = errors.New("row has too few fields")
	ErrBadNumber     = errors.New("not a number")
)

// SourceError wraps an open/read failure unchanged.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrSourceUnavailable }

// FormatError locates malformed table content. It matches damage.ErrInvalidInput.
type FormatError struct {
	Source string
	Line   int    // physical line in the source
	Row    int    // 1-based data row, 0 for the header
	Column string // column name, if known
	Text   string // offending cell, if any
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("%s:%d", e.Source, e.Line)
	if e.Row > 0 {
		msg += fmt.Sprintf(": row %d", e.Row)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(": column %s", e.Column)
	}
	if e.Text != "" {
		msg += fmt.Sprintf(": %q", e.Text)
	}
	return msg + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == damage.ErrInvalidInput }
