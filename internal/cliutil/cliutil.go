// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so flags
// may follow the input path. '-' is a positional (stdin); '--' ends flags.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if !boolFlags[name] && i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return
}

var ErrNoInput = errors.New("a spectrum file is required (positional, --input, or --demo)")

// InputPath picks the single spectrum source from --input and positionals.
func InputPath(flagVal string, posArgs []string) (string, error) {
	switch {
	case len(posArgs) > 1:
		return "", fmt.Errorf("expected one spectrum file, got %d: %s", len(posArgs), strings.Join(posArgs, " "))
	case len(posArgs) == 1 && flagVal != "" && flagVal != posArgs[0]:
		return "", fmt.Errorf("--input %q conflicts with positional %q", flagVal, posArgs[0])
	case len(posArgs) == 1:
		return posArgs[0], nil
	case flagVal != "":
		return flagVal, nil
	}
	return "", ErrNoInput
}
