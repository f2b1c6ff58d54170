package util

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/term"
)

const defaultWidth = 80

// Width resolves the display width for table rendering. An explicit flag
// value wins; next comes the COLUMNS environment variable, then the size of
// the attached terminal, then a default of 80 columns. A COLUMNS value that
// doesn't parse is an error rather than a silent fallback.
func Width(flagValue int) (int, error) {
	if flagValue >= 1 {
		return flagValue, nil
	}

	if columns := os.Getenv("COLUMNS"); columns != "" {
		width, err := strconv.Atoi(columns)
		if err != nil {
			return 0, fmt.Errorf("failed to parse COLUMNS value %q: %w", columns, err)
		}
		if width >= 1 {
			return width, nil
		}
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width >= 1 {
			return width, nil
		}
	}

	return defaultWidth, nil
}
