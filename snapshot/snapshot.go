// Package snapshot reads and writes the canonical text form of a flag
// descriptor table, used to compare the built-in table against a golden copy
// of the wrapped tool's documented options.
package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/eza-community/ezacomp"
)

// Row is one flag descriptor in canonical snapshot form.
type Row struct {
	Long        string
	Short       string
	Arity       string
	Description string
}

var (
	ErrMissingHeader = errors.New("snapshot is missing the generated header")
	ErrMalformedRow  = errors.New("malformed snapshot row")
)

const headerPrefix = "# generated:"

// Rows flattens a registry into snapshot rows in table order.
func Rows(registry *ezacomp.Registry) []Row {
	rows := make([]Row, 0, registry.Len())
	for _, flag := range registry.Flags() {
		rows = append(rows, Row{
			Long:        flag.Long,
			Short:       flag.Short,
			Arity:       flag.TypeOf.String(),
			Description: flag.Description,
		})
	}

	return rows
}

// Encode writes rows in the canonical tab-separated form, one descriptor per
// line, preceded by a generated-at header.
func Encode(w io.Writer, rows []Row, at time.Time) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", headerPrefix, at.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to write snapshot header: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			row.Long, row.Short, row.Arity, row.Description); err != nil {
			return fmt.Errorf("failed to write snapshot row: %w", err)
		}
	}

	return nil
}

// Parse reads a snapshot back. Header timestamps are accepted in any format
// dateparse understands, since older snapshots were written with varying
// date formats. Blank lines and comment lines after the header are skipped.
func Parse(r io.Reader) (time.Time, []Row, error) {
	scanner := bufio.NewScanner(r)

	var generatedAt time.Time
	var rows []Row
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if !strings.HasPrefix(line, headerPrefix) {
				return time.Time{}, nil, ErrMissingHeader
			}
			stamp := strings.TrimSpace(strings.TrimPrefix(line, headerPrefix))
			at, err := dateparse.ParseAny(stamp)
			if err != nil {
				return time.Time{}, nil, fmt.Errorf("bad header timestamp %q: %w", stamp, err)
			}
			generatedAt = at
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 4)
		if len(fields) != 4 {
			return time.Time{}, nil, fmt.Errorf("%w: %q", ErrMalformedRow, line)
		}
		rows = append(rows, Row{Long: fields[0], Short: fields[1], Arity: fields[2], Description: fields[3]})
	}
	if err := scanner.Err(); err != nil {
		return time.Time{}, nil, err
	}
	if first {
		return time.Time{}, nil, ErrMissingHeader
	}

	return generatedAt, rows, nil
}

// Diff reports human-readable differences between two row sets, keyed by long
// name: rows present only in got, rows present only in want, and rows whose
// alias, arity or description changed.
func Diff(got, want []Row) []string {
	wantByLong := make(map[string]Row, len(want))
	for _, row := range want {
		wantByLong[row.Long] = row
	}
	gotByLong := make(map[string]Row, len(got))

	var report []string
	for _, row := range got {
		gotByLong[row.Long] = row
		expected, found := wantByLong[row.Long]
		if !found {
			report = append(report, fmt.Sprintf("added --%s", row.Long))
			continue
		}
		if row != expected {
			report = append(report, fmt.Sprintf("changed --%s: got %s/%s/%q, want %s/%s/%q",
				row.Long, row.Short, row.Arity, row.Description,
				expected.Short, expected.Arity, expected.Description))
		}
	}
	for _, row := range want {
		if _, found := gotByLong[row.Long]; !found {
			report = append(report, fmt.Sprintf("removed --%s", row.Long))
		}
	}

	return report
}
