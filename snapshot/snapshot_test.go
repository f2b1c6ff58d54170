package snapshot

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eza-community/ezacomp"
)

func sampleRows() []Row {
	return []Row{
		{Long: "all", Short: "a", Arity: "standalone", Description: "show hidden and 'dot' files"},
		{Long: "sort", Short: "s", Arity: "single", Description: "which field to sort by"},
		{Long: "git-ignore", Arity: "standalone", Description: "ignore files mentioned in '.gitignore'"},
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	require.NoError(t, Encode(&buf, sampleRows(), at))

	generatedAt, rows, err := Parse(&buf)
	require.NoError(t, err)
	assert.True(t, generatedAt.Equal(at))
	assert.Equal(t, sampleRows(), rows)
}

func TestParseFlexibleHeaderTimestamps(t *testing.T) {
	// snapshots in the wild carry a few different date formats
	headers := []string{
		"# generated: 2026-08-23T12:00:00Z",
		"# generated: 2026-08-23 12:00:00",
		"# generated: Aug 23, 2026",
		"# generated: 08/23/2026",
	}

	for _, header := range headers {
		t.Run(header, func(t *testing.T) {
			input := header + "\nall\ta\tstandalone\tshow hidden files\n"
			generatedAt, rows, err := Parse(strings.NewReader(input))
			require.NoError(t, err)
			assert.Equal(t, 2026, generatedAt.Year())
			require.Len(t, rows, 1)
			assert.Equal(t, "all", rows[0].Long)
		})
	}
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, _, err := Parse(strings.NewReader("all\ta\tstandalone\tshow hidden files\n"))
	assert.ErrorIs(t, err, ErrMissingHeader)

	_, _, err = Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestParseRejectsMalformedRows(t *testing.T) {
	input := "# generated: 2026-08-23T12:00:00Z\nall\ta\tstandalone\n"
	_, _, err := Parse(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	input := strings.Join([]string{
		"# generated: 2026-08-23T12:00:00Z",
		"",
		"# display options",
		"all\ta\tstandalone\tshow hidden files",
		"",
	}, "\n")

	_, rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRows(t *testing.T) {
	registry := ezacomp.NewRegistry()
	require.NoError(t, registry.Register(&ezacomp.Flag{
		Long: "all", Short: "a", TypeOf: ezacomp.Standalone, Description: "show hidden files",
	}))
	require.NoError(t, registry.Register(&ezacomp.Flag{
		Long: "sort", Short: "s", TypeOf: ezacomp.Single, Description: "which field to sort by",
	}))

	rows := Rows(registry)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Long: "all", Short: "a", Arity: "standalone", Description: "show hidden files"}, rows[0])
	assert.Equal(t, Row{Long: "sort", Short: "s", Arity: "single", Description: "which field to sort by"}, rows[1])
}

func TestDiff(t *testing.T) {
	base := sampleRows()

	t.Run("identical", func(t *testing.T) {
		assert.Empty(t, Diff(base, sampleRows()))
	})

	t.Run("added", func(t *testing.T) {
		got := append(sampleRows(), Row{Long: "tree", Short: "T", Arity: "standalone", Description: "recurse as a tree"})
		report := Diff(got, base)
		require.Len(t, report, 1)
		assert.Contains(t, report[0], "added --tree")
	})

	t.Run("removed", func(t *testing.T) {
		report := Diff(base[:2], base)
		require.Len(t, report, 1)
		assert.Contains(t, report[0], "removed --git-ignore")
	})

	t.Run("changed", func(t *testing.T) {
		got := sampleRows()
		got[1].Description = "something else"
		report := Diff(got, base)
		require.Len(t, report, 1)
		assert.Contains(t, report[0], "changed --sort")
	})
}
