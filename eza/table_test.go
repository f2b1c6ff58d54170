package eza

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eza-community/ezacomp"
	"github.com/eza-community/ezacomp/snapshot"
)

func TestTableIsSealed(t *testing.T) {
	table := Table()
	assert.True(t, table.Sealed())

	err := table.Register(&ezacomp.Flag{Long: "bogus", TypeOf: ezacomp.Standalone, Description: "bogus"})
	assert.ErrorIs(t, err, ezacomp.ErrSealedRegistry)
}

func TestTableIsShared(t *testing.T) {
	assert.Same(t, Table(), Table())
}

// Long names unique, short aliases unique, descriptions non-empty.
func TestTableStructuralProperties(t *testing.T) {
	table := Table()
	require.NotZero(t, table.Len())

	longs := make(map[string]bool, table.Len())
	shorts := make(map[string]bool, table.Len())
	for _, flag := range table.Flags() {
		assert.False(t, longs[flag.Long], "duplicate long name %q", flag.Long)
		longs[flag.Long] = true

		if flag.Short != "" {
			assert.False(t, shorts[flag.Short], "duplicate short alias %q (on --%s)", flag.Short, flag.Long)
			shorts[flag.Short] = true
		}

		assert.NotEmpty(t, flag.Description, "--%s has no description", flag.Long)

		if flag.TypeOf == ezacomp.Standalone {
			assert.Empty(t, flag.AcceptedValues, "--%s is standalone but declares values", flag.Long)
		}
	}
}

// The table must match the documented option set of eza. flags.golden is the
// canonical snapshot; regenerate it with `ezacomp snapshot` after a deliberate
// table change.
func TestTableMatchesGolden(t *testing.T) {
	file, err := os.Open("testdata/flags.golden")
	require.NoError(t, err)
	defer file.Close()

	_, want, err := snapshot.Parse(file)
	require.NoError(t, err)

	got := snapshot.Rows(Table())
	diff := snapshot.Diff(got, want)
	for _, line := range diff {
		t.Error(line)
	}
	assert.Len(t, got, len(want))
}

func TestTableKnownDescriptors(t *testing.T) {
	table := Table()

	all, err := table.GetByShort("a")
	require.NoError(t, err)
	assert.Equal(t, "all", all.Long)
	assert.Equal(t, ezacomp.Standalone, all.TypeOf)

	sortFlag, err := table.Get("sort")
	require.NoError(t, err)
	assert.Equal(t, "s", sortFlag.Short)
	assert.Equal(t, ezacomp.Single, sortFlag.TypeOf)
	patterns := make([]string, 0, len(sortFlag.AcceptedValues))
	for _, value := range sortFlag.AcceptedValues {
		patterns = append(patterns, value.Pattern)
	}
	assert.Contains(t, patterns, "modified")
	assert.Contains(t, patterns, "none")

	timeStyle, err := table.Get("time-style")
	require.NoError(t, err)
	assert.Empty(t, timeStyle.Short)
	assert.Equal(t, ezacomp.Single, timeStyle.TypeOf)

	extended, err := table.GetByShort("@")
	require.NoError(t, err)
	assert.Equal(t, "extended", extended.Long)
}

// eza accepts both the British and American spellings.
func TestTableColourAliases(t *testing.T) {
	table := Table()

	for _, name := range []string{"color", "colour", "color-scale", "colour-scale", "color-scale-mode", "colour-scale-mode"} {
		flag, err := table.Get(name)
		require.NoError(t, err, "--%s missing", name)
		assert.Equal(t, ezacomp.Single, flag.TypeOf)
		assert.NotEmpty(t, flag.AcceptedValues, "--%s has no value set", name)
	}
}
