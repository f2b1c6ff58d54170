package ezacomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestRegistry(t *testing.T) *Registry {
	t.Helper()

	registry := NewRegistry()
	flags := []*Flag{
		{Long: "oneline", Short: "1", TypeOf: Standalone, Description: "display one entry per line"},
		{Long: "tree", Short: "T", TypeOf: Standalone, Description: "recurse into directories as a tree"},
		{Long: "time", Short: "t", TypeOf: Single, Description: "which timestamp field to list",
			AcceptedValues: []PatternValue{
				{Pattern: "modified", Description: "when the file was last modified"},
				{Pattern: "changed", Description: "when the file's metadata last changed"},
				{Pattern: "accessed", Description: "when the file was last read"},
			}},
		{Long: "total-size", TypeOf: Standalone, Description: "show the total size of directories"},
	}
	for _, flag := range flags {
		require.NoError(t, registry.Register(flag))
	}
	registry.Seal()

	return registry
}

func TestSuggestLongPrefix(t *testing.T) {
	registry := suggestRegistry(t)

	suggestions, err := registry.Suggest("eza --t", 10)
	require.NoError(t, err)

	texts := suggestionTexts(suggestions)
	assert.Equal(t, []string{"--tree", "--time", "--total-size"}, texts)
}

func TestSuggestDashOffersEverything(t *testing.T) {
	registry := suggestRegistry(t)

	suggestions, err := registry.Suggest("eza -", 10)
	require.NoError(t, err)
	assert.Len(t, suggestions, registry.Len())

	suggestions, err = registry.Suggest("eza -", 2)
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
}

func TestSuggestShortAliasResolvesToLong(t *testing.T) {
	registry := suggestRegistry(t)

	suggestions, err := registry.Suggest("eza -T", 10)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "--tree", suggestions[0].Text)
}

func TestSuggestValuesAfterSingleFlag(t *testing.T) {
	registry := suggestRegistry(t)

	// fresh word after a value-taking flag
	suggestions, err := registry.Suggest("eza --time ", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"modified", "changed", "accessed"}, suggestionTexts(suggestions))

	// partial value word
	suggestions, err = registry.Suggest("eza --time mo", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"modified"}, suggestionTexts(suggestions))

	// short alias in front of the value
	suggestions, err = registry.Suggest("eza -t ch", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"changed"}, suggestionTexts(suggestions))
}

func TestSuggestInlineValue(t *testing.T) {
	registry := suggestRegistry(t)

	suggestions, err := registry.Suggest("eza --time=acc", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"--time=accessed"}, suggestionTexts(suggestions))

	// unknown flag in front of the = yields nothing
	suggestions, err = registry.Suggest("eza --nope=x", 10)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestSimilarFallback(t *testing.T) {
	registry := suggestRegistry(t)

	suggestions, err := registry.Suggest("eza --onelien", 10)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "--oneline", suggestions[0].Text)
}

func TestSuggestIgnoresPathWords(t *testing.T) {
	registry := suggestRegistry(t)

	suggestions, err := registry.Suggest("eza src/main.go", 10)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestTokenizeError(t *testing.T) {
	registry := suggestRegistry(t)

	_, err := registry.Suggest(`eza "unterminated`, 10)
	assert.Error(t, err)
}

func TestSuggestNoResultsRequested(t *testing.T) {
	registry := suggestRegistry(t)

	suggestions, err := registry.Suggest("eza --t", 0)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func suggestionTexts(suggestions []Suggestion) []string {
	texts := make([]string, 0, len(suggestions))
	for _, suggestion := range suggestions {
		texts = append(texts, suggestion.Text)
	}
	return texts
}
