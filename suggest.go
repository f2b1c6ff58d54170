// Copyright 2024-2026, the eza-community contributors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

package ezacomp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/shlex"
)

// similarityThreshold is the minimum score for a flag name to be offered as a
// "did you mean" candidate when no name matches by prefix.
const similarityThreshold = 0.5

// Suggestion is one completion candidate for a partially typed command line.
type Suggestion struct {
	Text        string // the word to insert, including any dash prefix
	Description string
}

// Suggest returns completion candidates for the last word of a partially
// typed command line. The line is tokenized shell-style, so quoting rules
// apply. Candidates are flag names when the last word looks like a flag, and
// accepted values when the word in front of it is a flag that takes one.
// Misspelled long names fall back to similarity ranking.
func (r *Registry) Suggest(line string, maxResults int) ([]Suggestion, error) {
	if maxResults <= 0 {
		return nil, nil
	}
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("cannot tokenize %q: %w", line, err)
	}

	var last, prev string
	if len(tokens) > 0 {
		last = tokens[len(tokens)-1]
	}
	if len(tokens) > 1 {
		prev = tokens[len(tokens)-2]
	}
	// A trailing space starts a fresh word.
	if trimmed := strings.TrimRight(line, " \t"); trimmed != line {
		prev, last = last, ""
	}

	if flag := r.flagForToken(prev); flag != nil && flag.TypeOf == Single && !strings.HasPrefix(last, "-") {
		return suggestValues(flag, last, "", maxResults), nil
	}

	if name, isLong := strings.CutPrefix(last, "--"); isLong {
		if flagName, partial, hasValue := strings.Cut(name, "="); hasValue {
			flag, err := r.Get(flagName)
			if err != nil || flag.TypeOf != Single {
				return nil, nil
			}
			return suggestValues(flag, partial, "--"+flagName+"=", maxResults), nil
		}
		return r.suggestLong(name, maxResults), nil
	}

	if name, isShort := strings.CutPrefix(last, "-"); isShort {
		if name == "" {
			return r.suggestLong("", maxResults), nil
		}
		if flag, err := r.GetByShort(name); err == nil {
			return []Suggestion{{Text: "--" + flag.Long, Description: flag.Description}}, nil
		}
		return nil, nil
	}

	if last == "" {
		return r.suggestLong("", maxResults), nil
	}

	// Anything else is a path argument, which is the shell's business.
	return nil, nil
}

// flagForToken resolves a raw command-line token to its descriptor, or nil
// when the token is not a flag or already carries an inline =value.
func (r *Registry) flagForToken(token string) *Flag {
	if strings.Contains(token, "=") {
		return nil
	}
	if name, isLong := strings.CutPrefix(token, "--"); isLong {
		if flag, err := r.Get(name); err == nil {
			return flag
		}
		return nil
	}
	if name, isShort := strings.CutPrefix(token, "-"); isShort {
		if flag, err := r.GetByShort(name); err == nil {
			return flag
		}
	}

	return nil
}

func (r *Registry) suggestLong(prefix string, maxResults int) []Suggestion {
	suggestions := make([]Suggestion, 0, maxResults)
	for _, flag := range r.Flags() {
		if !strings.HasPrefix(flag.Long, prefix) {
			continue
		}
		suggestions = append(suggestions, Suggestion{Text: "--" + flag.Long, Description: flag.Description})
		if len(suggestions) == maxResults {
			return suggestions
		}
	}
	if len(suggestions) > 0 || prefix == "" {
		return suggestions
	}

	return r.suggestSimilar(prefix, maxResults)
}

func suggestValues(flag *Flag, partial, insertPrefix string, maxResults int) []Suggestion {
	suggestions := make([]Suggestion, 0, maxResults)
	for _, value := range flag.AcceptedValues {
		if !strings.HasPrefix(value.Pattern, partial) {
			continue
		}
		suggestions = append(suggestions, Suggestion{Text: insertPrefix + value.Pattern, Description: value.Description})
		if len(suggestions) == maxResults {
			break
		}
	}

	return suggestions
}

// suggestSimilar ranks registered long names by similarity to the misspelled
// name and returns those above similarityThreshold, best first.
func (r *Registry) suggestSimilar(name string, maxResults int) []Suggestion {
	type scored struct {
		flag  *Flag
		score float64
	}

	candidates := make([]scored, 0, r.Len())
	for _, flag := range r.Flags() {
		score := similarity(name, flag.Long)
		if score > similarityThreshold {
			candidates = append(candidates, scored{flag, score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score == candidates[j].score {
			return candidates[i].flag.Long < candidates[j].flag.Long
		}
		return candidates[i].score > candidates[j].score
	})

	suggestions := make([]Suggestion, 0, maxResults)
	for _, candidate := range candidates {
		suggestions = append(suggestions, Suggestion{
			Text:        "--" + candidate.flag.Long,
			Description: candidate.flag.Description,
		})
		if len(suggestions) == maxResults {
			break
		}
	}

	return suggestions
}

func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	distance := levenshtein(a, b)

	return 1.0 - float64(distance)/float64(max(len(a), len(b)))
}

func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(matrix[i-1][j]+1, matrix[i][j-1]+1, matrix[i-1][j-1]+cost)
		}
	}

	return matrix[len(a)][len(b)]
}
