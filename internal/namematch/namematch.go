// Package namematch pairs patient names that were typed differently in
// different sheets ("DOE, JANE" vs "Jane Doe").
package namematch

import (
	"slices"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
)

// Normalize upper-cases a name, drops punctuation and collapses
// whitespace.
func Normalize(name string) string {
	fields := strings.FieldsFunc(strings.ToUpper(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}

func sortedTokens(normalized string) string {
	tokens := strings.Fields(normalized)
	slices.Sort(tokens)
	return strings.Join(tokens, " ")
}

// Similarity is the Jaro-Winkler similarity of two names, the token order
// of the names is ignored.
func Similarity(a, b string) float64 {
	a = Normalize(a)
	b = Normalize(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	return max(
		matchr.JaroWinkler(a, b, false),
		matchr.JaroWinkler(sortedTokens(a), sortedTokens(b), false),
	)
}

type Suggestion struct {
	Name  string
	Score float64
}

// Suggest returns up to n candidates that score at least threshold
// against query, best first. candidates that only differ in case or
// punctuation are returned once.
func Suggest(query string, candidates []string, n int, threshold float64) []Suggestion {
	seen := make(map[string]struct{})
	var out []Suggestion
	for _, c := range candidates {
		key := Normalize(c)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		score := Similarity(query, c)
		if score < threshold {
			continue
		}
		out = append(out, Suggestion{Name: c, Score: score})
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
