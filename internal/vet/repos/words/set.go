// Package words reads candidate word sources (plain lists, wiktextract
// JSONL, ranked frequency lists, SCOWL output) and combines them into
// normalized sets for wordlist building.
package words

import (
	"regexp"
	"sort"
	"strings"
)

// tokenRE accepts lowercase alphabetic tokens with optional single
// hyphen separators, e.g. "mother-in-law".
var tokenRE = regexp.MustCompile(`^[a-z]+(?:-[a-z]+)*$`)

// Set is an unordered collection of normalized words.
type Set map[string]struct{}

// Add inserts a word as-is.
func (s Set) Add(word string) {
	s[word] = struct{}{}
}

// Has reports whether a word is present.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s) }

// Normalize trims a token, lowercases it, and strips apostrophes, so
// "Don't" becomes "dont". Returns "" for tokens that reduce to nothing.
func Normalize(token string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(token)), "'", "")
}

// Collect normalizes each word and gathers the non-empty results into a
// Set.
func Collect(list []string) Set {
	s := make(Set, len(list))
	for _, word := range list {
		if token := Normalize(word); token != "" {
			s.Add(token)
		}
	}
	return s
}

// Union merges all sets into one. No input sets yields an empty Set.
func Union(sets ...Set) Set {
	out := make(Set)
	for _, s := range sets {
		for word := range s {
			out.Add(word)
		}
	}
	return out
}

// Intersect keeps only words present in every set. No input sets yields
// an empty Set.
func Intersect(sets ...Set) Set {
	if len(sets) == 0 {
		return make(Set)
	}
	out := make(Set, len(sets[0]))
	for word := range sets[0] {
		out.Add(word)
	}
	for _, s := range sets[1:] {
		for word := range out {
			if !s.Has(word) {
				delete(out, word)
			}
		}
	}
	return out
}

// Filter normalizes every word, drops tokens that are not plain
// hyphenated alphabetic words or that exceed maxLen (punctuation counts
// toward length), and returns the survivors sorted. A maxLen of zero or
// less disables the length cap.
func Filter(s Set, maxLen int) []string {
	kept := make(Set, len(s))
	for word := range s {
		token := Normalize(word)
		if token == "" {
			continue
		}
		if !tokenRE.MatchString(token) {
			continue
		}
		if maxLen > 0 && len(token) > maxLen {
			continue
		}
		kept.Add(token)
	}
	out := make([]string, 0, len(kept))
	for word := range kept {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}
