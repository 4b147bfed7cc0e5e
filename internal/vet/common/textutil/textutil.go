// Package textutil provides the text primitives for handle screening:
// segmentation of handles into alphanumeric runs and best-effort English
// singular/plural derivation. The stemming rules are heuristic, tuned for
// short identifier matching, and make no attempt at being a general
// inflection engine.
package textutil

import (
	"regexp"
	"strings"
)

var segmentRE = regexp.MustCompile(`[0-9a-z]+`)

// Segments splits a lowercased handle into its ordered maximal runs of
// alphanumeric characters, discarding the separator characters '@', '_',
// '.', and '-'. A handle without separators yields a single segment; an
// input with no alphanumeric characters yields nil. Segments are never
// empty. Pure function of the input.
func Segments(handle string) []string {
	return segmentRE.FindAllString(handle, -1)
}

// JoinedText joins segments with single spaces, producing the text used
// for substring-style containment checks.
func JoinedText(segments []string) string {
	return strings.Join(segments, " ")
}

// Singular derives the probable singular form of a lowercase word. Rules
// apply in order, first match wins, and only for words longer than three
// characters:
//
//	"ies" -> "y"   (parties -> party)
//	"ves" -> "f"   (wolves -> wolf)
//	trailing "s" dropped unless the word ends in "ss", "us", or "is"
//
// Anything else is returned unchanged.
func Singular(word string) string {
	if len(word) > 3 {
		switch {
		case strings.HasSuffix(word, "ies"):
			return word[:len(word)-3] + "y"
		case strings.HasSuffix(word, "ves"):
			return word[:len(word)-3] + "f"
		case strings.HasSuffix(word, "s") &&
			!strings.HasSuffix(word, "ss") &&
			!strings.HasSuffix(word, "us") &&
			!strings.HasSuffix(word, "is"):
			return word[:len(word)-1]
		}
	}
	return word
}

// Plural derives the probable plural form of a lowercase word by appending
// "s" unless the word already ends in "s".
func Plural(word string) string {
	if strings.HasSuffix(word, "s") {
		return word
	}
	return word + "s"
}
