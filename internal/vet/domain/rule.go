package domain

import (
	"fmt"
	"strings"
)

// Rule represents a single protected-word entry sourced from a file or feed.
//
// Notes:
// - Word and Exceptions are stored lowercase; the constructor normalizes them.
// - Algorithms are informational tags joined into the rejection reason.
// - Source identifies where the rule came from (file path or feed URL).
// - Rules are immutable once loaded; evaluation never mutates them.
type Rule struct {
	Word          string   // lowercase protected token
	Algorithms    []string // informational tags, e.g. "hatespeech", "suggestive", "modifier"
	Position      Position // matching strategy
	Exceptions    []string // lowercase; a match on the word is voided by any of these
	CanBePositive bool     // together with a modifier-only tag set, disables the rule
	Source        string   // feed/file identifier
}

// NewRule constructs a Rule, normalizes word and exceptions to lowercase,
// and validates the result.
func NewRule(word string, algorithms []string, position Position, exceptions []string, canBePositive bool, source string) (Rule, error) {
	r := Rule{
		Word:          strings.ToLower(strings.TrimSpace(word)),
		Algorithms:    algorithms,
		Position:      position,
		Exceptions:    lowerAll(exceptions),
		CanBePositive: canBePositive,
		Source:        strings.TrimSpace(source),
	}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Validate checks the Rule for required fields and supported values.
func (r Rule) Validate() error {
	if r.Word == "" {
		return fmt.Errorf("rule word must not be empty")
	}
	switch r.Position {
	case PositionExact, PositionAny, PositionBeginsWith:
		// ok
	default:
		return fmt.Errorf("unsupported position: %d", r.Position)
	}
	return nil
}

// ModifierOnly reports whether the rule carries exactly the single tag
// "modifier". Such rules are skipped during evaluation when CanBePositive
// is set.
func (r Rule) ModifierOnly() bool {
	return len(r.Algorithms) == 1 && r.Algorithms[0] == "modifier"
}

// ReasonText renders the rejection reason produced when this rule matches.
func (r Rule) ReasonText() string {
	return fmt.Sprintf("Flagged: %s (%s)", r.Word, strings.Join(r.Algorithms, ", "))
}

// lowerAll lowercases and trims each string, returning nil for empty input.
func lowerAll(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
