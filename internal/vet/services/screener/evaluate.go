// Package screener decides whether a handle is acceptable given an ordered
// list of protected-word rules. Evaluation is first-match-wins in list
// order, so callers control precedence by how they order the rules.
//
// Known limitation: a one- or two-letter word matched with the "any"
// position is a substring of almost every joined segment text and will
// match very broadly. Rule authors temper this with exceptions or by
// using the exact position; evaluation does not special-case short words.
package screener

import (
	"strings"

	"github.com/quietmint/handlevet/internal/vet/common/textutil"
	"github.com/quietmint/handlevet/internal/vet/domain"
)

// Evaluate screens a single handle against the supplied rules and returns
// a verdict. The handle is lowercased and trimmed first; a handle failing
// the format gate is rejected before any rule is consulted. The rule list
// is never mutated, and identical inputs always produce identical
// verdicts.
func Evaluate(handle string, rules []domain.Rule) domain.Verdict {
	h := domain.NormalizeHandle(handle)
	if !domain.ValidHandle(h) {
		return domain.Reject(domain.ReasonInvalidFormat)
	}

	segments := textutil.Segments(h)
	joined := textutil.JoinedText(segments)

	for _, rule := range rules {
		if rule.Word == "" {
			continue
		}
		if rule.CanBePositive && rule.ModifierOnly() {
			continue
		}
		if !matches(rule, segments, joined) {
			continue
		}
		if excepted(rule.Exceptions, segments, joined) {
			continue
		}
		return domain.Reject(rule.ReasonText())
	}
	return domain.Accept()
}

// matches applies the rule's position policy. Unknown positions never match.
func matches(rule domain.Rule, segments []string, joined string) bool {
	switch rule.Position {
	case domain.PositionExact:
		for _, s := range segments {
			if s == rule.Word {
				return true
			}
		}
	case domain.PositionAny:
		if strings.Contains(joined, rule.Word) ||
			strings.Contains(joined, textutil.Singular(rule.Word)) ||
			strings.Contains(joined, textutil.Plural(rule.Word)) {
			return true
		}
	case domain.PositionBeginsWith:
		for _, s := range segments {
			if strings.HasPrefix(s, rule.Word) {
				return true
			}
		}
	}
	return false
}

// excepted reports whether any exception voids a match: an exception that
// appears as a substring of the joined text, or that equals a whole
// segment, exempts the handle from this rule only.
func excepted(exceptions []string, segments []string, joined string) bool {
	for _, exc := range exceptions {
		if strings.Contains(joined, exc) {
			return true
		}
		for _, s := range segments {
			if s == exc {
				return true
			}
		}
	}
	return false
}
