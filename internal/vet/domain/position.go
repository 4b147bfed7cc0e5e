package domain

import (
	"fmt"
	"strings"
)

// Position defines how a rule's word is matched against a handle.
//
// exact      - some segment equals the word
// any        - the word or a singular/plural variant appears anywhere in the joined segment text
// beginswith - some segment starts with the word
type Position uint8

const (
	// PositionExact matches a whole segment only.
	PositionExact Position = iota
	// PositionAny matches as a substring of the joined segment text,
	// including the word's derived singular and plural forms.
	PositionAny
	// PositionBeginsWith matches a segment prefix.
	PositionBeginsWith
)

// String returns a stable string representation of the position.
func (p Position) String() string {
	switch p {
	case PositionExact:
		return "exact"
	case PositionAny:
		return "any"
	case PositionBeginsWith:
		return "beginswith"
	default:
		return fmt.Sprintf("Position(%d)", p)
	}
}

// ParsePosition converts a string into a Position.
// Accepts "exact", "any", "beginswith" (case-insensitive, trimmed).
// The empty string parses as PositionExact, the rule source default.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return PositionExact, nil
	case "any":
		return PositionAny, nil
	case "beginswith":
		return PositionBeginsWith, nil
	default:
		return 0, fmt.Errorf("unsupported position: %q", s)
	}
}
