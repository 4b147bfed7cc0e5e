package domain

import (
	"regexp"
	"strings"
)

// handleRE is the sole formal input-validity gate for handles:
// 1 to 15 characters drawn from [a-z0-9_.-], checked after lowercasing.
var handleRE = regexp.MustCompile(`^[a-z0-9_.-]{1,15}$`)

// ReasonInvalidFormat is the fixed rejection reason for handles that fail
// the format gate.
const ReasonInvalidFormat = "Invalid format (1-15 chars, only a-z0-9_.-)"

// NormalizeHandle lowercases and trims a raw handle. Evaluation operates
// on the normalized form only.
func NormalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidHandle reports whether a normalized handle satisfies the format
// constraint. Handles made up entirely of digits or separators still pass;
// format and meaning are separate concerns.
func ValidHandle(s string) bool {
	return handleRE.MatchString(s)
}
