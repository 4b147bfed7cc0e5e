package jsarray

import (
	"fmt"
	"strings"
)

// contextRadius is how many bytes of surrounding source a SyntaxError
// carries on each side of the failure offset.
const contextRadius = 60

// SyntaxError describes a failure to parse the relaxed array dialect.
// It carries the byte offset, the 1-based line and column, and a condensed
// snippet of the surrounding source so failures in minified blobs can be
// located without a hex dump.
type SyntaxError struct {
	Offset  int    // byte offset of the failure
	Line    int    // 1-based line number
	Col     int    // 1-based column (bytes)
	Context string // condensed source text around the failure
	msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.msg)
}

// newSyntaxError builds a SyntaxError at the given offset into src.
func newSyntaxError(src []byte, off int, format string, args ...any) *SyntaxError {
	if off > len(src) {
		off = len(src)
	}
	line, col := lineCol(src, off)
	return &SyntaxError{
		Offset:  off,
		Line:    line,
		Col:     col,
		Context: contextAround(src, off),
		msg:     fmt.Sprintf(format, args...),
	}
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(src []byte, off int) (line, col int) {
	line = 1
	lineStart := 0
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, off - lineStart + 1
}

// contextAround extracts up to contextRadius bytes either side of off and
// collapses whitespace runs so the snippet prints on one line.
func contextAround(src []byte, off int) string {
	lo := off - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := off + contextRadius
	if hi > len(src) {
		hi = len(src)
	}
	snippet := strings.Join(strings.Fields(string(src[lo:hi])), " ")
	if lo > 0 {
		snippet = "..." + snippet
	}
	if hi < len(src) {
		snippet += "..."
	}
	return snippet
}
