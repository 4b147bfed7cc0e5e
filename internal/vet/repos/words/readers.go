package words

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/quietmint/handlevet/internal/vet/common/log"
)

// Wiktextract lines routinely run to megabytes; the scanner buffer must
// accommodate the largest entry.
const maxLineBytes = 16 * 1024 * 1024

// ReadPlain reads a newline-delimited word list, trimming whitespace and
// skipping blank lines.
func ReadPlain(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []string
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			out = append(out, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadRanked reads a ranked frequency list where each line carries a
// word optionally followed by a count, e.g. "the 23135851162". Only the
// first field is kept; blank lines and '#' comment lines are skipped.
func ReadRanked(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			out = append(out, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// kaikkiEntry is the subset of a wiktextract record the reader needs.
type kaikkiEntry struct {
	Word string `json:"word"`
	Lang string `json:"lang"`
}

// ReadKaikki reads wiktextract JSONL output, keeping the headword of
// every English entry. Lines that fail to parse are skipped rather than
// failing the read.
func ReadKaikki(r io.Reader, logger log.Logger) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []string
	badLines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry kaikkiEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			badLines++
			continue
		}
		if entry.Lang != "English" || entry.Word == "" {
			continue
		}
		out = append(out, entry.Word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	logger.Debug(map[string]any{"words": len(out), "bad_lines": badLines}, "kaikki_read_done")
	return out, nil
}
