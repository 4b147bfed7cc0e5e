package rules

import (
	"strings"

	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/domain"
)

// Convert turns raw feed entries into domain Rules, attributing each to
// the given source. Entries without a usable word, with an unknown or
// non-string position, or failing domain validation are skipped with a
// warning rather than failing the whole load.
//
// An absent position defaults to exact, matching the feed convention.
func Convert(entries []map[string]any, source string, logger log.Logger) []domain.Rule {
	out := make([]domain.Rule, 0, len(entries))
	skipped := 0

	for i, entry := range entries {
		word, _ := entry["word"].(string)
		if strings.TrimSpace(word) == "" {
			skipped++
			logger.Warn(map[string]any{"source": source, "index": i}, "skip_missing_word")
			continue
		}

		pos := domain.PositionExact
		if rawPos, present := entry["position"]; present {
			s, ok := rawPos.(string)
			if !ok {
				skipped++
				logger.Warn(map[string]any{"source": source, "index": i, "word": word, "position": rawPos}, "skip_unknown_position")
				continue
			}
			parsed, err := domain.ParsePosition(s)
			if err != nil {
				skipped++
				logger.Warn(map[string]any{"source": source, "index": i, "word": word, "position": s}, "skip_unknown_position")
				continue
			}
			pos = parsed
		}

		algorithms := toStringSlice(entry["algorithms"])
		exceptions := toExceptionSlice(entry["exceptions"])
		canBePositive, _ := entry["canBePositive"].(bool)

		rule, err := domain.NewRule(word, algorithms, pos, exceptions, canBePositive, source)
		if err != nil {
			skipped++
			logger.Warn(map[string]any{"source": source, "index": i, "word": word, "error": err.Error()}, "skip_invalid_rule")
			continue
		}
		out = append(out, rule)
	}

	logger.Debug(map[string]any{"source": source, "count": len(out), "skipped": skipped}, "rules_converted")
	return out
}

// toExceptionSlice converts a raw exceptions value, skipping non-string
// elements but keeping empty strings: an empty exception voids every
// match during evaluation, and conversion must not change that.
func toExceptionSlice(val any) []string {
	list, ok := val.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, elem := range list {
		if s, ok := elem.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// toStringSlice converts a raw parsed value (string or []any of strings)
// into a slice of non-empty strings, skipping empty or non-string
// elements. Invalid types yield nil, which callers treat as an empty
// list.
func toStringSlice(val any) []string {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		return []string{s}
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				continue // skip non-strings silently
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue // skip empty strings
			}
			out = append(out, s)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}
