// Package wordlist builds merged, filtered word lists from the
// configured sources: SCOWL checkouts, plain word list files,
// wiktextract JSONL dumps, and ranked frequency lists.
package wordlist

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/repos/words"
)

// ErrNoSources indicates a build was requested with no word sources.
var ErrNoSources = errors.New("no word sources configured")

// Error message constants for consistent error handling
const (
	errOpenWordlist = "failed to open word list %s: %w"
	errReadWordlist = "failed to read word list %s: %w"
	errOpenKaikki   = "failed to open wiktextract file %s: %w"
	errReadKaikki   = "failed to read wiktextract file %s: %w"
	errOpenRanked   = "failed to open ranked list %s: %w"
	errReadRanked   = "failed to read ranked list %s: %w"
)

// Params selects the sources and merge behavior for one build.
type Params struct {
	Wordlists     []string // plain word list paths, merged into a single source
	Kaikki        string   // wiktextract JSONL path, empty disables
	Ranked        string   // ranked frequency list path, empty disables
	ScowlDir      string   // SCOWL checkout directory, empty disables
	ScowlSize     int
	ScowlNoFilter bool
	Intersection  bool // keep only words present in every source
	MaxLen        int
}

// Options configures a Service.
type Options struct {
	Runner words.Runner
	Logger log.Logger
}

// Service merges word sources into a filtered, sorted word list.
type Service struct {
	runner words.Runner
	logger log.Logger
}

// New constructs a Service. A nil Logger discards logs; a nil Runner
// falls back to executing real commands.
func New(opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Service{
		runner: opts.Runner,
		logger: opts.Logger,
	}
}

// Build gathers every configured source, merges them (intersection or
// union), and returns the filtered, sorted result. All --wordlist files
// together form one source, so intersection does not require a word to
// appear in each file.
func (s *Service) Build(ctx context.Context, p Params) ([]string, error) {
	var sources []words.Set

	if p.ScowlDir != "" {
		list, err := words.ScowlWords(ctx, words.ScowlOptions{
			Dir:      p.ScowlDir,
			Size:     p.ScowlSize,
			NoFilter: p.ScowlNoFilter,
			Runner:   s.runner,
		})
		if err != nil {
			return nil, err
		}
		set := words.Collect(list)
		s.logger.Debug(map[string]any{"count": set.Len()}, "scowl_words_collected")
		sources = append(sources, set)
	}

	if len(p.Wordlists) > 0 {
		set, err := s.collectWordlists(p.Wordlists)
		if err != nil {
			return nil, err
		}
		s.logger.Debug(map[string]any{"files": len(p.Wordlists), "count": set.Len()}, "wordlist_files_collected")
		sources = append(sources, set)
	}

	if p.Kaikki != "" {
		set, err := s.collectKaikki(p.Kaikki)
		if err != nil {
			return nil, err
		}
		s.logger.Debug(map[string]any{"count": set.Len()}, "kaikki_words_collected")
		sources = append(sources, set)
	}

	if p.Ranked != "" {
		set, err := s.collectRanked(p.Ranked)
		if err != nil {
			return nil, err
		}
		s.logger.Debug(map[string]any{"count": set.Len()}, "ranked_words_collected")
		sources = append(sources, set)
	}

	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	var merged words.Set
	if p.Intersection {
		merged = words.Intersect(sources...)
	} else {
		merged = words.Union(sources...)
	}

	out := words.Filter(merged, p.MaxLen)
	s.logger.Info(map[string]any{
		"sources":      len(sources),
		"intersection": p.Intersection,
		"words":        len(out),
	}, "wordlist_built")
	return out, nil
}

// collectWordlists reads every plain word list file into one combined
// source set.
func (s *Service) collectWordlists(paths []string) (words.Set, error) {
	combined := make(words.Set)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf(errOpenWordlist, path, err)
		}
		list, err := words.ReadPlain(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf(errReadWordlist, path, err)
		}
		combined = words.Union(combined, words.Collect(list))
	}
	return combined, nil
}

func (s *Service) collectKaikki(path string) (words.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(errOpenKaikki, path, err)
	}
	defer f.Close()

	list, err := words.ReadKaikki(f, s.logger)
	if err != nil {
		return nil, fmt.Errorf(errReadKaikki, path, err)
	}
	return words.Collect(list), nil
}

func (s *Service) collectRanked(path string) (words.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(errOpenRanked, path, err)
	}
	defer f.Close()

	list, err := words.ReadRanked(f)
	if err != nil {
		return nil, fmt.Errorf(errReadRanked, path, err)
	}
	return words.Collect(list), nil
}
