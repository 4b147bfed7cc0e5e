// Package compare finds unminted handles: English words from a built
// word list that do not yet appear in the minted-handle feed.
package compare

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/repos/handles"
	"github.com/quietmint/handlevet/internal/vet/repos/words"
)

// Error message constants for consistent error handling
const (
	errFetcherRequired = "handle fetcher is required"
	errStoreRequired   = "handle store is required"
	errOpenWordlist    = "failed to open word list %s: %w"
	errReadWordlist    = "failed to read word list %s: %w"
	errFetchHandles    = "failed to fetch handles from %s: %w"
	errPromptFailed    = "cache prompt failed: %w"
)

const (
	promptUseCache  = "Cached Handles list found at %s (modified %s). Use cache? [Y/n] "
	timestampLayout = "2006-01-02 15:04:05"
)

// Params selects the inputs for one comparison.
type Params struct {
	WordlistPath string // built word list, one word per line
	URL          string // minted-handle feed endpoint
	MaxLen       int    // drop word list entries longer than this
}

// Options configures a Service.
type Options struct {
	Fetcher Fetcher
	Store   Store
	Prompt  Prompt
	Logger  log.Logger
}

// Service compares a word list against the minted-handle feed.
type Service struct {
	fetcher Fetcher
	store   Store
	prompt  Prompt
	logger  log.Logger
}

// New constructs a Service. Fetcher and Store are required. A nil Prompt
// reuses an existing cache without asking; a nil Logger discards logs.
func New(opts Options) (*Service, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf(errFetcherRequired)
	}
	if opts.Store == nil {
		return nil, fmt.Errorf(errStoreRequired)
	}
	if opts.Prompt == nil {
		opts.Prompt = func(string) (string, error) { return "", nil }
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Service{
		fetcher: opts.Fetcher,
		store:   opts.Store,
		prompt:  opts.Prompt,
		logger:  opts.Logger,
	}, nil
}

// Unminted returns word list entries absent from the minted-handle feed,
// shortest first, ties broken lexicographically.
func (s *Service) Unminted(ctx context.Context, p Params) ([]string, error) {
	english, err := s.loadEnglish(p.WordlistPath, p.MaxLen)
	if err != nil {
		return nil, err
	}

	text, err := s.handlesText(ctx, p.URL)
	if err != nil {
		return nil, err
	}
	minted := handles.ParseSet(text)

	missing := make([]string, 0, english.Len())
	for word := range english {
		if !minted.Has(word) {
			missing = append(missing, word)
		}
	}
	sortByLength(missing)

	s.logger.Info(map[string]any{
		"english":  english.Len(),
		"minted":   minted.Len(),
		"unminted": len(missing),
	}, "unminted_computed")
	return missing, nil
}

// loadEnglish reads the word list, lowercases entries, and drops those
// longer than maxLen. Unlike word list building, no token filtering
// happens here; the list is taken as built.
func (s *Service) loadEnglish(path string, maxLen int) (words.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(errOpenWordlist, path, err)
	}
	defer f.Close()

	list, err := words.ReadPlain(f)
	if err != nil {
		return nil, fmt.Errorf(errReadWordlist, path, err)
	}

	set := make(words.Set, len(list))
	for _, word := range list {
		if maxLen > 0 && len(word) > maxLen {
			continue
		}
		set.Add(strings.ToLower(word))
	}
	return set, nil
}

// handlesText returns the minted-handle feed text, offering to reuse a
// cached copy when one exists. A fresh download is written through to
// the cache before returning.
func (s *Service) handlesText(ctx context.Context, url string) (string, error) {
	if mtime, ok := s.store.Stat(); ok {
		question := fmt.Sprintf(promptUseCache, s.store.Path(), mtime.Format(timestampLayout))
		answer, err := s.prompt(question)
		if err != nil {
			return "", fmt.Errorf(errPromptFailed, err)
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "", "y", "yes":
			s.logger.Info(map[string]any{"path": s.store.Path()}, "handle_cache_reused")
			return s.store.Read()
		}
	}

	body, err := s.fetcher.Get(ctx, url, "text/plain")
	if err != nil {
		return "", fmt.Errorf(errFetchHandles, url, err)
	}
	text := string(body)
	if err := s.store.Write(text); err != nil {
		return "", err
	}
	s.logger.Info(map[string]any{"url": url, "bytes": len(body)}, "handles_fetched")
	return text, nil
}

// sortByLength orders words shortest first, ties broken
// lexicographically.
func sortByLength(list []string) {
	sort.Slice(list, func(i, j int) bool {
		if len(list[i]) != len(list[j]) {
			return len(list[i]) < len(list[j])
		}
		return list[i] < list[j]
	})
}
