// Package handles persists and parses the minted-handle list downloaded
// from the registry feed.
package handles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quietmint/handlevet/internal/vet/repos/words"
)

// Error message constants for consistent error handling
const (
	errReadCache  = "failed to read handle cache %s: %w"
	errWriteCache = "failed to write handle cache %s: %w"
	errCacheDir   = "failed to create cache directory %s: %w"
)

// Store reads and writes the handle list cache at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store for the given cache path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the cache file path.
func (s *Store) Path() string { return s.path }

// Stat reports the cache file's modification time and whether it exists.
func (s *Store) Stat() (time.Time, bool) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Read returns the cached handle list text.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf(errReadCache, s.path, err)
	}
	return string(data), nil
}

// Write stores the handle list text, creating parent directories as
// needed.
func (s *Store) Write(text string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf(errCacheDir, dir, err)
	}
	if err := os.WriteFile(s.path, []byte(text), 0644); err != nil {
		return fmt.Errorf(errWriteCache, s.path, err)
	}
	return nil
}

// ParseSet splits handle list text into a lowercase Set, one handle per
// line, skipping blanks.
func ParseSet(text string) words.Set {
	set := make(words.Set)
	for _, line := range strings.Split(text, "\n") {
		token := strings.TrimSpace(line)
		if token != "" {
			set.Add(strings.ToLower(token))
		}
	}
	return set
}
