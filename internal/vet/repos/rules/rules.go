// Package rules loads protected-word rules from local files, directories,
// and remote feeds. Structured YAML, JSON, and TOML files are parsed by
// extension; everything else is treated as a raw JavaScript-style array
// blob in the upstream feed dialect.
package rules

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"

	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/domain"
	"github.com/quietmint/handlevet/internal/vet/repos/rules/jsarray"
)

// ErrNoRules indicates a source yielded zero usable rules.
var ErrNoRules = errors.New("no valid rules found")

// Error message constants for consistent error handling
const (
	errStatPath     = "rules path %s: %w"
	errReadDir      = "failed to read rules directory %s: %w"
	errReadFile     = "failed to read rule file %s: %w"
	errParseBlob    = "failed to parse rule file %s: %w"
	errLoadFile     = "failed to load rule file %s: %w"
	errMissingRules = "rule file %s missing 'rules'"
	errRulesNotList = "rule file %s: 'rules' must be a list"
	errFetchFailed  = "failed to fetch rules from %s: %w"
)

// Load reads rules from path. A directory is loaded file by file in
// sorted filename order; dotfiles and subdirectories are skipped. Files
// with a .yaml, .yml, .json, or .toml extension are parsed as structured
// rule files; any other file is parsed as a raw feed blob.
// Returns ErrNoRules when the whole path yields zero usable rules.
func Load(path string, logger log.Logger) ([]domain.Rule, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf(errStatPath, path, err)
	}

	var loaded []domain.Rule
	if info.IsDir() {
		loaded, err = loadDir(path, logger)
	} else {
		loaded, err = loadFile(path, logger)
	}
	if err != nil {
		return nil, err
	}
	if len(loaded) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoRules)
	}
	return loaded, nil
}

// Fetch downloads a raw feed blob from url and parses it. Returns
// ErrNoRules when the feed yields zero usable rules.
func Fetch(ctx context.Context, client Getter, url string, logger log.Logger) ([]domain.Rule, error) {
	body, err := client.Get(ctx, url, "")
	if err != nil {
		return nil, fmt.Errorf(errFetchFailed, url, err)
	}
	entries, err := jsarray.Parse(body)
	if err != nil {
		return nil, fmt.Errorf(errParseBlob, url, err)
	}
	loaded := Convert(entries, url, logger)
	if len(loaded) == 0 {
		return nil, fmt.Errorf("%s: %w", url, ErrNoRules)
	}
	return loaded, nil
}

// loadDir loads every visible regular file in dir, in sorted filename
// order, and concatenates the results. Rule order across files follows
// the filename order so first-match evaluation stays deterministic.
func loadDir(dir string, logger log.Logger) ([]domain.Rule, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(errReadDir, dir, err)
	}

	var loaded []domain.Rule
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		fileRules, err := loadFile(filepath.Join(dir, entry.Name()), logger)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, fileRules...)
	}
	return loaded, nil
}

// loadFile dispatches a single file to the structured or blob parser
// based on its extension.
func loadFile(path string, logger log.Logger) ([]domain.Rule, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return loadStructured(path, logger)
	default:
		return loadBlob(path, logger)
	}
}

// loadStructured parses a YAML, JSON, or TOML rule file. The file holds
// an optional 'source' label and a 'rules' list of entries; when 'source'
// is absent the base filename is used.
func loadStructured(path string, logger log.Logger) ([]domain.Rule, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf(errLoadFile, path, err)
	}

	source := k.String("source")
	if source == "" {
		source = filepath.Base(path)
	}

	raw := k.Get("rules")
	if raw == nil {
		return nil, fmt.Errorf(errMissingRules, path)
	}
	list, ok := toEntryList(raw)
	if !ok {
		return nil, fmt.Errorf(errRulesNotList, path)
	}

	entries := make([]map[string]any, 0, len(list))
	for i, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			logger.Warn(map[string]any{"source": source, "index": i}, "skip_malformed_entry")
			continue
		}
		entries = append(entries, m)
	}
	return Convert(entries, source, logger), nil
}

// toEntryList normalizes a parsed 'rules' value to a []any. TOML arrays
// of tables decode as []map[string]any while YAML and JSON sequences
// decode as []any; both are accepted.
func toEntryList(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

// loadBlob parses a raw feed blob file in the upstream dialect.
func loadBlob(path string, logger log.Logger) ([]domain.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(errReadFile, path, err)
	}
	entries, err := jsarray.Parse(data)
	if err != nil {
		return nil, fmt.Errorf(errParseBlob, path, err)
	}
	return Convert(entries, filepath.Base(path), logger), nil
}
