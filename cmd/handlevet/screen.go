package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/repos/verdictcache"
	"github.com/quietmint/handlevet/internal/vet/repos/words"
	"github.com/quietmint/handlevet/internal/vet/services/screener"
)

// screenCmd screens a file of candidate handles against the rule list.
var screenCmd = &cobra.Command{
	Use:   "screen <handles-file>",
	Short: "Screen a file of handles against the protected-word rules",
	Long: `Screen reads candidate handles, one per line, and prints a verdict for
each: OK, or FLAGGED with the rule words that matched. Handles that
fail the format check (1-15 chars, only a-z0-9_.-) are flagged without
consulting the rules.`,
	Args: cobra.ExactArgs(1),
	RunE: runScreen,
}

func runScreen(cmd *cobra.Command, args []string) error {
	logger := log.GetLogger()

	ruleSet, err := loadRules(cmd.Context(), logger)
	if err != nil {
		return &exitError{code: 1, err: fmt.Errorf("failed to load rules: %w", err)}
	}
	logger.Info(map[string]any{"source": cfg.Rules, "count": len(ruleSet)}, "rules_loaded")

	handles, err := readHandleLines(args[0])
	if err != nil {
		return &exitError{code: 1, err: err}
	}

	cache, err := verdictcache.New(int(cfg.CacheSize))
	if err != nil {
		return fmt.Errorf("failed to create verdict cache: %w", err)
	}

	svc := screener.New(screener.Options{
		Rules:  ruleSet,
		Cache:  cache,
		Logger: logger,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nChecking %d handles...\n\n", len(handles))
	fmt.Fprintf(out, "%-20s %-10s %s\n", "HANDLE", "STATUS", "REASON")
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for _, h := range handles {
		v := svc.Screen(h)
		fmt.Fprintf(out, "%-20s %-10s %s\n", h, v.Status(), v.Reason)
	}

	hits, misses, _ := svc.Stats()
	logger.Debug(map[string]any{"handles": len(handles), "cache_hits": hits, "cache_misses": misses}, "screen_done")
	return nil
}

// readHandleLines loads candidate handles from path, one per line,
// skipping blank lines.
func readHandleLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}
	defer f.Close()
	return words.ReadPlain(f)
}
