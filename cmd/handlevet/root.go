package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/config"
	"github.com/quietmint/handlevet/internal/vet/domain"
	"github.com/quietmint/handlevet/internal/vet/gateways/feed"
	"github.com/quietmint/handlevet/internal/vet/repos/rules"
)

var (
	// Global flags; empty values defer to the loaded config.
	flagRules    string
	flagLogLevel string

	// cfg is loaded before any subcommand runs.
	cfg *config.AppConfig
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Screen handles against protected-word rules and find unminted English words",
	Long: `handlevet screens short user handles against a curated protected-word
rule list (exact, substring, and prefix strategies with per-rule
exceptions), builds merged English word lists from several sources, and
compares them against the minted-handle feed to find handles nobody has
taken yet.

Configuration comes from VET_-prefixed environment variables; flags
override individual values per invocation.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		if flagRules != "" {
			cfg.Rules = flagRules
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}
		if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
			return fmt.Errorf("logging configuration error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "protected-word rules path or URL (overrides VET_RULES)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log verbosity: debug, info, warn, or error")
	rootCmd.AddCommand(screenCmd, wordlistCmd, unmintedCmd)
}

// loadRules resolves the configured rule source: a URL is fetched over
// HTTP, anything else is treated as a local file or directory.
func loadRules(ctx context.Context, logger log.Logger) ([]domain.Rule, error) {
	src := cfg.Rules
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		client := feed.New(feed.Options{Timeout: cfg.HTTPTimeout, UserAgent: cfg.UserAgent})
		return rules.Fetch(ctx, client, src, logger)
	}
	return rules.Load(src, logger)
}

// writeLines writes one entry per line plus a trailing newline, creating
// parent directories as needed.
func writeLines(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
