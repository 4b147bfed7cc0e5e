package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/gateways/feed"
	"github.com/quietmint/handlevet/internal/vet/repos/handles"
	"github.com/quietmint/handlevet/internal/vet/services/compare"
)

var (
	flagUMWordlist  string
	flagUMURL       string
	flagUMCachePath string
	flagUMTimeout   time.Duration
	flagUMMaxLen    int
	flagUMOut       string
)

// unmintedCmd compares a built word list against the minted-handle feed.
var unmintedCmd = &cobra.Command{
	Use:   "unminted",
	Short: "Find word list entries not yet minted as handles",
	Long: `Unminted downloads the minted-handle feed (or reuses a cached copy
after confirmation), subtracts it from the built word list, and writes
the remaining words shortest first.`,
	RunE: runUnminted,
}

func init() {
	unmintedCmd.Flags().StringVar(&flagUMWordlist, "wordlist", "wordlist.txt", "built word list to compare")
	unmintedCmd.Flags().StringVar(&flagUMURL, "url", "", "minted-handle feed URL (default from config)")
	unmintedCmd.Flags().StringVar(&flagUMCachePath, "cache-path", "", "handle feed cache file (default from config)")
	unmintedCmd.Flags().DurationVar(&flagUMTimeout, "timeout", 0, "feed request timeout (default from config)")
	unmintedCmd.Flags().IntVar(&flagUMMaxLen, "max-len", 0, "maximum word length (default from config)")
	unmintedCmd.Flags().StringVarP(&flagUMOut, "out", "o", "unminted_handles.txt", "output file")
}

func runUnminted(cmd *cobra.Command, args []string) error {
	logger := log.GetLogger()

	url := flagUMURL
	if url == "" {
		url = cfg.HandlesURL
	}
	cachePath := flagUMCachePath
	if cachePath == "" {
		cachePath = cfg.HandlesCache
	}
	timeout := flagUMTimeout
	if timeout <= 0 {
		timeout = cfg.HTTPTimeout
	}
	maxLen := flagUMMaxLen
	if maxLen <= 0 {
		maxLen = cfg.MaxLen
	}

	svc, err := compare.New(compare.Options{
		Fetcher: feed.New(feed.Options{Timeout: timeout, UserAgent: cfg.UserAgent}),
		Store:   handles.NewStore(cachePath),
		Prompt:  stdinPrompt(cmd),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	unminted, err := svc.Unminted(cmd.Context(), compare.Params{
		WordlistPath: flagUMWordlist,
		URL:          url,
		MaxLen:       maxLen,
	})
	if err != nil {
		return &exitError{code: 1, err: err}
	}

	if err := writeLines(flagUMOut, unminted); err != nil {
		return &exitError{code: 1, err: err}
	}
	logger.Info(map[string]any{"path": flagUMOut, "unminted": len(unminted)}, "unminted_written")
	return nil
}

// stdinPrompt asks on the command's output stream and reads one line of
// input. EOF counts as an empty answer, accepting the default.
func stdinPrompt(cmd *cobra.Command) compare.Prompt {
	return func(question string) (string, error) {
		fmt.Fprint(cmd.OutOrStdout(), question)
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return line, nil
	}
}
