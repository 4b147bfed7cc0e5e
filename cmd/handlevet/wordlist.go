package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/repos/words"
	"github.com/quietmint/handlevet/internal/vet/services/wordlist"
)

var (
	flagWordlists      []string
	flagKaikki         string
	flagRanked         string
	flagScowlDir       string
	flagScowlSize      int
	flagScowlNoFilter  bool
	flagNoIntersection bool
	flagWLMaxLen       int
	flagWLOut          string
)

// wordlistCmd merges the configured word sources into one list.
var wordlistCmd = &cobra.Command{
	Use:   "wordlist",
	Short: "Build a merged English word list from the configured sources",
	Long: `Wordlist gathers words from any combination of SCOWL, plain word list
files, a wiktextract JSONL dump, and a ranked frequency list, then
merges them. By default a word must appear in every source
(intersection); --no-intersection keeps the union instead. All
--wordlist files together count as a single source.`,
	RunE: runWordlist,
}

func init() {
	wordlistCmd.Flags().StringArrayVar(&flagWordlists, "wordlist", nil, "plain word list file, repeatable")
	wordlistCmd.Flags().StringVar(&flagKaikki, "kaikki", "", "wiktextract JSONL dump (kaikki.org)")
	wordlistCmd.Flags().StringVar(&flagRanked, "ranked", "", "ranked frequency list, one word per line")
	wordlistCmd.Flags().StringVar(&flagScowlDir, "scowl-dir", "", "SCOWL checkout directory")
	wordlistCmd.Flags().IntVar(&flagScowlSize, "scowl-size", words.DefaultScowlSize, "SCOWL size cutoff")
	wordlistCmd.Flags().BoolVar(&flagScowlNoFilter, "scowl-no-filter", false, "pass --no-word-filter to scowl")
	wordlistCmd.Flags().BoolVar(&flagNoIntersection, "no-intersection", false, "merge sources by union instead of intersection")
	wordlistCmd.Flags().IntVar(&flagWLMaxLen, "max-len", 0, "maximum word length (default from config)")
	wordlistCmd.Flags().StringVarP(&flagWLOut, "out", "o", "wordlist.txt", "output file")
}

func runWordlist(cmd *cobra.Command, args []string) error {
	logger := log.GetLogger()

	maxLen := flagWLMaxLen
	if maxLen <= 0 {
		maxLen = cfg.MaxLen
	}

	svc := wordlist.New(wordlist.Options{Logger: logger})
	list, err := svc.Build(cmd.Context(), wordlist.Params{
		Wordlists:     flagWordlists,
		Kaikki:        flagKaikki,
		Ranked:        flagRanked,
		ScowlDir:      flagScowlDir,
		ScowlSize:     flagScowlSize,
		ScowlNoFilter: flagScowlNoFilter,
		Intersection:  !flagNoIntersection,
		MaxLen:        maxLen,
	})
	if err != nil {
		return &exitError{code: 2, err: fmt.Errorf("failed to build word list: %w", err)}
	}

	if err := writeLines(flagWLOut, list); err != nil {
		return &exitError{code: 2, err: err}
	}
	logger.Info(map[string]any{"path": flagWLOut, "words": len(list)}, "wordlist_written")
	return nil
}
