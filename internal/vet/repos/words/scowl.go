package words

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// SCOWL invocation defaults, matching the upstream word-list tooling.
const (
	DefaultScowlSize = 70
	scowlClass       = "A"
	scowlVariant     = "5"
)

// Error message constants for consistent error handling
const (
	errScowlScriptMissing = "scowl script not found at %s"
	errScowlDBBuild       = "failed to build scowl.db: %w"
	errScowlRun           = "scowl word-list failed: %w"
	errCommandFailed      = "command %q failed: %v\n%s"
)

// Runner executes an external command in dir and returns its stdout.
// It exists so tests can intercept SCOWL invocations.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner is the default Runner, backed by os/exec. Command failures
// include the captured stdout and stderr in the error.
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		combined := strings.TrimSpace(stdout.String() + "\n" + stderr.String())
		return nil, fmt.Errorf(errCommandFailed, name, err, combined)
	}
	return stdout.Bytes(), nil
}

// ScowlOptions configures a SCOWL word-list extraction.
type ScowlOptions struct {
	Dir      string // SCOWL checkout containing the scowl script
	Size     int    // size parameter, larger is broader
	NoFilter bool   // pass --no-word-filter
	// Runner to inject for testing purposes
	Runner Runner
}

// ScowlWords extracts a word list from a SCOWL checkout. The scowl.db
// database is built with make on first use, then the scowl script is
// invoked with the configured size, class A, and variant 5.
func ScowlWords(ctx context.Context, opts ScowlOptions) ([]string, error) {
	if opts.Runner == nil {
		opts.Runner = ExecRunner
	}
	if opts.Size <= 0 {
		opts.Size = DefaultScowlSize
	}

	scowlPath := filepath.Join(opts.Dir, "scowl")
	if _, err := os.Stat(scowlPath); err != nil {
		return nil, fmt.Errorf(errScowlScriptMissing, scowlPath)
	}

	dbPath := filepath.Join(opts.Dir, "scowl.db")
	if _, err := os.Stat(dbPath); err != nil {
		if _, err := opts.Runner(ctx, opts.Dir, "make", "scowl.db"); err != nil {
			return nil, fmt.Errorf(errScowlDBBuild, err)
		}
	}

	args := []string{"--db", dbPath, "word-list", strconv.Itoa(opts.Size), scowlClass, scowlVariant}
	if opts.NoFilter {
		args = append(args, "--no-word-filter")
	}
	out, err := opts.Runner(ctx, opts.Dir, scowlPath, args...)
	if err != nil {
		return nil, fmt.Errorf(errScowlRun, err)
	}
	return ReadPlain(bytes.NewReader(out))
}
