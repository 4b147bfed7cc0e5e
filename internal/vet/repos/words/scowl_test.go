package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type runnerCall struct {
	dir  string
	name string
	args []string
}

// fakeRunner records invocations and plays back canned output.
type fakeRunner struct {
	calls  []runnerCall
	out    []byte
	failOn string // command name that should fail
}

func (f *fakeRunner) run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, runnerCall{dir: dir, name: name, args: args})
	if f.failOn != "" && strings.Contains(name, f.failOn) {
		return nil, errors.New("boom")
	}
	return f.out, nil
}

func scowlDir(t *testing.T, withDB bool) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scowl"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write scowl: %v", err)
	}
	if withDB {
		if err := os.WriteFile(filepath.Join(dir, "scowl.db"), []byte("db"), 0644); err != nil {
			t.Fatalf("write scowl.db: %v", err)
		}
	}
	return dir
}

func TestScowlWords_MissingScript(t *testing.T) {
	f := &fakeRunner{}

	_, err := ScowlWords(context.Background(), ScowlOptions{Dir: t.TempDir(), Runner: f.run})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected missing-script error, got %v", err)
	}
	if len(f.calls) != 0 {
		t.Fatalf("runner should not have been called: %#v", f.calls)
	}
}

func TestScowlWords_BuildsDBWhenMissing(t *testing.T) {
	dir := scowlDir(t, false)
	f := &fakeRunner{out: []byte("alpha\nbeta\n")}

	got, err := ScowlWords(context.Background(), ScowlOptions{Dir: dir, Size: 60, Runner: f.run})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"alpha", "beta"}) {
		t.Fatalf("words = %#v", got)
	}

	if len(f.calls) != 2 {
		t.Fatalf("expected 2 runner calls, got %#v", f.calls)
	}
	if f.calls[0].name != "make" || !reflect.DeepEqual(f.calls[0].args, []string{"scowl.db"}) {
		t.Fatalf("first call unexpected: %#v", f.calls[0])
	}
	if f.calls[0].dir != dir {
		t.Fatalf("make must run in the scowl dir, got %q", f.calls[0].dir)
	}
	if f.calls[1].name != filepath.Join(dir, "scowl") {
		t.Fatalf("second call unexpected: %#v", f.calls[1])
	}
	wantArgs := []string{"--db", filepath.Join(dir, "scowl.db"), "word-list", "60", "A", "5"}
	if !reflect.DeepEqual(f.calls[1].args, wantArgs) {
		t.Fatalf("scowl args = %#v, want %#v", f.calls[1].args, wantArgs)
	}
}

func TestScowlWords_SkipsBuildWhenDBPresent(t *testing.T) {
	dir := scowlDir(t, true)
	f := &fakeRunner{out: []byte("alpha\n")}

	_, err := ScowlWords(context.Background(), ScowlOptions{Dir: dir, Runner: f.run})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.calls) != 1 {
		t.Fatalf("expected 1 runner call, got %#v", f.calls)
	}
	// Default size applies when none is given.
	if !reflect.DeepEqual(f.calls[0].args[2:], []string{"word-list", "70", "A", "5"}) {
		t.Fatalf("scowl args = %#v", f.calls[0].args)
	}
}

func TestScowlWords_NoFilterFlag(t *testing.T) {
	dir := scowlDir(t, true)
	f := &fakeRunner{out: []byte("alpha\n")}

	_, err := ScowlWords(context.Background(), ScowlOptions{Dir: dir, NoFilter: true, Runner: f.run})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	args := f.calls[0].args
	if args[len(args)-1] != "--no-word-filter" {
		t.Fatalf("expected --no-word-filter, got %#v", args)
	}
}

func TestScowlWords_MakeFails(t *testing.T) {
	dir := scowlDir(t, false)
	f := &fakeRunner{failOn: "make"}

	_, err := ScowlWords(context.Background(), ScowlOptions{Dir: dir, Runner: f.run})
	if err == nil || !strings.Contains(err.Error(), "scowl.db") {
		t.Fatalf("expected db build error, got %v", err)
	}
}

func TestScowlWords_RunFails(t *testing.T) {
	dir := scowlDir(t, true)
	f := &fakeRunner{failOn: "scowl"}

	_, err := ScowlWords(context.Background(), ScowlOptions{Dir: dir, Runner: f.run})
	if err == nil || !strings.Contains(err.Error(), "word-list failed") {
		t.Fatalf("expected run error, got %v", err)
	}
}
