package rules

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quietmint/handlevet/internal/vet/common/log"
	"github.com/quietmint/handlevet/internal/vet/domain"
)

const testYAML = `
source: starter
rules:
  - word: admin
    algorithms: [impersonation]
    position: exact
  - word: root
    position: beginswith
`

const testJSON = `{
  "rules": [
    {"word": "staff", "algorithms": ["impersonation"], "position": "any", "exceptions": ["staffing"]}
  ]
}`

const testTOML = `source = "extra"

[[rules]]
word = "mod"
algorithms = ["impersonation", "modifier"]
canBePositive = true
`

const testBlob = `t.words=[
  // feed header comment
  {word:"badger",algorithms:["suggestive"],position:"any"},
  {word:"admin"},
];`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "rules.yaml", testYAML)

	got, err := Load(path, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rules, got %d: %#v", len(got), got)
	}
	if got[0].Word != "admin" || got[0].Position != domain.PositionExact || got[0].Source != "starter" {
		t.Fatalf("rule[0] unexpected: %+v", got[0])
	}
	if got[1].Word != "root" || got[1].Position != domain.PositionBeginsWith {
		t.Fatalf("rule[1] unexpected: %+v", got[1])
	}
}

func TestLoad_JSONFileDefaultsSourceToFilename(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "starter.json", testJSON)

	got, err := Load(path, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(got))
	}
	if got[0].Word != "staff" || got[0].Position != domain.PositionAny {
		t.Fatalf("rule[0] unexpected: %+v", got[0])
	}
	if got[0].Source != "starter.json" {
		t.Fatalf("source = %q, want starter.json", got[0].Source)
	}
	if len(got[0].Exceptions) != 1 || got[0].Exceptions[0] != "staffing" {
		t.Fatalf("exceptions unexpected: %#v", got[0].Exceptions)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "rules.toml", testTOML)

	got, err := Load(path, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(got))
	}
	if got[0].Word != "mod" || !got[0].CanBePositive || got[0].Source != "extra" {
		t.Fatalf("rule[0] unexpected: %+v", got[0])
	}
	if len(got[0].Algorithms) != 2 {
		t.Fatalf("algorithms unexpected: %#v", got[0].Algorithms)
	}
}

func TestLoad_BlobFile(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "t.words", testBlob)

	got, err := Load(path, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(got))
	}
	if got[0].Word != "badger" || got[0].Position != domain.PositionAny {
		t.Fatalf("rule[0] unexpected: %+v", got[0])
	}
	if got[1].Word != "admin" || got[1].Position != domain.PositionExact {
		t.Fatalf("rule[1] unexpected: %+v", got[1])
	}
	if got[0].Source != "t.words" {
		t.Fatalf("source = %q, want t.words", got[0].Source)
	}
}

func TestLoad_DirectorySortedOrder(t *testing.T) {
	dir := t.TempDir()
	// Written out of order; loading must follow sorted filename order.
	writeTestFile(t, dir, "b.yaml", testYAML)
	writeTestFile(t, dir, "a.words", testBlob)
	writeTestFile(t, dir, ".hidden", "not rules at all {{{")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := Load(dir, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(got))
	}
	wantWords := []string{"badger", "admin", "admin", "root"}
	for i, w := range wantWords {
		if got[i].Word != w {
			t.Fatalf("rule[%d].Word = %q, want %q", i, got[i].Word, w)
		}
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), log.NewNoopLogger())
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestLoad_EmptyRuleListIsErrNoRules(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "rules.yaml", "rules: []\n")

	_, err := Load(path, log.NewNoopLogger())
	if !errors.Is(err, ErrNoRules) {
		t.Fatalf("expected ErrNoRules, got %v", err)
	}
}

func TestLoad_MissingRulesKey(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "rules.yaml", "source: oops\n")

	_, err := Load(path, log.NewNoopLogger())
	if err == nil {
		t.Fatal("expected error for missing rules key")
	}
}

func TestLoad_MalformedBlob(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "t.words", "t.words=[{word:\"x\"")

	_, err := Load(path, log.NewNoopLogger())
	if err == nil {
		t.Fatal("expected error for malformed blob")
	}
}

func Test_loadStructured_SkipsNonMapEntries(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "rules.yaml", "rules:\n  - 5\n  - word: ok\n")

	got, err := loadStructured(path, log.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Word != "ok" {
		t.Fatalf("unexpected rules: %#v", got)
	}
}

type stubGetter struct {
	body   []byte
	err    error
	gotURL string
}

func (s *stubGetter) Get(_ context.Context, url, _ string) ([]byte, error) {
	s.gotURL = url
	if s.err != nil {
		return nil, s.err
	}
	return s.body, nil
}

func TestFetch_Success(t *testing.T) {
	g := &stubGetter{body: []byte(testBlob)}

	got, err := Fetch(context.Background(), g, "https://feed.example/t.words", log.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.gotURL != "https://feed.example/t.words" {
		t.Fatalf("fetched URL = %q", g.gotURL)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(got))
	}
	if got[0].Source != "https://feed.example/t.words" {
		t.Fatalf("source = %q, want feed URL", got[0].Source)
	}
}

func TestFetch_TransportError(t *testing.T) {
	g := &stubGetter{err: errors.New("connection refused")}

	_, err := Fetch(context.Background(), g, "https://feed.example/t.words", log.NewNoopLogger())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestFetch_EmptyFeedIsErrNoRules(t *testing.T) {
	g := &stubGetter{body: []byte("[]")}

	_, err := Fetch(context.Background(), g, "https://feed.example/t.words", log.NewNoopLogger())
	if !errors.Is(err, ErrNoRules) {
		t.Fatalf("expected ErrNoRules, got %v", err)
	}
}
