package importer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/journal/pkg/store"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestImportGlob(t *testing.T) {
	src := t.TempDir()
	write(t, filepath.Join(src, "2023", "b.md"), "2023-05-02\nsecond\n")
	write(t, filepath.Join(src, "2023", "may", "a.md"), "2023-05-01\nfirst\n")
	write(t, filepath.Join(src, "skip.txt"), "2023-05-03\nnot markdown\n")

	path := filepath.Join(t.TempDir(), "db")
	var out bytes.Buffer
	im := Import{
		Path:     path,
		Patterns: []string{filepath.Join(src, "**", "*.md"), filepath.Join(src, "2023", "b.md")},
		Out:      &out,
	}
	if err := im.Do(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := out.String(); got != "imported 2 entries\n" {
		t.Fatalf("unexpected output %q", got)
	}

	c, err := store.Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := c.Markdown(); got != "- 2023-05-01: first\n- 2023-05-02: second" {
		t.Fatalf("unexpected journal %q", got)
	}
}

func TestImportNoMatches(t *testing.T) {
	im := Import{Path: filepath.Join(t.TempDir(), "db"), Patterns: []string{filepath.Join(t.TempDir(), "*.md")}}
	if err := im.Do(context.Background()); err == nil {
		t.Fatalf("expected an error when nothing matches")
	}
}
