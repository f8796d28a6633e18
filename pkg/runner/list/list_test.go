package list

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/journal/pkg/collection"
	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestListEmpty(t *testing.T) {
	var out bytes.Buffer
	l := List{Path: filepath.Join(t.TempDir(), "db"), Printer: &printers.PrettyPrint{Out: &out}}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := out.String(); got != "(no entries)\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestListOverview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	c := collection.New(
		entry.New("second", entry.Date(2023, 5, 2)),
		entry.New("first", entry.Date(2023, 5, 1)),
	)
	if err := store.Write(c, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	l := List{Path: path, Printer: &printers.PrettyPrint{Out: &out}}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	want := "[0000] 2023-05-01: first\n[0001] 2023-05-02: second\n"
	if got := out.String(); got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}
