package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/journal/pkg/collection"
	"tableflip.dev/journal/pkg/entry"
)

func init() {
	color.NoColor = true
}

func journal() *collection.Collection {
	return collection.New(
		entry.New("planted *tomatoes*", entry.NewTimestamp(time.Date(2023, time.May, 1, 18, 5, 0, 0, time.UTC))),
		entry.New("rain all day", entry.Date(2023, time.May, 2)),
	)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":         FormatMarkdown,
		"md":       FormatMarkdown,
		"Markdown": FormatMarkdown,
		"html":     FormatHTML,
		"json":     FormatJSON,
		"yml":      FormatYAML,
		"yaml":     FormatYAML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatalf("expected error for pdf")
	}
}

func TestExportMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, journal(), FormatMarkdown); err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "- 2023-05-01: planted *tomatoes*\n- 2023-05-02: rain all day\n"
	if buf.String() != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, buf.String())
	}

	buf.Reset()
	if err := Export(&buf, collection.New(), FormatMarkdown); err != nil {
		t.Fatalf("export: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for an empty journal, got %q", buf.String())
	}
}

func TestExportHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, journal(), FormatHTML); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<ul>", "<li>2023-05-01: planted <em>tomatoes</em></li>", "<li>2023-05-02: rain all day</li>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, journal(), FormatJSON); err != nil {
		t.Fatalf("export: %v", err)
	}
	var got []record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[0].Date != "2023-05-01" || got[0].Time != "18:05:00" || got[1].Description != "rain all day" {
		t.Fatalf("unexpected records %+v", got)
	}
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, journal(), FormatYAML); err != nil {
		t.Fatalf("export: %v", err)
	}
	var got []record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[1].Date != "2023-05-02" || got[0].Description != "planted *tomatoes*" {
		t.Fatalf("unexpected records %+v", got)
	}
}

func TestPrettyOverview(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.Overview(collection.New())
	if buf.String() != "(no entries)\n" {
		t.Fatalf("unexpected empty overview %q", buf.String())
	}

	buf.Reset()
	pp.Overview(journal())
	want := "[0000] 2023-05-01: planted *tomatoes*\n[0001] 2023-05-02: rain all day\n"
	if buf.String() != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestPrettyEntryWraps(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Width: 10}

	e := entry.New("one two three four", entry.Date(2023, time.May, 2))
	if err := pp.Entry(7, e); err != nil {
		t.Fatalf("entry: %v", err)
	}
	want := "[0007] 2023-05-02T00:00:00\none two\nthree four\n"
	if buf.String() != want {
		t.Fatalf("expected:\n%q\ngot:\n%q", want, buf.String())
	}
}

func TestPrettyTable(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Table([][2]string{{"path", "/tmp/db"}, {"entries", "2"}})

	out := buf.String()
	if !strings.Contains(out, "PATH:") || !strings.Contains(out, "/tmp/db") || !strings.Contains(out, "ENTRIES:") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}
