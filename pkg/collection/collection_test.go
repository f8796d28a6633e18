package collection

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"tableflip.dev/journal/pkg/entry"
)

func day(d int) entry.Timestamp {
	return entry.Date(2023, time.May, d)
}

func threeEntries() *Collection {
	c := New()
	c.Push(entry.New("first", day(1)))
	c.Push(entry.New("second", day(2)))
	c.Push(entry.New("third", day(3)))
	return c
}

func TestPushKeepsSorted(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	c := New()
	for i := 0; i < 200; i++ {
		ts := entry.NewTimestamp(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC).
			Add(time.Duration(r.Intn(1000)) * time.Hour))
		c.Push(entry.New("e", ts))

		entries := c.Entries()
		for j := 1; j < len(entries); j++ {
			if entries[j].Timestamp.Before(entries[j-1].Timestamp) {
				t.Fatalf("push %d: entries %d and %d out of order", i, j-1, j)
			}
		}
	}
	if c.Len() != 200 {
		t.Fatalf("expected 200 entries, got %d", c.Len())
	}
}

func TestPushStableOnTies(t *testing.T) {
	c := New()
	c.Push(entry.New("a", day(2)))
	c.Push(entry.New("b", day(1)))
	c.Push(entry.New("c", day(2)))
	c.Push(entry.New("d", day(2)))

	var got []string
	for _, e := range c.Entries() {
		got = append(got, e.Description)
	}
	if strings.Join(got, "") != "bacd" {
		t.Fatalf("expected ties in insertion order, got %v", got)
	}
}

func TestNewSorts(t *testing.T) {
	c := New(entry.New("late", day(9)), entry.New("early", day(1)))
	if d, _ := c.Description(0); d != "early" {
		t.Fatalf("expected early first, got %q", d)
	}
}

func TestDeleteShiftsIndices(t *testing.T) {
	c := threeEntries()
	if err := c.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := c.Description(1)
	if err != nil {
		t.Fatalf("description: %v", err)
	}
	if got != "third" {
		t.Fatalf("expected the former index 2, got %q", got)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	c := New(entry.New("a", day(1)), entry.New("b", day(2)))
	before := c.Overview()

	err := c.Delete(5)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	var ie *IndexError
	if !errors.As(err, &ie) || ie.Index != 5 || ie.Len != 2 {
		t.Fatalf("expected index error details, got %#v", err)
	}
	if c.Overview() != before {
		t.Fatalf("collection changed after failed delete")
	}
	if err := c.Delete(-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range for negative index, got %v", err)
	}
}

func TestReplaceDescription(t *testing.T) {
	c := threeEntries()
	if err := c.ReplaceDescription(0, "  changed  "); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, _ := c.Description(0)
	if got != "  changed  " {
		t.Fatalf("expected description stored as given, got %q", got)
	}
	e, _ := c.Entry(0)
	if !e.Timestamp.Equal(day(1)) {
		t.Fatalf("timestamp changed: %v", e.Timestamp)
	}
	if err := c.ReplaceDescription(3, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestAccessorsOnEmpty(t *testing.T) {
	c := New()
	if !c.IsEmpty() {
		t.Fatalf("expected empty")
	}
	if _, err := c.Description(0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if _, err := c.Entry(0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
	if c.Markdown() != "" || c.Overview() != "" {
		t.Fatalf("expected empty renderings")
	}
}

func TestEntriesIsACopy(t *testing.T) {
	c := threeEntries()
	entries := c.Entries()
	entries[0].Description = "mutated"
	if d, _ := c.Description(0); d != "first" {
		t.Fatalf("collection mutated through Entries: %q", d)
	}
}

func TestMarkdown(t *testing.T) {
	c := New()
	c.Push(entry.New("afternoon", entry.NewTimestamp(time.Date(2023, time.May, 2, 15, 4, 5, 0, time.UTC))))
	c.Push(entry.New("morning", day(1)))

	want := "- 2023-05-01: morning\n- 2023-05-02: afternoon"
	if got := c.Markdown(); got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestOverview(t *testing.T) {
	c := New()
	c.Push(entry.New(strings.Repeat("z", 41), day(2)))
	c.Push(entry.New("short", day(1)))

	want := "[0000] 2023-05-01: short\n[0001] 2023-05-02: " + strings.Repeat("z", 37) + "..."
	if got := c.Overview(); got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
	if lines := c.OverviewLines(); len(lines) != 2 || lines[0] != "[0000] 2023-05-01: short" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestSince(t *testing.T) {
	c := threeEntries()
	got := c.Since(time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC))
	if got.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", got.Len())
	}
	if d, _ := got.Description(0); d != "second" {
		t.Fatalf("expected second first, got %q", d)
	}
	if c.Len() != 3 {
		t.Fatalf("source collection changed")
	}
}
