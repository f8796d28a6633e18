// Package collection holds the ordered set of entries that make up one
// journal.
package collection

import (
	"sort"
	"time"

	"tableflip.dev/journal/pkg/entry"
)

// Collection is a journal's entries, sorted ascending by timestamp.
//
// Indices handed to Delete, ReplaceDescription and friends are positions in
// the current order. Any Push or Delete can shift them, so callers should
// re-render the Overview after every mutation.
type Collection struct {
	entries []entry.Entry
}

// New returns a collection holding the given entries, sorted.
func New(entries ...entry.Entry) *Collection {
	c := &Collection{entries: make([]entry.Entry, 0, len(entries))}
	c.entries = append(c.entries, entries...)
	c.sort()
	return c
}

// Push appends e and re-sorts. Entries sharing a timestamp keep their
// insertion order.
func (c *Collection) Push(e entry.Entry) {
	c.entries = append(c.entries, e)
	c.sort()
}

// Delete removes the entry at index. Later entries move down by one.
func (c *Collection) Delete(index int) error {
	if err := c.check(index); err != nil {
		return err
	}
	c.entries = append(c.entries[:index], c.entries[index+1:]...)
	return nil
}

// ReplaceDescription overwrites the description at index as given. Ordering
// is unaffected since the timestamp does not change.
func (c *Collection) ReplaceDescription(index int, description string) error {
	if err := c.check(index); err != nil {
		return err
	}
	c.entries[index].Description = description
	return nil
}

func (c *Collection) Description(index int) (string, error) {
	if err := c.check(index); err != nil {
		return "", err
	}
	return c.entries[index].Description, nil
}

func (c *Collection) Entry(index int) (entry.Entry, error) {
	if err := c.check(index); err != nil {
		return entry.Entry{}, err
	}
	return c.entries[index], nil
}

// Entries returns a copy of the entries in order.
func (c *Collection) Entries() []entry.Entry {
	out := make([]entry.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Collection) Len() int {
	return len(c.entries)
}

func (c *Collection) IsEmpty() bool {
	return len(c.entries) == 0
}

// Since returns a new collection with the entries at or after cutoff.
func (c *Collection) Since(cutoff time.Time) *Collection {
	ts := entry.NewTimestamp(cutoff)
	// entries are sorted, so everything from the first match on qualifies.
	i := sort.Search(len(c.entries), func(i int) bool {
		return !c.entries[i].Timestamp.Before(ts)
	})
	return New(c.entries[i:]...)
}

func (c *Collection) check(index int) error {
	if index < 0 || index >= len(c.entries) {
		return &IndexError{Index: index, Len: len(c.entries)}
	}
	return nil
}

func (c *Collection) sort() {
	sort.SliceStable(c.entries, func(i, j int) bool {
		return c.entries[i].Timestamp.Before(c.entries[j].Timestamp)
	})
}
