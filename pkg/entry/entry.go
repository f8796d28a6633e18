package entry

import (
	"strings"
	"time"
)

// Entry is one journal record.
type Entry struct {
	Description string
	Timestamp   Timestamp
}

func New(description string, ts Timestamp) Entry {
	return Entry{Description: description, Timestamp: ts}
}

// Parse turns raw text into an Entry. When the first line of the trimmed
// text is a date or date-time, it becomes the timestamp and the rest the
// description. Otherwise the whole text is the description, stamped now.
// Parse never fails.
func Parse(raw string) Entry {
	return ParseWithClock(raw, time.Now)
}

// ParseWithClock is Parse with an injectable notion of now.
func ParseWithClock(raw string, now func() time.Time) Entry {
	s := strings.TrimSpace(raw)

	if first, rest, found := strings.Cut(s, "\n"); found {
		if ts, err := ParseTimestamp(first); err == nil {
			return Entry{
				Description: strings.TrimSpace(rest),
				Timestamp:   ts,
			}
		}
	}

	return Entry{
		Description: s,
		Timestamp:   NewTimestamp(now()),
	}
}

// FrontMatter renders the entry back into text that Parse reads as the same
// entry.
func (e Entry) FrontMatter() string {
	return e.Timestamp.String() + "\n" + e.Description
}

func (e Entry) String() string {
	return e.Timestamp.DateString() + ": " + e.Description
}
