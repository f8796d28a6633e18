package entry

import (
	"strings"
	"time"
)

const (
	// LayoutDate is how timestamps render in listings and exports.
	LayoutDate = "2006-01-02"
	// LayoutDateTime is the canonical front-matter form of a timestamp.
	LayoutDateTime = "2006-01-02T15:04:05"
)

// frontMatterLayouts are tried in order against the first line of raw input.
var frontMatterLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	LayoutDateTime,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	LayoutDate,
}

// Timestamp is a naive wall-clock date and time. The wrapped time is always
// held in UTC; its fields are the local wall clock at creation and carry no
// zone meaning.
type Timestamp struct {
	time.Time
}

// NewTimestamp keeps the wall clock fields of t and drops its zone.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// Date returns a midnight timestamp for the given day.
func Date(year int, month time.Month, day int) Timestamp {
	return Timestamp{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseTimestamp accepts a date or a date and time, see frontMatterLayouts.
func ParseTimestamp(v string) (Timestamp, error) {
	v = strings.TrimSpace(v)
	var err error
	for _, layout := range frontMatterLayouts {
		var t time.Time
		if t, err = time.Parse(layout, v); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, err
}

func (t Timestamp) Before(other Timestamp) bool {
	return t.Time.Before(other.Time)
}

func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}

// DateString is the YYYY-MM-DD portion of the timestamp.
func (t Timestamp) DateString() string {
	return t.Format(LayoutDate)
}

func (t Timestamp) SameDay(then Timestamp) bool {
	y1, m1, d1 := t.Time.Date()
	y2, m2, d2 := then.Time.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (t Timestamp) String() string {
	return t.Format(LayoutDateTime)
}
