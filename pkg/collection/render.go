package collection

import (
	"fmt"
	"strings"
)

// OverviewWidth is how many characters of a description the overview shows.
const OverviewWidth = 40

// Markdown renders one "- YYYY-MM-DD: description" line per entry.
func (c *Collection) Markdown() string {
	lines := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		lines = append(lines, fmt.Sprintf("- %s: %s", e.Timestamp.DateString(), e.Description))
	}
	return strings.Join(lines, "\n")
}

// Overview renders the numbered listing whose indices Delete and
// ReplaceDescription accept.
func (c *Collection) Overview() string {
	return strings.Join(c.OverviewLines(), "\n")
}

// OverviewLines is Overview with one element per entry.
func (c *Collection) OverviewLines() []string {
	lines := make([]string, 0, len(c.entries))
	for i, e := range c.entries {
		lines = append(lines, fmt.Sprintf("[%04d] %s", i, e.Summary(OverviewWidth)))
	}
	return lines
}
