package entry

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "..."

// Truncate shortens s to width user-perceived characters. Text that fits
// comes back unchanged; anything longer keeps its first width characters
// with the last three replaced by dots.
func Truncate(s string, width int) string {
	if uniseg.GraphemeClusterCount(s) <= width {
		return s
	}
	if width < len(ellipsis) {
		if width <= 0 {
			return ""
		}
		return strings.Repeat(".", width)
	}

	keep := width - len(ellipsis)
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < keep && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	b.WriteString(ellipsis)
	return b.String()
}

// Summary is the single line preview used in listings.
func (e Entry) Summary(width int) string {
	return e.Timestamp.DateString() + ": " + Truncate(e.Description, width)
}
