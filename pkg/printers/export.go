package printers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"tableflip.dev/journal/pkg/collection"
)

// Format names an export encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

func Formats() []Format {
	return []Format{FormatMarkdown, FormatHTML, FormatJSON, FormatYAML}
}

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	case FormatMarkdown, FormatHTML, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("printers: unknown format %q, want one of %v", raw, Formats())
}

// record is the shape of an entry in structured exports.
type record struct {
	Date        string `json:"date" yaml:"date"`
	Time        string `json:"time" yaml:"time"`
	Description string `json:"description" yaml:"description"`
}

func records(c *collection.Collection) []record {
	out := make([]record, 0, c.Len())
	for _, e := range c.Entries() {
		out = append(out, record{
			Date:        e.Timestamp.DateString(),
			Time:        e.Timestamp.Format("15:04:05"),
			Description: e.Description,
		})
	}
	return out
}

// Export writes c to w in the given format. Markdown is exactly
// Collection.Markdown followed by a newline.
func Export(w io.Writer, c *collection.Collection, f Format) error {
	switch f {
	case FormatMarkdown:
		if c.IsEmpty() {
			return nil
		}
		_, err := fmt.Fprintln(w, c.Markdown())
		return err
	case FormatHTML:
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(c.Markdown()), &buf); err != nil {
			return fmt.Errorf("printers: convert markdown: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records(c))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records(c)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("printers: unknown format %q", f)
}
