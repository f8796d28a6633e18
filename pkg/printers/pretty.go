package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"tableflip.dev/journal/pkg/collection"
	"tableflip.dev/journal/pkg/entry"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

type PrettyPrint struct {
	Out io.Writer
	// Width wraps long text; zero means DefaultWidth.
	Width int
	// Markdown renders descriptions as markdown instead of wrapping them.
	Markdown bool
}

// ForStdout configures a PrettyPrint for the process's standard output,
// rendering markdown only when it is a terminal.
func ForStdout() *PrettyPrint {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	pp := &PrettyPrint{Out: color.Output, Width: DefaultWidth, Markdown: tty}
	if tty {
		if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
			pp.Width = w
		}
	}
	return pp
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Overview prints the numbered listing, or a faint marker for an empty
// journal. The listing itself is never colored so it can be piped.
func (pp *PrettyPrint) Overview(c *collection.Collection) {
	if c.IsEmpty() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "(no entries)")
		return
	}
	_, _ = fmt.Fprintln(pp.out(), c.Overview())
}

// Entry prints one entry in full: a header with its index and timestamp,
// then the description.
func (pp *PrettyPrint) Entry(index int, e entry.Entry) error {
	h := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Faint)
	_, _ = y.Fprintf(pp.out(), "[%04d] ", index)
	_, _ = h.Fprintln(pp.out(), e.Timestamp.String())

	body := e.Description
	if pp.Markdown {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(pp.width()),
		)
		if err != nil {
			return fmt.Errorf("printers: markdown renderer: %w", err)
		}
		if body, err = r.Render(e.Description); err != nil {
			return fmt.Errorf("printers: render entry: %w", err)
		}
		_, _ = fmt.Fprint(pp.out(), body)
		return nil
	}
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(body, pp.width()))
	return nil
}

// Table prints label/value rows aligned in two columns.
func (pp *PrettyPrint) Table(rows [][2]string) {
	tbl := uitable.New()
	tbl.MaxColWidth = uint(pp.width())
	tbl.Wrap = true
	l := color.New(color.Bold)
	for _, row := range rows {
		tbl.AddRow(l.Sprint(strings.ToUpper(row[0])+":"), row[1])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
