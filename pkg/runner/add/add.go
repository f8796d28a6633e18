package add

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// ErrAborted is returned when the editor hands back its seed untouched.
var ErrAborted = errors.New("add: nothing written, entry not added")

// Editor captures text from the user, starting from seed.
type Editor interface {
	Edit(ctx context.Context, seed string) (string, error)
}

type Add struct {
	Path string
	// Text is the entry text. When empty, Editor is opened instead.
	Text string
	// On overrides the timestamp with a date.
	On     *time.Time
	Editor Editor

	Printer *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	text := n.Text
	if text == "" {
		if n.Editor == nil {
			return errors.New("add: no text given and no editor configured")
		}
		seed := ""
		if n.On != nil {
			seed = frontMatter(*n.On) + "\n"
		}
		var err error
		if text, err = n.Editor.Edit(ctx, seed); err != nil {
			return err
		}
		if seed != "" && strings.TrimSpace(text) == strings.TrimSpace(seed) {
			return ErrAborted
		}
	} else if n.On != nil {
		text = frontMatter(*n.On) + "\n" + text
	}

	e := entry.Parse(text)

	c, err := store.Read(n.Path)
	if err != nil {
		return err
	}
	c.Push(e)
	if err := store.Write(c, n.Path); err != nil {
		return err
	}
	slog.Info("entry added", "path", n.Path, "timestamp", e.Timestamp.String())

	if n.Printer != nil {
		n.Printer.Overview(c)
	}
	return nil
}

func frontMatter(on time.Time) string {
	return on.Format(entry.LayoutDate)
}
