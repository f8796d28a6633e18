package edit

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"tableflip.dev/journal/pkg/collection"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// Editor captures text from the user, starting from seed.
type Editor interface {
	Edit(ctx context.Context, seed string) (string, error)
}

// Picker asks the user to choose one of lines and returns its index.
type Picker func(title string, lines []string) (int, error)

// Edit replaces the description of one entry with what the user writes in
// the editor. The timestamp is kept.
type Edit struct {
	Path string
	// Index selects the entry. Nil asks Picker.
	Index  *int
	Editor Editor
	Pick   Picker

	Printer *printers.PrettyPrint
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Editor == nil {
		return errors.New("edit: no editor configured")
	}
	c, err := store.Read(n.Path)
	if err != nil {
		return err
	}

	idx, err := choose(c, n.Index, n.Pick, "Edit which entry?")
	if err != nil {
		return err
	}
	current, err := c.Description(idx)
	if err != nil {
		return err
	}

	text, err := n.Editor.Edit(ctx, current)
	if err != nil {
		return err
	}
	if err := c.ReplaceDescription(idx, strings.TrimSpace(text)); err != nil {
		return err
	}
	if err := store.Write(c, n.Path); err != nil {
		return err
	}
	slog.Info("entry edited", "path", n.Path, "index", idx)

	if n.Printer != nil {
		n.Printer.Overview(c)
	}
	return nil
}

func choose(c *collection.Collection, index *int, pick Picker, title string) (int, error) {
	if index != nil {
		return *index, nil
	}
	if c.IsEmpty() {
		return -1, &collection.IndexError{Index: 0, Len: 0}
	}
	if pick == nil {
		return -1, errors.New("an index is required")
	}
	return pick(title, c.OverviewLines())
}
