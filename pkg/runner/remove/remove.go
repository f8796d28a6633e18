package remove

import (
	"context"
	"errors"
	"log/slog"

	"tableflip.dev/journal/pkg/collection"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// Picker asks the user to choose one of lines and returns its index.
type Picker func(title string, lines []string) (int, error)

// Remove deletes one entry and prints the renumbered overview.
type Remove struct {
	Path string
	// Index selects the entry. Nil asks Pick.
	Index *int
	Pick  Picker

	Printer *printers.PrettyPrint
}

func (n *Remove) Do(_ context.Context) error {
	c, err := store.Read(n.Path)
	if err != nil {
		return err
	}

	var idx int
	switch {
	case n.Index != nil:
		idx = *n.Index
	case c.IsEmpty():
		return &collection.IndexError{Index: 0, Len: 0}
	case n.Pick == nil:
		return errors.New("delete: an index is required")
	default:
		if idx, err = n.Pick("Delete which entry?", c.OverviewLines()); err != nil {
			return err
		}
	}

	if err := c.Delete(idx); err != nil {
		return err
	}
	if err := store.Write(c, n.Path); err != nil {
		return err
	}
	slog.Info("entry deleted", "path", n.Path, "index", idx)

	if n.Printer != nil {
		n.Printer.Overview(c)
	}
	return nil
}
