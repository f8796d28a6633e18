package list

import (
	"context"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// List prints the numbered overview of the journal.
type List struct {
	Path    string
	Printer *printers.PrettyPrint
}

func (n *List) Do(_ context.Context) error {
	c, err := store.Read(n.Path)
	if err != nil {
		return err
	}
	n.Printer.Overview(c)
	return nil
}
