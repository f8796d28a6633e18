package show

import (
	"context"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// Show prints one entry in full.
type Show struct {
	Path    string
	Index   int
	Printer *printers.PrettyPrint
}

func (n *Show) Do(_ context.Context) error {
	c, err := store.Read(n.Path)
	if err != nil {
		return err
	}
	e, err := c.Entry(n.Index)
	if err != nil {
		return err
	}
	return n.Printer.Entry(n.Index, e)
}
