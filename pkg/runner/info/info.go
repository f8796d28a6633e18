package info

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strconv"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// Info describes where the journal lives and what it holds. It does not
// create the storage file.
type Info struct {
	Config  store.Config
	Printer *printers.PrettyPrint
}

func (n *Info) Do(_ context.Context) error {
	file := n.Config.ConfigFile()
	if file == "" {
		file = "(none)"
	}
	rows := [][2]string{
		{"config", file},
		{"path", n.Config.Path()},
	}

	if _, err := os.Stat(n.Config.Path()); errors.Is(err, fs.ErrNotExist) {
		rows = append(rows, [2]string{"entries", "0 (not created yet)"})
		n.Printer.Table(rows)
		return nil
	}

	c, err := store.Read(n.Config.Path())
	if err != nil {
		return err
	}
	rows = append(rows, [2]string{"entries", strconv.Itoa(c.Len())})
	if !c.IsEmpty() {
		first, _ := c.Entry(0)
		last, _ := c.Entry(c.Len() - 1)
		rows = append(rows,
			[2]string{"first", first.Timestamp.DateString()},
			[2]string{"last", last.Timestamp.DateString()},
		)
	}
	n.Printer.Table(rows)
	return nil
}
