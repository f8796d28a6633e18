package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
	"tableflip.dev/journal/pkg/timeutil"
)

type Export struct {
	Path   string
	Format printers.Format
	// Last limits the export to a window such as "1w". Empty exports all.
	Last string
	Now  func() time.Time

	Out io.Writer
}

func (n *Export) Do(_ context.Context) error {
	c, err := store.Read(n.Path)
	if err != nil {
		return err
	}

	if n.Last != "" {
		window, err := timeutil.ParseWindow(n.Last)
		if err != nil {
			return fmt.Errorf("export: --last: %w", err)
		}
		now := time.Now
		if n.Now != nil {
			now = n.Now
		}
		c = c.Since(timeutil.Cutoff(now(), window))
	}

	return printers.Export(n.Out, c, n.Format)
}
