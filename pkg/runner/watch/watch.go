package watch

import (
	"context"
	"log/slog"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// Watch prints the overview, then prints it again every time another
// process changes the journal, until ctx is cancelled.
type Watch struct {
	Path    string
	Printer *printers.PrettyPrint
}

func (n *Watch) Do(ctx context.Context) error {
	events, err := store.Watch(ctx, n.Path)
	if err != nil {
		return err
	}
	if err := n.print(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			slog.Debug("journal changed", "path", ev.Path, "event", ev.Type.String())
			if ev.Type == store.EventRemoved {
				n.Printer.Title("journal removed: " + ev.Path)
				continue
			}
			if err := n.print(); err != nil {
				slog.Warn("reload failed", "path", ev.Path, "err", err)
			}
		}
	}
}

func (n *Watch) print() error {
	c, err := store.Read(n.Path)
	if err != nil {
		return err
	}
	n.Printer.Title("journal " + n.Path)
	n.Printer.Overview(c)
	return nil
}
