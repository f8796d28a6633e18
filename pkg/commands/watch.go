package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the journal whenever it changes",
		Example: `
journal watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := path()
			if err != nil {
				return output.HandleError(err)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := watch.Watch{Path: p, Printer: printers.ForStdout()}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
