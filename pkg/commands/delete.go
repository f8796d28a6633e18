package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/remove"
	"tableflip.dev/journal/pkg/tui/picker"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IndexOptions{}

	cmd := &cobra.Command{
		Use:     "delete [index]",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Long: `Delete the entry at index. Later entries move up by one. Without an
index a picker is shown.`,
		Example: `
journal delete 0
journal rm
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			return io.ParseIndex(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := path()
			if err != nil {
				return output.HandleError(err)
			}
			s := remove.Remove{Path: p, Index: io.Index, Printer: printers.ForStdout()}
			if options.Interactive() {
				s.Pick = picker.Run
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
