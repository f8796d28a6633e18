package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/editor"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/edit"
	"tableflip.dev/journal/pkg/tui/picker"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IndexOptions{}

	cmd := &cobra.Command{
		Use:   "edit [index]",
		Short: "Rewrite an entry in $VISUAL / $EDITOR",
		Long: `Open an entry's description in the editor and save what comes back.
The timestamp is kept. Without an index a picker is shown.`,
		Example: `
journal edit 3
journal edit
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
			ed, err := editor.FromEnv()
			if err != nil {
				return output.HandleError(err)
			}
			s := edit.Edit{
				Path:    p,
				Index:   io.Index,
				Editor:  ed,
				Printer: printers.ForStdout(),
			}
			if options.Interactive() {
				s.Pick = picker.Run
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
