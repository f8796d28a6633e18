package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IndexOptions{}

	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "Print one entry in full",
		Example: `
journal show 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an index")
			}
			return io.ParseIndex(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := path()
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{Path: p, Index: *io.Index, Printer: printers.ForStdout()}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
