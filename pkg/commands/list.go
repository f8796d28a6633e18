package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries with their index",
		Example: `
journal list
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runList(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	p, err := path()
	if err != nil {
		return output.HandleError(err)
	}
	s := list.List{Path: p, Printer: printers.ForStdout()}
	err = s.Do(context.Background())
	return output.HandleError(err)
}
