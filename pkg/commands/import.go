package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file|glob>...",
		Short: "Add one entry per text file",
		Long: `Read each matching file as one entry. A first line holding a date
sets the entry's timestamp. Globs may use ** to match directories.`,
		Example: `
journal import notes/2023-05-01.md
journal import 'notes/**/*.md'
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := path()
			if err != nil {
				return output.HandleError(err)
			}
			s := importer.Import{Path: p, Patterns: args, Out: os.Stdout}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
