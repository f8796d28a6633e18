package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	format := string(printers.FormatMarkdown)
	last := ""

	names := make([]string, 0, len(printers.Formats()))
	for _, f := range printers.Formats() {
		names = append(names, string(f))
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the journal to stdout",
		Example: `
journal export > journal.md
journal export --format html --last 1w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			f, err := printers.ParseFormat(format)
			if err != nil {
				return output.HandleError(err)
			}
			p, err := path()
			if err != nil {
				return output.HandleError(err)
			}
			s := export.Export{Path: p, Format: f, Last: last, Out: os.Stdout}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format,
		fmt.Sprintf("Output format. One of %s.", strings.Join(names, ", ")))
	cmd.Flags().StringVar(&last, "last", "",
		`Only export a recent window, example: --last=1w or --last="3 days".`)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
