package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the journal and where it is stored.",
		Example: `
journal info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := jo.Config()
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{Config: cfg, Printer: printers.ForStdout()}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
