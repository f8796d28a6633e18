package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/editor"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Add an entry",
		Long: `Add an entry from the arguments, or from $VISUAL / $EDITOR when no
text is given. A first line holding a date such as 2023-05-01 sets the
entry's timestamp, otherwise it is stamped now.`,
		Example: `
journal add walked the dog
journal add --on 2/28 forgot to write this down
journal add
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			p, err := path()
			if err != nil {
				return output.HandleError(err)
			}
			s := add.Add{
				Path:    p,
				Text:    strings.Join(args, " "),
				On:      on,
				Printer: printers.ForStdout(),
			}
			if ed, err := editor.FromEnv(); err == nil {
				s.Editor = ed
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
